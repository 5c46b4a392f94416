package routes

import (
	"taller_mecanico/internal/adapter/http/handlers"
	"taller_mecanico/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkOrders = "/orden-de-trabajos"
	PathInvoices   = "/facturas"
	PathParts      = "/repuestos"
	PathClients    = "/clientes"
	PathVehicles   = "/vehiculos"
	PathMechanics  = "/mecanicos"
)

// addTallerRoutes registers the workshop API. Every route requires a valid
// JWT; write operations additionally carry the role guard of the dashboard
// they came from (encargado, mecanico, recepcionista).
func addTallerRoutes(
	rg *gin.RouterGroup,
	workOrderHandler *handlers.WorkOrderHandler,
	invoiceHandler *handlers.InvoiceHandler,
	partHandler *handlers.PartHandler,
	clientHandler *handlers.ClientHandler,
	vehicleHandler *handlers.VehicleHandler,
	mechanicHandler *handlers.MechanicHandler,
) {
	encargado := middleware.RequireRole(middleware.RoleEncargado)
	taller := middleware.RequireRole(middleware.RoleMecanico, middleware.RoleEncargado)
	recepcion := middleware.RequireRole(middleware.RoleRecepcionista, middleware.RoleEncargado)

	rg.Use(middleware.JWTAuth())

	orders := rg.Group(PathWorkOrders)
	{
		orders.POST("", recepcion, workOrderHandler.Create)
		orders.GET("/:id", workOrderHandler.GetByID)
		orders.PATCH("/:id/estado", taller, workOrderHandler.UpdateStatus)
		orders.POST("/:id/items", taller, workOrderHandler.AddItem)
		orders.POST("/:id/finalize", encargado, workOrderHandler.Finalize)
		orders.POST("/:id/facturar", encargado, workOrderHandler.GenerateInvoice)
		orders.POST("/:id/entregar", encargado, workOrderHandler.Deliver)
		orders.GET("/:id/factura", invoiceHandler.GetByOrderID)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/:id", invoiceHandler.GetByID)
		invoices.POST("/:id/pagar", encargado, invoiceHandler.Pay)
	}

	parts := rg.Group(PathParts)
	{
		parts.POST("", encargado, partHandler.Create)
		parts.GET("", partHandler.List)
		parts.GET("/bajo-stock", partHandler.ListBelowMinimum)
		parts.GET("/:id", partHandler.GetByID)
		parts.PUT("/:id", encargado, partHandler.Update)
		parts.POST("/:id/aprobar-solicitud", taller, partHandler.ApproveRequest)
	}

	clients := rg.Group(PathClients)
	{
		clients.POST("", recepcion, clientHandler.Create)
		clients.GET("", clientHandler.List)
		clients.GET("/:id", clientHandler.GetByID)
		clients.GET("/:id/vehiculos", vehicleHandler.ListByClient)
		clients.PUT("/:id", recepcion, clientHandler.Update)
		clients.DELETE("/:id", recepcion, clientHandler.Delete)
	}

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", recepcion, vehicleHandler.Create)
		vehicles.GET("/:id", vehicleHandler.GetByID)
		vehicles.PUT("/:id", recepcion, vehicleHandler.Update)
		vehicles.DELETE("/:id", recepcion, vehicleHandler.Delete)
	}

	mechanics := rg.Group(PathMechanics)
	{
		mechanics.POST("", encargado, mechanicHandler.Create)
		mechanics.GET("", mechanicHandler.List)
		mechanics.GET("/:id", mechanicHandler.GetByID)
		mechanics.PUT("/:id", encargado, mechanicHandler.Update)
		mechanics.DELETE("/:id", encargado, mechanicHandler.Delete)
	}
}
