package routes

import (
	"log"
	"os"
	"strconv"

	_ "taller_mecanico/docs" // This will be auto-generated
	"taller_mecanico/internal/adapter/http/dto/request"
	"taller_mecanico/internal/adapter/http/handlers"
	"taller_mecanico/internal/adapter/persistence/repository"
	"taller_mecanico/internal/infrastructure/database"
	"taller_mecanico/internal/infrastructure/payments"
	"taller_mecanico/internal/usecase"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()
	request.RegisterCustomValidators()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	workOrderRepo := repository.NewWorkOrderDynamoRepository(ddb)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)
	partRepo := repository.NewPartDynamoRepository(ddb)
	clientRepo := repository.NewClientDynamoRepository(ddb)
	vehicleRepo := repository.NewVehicleDynamoRepository(ddb)
	mechanicRepo := repository.NewMechanicDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	workOrderUseCase := usecase.NewWorkOrderUseCase(workOrderRepo, partRepo, invoiceRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, paymentGateway)
	partUseCase := usecase.NewPartUseCase(partRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo, clientRepo)
	mechanicUseCase := usecase.NewMechanicUseCase(mechanicRepo)

	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	partHandler := handlers.NewPartHandler(partUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	mechanicHandler := handlers.NewMechanicHandler(mechanicUseCase)

	// Rutas públicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTallerRoutes(v1, workOrderHandler, invoiceHandler, partHandler, clientHandler, vehicleHandler, mechanicHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
