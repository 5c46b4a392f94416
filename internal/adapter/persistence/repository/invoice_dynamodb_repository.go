package repository

import (
	"context"
	"time"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "facturas"
	invoicesOrdenIDIndex     = "orden_id-index"
)

type desgloseItemRecord struct {
	Descripcion    string  `dynamodbav:"descripcion"`
	Cantidad       int     `dynamodbav:"cantidad"`
	PrecioUnitario float64 `dynamodbav:"precio_unitario"`
	Subtotal       float64 `dynamodbav:"subtotal"`
}

type desgloseRecord struct {
	Servicios []desgloseItemRecord `dynamodbav:"servicios"`
	Repuestos []desgloseItemRecord `dynamodbav:"repuestos"`
	ManoObra  []desgloseItemRecord `dynamodbav:"mano_obra"`
	Otros     []desgloseItemRecord `dynamodbav:"otros"`
}

type invoiceItem struct {
	ID            string         `dynamodbav:"id"`
	NumeroFactura string         `dynamodbav:"numero_factura"`
	FechaEmision  string         `dynamodbav:"fecha_emision"`
	Subtotal      float64        `dynamodbav:"subtotal"`
	IVA           float64        `dynamodbav:"iva"`
	Total         float64        `dynamodbav:"total"`
	Desglose      desgloseRecord `dynamodbav:"desglose"`
	OrdenID       string         `dynamodbav:"orden_id"`
	EstadoPago    string         `dynamodbav:"estado_pago"`
	CreatedAt     string         `dynamodbav:"created_at"`
}

// InvoiceDynamoRepository reads facturas from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: orden_id-index (PK: orden_id)
//
// Invoices are written exclusively by WorkOrderDynamoRepository.FinalizeTx;
// this repository only reads them and flips the payment state.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) GetByOrderID(ctx context.Context, ordenID string) (entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesOrdenIDIndex),
		KeyConditionExpression: aws.String("orden_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ordenID},
		},
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Items) == 0 {
		return entities.Invoice{}, nil
	}

	// At most one invoice per order is enforced at write time.
	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Invoice, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #estado_pago = :estado_pago"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#estado_pago": "estado_pago",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estado_pago": &types.AttributeValueMemberS{Value: string(status)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func toDesgloseItemRecords(items []entities.DesgloseItem) []desgloseItemRecord {
	out := make([]desgloseItemRecord, 0, len(items))
	for _, i := range items {
		out = append(out, desgloseItemRecord{
			Descripcion:    i.Descripcion,
			Cantidad:       i.Cantidad,
			PrecioUnitario: i.PrecioUnitario,
			Subtotal:       i.Subtotal,
		})
	}
	return out
}

func fromDesgloseItemRecords(recs []desgloseItemRecord) []entities.DesgloseItem {
	out := make([]entities.DesgloseItem, 0, len(recs))
	for _, rec := range recs {
		out = append(out, entities.DesgloseItem{
			Descripcion:    rec.Descripcion,
			Cantidad:       rec.Cantidad,
			PrecioUnitario: rec.PrecioUnitario,
			Subtotal:       rec.Subtotal,
		})
	}
	return out
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:            inv.ID,
		NumeroFactura: inv.NumeroFactura,
		FechaEmision:  inv.FechaEmision,
		Subtotal:      inv.Subtotal,
		IVA:           inv.IVA,
		Total:         inv.Total,
		Desglose: desgloseRecord{
			Servicios: toDesgloseItemRecords(inv.Desglose.Servicios),
			Repuestos: toDesgloseItemRecords(inv.Desglose.Repuestos),
			ManoObra:  toDesgloseItemRecords(inv.Desglose.ManoObra),
			Otros:     toDesgloseItemRecords(inv.Desglose.Otros),
		},
		OrdenID:    inv.OrdenID,
		EstadoPago: string(inv.EstadoPago),
		CreatedAt:  inv.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Invoice{
		ID:            it.ID,
		NumeroFactura: it.NumeroFactura,
		FechaEmision:  it.FechaEmision,
		Subtotal:      it.Subtotal,
		IVA:           it.IVA,
		Total:         it.Total,
		Desglose: entities.Desglose{
			Servicios: fromDesgloseItemRecords(it.Desglose.Servicios),
			Repuestos: fromDesgloseItemRecords(it.Desglose.Repuestos),
			ManoObra:  fromDesgloseItemRecords(it.Desglose.ManoObra),
			Otros:     fromDesgloseItemRecords(it.Desglose.Otros),
		},
		OrdenID:    it.OrdenID,
		EstadoPago: entities.PaymentStatus(it.EstadoPago),
		CreatedAt:  createdAt,
	}
}
