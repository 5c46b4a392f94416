package repository

import (
	"context"
	"errors"
	"time"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "ordenes_de_trabajo"

type lineItemRecord struct {
	Tipo           string  `dynamodbav:"tipo"`
	Descripcion    string  `dynamodbav:"descripcion"`
	Cantidad       int     `dynamodbav:"cantidad"`
	PrecioUnitario float64 `dynamodbav:"precio_unitario"`
	Subtotal       float64 `dynamodbav:"subtotal,omitempty"`
	RepuestoID     string  `dynamodbav:"repuesto_id,omitempty"`
	ServicioID     string  `dynamodbav:"servicio_id,omitempty"`
}

type presupuestoRecord struct {
	MontoTotal float64 `dynamodbav:"monto_total"`
}

type workOrderItem struct {
	ID          string             `dynamodbav:"id"`
	Estado      string             `dynamodbav:"estado"`
	Descripcion string             `dynamodbav:"descripcion"`
	ClienteID   string             `dynamodbav:"cliente_id,omitempty"`
	VehiculoID  string             `dynamodbav:"vehiculo_id,omitempty"`
	MecanicoID  string             `dynamodbav:"mecanico_id,omitempty"`
	Zona        string             `dynamodbav:"zona,omitempty"`
	Presupuesto *presupuestoRecord `dynamodbav:"presupuesto,omitempty"`
	FacturaID   string             `dynamodbav:"factura_id,omitempty"`
	Items       []lineItemRecord   `dynamodbav:"items_detalle"`
	CreatedAt   string             `dynamodbav:"created_at"`
	UpdatedAt   string             `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists WorkOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Line items live inside the order item; finalize therefore sees the whole
// order with one consistent GetItem.

type WorkOrderDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	invoicesTable  string
	repuestosTable string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		invoicesTable:  getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
		repuestosTable: getenvDefault("PARTS_TABLE", defaultPartsTableName),
	}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	av, err := attributevalue.MarshalMap(toWorkOrderItem(o))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	return o, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.WorkOrder, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #estado = :estado, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#estado":     "estado",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estado":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) AddItem(ctx context.Context, id string, item entities.LineItem) (entities.WorkOrder, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	itemAV, err := attributevalue.MarshalMap(toLineItemRecord(item))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #items = list_append(if_not_exists(#items, :empty), :item), #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#items":      "items_detalle",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":item":       &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: itemAV}}},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

// FinalizeTx writes the invoice, the order update and every stock adjustment
// in one TransactWriteItems. The order update is conditioned on factura_id
// being unset, so concurrent finalizes cannot create a second invoice; a
// failed condition surfaces as a zero-value order with nil error.
func (r *WorkOrderDynamoRepository) FinalizeTx(ctx context.Context, orderID string, invoice entities.Invoice, adjustments []interfaces.StockAdjustment) (entities.WorkOrder, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	invoiceAV, err := attributevalue.MarshalMap(toInvoiceItem(invoice))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	tx := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(r.invoicesTable),
				Item:                invoiceAV,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		},
		{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: orderID},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#factura_id)"),
				UpdateExpression:    aws.String("SET #estado = :estado, #factura_id = :factura_id, #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#estado":     "estado",
					"#factura_id": "factura_id",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":estado":     &types.AttributeValueMemberS{Value: string(entities.OrderStatusFinalizado)},
					":factura_id": &types.AttributeValueMemberS{Value: invoice.ID},
					":updated_at": &types.AttributeValueMemberS{Value: now},
				},
			},
		},
	}

	for _, adj := range adjustments {
		tx = append(tx, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.repuestosTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: adj.PartID},
				},
				ConditionExpression: aws.String("attribute_exists(#id)"),
				UpdateExpression:    aws.String("SET #stock = :stock, #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#stock":      "stock",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":stock":      &types.AttributeValueMemberN{Value: intToString(adj.NewStock)},
					":updated_at": &types.AttributeValueMemberS{Value: now},
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: tx})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
					return entities.WorkOrder{}, nil
				}
			}
		}
		return entities.WorkOrder{}, err
	}

	return r.GetByID(ctx, orderID)
}

func toLineItemRecord(i entities.LineItem) lineItemRecord {
	return lineItemRecord{
		Tipo:           string(i.Tipo),
		Descripcion:    i.Descripcion,
		Cantidad:       i.Cantidad,
		PrecioUnitario: i.PrecioUnitario,
		Subtotal:       i.Subtotal,
		RepuestoID:     i.RepuestoID,
		ServicioID:     i.ServicioID,
	}
}

func fromLineItemRecord(rec lineItemRecord) entities.LineItem {
	return entities.LineItem{
		Tipo:           entities.LineItemType(rec.Tipo),
		Descripcion:    rec.Descripcion,
		Cantidad:       rec.Cantidad,
		PrecioUnitario: rec.PrecioUnitario,
		Subtotal:       rec.Subtotal,
		RepuestoID:     rec.RepuestoID,
		ServicioID:     rec.ServicioID,
	}
}

func toWorkOrderItem(o entities.WorkOrder) workOrderItem {
	items := make([]lineItemRecord, 0, len(o.Items))
	for _, i := range o.Items {
		items = append(items, toLineItemRecord(i))
	}

	var presupuesto *presupuestoRecord
	if o.Presupuesto != nil {
		presupuesto = &presupuestoRecord{MontoTotal: o.Presupuesto.MontoTotal}
	}

	return workOrderItem{
		ID:          o.ID,
		Estado:      string(o.Estado),
		Descripcion: o.Descripcion,
		ClienteID:   o.ClienteID,
		VehiculoID:  o.VehiculoID,
		MecanicoID:  o.MecanicoID,
		Zona:        o.Zona,
		Presupuesto: presupuesto,
		FacturaID:   o.FacturaID,
		Items:       items,
		CreatedAt:   o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	items := make([]entities.LineItem, 0, len(it.Items))
	for _, rec := range it.Items {
		items = append(items, fromLineItemRecord(rec))
	}

	var presupuesto *entities.Presupuesto
	if it.Presupuesto != nil {
		presupuesto = &entities.Presupuesto{MontoTotal: it.Presupuesto.MontoTotal}
	}

	return entities.WorkOrder{
		ID:          it.ID,
		Estado:      entities.OrderStatus(it.Estado),
		Descripcion: it.Descripcion,
		ClienteID:   it.ClienteID,
		VehiculoID:  it.VehiculoID,
		MecanicoID:  it.MecanicoID,
		Zona:        it.Zona,
		Presupuesto: presupuesto,
		FacturaID:   it.FacturaID,
		Items:       items,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
