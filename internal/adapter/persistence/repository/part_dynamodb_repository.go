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
	defaultPartsTableName = "repuestos"
	partsSKUIndex         = "sku-index"
)

type partItem struct {
	ID             string  `dynamodbav:"id"`
	SKU            string  `dynamodbav:"sku"`
	Nombre         string  `dynamodbav:"nombre"`
	Stock          int     `dynamodbav:"stock"`
	StockMinimo    int     `dynamodbav:"stock_minimo"`
	PrecioUnitario float64 `dynamodbav:"precio_unitario"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

// PartDynamoRepository persists Part entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: sku-index (PK: sku)
//
// Stock decrements during finalize are written by
// WorkOrderDynamoRepository.FinalizeTx, not here.

type PartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPartRepository = (*PartDynamoRepository)(nil)

func NewPartDynamoRepository(ddb *dynamodb.Client) *PartDynamoRepository {
	return &PartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARTS_TABLE", defaultPartsTableName),
	}
}

func (r *PartDynamoRepository) Create(ctx context.Context, p entities.Part) (entities.Part, error) {
	av, err := attributevalue.MarshalMap(toPartItem(p))
	if err != nil {
		return entities.Part{}, err
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
		return entities.Part{}, err
	}
	return p, nil
}

func (r *PartDynamoRepository) GetByID(ctx context.Context, id string) (entities.Part, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Part{}, err
	}
	if len(out.Item) == 0 {
		return entities.Part{}, nil
	}

	var it partItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Part{}, err
	}
	return fromPartItem(it), nil
}

func (r *PartDynamoRepository) GetBySKU(ctx context.Context, sku string) (entities.Part, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(partsSKUIndex),
		KeyConditionExpression: aws.String("sku = :sku"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sku": &types.AttributeValueMemberS{Value: sku},
		},
	})
	if err != nil {
		return entities.Part{}, err
	}
	if len(out.Items) == 0 {
		return entities.Part{}, nil
	}

	var it partItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Part{}, err
	}
	return fromPartItem(it), nil
}

func (r *PartDynamoRepository) List(ctx context.Context) ([]entities.Part, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	parts := make([]entities.Part, 0, len(out.Items))
	for _, raw := range out.Items {
		var it partItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		parts = append(parts, fromPartItem(it))
	}
	return parts, nil
}

func (r *PartDynamoRepository) Update(ctx context.Context, p entities.Part) (entities.Part, error) {
	av, err := attributevalue.MarshalMap(toPartItem(p))
	if err != nil {
		return entities.Part{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Part{}, nil
		}
		return entities.Part{}, err
	}
	return p, nil
}

func toPartItem(p entities.Part) partItem {
	return partItem{
		ID:             p.ID,
		SKU:            p.SKU,
		Nombre:         p.Nombre,
		Stock:          p.Stock,
		StockMinimo:    p.StockMinimo,
		PrecioUnitario: p.PrecioUnitario,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPartItem(it partItem) entities.Part {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Part{
		ID:             it.ID,
		SKU:            it.SKU,
		Nombre:         it.Nombre,
		Stock:          it.Stock,
		StockMinimo:    it.StockMinimo,
		PrecioUnitario: it.PrecioUnitario,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
