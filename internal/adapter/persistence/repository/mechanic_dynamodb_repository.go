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

const defaultMechanicsTableName = "mecanicos"

type mechanicItem struct {
	ID           string `dynamodbav:"id"`
	RUT          string `dynamodbav:"rut,omitempty"`
	Nombre       string `dynamodbav:"nombre"`
	Apellido     string `dynamodbav:"apellido"`
	Email        string `dynamodbav:"email"`
	Especialidad string `dynamodbav:"especialidad"`
	Estado       string `dynamodbav:"estado"`
	Zona         string `dynamodbav:"zona,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// MechanicDynamoRepository persists Mechanic entities in DynamoDB (PK: id).

type MechanicDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMechanicRepository = (*MechanicDynamoRepository)(nil)

func NewMechanicDynamoRepository(ddb *dynamodb.Client) *MechanicDynamoRepository {
	return &MechanicDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MECHANICS_TABLE", defaultMechanicsTableName),
	}
}

func (r *MechanicDynamoRepository) Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	av, err := attributevalue.MarshalMap(toMechanicItem(m))
	if err != nil {
		return entities.Mechanic{}, err
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
		return entities.Mechanic{}, err
	}
	return m, nil
}

func (r *MechanicDynamoRepository) GetByID(ctx context.Context, id string) (entities.Mechanic, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Mechanic{}, err
	}
	if len(out.Item) == 0 {
		return entities.Mechanic{}, nil
	}

	var it mechanicItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Mechanic{}, err
	}
	return fromMechanicItem(it), nil
}

func (r *MechanicDynamoRepository) List(ctx context.Context) ([]entities.Mechanic, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	mechanics := make([]entities.Mechanic, 0, len(out.Items))
	for _, raw := range out.Items {
		var it mechanicItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		mechanics = append(mechanics, fromMechanicItem(it))
	}
	return mechanics, nil
}

func (r *MechanicDynamoRepository) Update(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	av, err := attributevalue.MarshalMap(toMechanicItem(m))
	if err != nil {
		return entities.Mechanic{}, err
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
			return entities.Mechanic{}, nil
		}
		return entities.Mechanic{}, err
	}
	return m, nil
}

func (r *MechanicDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toMechanicItem(m entities.Mechanic) mechanicItem {
	return mechanicItem{
		ID:           m.ID,
		RUT:          m.RUT,
		Nombre:       m.Nombre,
		Apellido:     m.Apellido,
		Email:        m.Email,
		Especialidad: m.Especialidad,
		Estado:       string(m.Estado),
		Zona:         m.Zona,
		CreatedAt:    m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMechanicItem(it mechanicItem) entities.Mechanic {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Mechanic{
		ID:           it.ID,
		RUT:          it.RUT,
		Nombre:       it.Nombre,
		Apellido:     it.Apellido,
		Email:        it.Email,
		Especialidad: it.Especialidad,
		Estado:       entities.MechanicStatus(it.Estado),
		Zona:         it.Zona,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
