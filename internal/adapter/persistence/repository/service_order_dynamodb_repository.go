package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"manutencao_xpto/internal/domain/entities"
	"manutencao_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceOrdersTableName = "service_orders"
	serviceOrderCounterID         = "service_orders"
)

type serviceOrderItem struct {
	ID     string `dynamodbav:"id"`
	Number int    `dynamodbav:"number"`
	Phase  string `dynamodbav:"phase"`

	CustomerID   string `dynamodbav:"customer_id"`
	EquipmentID  string `dynamodbav:"equipment_id"`
	TechnicianID string `dynamodbav:"technician_id,omitempty"`
	VehicleID    string `dynamodbav:"vehicle_id,omitempty"`

	StartDate string `dynamodbav:"start_date,omitempty"`
	EndDate   string `dynamodbav:"end_date,omitempty"`

	Description         string `dynamodbav:"description,omitempty"`
	Notes               string `dynamodbav:"notes,omitempty"`
	TechnicalConclusion string `dynamodbav:"technical_conclusion,omitempty"`

	EstimatedTravelDistanceKm *float64 `dynamodbav:"estimated_travel_distance_km,omitempty"`
	EstimatedTollCosts        *float64 `dynamodbav:"estimated_toll_costs,omitempty"`
	EstimatedTravelCost       *float64 `dynamodbav:"estimated_travel_cost,omitempty"`

	AttachmentURLs []string `dynamodbav:"attachment_urls,omitempty"`

	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every mutation of an existing order goes through Save, a conditional put
// guarded by the version attribute the caller read. There is no blind
// UpdateItem path for phase or fields, so concurrent edits conflict instead of
// overwriting each other.

type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
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
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	var orders []entities.ServiceOrder
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it serviceOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromServiceOrderItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	// Newest first, matching the screens that render the fleet backlog.
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// Save writes the full order snapshot conditionally on the version the caller
// read, bumping it by one. A lost race surfaces as ErrVersionConflict so the
// caller can re-read and retry.
func (r *ServiceOrderDynamoRepository) Save(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	expected := o.Version
	o.Version = expected + 1

	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, interfaces.ErrVersionConflict
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ServiceOrderDynamoRepository) NextNumber(ctx context.Context) (int, error) {
	return nextSequence(ctx, r.ddb, serviceOrderCounterID, entities.ServiceOrderNumberFloor)
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	return serviceOrderItem{
		ID:           o.ID,
		Number:       o.Number,
		Phase:        string(o.Phase),
		CustomerID:   o.CustomerID,
		EquipmentID:  o.EquipmentID,
		TechnicianID: o.TechnicianID,
		VehicleID:    o.VehicleID,
		StartDate:    timePtrToString(o.StartDate),
		EndDate:      timePtrToString(o.EndDate),

		Description:         o.Description,
		Notes:               o.Notes,
		TechnicalConclusion: o.TechnicalConclusion,

		EstimatedTravelDistanceKm: o.EstimatedTravelDistanceKm,
		EstimatedTollCosts:        o.EstimatedTollCosts,
		EstimatedTravelCost:       o.EstimatedTravelCost,

		AttachmentURLs: o.AttachmentURLs,

		Version:   o.Version,
		CreatedAt: timeToString(o.CreatedAt),
		UpdatedAt: timeToString(o.UpdatedAt),
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:           it.ID,
		Number:       it.Number,
		Phase:        entities.ServiceOrderPhase(it.Phase),
		CustomerID:   it.CustomerID,
		EquipmentID:  it.EquipmentID,
		TechnicianID: it.TechnicianID,
		VehicleID:    it.VehicleID,
		StartDate:    stringToTimePtr(it.StartDate),
		EndDate:      stringToTimePtr(it.EndDate),

		Description:         it.Description,
		Notes:               it.Notes,
		TechnicalConclusion: it.TechnicalConclusion,

		EstimatedTravelDistanceKm: it.EstimatedTravelDistanceKm,
		EstimatedTollCosts:        it.EstimatedTollCosts,
		EstimatedTravelCost:       it.EstimatedTravelCost,

		AttachmentURLs: it.AttachmentURLs,

		Version:   it.Version,
		CreatedAt: stringToTime(it.CreatedAt),
		UpdatedAt: stringToTime(it.UpdatedAt),
	}
}
