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
	defaultPartsRequisitionsTableName = "parts_requisitions"
	partsRequisitionCounterID         = "parts_requisitions"
)

type partsRequisitionItemRecord struct {
	ID          string `dynamodbav:"id"`
	PartName    string `dynamodbav:"part_name"`
	Quantity    int    `dynamodbav:"quantity"`
	Notes       string `dynamodbav:"notes,omitempty"`
	TriageNotes string `dynamodbav:"triage_notes,omitempty"`
	ImageURL    string `dynamodbav:"image_url,omitempty"`
	Status      string `dynamodbav:"status"`
}

type partsRequisitionItem struct {
	ID             string                       `dynamodbav:"id"`
	Number         int                          `dynamodbav:"number"`
	ServiceOrderID string                       `dynamodbav:"service_order_id"`
	TechnicianID   string                       `dynamodbav:"technician_id,omitempty"`
	Status         string                       `dynamodbav:"status"`
	Items          []partsRequisitionItemRecord `dynamodbav:"items"`
	GeneralNotes   string                       `dynamodbav:"general_notes,omitempty"`
	Version        int64                        `dynamodbav:"version"`
	CreatedAt      string                       `dynamodbav:"created_at"`
	UpdatedAt      string                       `dynamodbav:"updated_at"`
}

// PartsRequisitionDynamoRepository persists PartsRequisition aggregates in
// DynamoDB. The whole aggregate (requisition plus its line items) lives in a
// single item, so a conditional put on the version attribute is enough to make
// item triage transactional.
type PartsRequisitionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPartsRequisitionRepository = (*PartsRequisitionDynamoRepository)(nil)

func NewPartsRequisitionDynamoRepository(ddb *dynamodb.Client) *PartsRequisitionDynamoRepository {
	return &PartsRequisitionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARTS_REQUISITIONS_TABLE", defaultPartsRequisitionsTableName),
	}
}

func (r *PartsRequisitionDynamoRepository) Create(ctx context.Context, req entities.PartsRequisition) (entities.PartsRequisition, error) {
	req.Status = entities.AggregateRequisitionStatus(req.Items)

	av, err := attributevalue.MarshalMap(toPartsRequisitionItem(req))
	if err != nil {
		return entities.PartsRequisition{}, err
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
		return entities.PartsRequisition{}, err
	}
	return req, nil
}

func (r *PartsRequisitionDynamoRepository) GetByID(ctx context.Context, id string) (entities.PartsRequisition, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PartsRequisition{}, err
	}
	if len(out.Item) == 0 {
		return entities.PartsRequisition{}, nil
	}

	var it partsRequisitionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PartsRequisition{}, err
	}
	return fromPartsRequisitionItem(it), nil
}

func (r *PartsRequisitionDynamoRepository) ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.PartsRequisition, error) {
	var reqs []entities.PartsRequisition
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#so = :so"),
			ExpressionAttributeNames: map[string]string{
				"#so": "service_order_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":so": &types.AttributeValueMemberS{Value: serviceOrderID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it partsRequisitionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			reqs = append(reqs, fromPartsRequisitionItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(reqs, func(i, j int) bool {
		return reqs[i].CreatedAt.After(reqs[j].CreatedAt)
	})
	return reqs, nil
}

// Save persists the aggregate conditionally on the version the caller read.
// The derived overall status is recomputed from the items before writing so a
// stale field on the entity can never be stored.
func (r *PartsRequisitionDynamoRepository) Save(ctx context.Context, req entities.PartsRequisition) (entities.PartsRequisition, error) {
	expected := req.Version
	req.Version = expected + 1
	req.Status = entities.AggregateRequisitionStatus(req.Items)

	av, err := attributevalue.MarshalMap(toPartsRequisitionItem(req))
	if err != nil {
		return entities.PartsRequisition{}, err
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
			return entities.PartsRequisition{}, interfaces.ErrVersionConflict
		}
		return entities.PartsRequisition{}, err
	}
	return req, nil
}

func (r *PartsRequisitionDynamoRepository) NextNumber(ctx context.Context) (int, error) {
	return nextSequence(ctx, r.ddb, partsRequisitionCounterID, 0)
}

func toPartsRequisitionItem(req entities.PartsRequisition) partsRequisitionItem {
	items := make([]partsRequisitionItemRecord, 0, len(req.Items))
	for _, li := range req.Items {
		items = append(items, partsRequisitionItemRecord{
			ID:          li.ID,
			PartName:    li.PartName,
			Quantity:    li.Quantity,
			Notes:       li.Notes,
			TriageNotes: li.TriageNotes,
			ImageURL:    li.ImageURL,
			Status:      string(li.Status),
		})
	}
	return partsRequisitionItem{
		ID:             req.ID,
		Number:         req.Number,
		ServiceOrderID: req.ServiceOrderID,
		TechnicianID:   req.TechnicianID,
		Status:         string(req.Status),
		Items:          items,
		GeneralNotes:   req.GeneralNotes,
		Version:        req.Version,
		CreatedAt:      timeToString(req.CreatedAt),
		UpdatedAt:      timeToString(req.UpdatedAt),
	}
}

func fromPartsRequisitionItem(it partsRequisitionItem) entities.PartsRequisition {
	items := make([]entities.PartsRequisitionItem, 0, len(it.Items))
	for _, rec := range it.Items {
		items = append(items, entities.PartsRequisitionItem{
			ID:          rec.ID,
			PartName:    rec.PartName,
			Quantity:    rec.Quantity,
			Notes:       rec.Notes,
			TriageNotes: rec.TriageNotes,
			ImageURL:    rec.ImageURL,
			Status:      entities.RequisitionItemStatus(rec.Status),
		})
	}
	return entities.PartsRequisition{
		ID:             it.ID,
		Number:         it.Number,
		ServiceOrderID: it.ServiceOrderID,
		TechnicianID:   it.TechnicianID,
		Status:         entities.RequisitionStatus(it.Status),
		Items:          items,
		GeneralNotes:   it.GeneralNotes,
		Version:        it.Version,
		CreatedAt:      stringToTime(it.CreatedAt),
		UpdatedAt:      stringToTime(it.UpdatedAt),
	}
}
