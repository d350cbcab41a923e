package repository

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "counters"

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func countersTableName() string {
	return getenvDefault("COUNTERS_TABLE", defaultCountersTableName)
}

// nextSequence atomically allocates the next human-readable sequential number
// for the given counter. The counter item is created on first use starting at
// floor, so the first allocated number is floor+1. The increment happens inside
// DynamoDB, so concurrent allocations never hand out the same number.
func nextSequence(ctx context.Context, ddb *dynamodb.Client, counterID string, floor int) (int, error) {
	out, err := ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(countersTableName()),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: counterID},
		},
		UpdateExpression: aws.String("SET #v = if_not_exists(#v, :floor) + :one"),
		ExpressionAttributeNames: map[string]string{
			"#v": "current_value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":floor": &types.AttributeValueMemberN{Value: strconv.Itoa(floor)},
			":one":   &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, fmt.Errorf("allocating %s number: %w", counterID, err)
	}

	attr, ok := out.Attributes["current_value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("allocating %s number: unexpected counter attribute %T", counterID, out.Attributes["current_value"])
	}
	n, err := strconv.Atoi(attr.Value)
	if err != nil {
		return 0, fmt.Errorf("allocating %s number: %w", counterID, err)
	}
	return n, nil
}

func timeToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func stringToTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func timePtrToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return timeToString(*t)
}

func stringToTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
