package repository

import (
	"context"
	"errors"
	"time"

	"payhere_service/internal/domain/entities"
	"payhere_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPayhereNotificationsTableName = "payhere_notifications"

type payhereNotificationItem struct {
	ID         string `dynamodbav:"id"`
	SessionID  string `dynamodbav:"session_id"`
	OrderID    string `dynamodbav:"order_id"`
	PaymentID  string `dynamodbav:"payment_id"`
	StatusCode string `dynamodbav:"status_code"`
	Status     string `dynamodbav:"status"`
	Amount     string `dynamodbav:"amount,omitempty"`
	Currency   string `dynamodbav:"currency,omitempty"`
	ReceivedAt string `dynamodbav:"received_at"`
	Applied    bool   `dynamodbav:"applied"`
	AppliedAt  string `dynamodbav:"applied_at,omitempty"`
}

// PayhereNotificationDynamoRepository is the log of verified gateway callbacks.
// A record left with applied=false (the session update failed) is overwritten
// by the next delivery of the same callback.
//
// Table requirements:
//   - PK: id (string, "<payment_id>#<status_code>")
type PayhereNotificationDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPayhereNotificationRepository = (*PayhereNotificationDynamoRepository)(nil)

func NewPayhereNotificationDynamoRepository(ddb DynamoDBAPI) *PayhereNotificationDynamoRepository {
	return &PayhereNotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYHERE_NOTIFICATIONS_TABLE", defaultPayhereNotificationsTableName),
	}
}

func (r *PayhereNotificationDynamoRepository) Create(ctx context.Context, n entities.PayhereNotification) (entities.PayhereNotification, error) {
	av, err := attributevalue.MarshalMap(payhereNotificationItem{
		ID:         n.ID,
		SessionID:  n.SessionID,
		OrderID:    n.OrderID,
		PaymentID:  n.PaymentID,
		StatusCode: n.StatusCode,
		Status:     string(n.Status),
		Amount:     n.Amount,
		Currency:   n.Currency,
		ReceivedAt: n.ReceivedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.PayhereNotification{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #applied = :false"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#applied": "applied",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PayhereNotification{}, interfaces.ErrNotificationAlreadyRecorded
		}
		logAPIError("put payhere notification", r.tableName, err)
		return entities.PayhereNotification{}, err
	}
	n.Applied = false
	return n, nil
}

func (r *PayhereNotificationDynamoRepository) MarkApplied(ctx context.Context, id string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #applied = :applied, #applied_at = :applied_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#applied":    "applied",
			"#applied_at": "applied_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":applied":    &types.AttributeValueMemberBOOL{Value: true},
			":applied_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		logAPIError("mark payhere notification applied", r.tableName, err)
	}
	return err
}
