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

const (
	defaultPaymentSessionsTableName = "payment_sessions"
	paymentSessionsCartIDIndex      = "cart_id-index"
)

type paymentSessionItem struct {
	ID         string                 `dynamodbav:"id"`
	CartID     string                 `dynamodbav:"cart_id"`
	ProviderID string                 `dynamodbav:"provider_id"`
	Amount     int64                  `dynamodbav:"amount"`
	Status     string                 `dynamodbav:"status"`
	Data       map[string]interface{} `dynamodbav:"data"`
	CreatedAt  string                 `dynamodbav:"created_at"`
	UpdatedAt  string                 `dynamodbav:"updated_at"`
}

// PaymentSessionDynamoRepository persists PaymentSession entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: cart_id-index (PK: cart_id)
type PaymentSessionDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentSessionRepository = (*PaymentSessionDynamoRepository)(nil)

func NewPaymentSessionDynamoRepository(ddb DynamoDBAPI) *PaymentSessionDynamoRepository {
	return &PaymentSessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_SESSIONS_TABLE", defaultPaymentSessionsTableName),
	}
}

func (r *PaymentSessionDynamoRepository) Save(ctx context.Context, s entities.PaymentSession) (entities.PaymentSession, error) {
	av, err := attributevalue.MarshalMap(toPaymentSessionItem(s))
	if err != nil {
		return entities.PaymentSession{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		logAPIError("put payment session", r.tableName, err)
		return entities.PaymentSession{}, err
	}
	return s, nil
}

func (r *PaymentSessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		logAPIError("get payment session", r.tableName, err)
		return entities.PaymentSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentSession{}, nil
	}
	return unmarshalPaymentSession(out.Item)
}

// GetByCartID returns the most recently updated session of the cart.
func (r *PaymentSessionDynamoRepository) GetByCartID(ctx context.Context, cartID string) (entities.PaymentSession, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentSessionsCartIDIndex),
		KeyConditionExpression: aws.String("cart_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: cartID},
		},
	})
	if err != nil {
		logAPIError("query payment session by cart", r.tableName, err)
		return entities.PaymentSession{}, err
	}

	var latest entities.PaymentSession
	for _, raw := range out.Items {
		s, err := unmarshalPaymentSession(raw)
		if err != nil {
			return entities.PaymentSession{}, err
		}
		if latest.ID == "" || s.UpdatedAt.After(latest.UpdatedAt) {
			latest = s
		}
	}
	return latest, nil
}

func (r *PaymentSessionDynamoRepository) UpdateData(ctx context.Context, id string, status entities.PaymentSessionStatus, data entities.SessionData) (entities.PaymentSession, error) {
	dataAV, err := attributevalue.Marshal(map[string]interface{}(data.Clone()))
	if err != nil {
		return entities.PaymentSession{}, err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #data = :data, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":data":       dataAV,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#data":       "data",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentSession{}, nil
		}
		logAPIError("update payment session", r.tableName, err)
		return entities.PaymentSession{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentSession{}, nil
	}
	return unmarshalPaymentSession(out.Attributes)
}

// UpdateStatusByCartID stores payment_id and status in the data of the cart's
// session and moves the session to status.
func (r *PaymentSessionDynamoRepository) UpdateStatusByCartID(ctx context.Context, cartID, paymentID string, status entities.PaymentSessionStatus) (entities.PaymentSession, error) {
	session, err := r.GetByCartID(ctx, cartID)
	if err != nil {
		return entities.PaymentSession{}, err
	}
	if session.ID == "" {
		return entities.PaymentSession{}, nil
	}

	data := session.Data.Clone()
	data["payment_id"] = paymentID
	data["status"] = string(status)
	return r.UpdateData(ctx, session.ID, status, data)
}

func unmarshalPaymentSession(raw map[string]types.AttributeValue) (entities.PaymentSession, error) {
	var it paymentSessionItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.PaymentSession{}, err
	}
	return fromPaymentSessionItem(it), nil
}

func toPaymentSessionItem(s entities.PaymentSession) paymentSessionItem {
	return paymentSessionItem{
		ID:         s.ID,
		CartID:     s.CartID,
		ProviderID: s.ProviderID,
		Amount:     s.Amount,
		Status:     string(s.Status),
		Data:       s.Data.Clone(),
		CreatedAt:  s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentSessionItem(it paymentSessionItem) entities.PaymentSession {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PaymentSession{
		ID:         it.ID,
		CartID:     it.CartID,
		ProviderID: it.ProviderID,
		Amount:     it.Amount,
		Status:     entities.PaymentSessionStatus(it.Status),
		Data:       entities.SessionData(it.Data).Clone(),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
