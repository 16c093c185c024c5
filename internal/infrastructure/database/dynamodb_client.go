package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBSettings is the connection setup read from the environment.
//
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000 for dynamodb-local)
type DynamoDBSettings struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

func DynamoDBSettingsFromEnv() DynamoDBSettings {
	return DynamoDBSettings{
		Region:          getenvDefault("AWS_REGION", "us-east-1"),
		AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
	}
}

// ConnectDynamoDB builds the client used by the session store and the
// notification log. It exits the process when the AWS config cannot load.
func ConnectDynamoDB() *dynamodb.Client {
	s := DynamoDBSettingsFromEnv()
	cfg, err := NewDynamoDBConfig(context.Background(), s)
	if err != nil {
		log.Fatalf("[dynamodb] failed to load aws config: %v", err)
	}
	log.Printf("[dynamodb] client ready region=%s endpoint=%q", s.Region, s.Endpoint)
	return dynamodb.NewFromConfig(cfg, ClientOptions(s)...)
}

func NewDynamoDBConfig(ctx context.Context, s DynamoDBSettings) (aws.Config, error) {
	// dynamodb-local ignores credentials but the SDK still signs requests.
	creds := credentials.NewStaticCredentialsProvider(s.AccessKeyID, s.SecretAccessKey, "")
	return config.LoadDefaultConfig(ctx,
		config.WithRegion(s.Region),
		config.WithCredentialsProvider(creds),
	)
}

// ClientOptions points the client at a custom endpoint when one is set.
func ClientOptions(s DynamoDBSettings) []func(*dynamodb.Options) {
	if s.Endpoint == "" {
		return nil
	}
	return []func(*dynamodb.Options){
		func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(s.Endpoint)
		},
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
