package database

import (
	"context"
	"fmt"

	"portal_pedidos/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the AWS_* and DYNAMODB_ENDPOINT settings.
// Static credentials default to "local" so DynamoDB Local works without an AWS account.
func ConnectDynamoDB(ctx context.Context, conf *config.DynamoDB) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}

	var opts []func(*dynamodb.Options)
	if conf.Endpoint != "" {
		opts = append(opts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(conf.Endpoint)
		})
	}
	return dynamodb.NewFromConfig(cfg, opts...), nil
}

func NewDynamoDBConfig(ctx context.Context, conf *config.DynamoDB) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(conf.AccessKeyID, conf.SecretAccessKey, "")

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(conf.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}
