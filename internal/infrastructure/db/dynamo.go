package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/pkg/config"
)

// ClientIDIndex is the GSI used for every lookup by business identity.
const ClientIDIndex = "client_id-index"

// Dynamo is the process-wide handle to the user table. It is constructed once
// at startup and shared by every repository; the surrounding process owns its
// lifecycle, repositories never reconnect or retry.
type Dynamo struct {
	Client *dynamodb.Client
	Table  string
}

func NewDynamo(ctx context.Context, awsCfg aws.Config, cfg config.DynamoDBConfig) (*Dynamo, error) {
	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	// Connectivity probe so a misconfigured store fails at startup, not on
	// the first request.
	if _, err := client.ListTables(ctx, &dynamodb.ListTablesInput{Limit: aws.Int32(1)}); err != nil {
		return nil, fmt.Errorf("dynamodb connection check failed: %w", err)
	}

	return &Dynamo{
		Client: client,
		Table:  cfg.TableName,
	}, nil
}

// EnsureTable creates the user table and its client_id index when absent and
// waits until the table is usable. Intended for local development and first
// deploys, gated behind an env flag in main.
func (d *Dynamo) EnsureTable(ctx context.Context) error {
	_, err := d.Client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(d.Table),
	})
	if err == nil {
		return nil
	}

	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to describe table %s: %w", d.Table, err)
	}

	_, err = d.Client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(d.Table),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("client_id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String(ClientIDIndex),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("client_id"), KeyType: types.KeyTypeHash},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create table %s: %w", d.Table, err)
	}

	waiter := dynamodb.NewTableExistsWaiter(d.Client)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(d.Table),
	}, 2*time.Minute); err != nil {
		return fmt.Errorf("table %s never became active: %w", d.Table, err)
	}

	return nil
}
