package repositories

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/entities"
	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/infrastructure/db"
	apperrors "github.com/HackathonFIAPX/hackathon-fiapx-admin/pkg/errors"
)

// DynamoDBAPI is the slice of the DynamoDB client the repository uses.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// DynamoDBUserRepository persists the user aggregate as a single row. Every
// mutating operation is a read-then-write with no version guard; concurrent
// writers to the same user can lose updates (see UserRepository docs).
type DynamoDBUserRepository struct {
	client DynamoDBAPI
	table  string
}

func NewDynamoDBUserRepository(client DynamoDBAPI, table string) *DynamoDBUserRepository {
	return &DynamoDBUserRepository{
		client: client,
		table:  table,
	}
}

func (r *DynamoDBUserRepository) Save(ctx context.Context, user *entities.User) (*entities.User, error) {
	existing, err := r.FindByClientId(ctx, user.ClientID)
	if err != nil {
		return nil, err
	}

	persisted := *user
	if existing != nil {
		persisted.ID = existing.ID
	} else if persisted.ID == "" {
		persisted.ID = uuid.NewString()
	}

	item, err := attributevalue.MarshalMap(userItemFromDomain(&persisted))
	if err != nil {
		return nil, &apperrors.StorageError{Op: "save", Err: err}
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return nil, &apperrors.StorageError{Op: "save", Err: err}
	}

	return &persisted, nil
}

// FindByClientId queries the client_id index. Zero matches is a normal
// outcome and returns (nil, nil).
func (r *DynamoDBUserRepository) FindByClientId(ctx context.Context, clientID string) (*entities.User, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		IndexName:              aws.String(db.ClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :client_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":client_id": &types.AttributeValueMemberS{Value: clientID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, &apperrors.StorageError{Op: "findByClientId", Err: err}
	}

	if len(out.Items) == 0 {
		return nil, nil
	}

	var item userItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &item); err != nil {
		return nil, &apperrors.StorageError{Op: "findByClientId", Err: err}
	}

	return item.toDomain(), nil
}

// AddVideoToUser appends with a store-level list_append keyed by the user's
// id, defaulting to an empty list when the attribute is absent. The returned
// user is the in-memory view with the video appended, not a re-read.
func (r *DynamoDBUserRepository) AddVideoToUser(ctx context.Context, clientID string, video entities.Video) (*entities.User, error) {
	user, err := r.FindByClientId(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &apperrors.UserNotFoundError{ClientID: clientID}
	}

	videoAV, err := attributevalue.Marshal(videoItemFromDomain(video))
	if err != nil {
		return nil, &apperrors.StorageError{Op: "addVideoToUser", Err: err}
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: user.ID},
		},
		UpdateExpression: aws.String("SET videos = list_append(if_not_exists(videos, :empty), :video)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":video": &types.AttributeValueMemberL{Value: []types.AttributeValue{videoAV}},
		},
	})
	if err != nil {
		return nil, &apperrors.StorageError{Op: "addVideoToUser", Err: err}
	}

	user.AddVideo(video)
	return user, nil
}

// UpdateVideo writes the whole videos array back in one update. Last write
// wins under concurrent modification.
func (r *DynamoDBUserRepository) UpdateVideo(ctx context.Context, clientID string, video entities.Video) (*entities.Video, error) {
	user, err := r.FindByClientId(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &apperrors.UserNotFoundError{ClientID: clientID}
	}

	if err := user.ReplaceVideo(video); err != nil {
		return nil, err
	}

	videosAV, err := attributevalue.Marshal(videoItemsFromDomain(user.Videos))
	if err != nil {
		return nil, &apperrors.StorageError{Op: "updateVideo", Err: err}
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: user.ID},
		},
		UpdateExpression: aws.String("SET videos = :videos"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":videos": videosAV,
		},
	})
	if err != nil {
		return nil, &apperrors.StorageError{Op: "updateVideo", Err: err}
	}

	return &video, nil
}
