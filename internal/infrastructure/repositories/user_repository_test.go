package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/entities"
	apperrors "github.com/HackathonFIAPX/hackathon-fiapx-admin/pkg/errors"
)

// fakeDynamo is an in-memory stand-in for the user table. It understands the
// two update expressions the repository issues, so read-modify-write races
// can be reproduced against shared state.
type fakeDynamo struct {
	items map[string]map[string]types.AttributeValue

	// when set, Query serves this snapshot instead of live items, emulating
	// a reader that raced ahead of a concurrent writer
	stale []map[string]types.AttributeValue

	queryErr  error
	putErr    error
	updateErr error

	putCalls    int
	updateCalls int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putCalls++
	if f.putErr != nil {
		return nil, f.putErr
	}
	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if f.stale != nil {
		return &dynamodb.QueryOutput{Items: f.stale}, nil
	}
	want := in.ExpressionAttributeValues[":client_id"].(*types.AttributeValueMemberS).Value
	for _, item := range f.items {
		if clientID, ok := item["client_id"].(*types.AttributeValueMemberS); ok && clientID.Value == want {
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{item}}, nil
		}
	}
	return &dynamodb.QueryOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateCalls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}

	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	item, ok := f.items[id]
	if !ok {
		return nil, fmt.Errorf("item %s does not exist", id)
	}

	switch aws.ToString(in.UpdateExpression) {
	case "SET videos = :videos":
		item["videos"] = in.ExpressionAttributeValues[":videos"]
	case "SET videos = list_append(if_not_exists(videos, :empty), :video)":
		var existing []types.AttributeValue
		if current, ok := item["videos"].(*types.AttributeValueMemberL); ok {
			existing = current.Value
		}
		appended := in.ExpressionAttributeValues[":video"].(*types.AttributeValueMemberL).Value
		merged := append(append([]types.AttributeValue{}, existing...), appended...)
		item["videos"] = &types.AttributeValueMemberL{Value: merged}
	default:
		return nil, fmt.Errorf("unexpected update expression: %s", aws.ToString(in.UpdateExpression))
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func seedUser(t *testing.T, f *fakeDynamo, item userItem) {
	t.Helper()
	av, err := attributevalue.MarshalMap(item)
	require.NoError(t, err)
	f.items[item.ID] = av
}

func storedVideos(t *testing.T, f *fakeDynamo, id string) []videoItem {
	t.Helper()
	item, ok := f.items[id]
	require.True(t, ok, "user %s not in store", id)
	var videos []videoItem
	require.NoError(t, attributevalue.Unmarshal(item["videos"], &videos))
	return videos
}

func TestSave_NewUserGetsGeneratedID(t *testing.T) {
	fake := newFakeDynamo()
	repo := NewDynamoDBUserRepository(fake, "users")

	saved, err := repo.Save(context.Background(), entities.NewUser("client-1", "Alice"))
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "client-1", saved.ClientID)
	assert.Equal(t, 1, fake.putCalls)

	stored, ok := fake.items[saved.ID]
	require.True(t, ok)
	assert.Equal(t, "client-1", stored["client_id"].(*types.AttributeValueMemberS).Value)
}

func TestSave_ExistingClientKeepsID(t *testing.T) {
	fake := newFakeDynamo()
	repo := NewDynamoDBUserRepository(fake, "users")

	seedUser(t, fake, userItem{ID: "user-1", ClientID: "client-1", Name: "Alice", Videos: []videoItem{}})

	saved, err := repo.Save(context.Background(), entities.NewUser("client-1", "Alice Prime"))
	require.NoError(t, err)

	assert.Equal(t, "user-1", saved.ID)
	assert.Equal(t, "Alice Prime", fake.items["user-1"]["name"].(*types.AttributeValueMemberS).Value)
}

func TestFindByClientId_MissReturnsNilNil(t *testing.T) {
	fake := newFakeDynamo()
	repo := NewDynamoDBUserRepository(fake, "users")

	user, err := repo.FindByClientId(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestFindByClientId_RoundTrip(t *testing.T) {
	fake := newFakeDynamo()
	repo := NewDynamoDBUserRepository(fake, "users")

	original := entities.NewUser("client-1", "Alice")
	original.AddVideo(entities.Video{ID: "v1", Name: "v1", Status: entities.StatusUploaded, URL: "s3://bucket/v1"})

	saved, err := repo.Save(context.Background(), original)
	require.NoError(t, err)

	loaded, err := repo.FindByClientId(context.Background(), "client-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, saved.ID, loaded.ID)
	assert.Equal(t, "client-1", loaded.ClientID)
	assert.Equal(t, "Alice", loaded.Name)
	require.Len(t, loaded.Videos, 1)
	assert.Equal(t, entities.Video{ID: "v1", Name: "v1", Status: entities.StatusUploaded, URL: "s3://bucket/v1"}, loaded.Videos[0])
}

func TestFindByClientId_StoreFailureWrapsStorageError(t *testing.T) {
	fake := newFakeDynamo()
	fake.queryErr = errors.New("throttled")
	repo := NewDynamoDBUserRepository(fake, "users")

	_, err := repo.FindByClientId(context.Background(), "client-1")
	var storageErr *apperrors.StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.ErrorContains(t, storageErr.Err, "throttled")
}

func TestAddVideoToUser_UnknownClientWritesNothing(t *testing.T) {
	fake := newFakeDynamo()
	repo := NewDynamoDBUserRepository(fake, "users")

	_, err := repo.AddVideoToUser(context.Background(), "nobody", entities.NewVideo("v1"))

	var notFound *apperrors.UserNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "nobody", notFound.ClientID)
	assert.Zero(t, fake.updateCalls)
}

func TestAddVideoToUser_AppendsAndReturnsMergedView(t *testing.T) {
	fake := newFakeDynamo()
	repo := NewDynamoDBUserRepository(fake, "users")

	seedUser(t, fake, userItem{ID: "user-1", ClientID: "client-1", Name: "Alice", Videos: []videoItem{
		{ID: "v1", Name: "v1", Status: "UPLOADED", URL: ""},
	}})

	user, err := repo.AddVideoToUser(context.Background(), "client-1", entities.NewVideo("v2"))
	require.NoError(t, err)

	// the returned view is merged in memory, not re-read from the store
	require.Len(t, user.Videos, 2)
	assert.Equal(t, "v2", user.Videos[1].ID)

	videos := storedVideos(t, fake, "user-1")
	require.Len(t, videos, 2)
	assert.Equal(t, "v1", videos[0].ID)
	assert.Equal(t, "v2", videos[1].ID)
	assert.Equal(t, "UPLOAD_PENDING", videos[1].Status)
}

func TestAddVideoToUser_MissingVideosAttributeDefaultsToEmptyList(t *testing.T) {
	fake := newFakeDynamo()
	repo := NewDynamoDBUserRepository(fake, "users")

	// row without a videos attribute at all
	fake.items["user-1"] = map[string]types.AttributeValue{
		"id":        &types.AttributeValueMemberS{Value: "user-1"},
		"client_id": &types.AttributeValueMemberS{Value: "client-1"},
		"name":      &types.AttributeValueMemberS{Value: "Alice"},
	}

	_, err := repo.AddVideoToUser(context.Background(), "client-1", entities.NewVideo("v1"))
	require.NoError(t, err)

	videos := storedVideos(t, fake, "user-1")
	require.Len(t, videos, 1)
	assert.Equal(t, "v1", videos[0].ID)
}

func TestUpdateVideo_ReplacesOnlyTargetInOrder(t *testing.T) {
	fake := newFakeDynamo()
	repo := NewDynamoDBUserRepository(fake, "users")

	seedUser(t, fake, userItem{ID: "user-1", ClientID: "client-1", Name: "Alice", Videos: []videoItem{
		{ID: "a", Name: "a", Status: "UPLOAD_PENDING"},
		{ID: "b", Name: "b", Status: "UPLOAD_PENDING"},
		{ID: "c", Name: "c", Status: "UPLOAD_PENDING"},
	}})

	updated, err := repo.UpdateVideo(context.Background(), "client-1", entities.Video{
		ID: "b", Name: "b", Status: entities.StatusUploaded, URL: "s3://bucket/b",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusUploaded, updated.Status)

	videos := storedVideos(t, fake, "user-1")
	require.Len(t, videos, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{videos[0].ID, videos[1].ID, videos[2].ID})
	assert.Equal(t, "UPLOAD_PENDING", videos[0].Status)
	assert.Equal(t, "UPLOADED", videos[1].Status)
	assert.Equal(t, "UPLOAD_PENDING", videos[2].Status)
}

func TestUpdateVideo_UnknownVideoFails(t *testing.T) {
	fake := newFakeDynamo()
	repo := NewDynamoDBUserRepository(fake, "users")

	seedUser(t, fake, userItem{ID: "user-1", ClientID: "client-1", Name: "Alice", Videos: []videoItem{}})

	_, err := repo.UpdateVideo(context.Background(), "client-1", entities.NewVideo("ghost"))
	var notFound *apperrors.VideoNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Zero(t, fake.updateCalls)
}

// Two writers that read the same pre-update state overwrite each other: the
// second full-array write survives, the first one's change is lost. This is
// the documented last-write-wins behavior, pinned here on purpose.
func TestUpdateVideo_ConcurrentWritersLastWriteWins(t *testing.T) {
	fake := newFakeDynamo()
	repo := NewDynamoDBUserRepository(fake, "users")

	seedUser(t, fake, userItem{ID: "user-1", ClientID: "client-1", Name: "Alice", Videos: []videoItem{
		{ID: "a", Name: "a", Status: "UPLOAD_PENDING"},
		{ID: "b", Name: "b", Status: "UPLOAD_PENDING"},
	}})

	// freeze reads at the pre-update state for both writers
	snapshot := make(map[string]types.AttributeValue, len(fake.items["user-1"]))
	for k, v := range fake.items["user-1"] {
		snapshot[k] = v
	}
	fake.stale = []map[string]types.AttributeValue{snapshot}

	_, err := repo.UpdateVideo(context.Background(), "client-1", entities.Video{ID: "a", Name: "a", Status: entities.StatusUploaded})
	require.NoError(t, err)
	_, err = repo.UpdateVideo(context.Background(), "client-1", entities.Video{ID: "b", Name: "b", Status: entities.StatusUploaded})
	require.NoError(t, err)

	videos := storedVideos(t, fake, "user-1")
	require.Len(t, videos, 2)
	assert.Equal(t, "UPLOAD_PENDING", videos[0].Status, "the first writer's update is silently lost")
	assert.Equal(t, "UPLOADED", videos[1].Status)
}
