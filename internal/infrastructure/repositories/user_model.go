package repositories

import (
	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/entities"
)

// userItem is the DynamoDB row layout: one row per user, videos embedded as a
// list attribute, queryable by the client_id index.
type userItem struct {
	ID       string      `dynamodbav:"id"`
	ClientID string      `dynamodbav:"client_id"`
	Name     string      `dynamodbav:"name"`
	Videos   []videoItem `dynamodbav:"videos"`
}

type videoItem struct {
	ID     string `dynamodbav:"id"`
	Name   string `dynamodbav:"name"`
	Status string `dynamodbav:"status"`
	URL    string `dynamodbav:"url"`
}

func userItemFromDomain(user *entities.User) userItem {
	return userItem{
		ID:       user.ID,
		ClientID: user.ClientID,
		Name:     user.Name,
		Videos:   videoItemsFromDomain(user.Videos),
	}
}

func (i userItem) toDomain() *entities.User {
	user := &entities.User{
		ID:       i.ID,
		ClientID: i.ClientID,
		Name:     i.Name,
	}
	for _, v := range i.Videos {
		user.Videos = append(user.Videos, v.toDomain())
	}
	return user
}

func videoItemFromDomain(video entities.Video) videoItem {
	return videoItem{
		ID:     video.ID,
		Name:   video.Name,
		Status: string(video.Status),
		URL:    video.URL,
	}
}

// videoItemsFromDomain never returns nil so a user without videos persists as
// an empty list, not a NULL attribute.
func videoItemsFromDomain(videos []entities.Video) []videoItem {
	items := make([]videoItem, 0, len(videos))
	for _, v := range videos {
		items = append(items, videoItemFromDomain(v))
	}
	return items
}

func (i videoItem) toDomain() entities.Video {
	return entities.Video{
		ID:     i.ID,
		Name:   i.Name,
		Status: entities.VideoStatus(i.Status),
		URL:    i.URL,
	}
}
