package handlers

import (
	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/dto"
	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/entities"
)

func toVideoResponse(video entities.Video) dto.VideoResponseDTO {
	return dto.VideoResponseDTO{
		ID:     video.ID,
		Name:   video.Name,
		Status: string(video.Status),
		URL:    video.URL,
	}
}

func toUserResponse(user *entities.User) dto.UserResponseDTO {
	videos := make([]dto.VideoResponseDTO, 0, len(user.Videos))
	for _, v := range user.Videos {
		videos = append(videos, toVideoResponse(v))
	}
	return dto.UserResponseDTO{
		ID:       user.ID,
		ClientID: user.ClientID,
		Name:     user.Name,
		Videos:   videos,
	}
}
