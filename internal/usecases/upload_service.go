package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/dto"
	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/entities"
	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/repositories"
	apperrors "github.com/HackathonFIAPX/hackathon-fiapx-admin/pkg/errors"
)

const uploadTypeVideo = "video"

type UploadService interface {
	GetPresignedURL(ctx context.Context, clientID string, req *dto.PresignedURLRequestDTO) (*dto.PresignedURLResponseDTO, error)
}

type uploadService struct {
	userRepo    repositories.UserRepository
	presigner   repositories.Presigner
	maxFileSize int64
	urlExpiry   time.Duration
}

func NewUploadService(userRepo repositories.UserRepository, presigner repositories.Presigner, maxFileSize int64, urlExpiry time.Duration) UploadService {
	return &uploadService{
		userRepo:    userRepo,
		presigner:   presigner,
		maxFileSize: maxFileSize,
		urlExpiry:   urlExpiry,
	}
}

// GetPresignedURL reserves an upload slot: it signs a PUT URL and registers
// the video on the user in UPLOAD_PENDING. The video id doubles as the file
// name, so the S3 key stays derivable from the id.
func (s *uploadService) GetPresignedURL(ctx context.Context, clientID string, req *dto.PresignedURLRequestDTO) (*dto.PresignedURLResponseDTO, error) {
	if req.FileType != "mp4" {
		return nil, &apperrors.ValidationError{Message: fmt.Sprintf("unsupported file type: %s", req.FileType)}
	}
	if req.ContentLength <= 0 {
		return nil, &apperrors.ValidationError{Message: "content_length must be positive"}
	}
	if req.ContentLength > s.maxFileSize {
		return nil, &apperrors.ValidationError{
			Message: fmt.Sprintf("file size exceeds the maximum limit of %d MB", s.maxFileSize/(1024*1024)),
		}
	}

	videoID := uuid.NewString()

	presigned, err := s.presigner.PresignedUploadURL(ctx, repositories.UploadParams{
		UploadType:    uploadTypeVideo,
		FileName:      videoID,
		FileType:      req.FileType,
		ContentLength: req.ContentLength,
		ExpiresIn:     s.urlExpiry,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.AddVideoToUser(ctx, clientID, entities.NewVideo(videoID)); err != nil {
		return nil, err
	}

	return &dto.PresignedURLResponseDTO{
		URL:     presigned.URL,
		Key:     presigned.Key,
		VideoID: videoID,
	}, nil
}
