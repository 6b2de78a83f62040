package usecases

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/entities"
	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/repositories"
	apperrors "github.com/HackathonFIAPX/hackathon-fiapx-admin/pkg/errors"
)

// MessageTypeUpdateOrder mirrors the wire constant the processing worker
// expects on the queue.
const MessageTypeUpdateOrder = "proccess.update.order"

type VideoService interface {
	List(ctx context.Context, clientID string) ([]entities.Video, error)
	UpdateStatus(ctx context.Context, clientID, videoID string, status entities.VideoStatus) (*entities.Video, error)
	ZipDownloadURL(ctx context.Context, clientID, videoID string) (string, error)
}

type videoService struct {
	userRepo  repositories.UserRepository
	presigner repositories.Presigner
	publisher repositories.MessagePublisher
	urlExpiry time.Duration
	logger    *zap.Logger
}

func NewVideoService(
	userRepo repositories.UserRepository,
	presigner repositories.Presigner,
	publisher repositories.MessagePublisher,
	urlExpiry time.Duration,
	logger *zap.Logger,
) VideoService {
	return &videoService{
		userRepo:  userRepo,
		presigner: presigner,
		publisher: publisher,
		urlExpiry: urlExpiry,
		logger:    logger,
	}
}

func (s *videoService) List(ctx context.Context, clientID string) ([]entities.Video, error) {
	user, err := s.userRepo.FindByClientId(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &apperrors.UserNotFoundError{ClientID: clientID}
	}

	if user.Videos == nil {
		return []entities.Video{}, nil
	}
	return user.Videos, nil
}

// UpdateStatus runs the status transition through the state machine and
// persists the result. A video that just became UPLOADED is announced on the
// processing queue; a failed publish is logged but does not undo the update.
func (s *videoService) UpdateStatus(ctx context.Context, clientID, videoID string, status entities.VideoStatus) (*entities.Video, error) {
	if !status.IsValid() {
		return nil, &apperrors.ValidationError{Message: fmt.Sprintf("unknown status: %s", status)}
	}

	user, err := s.userRepo.FindByClientId(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &apperrors.UserNotFoundError{ClientID: clientID}
	}

	video, err := user.FindVideo(videoID)
	if err != nil {
		return nil, err
	}

	if err := video.SetStatus(status); err != nil {
		return nil, err
	}

	updated, err := s.userRepo.UpdateVideo(ctx, clientID, *video)
	if err != nil {
		return nil, err
	}

	if status == entities.StatusUploaded {
		if err := s.publisher.Publish(ctx, MessageTypeUpdateOrder, map[string]string{
			"client_id": clientID,
			"video_id":  videoID,
		}); err != nil {
			s.logger.Error("failed to publish processing message",
				zap.String("client_id", clientID),
				zap.String("video_id", videoID),
				zap.Error(err),
			)
		}
	}

	return updated, nil
}

// ZipDownloadURL signs a GET for the processed result. The object key follows
// the worker's output layout: {clientId}/{videoId}/final_result.zip.
func (s *videoService) ZipDownloadURL(ctx context.Context, clientID, videoID string) (string, error) {
	user, err := s.userRepo.FindByClientId(ctx, clientID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", &apperrors.UserNotFoundError{ClientID: clientID}
	}

	video, err := user.FindVideo(videoID)
	if err != nil {
		return "", err
	}
	if video.Status != entities.StatusFinished {
		return "", &apperrors.ValidationError{
			Message: fmt.Sprintf("video %s is not finished yet (status: %s)", videoID, video.Status),
		}
	}

	key := fmt.Sprintf("%s/%s/final_result.zip", clientID, videoID)
	return s.presigner.PresignedDownloadURL(ctx, key, s.urlExpiry)
}
