package usecases

import (
	"context"

	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/entities"
	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/repositories"
	apperrors "github.com/HackathonFIAPX/hackathon-fiapx-admin/pkg/errors"
)

type UserService interface {
	Create(ctx context.Context, clientID, name string) (*entities.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

func (s *userService) Create(ctx context.Context, clientID, name string) (*entities.User, error) {
	if clientID == "" {
		return nil, &apperrors.ValidationError{Message: "client_id is required"}
	}

	existing, err := s.userRepo.FindByClientId(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &apperrors.DuplicateClientError{ClientID: clientID}
	}

	return s.userRepo.Save(ctx, entities.NewUser(clientID, name))
}
