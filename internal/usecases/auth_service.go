package usecases

import (
	"context"

	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/dto"
	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/repositories"
	apperrors "github.com/HackathonFIAPX/hackathon-fiapx-admin/pkg/errors"
)

type AuthService interface {
	SignUp(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(ctx context.Context, token string) (*dto.ValidateTokenResponseDTO, error)
}

type authService struct {
	identity repositories.IdentityProvider
	verifier repositories.TokenVerifier
}

func NewAuthService(identity repositories.IdentityProvider, verifier repositories.TokenVerifier) AuthService {
	return &authService{
		identity: identity,
		verifier: verifier,
	}
}

func (s *authService) SignUp(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return &apperrors.ValidationError{Message: "email and password are required"}
	}
	return s.identity.SignUp(ctx, email, password)
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", &apperrors.ValidationError{Message: "email and password are required"}
	}
	return s.identity.Login(ctx, email, password)
}

// ValidateToken checks an id-use token. Verifier failures come back as an
// invalid result, not an error, so the boundary can answer 200 with
// is_valid=false.
func (s *authService) ValidateToken(ctx context.Context, token string) (*dto.ValidateTokenResponseDTO, error) {
	claims, err := s.verifier.Validate(ctx, token, repositories.TokenUseID)
	if err != nil {
		return &dto.ValidateTokenResponseDTO{IsValid: false}, nil
	}

	return &dto.ValidateTokenResponseDTO{
		IsValid: true,
		Payload: claims.Raw,
	}, nil
}
