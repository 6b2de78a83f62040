package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/dto"
	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/usecases"
	apperrors "github.com/HackathonFIAPX/hackathon-fiapx-admin/pkg/errors"
)

type UserHandler struct {
	userService usecases.UserService
	authService usecases.AuthService
}

func NewUserHandler(userService usecases.UserService, authService usecases.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

// CreateUser
//
// @Summary      Create User
// @Description  Registers a new user for the given client identity
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateUserRequestDTO true "User data"
// @Success      201      {object}  dto.UserResponseDTO
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse "clientId already in use"
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	req := &dto.CreateUserRequestDTO{}
	if err := c.BodyParser(req); err != nil {
		return &apperrors.ValidationError{Message: "invalid request body"}
	}

	user, err := h.userService.Create(c.UserContext(), req.ClientID, req.Name)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toUserResponse(user))
}

// SignUp
//
// @Summary      Sign Up
// @Description  Creates a Cognito account with a permanent password
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SignUpRequestDTO true "Credentials"
// @Success      201      {string}  string "Created"
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /users/signup [post]
func (h *UserHandler) SignUp(c *fiber.Ctx) error {
	req := &dto.SignUpRequestDTO{}
	if err := c.BodyParser(req); err != nil {
		return &apperrors.ValidationError{Message: "invalid request body"}
	}

	if err := h.authService.SignUp(c.UserContext(), req.Email, req.Password); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusCreated)
}

// Login
//
// @Summary      Login
// @Description  Exchanges credentials for a Cognito access token
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request  body      dto.LoginRequestDTO true "Credentials"
// @Success      200      {object}  dto.LoginResponseDTO
// @Failure      401      {object}  dto.ErrorResponse
// @Router       /users/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	req := &dto.LoginRequestDTO{}
	if err := c.BodyParser(req); err != nil {
		return &apperrors.ValidationError{Message: "invalid request body"}
	}

	token, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponseDTO{AccessToken: token})
}

// ValidateToken
//
// @Summary      Validate Token
// @Description  Verifies an id token and returns its claims
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ValidateTokenRequestDTO true "Token"
// @Success      200      {object}  dto.ValidateTokenResponseDTO
// @Router       /users/token/validate [post]
func (h *UserHandler) ValidateToken(c *fiber.Ctx) error {
	req := &dto.ValidateTokenRequestDTO{}
	if err := c.BodyParser(req); err != nil {
		return &apperrors.ValidationError{Message: "invalid request body"}
	}

	result, err := h.authService.ValidateToken(c.UserContext(), req.Token)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
