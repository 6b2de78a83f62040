package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/delivery/http/middleware"
	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/dto"
	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/usecases"
	apperrors "github.com/HackathonFIAPX/hackathon-fiapx-admin/pkg/errors"
)

type UploadHandler struct {
	uploadService usecases.UploadService
}

func NewUploadHandler(uploadService usecases.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// GetPresignedURL
//
// @Summary      Get Presigned Upload URL
// @Description  Issues a presigned PUT URL and registers the pending video
// @Tags         Upload
// @Accept       json
// @Produce      json
// @Param        request  body      dto.PresignedURLRequestDTO true "Upload metadata"
// @Success      200      {object}  dto.PresignedURLResponseDTO
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /upload/presigned-url [post]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	req := &dto.PresignedURLRequestDTO{}
	if err := c.BodyParser(req); err != nil {
		return &apperrors.ValidationError{Message: "invalid request body"}
	}

	clientID, _ := c.Locals(middleware.ClientIDKey).(string)
	if clientID == "" {
		return &apperrors.UnauthorizedError{}
	}

	response, err := h.uploadService.GetPresignedURL(c.UserContext(), clientID, req)
	if err != nil {
		return err
	}

	return c.JSON(response)
}
