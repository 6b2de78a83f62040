package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/delivery/http/middleware"
	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/dto"
	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/entities"
	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/usecases"
	apperrors "github.com/HackathonFIAPX/hackathon-fiapx-admin/pkg/errors"
)

type VideoHandler struct {
	videoService usecases.VideoService
}

func NewVideoHandler(videoService usecases.VideoService) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
	}
}

// ListVideos
//
// @Summary      List Videos
// @Description  Returns every video owned by the authenticated user
// @Tags         Videos
// @Produce      json
// @Success      200  {array}   dto.VideoResponseDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /videos [get]
func (h *VideoHandler) ListVideos(c *fiber.Ctx) error {
	clientID, _ := c.Locals(middleware.ClientIDKey).(string)
	if clientID == "" {
		return &apperrors.UnauthorizedError{}
	}

	videos, err := h.videoService.List(c.UserContext(), clientID)
	if err != nil {
		return err
	}

	response := make([]dto.VideoResponseDTO, 0, len(videos))
	for _, v := range videos {
		response = append(response, toVideoResponse(v))
	}
	return c.JSON(response)
}

// UpdateVideo
//
// @Summary      Update Video Status
// @Description  Advances the video lifecycle by one step
// @Tags         Videos
// @Accept       json
// @Produce      json
// @Param        id       path      string true "Video ID"
// @Param        request  body      dto.UpdateVideoRequestDTO true "Target status"
// @Success      200      {object}  dto.VideoResponseDTO
// @Failure      400      {object}  dto.ErrorResponse "Invalid transition"
// @Failure      404      {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /videos/{id} [patch]
func (h *VideoHandler) UpdateVideo(c *fiber.Ctx) error {
	clientID, _ := c.Locals(middleware.ClientIDKey).(string)
	if clientID == "" {
		return &apperrors.UnauthorizedError{}
	}

	req := &dto.UpdateVideoRequestDTO{}
	if err := c.BodyParser(req); err != nil {
		return &apperrors.ValidationError{Message: "invalid request body"}
	}

	video, err := h.videoService.UpdateStatus(c.UserContext(), clientID, c.Params("id"), entities.VideoStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(toVideoResponse(*video))
}

// GetZipURL
//
// @Summary      Get Zip Download URL
// @Description  Issues a presigned GET URL for the processed result archive
// @Tags         Videos
// @Produce      json
// @Param        id   path      string true "Video ID"
// @Success      200  {object}  dto.ZipDownloadResponseDTO
// @Failure      400  {object}  dto.ErrorResponse "Video not finished"
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /videos/{id}/zip [get]
func (h *VideoHandler) GetZipURL(c *fiber.Ctx) error {
	clientID, _ := c.Locals(middleware.ClientIDKey).(string)
	if clientID == "" {
		return &apperrors.UnauthorizedError{}
	}

	url, err := h.videoService.ZipDownloadURL(c.UserContext(), clientID, c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(dto.ZipDownloadResponseDTO{PresignedURL: url})
}
