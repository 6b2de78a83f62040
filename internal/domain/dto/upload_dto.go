package dto

type PresignedURLRequestDTO struct {
	FileType      string `json:"file_type"`
	ContentLength int64  `json:"content_length"`
}

type PresignedURLResponseDTO struct {
	URL     string `json:"url"`
	Key     string `json:"key"`
	VideoID string `json:"video_id"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
