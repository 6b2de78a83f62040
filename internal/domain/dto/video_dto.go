package dto

type VideoResponseDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	URL    string `json:"url"`
}

type UpdateVideoRequestDTO struct {
	Status string `json:"status"`
}

type ZipDownloadResponseDTO struct {
	PresignedURL string `json:"presigned_url"`
}
