package entities

import (
	apperrors "github.com/HackathonFIAPX/hackathon-fiapx-admin/pkg/errors"
)

type VideoStatus string

const (
	StatusUploadPending   VideoStatus = "UPLOAD_PENDING"
	StatusUploaded        VideoStatus = "UPLOADED"
	StatusConvertingToFPS VideoStatus = "CONVERTING_TO_FPS"
	StatusFinished        VideoStatus = "FINISHED"
)

// IsValid reports whether s is one of the known lifecycle statuses.
func (s VideoStatus) IsValid() bool {
	switch s {
	case StatusUploadPending, StatusUploaded, StatusConvertingToFPS, StatusFinished:
		return true
	}
	return false
}

// successor returns the single allowed next status. The lifecycle is a linear
// chain, so every status has at most one outgoing transition and FINISHED has
// none.
func (s VideoStatus) successor() (VideoStatus, bool) {
	switch s {
	case StatusUploadPending:
		return StatusUploaded, true
	case StatusUploaded:
		return StatusConvertingToFPS, true
	case StatusConvertingToFPS:
		return StatusFinished, true
	default:
		return "", false
	}
}

type Video struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Status VideoStatus `json:"status"`
	URL    string      `json:"url"`
}

// NewVideo creates a video waiting for its upload. The name defaults to the
// id and the url stays empty until the file lands in storage.
func NewVideo(id string) Video {
	return Video{
		ID:     id,
		Name:   id,
		Status: StatusUploadPending,
		URL:    "",
	}
}

// SetStatus advances the video lifecycle. The target must be the exact
// successor of the current status; self-transitions and backward moves fail,
// and FINISHED accepts nothing. No I/O happens here, persisting the change is
// the caller's job.
func (v *Video) SetStatus(target VideoStatus) error {
	next, ok := v.Status.successor()
	if !ok || next != target {
		return &apperrors.InvalidTransitionError{
			From: string(v.Status),
			To:   string(target),
		}
	}
	v.Status = target
	return nil
}
