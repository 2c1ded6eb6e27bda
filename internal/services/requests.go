package services

import (
	"strings"

	"fstruct/internal/domain"
)

type CreateRequest struct {
	BasePath string
	Identity domain.ShotIdentity
}

func NewCreateRequest(basePath, show, shot, artist string) CreateRequest {
	return CreateRequest{
		BasePath: basePath,
		Identity: domain.NewShotIdentity(show, shot, artist),
	}
}

// Missing lists required fields that are empty, base path first.
func (req CreateRequest) Missing() []string {
	missing := []string{}
	if isBlank(req.BasePath) {
		missing = append(missing, domain.FieldBasePath)
	}
	return append(missing, req.Identity.Missing()...)
}

// Validate is for callers; CreateShotTree does not call it.
func (req CreateRequest) Validate() error {
	if missing := req.Missing(); len(missing) > 0 {
		return &domain.ValidationError{Fields: missing}
	}
	return nil
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
