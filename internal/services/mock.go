package services

import (
	"context"
	"path/filepath"

	"fstruct/internal/domain"
)

// MockBuilder records requests and returns a canned result without touching
// the filesystem.
type MockBuilder struct {
	Err      error
	Requests []CreateRequest
	next     domain.Version
}

func NewMockBuilder() *MockBuilder {
	return &MockBuilder{next: domain.FirstVersion}
}

func (builder *MockBuilder) CreateShotTree(ctx context.Context, req CreateRequest) (CreateResult, error) {
	builder.Requests = append(builder.Requests, req)
	if builder.Err != nil {
		return CreateResult{}, builder.Err
	}
	if ctx.Err() != nil {
		return CreateResult{}, ctx.Err()
	}
	version := builder.next
	builder.next++
	shotRoot := domain.ShotRoot(req.BasePath, req.Identity)
	outputRoot := domain.OutputRoot(shotRoot)
	return CreateResult{
		ShotRoot:    shotRoot,
		OutputRoot:  outputRoot,
		VersionPath: filepath.Join(outputRoot, domain.VersionDirName(req.Identity.Shot, version)),
		Version:     version,
	}, nil
}
