package services

import (
	"context"

	"fstruct/internal/domain"
)

type Builder interface {
	CreateShotTree(ctx context.Context, req CreateRequest) (CreateResult, error)
}

type Resolver interface {
	ResolveNextVersion(outputRoot, shot string) (domain.Version, error)
}

// Locker serializes resolve+create for one output root. The returned func
// releases the lock.
type Locker interface {
	Lock(ctx context.Context, outputRoot string) (func() error, error)
}
