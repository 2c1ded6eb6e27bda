package services

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"fstruct/internal/domain"
)

const dirMode os.FileMode = 0o755

// FSBuilder materializes shot trees on the local filesystem.
type FSBuilder struct {
	resolver Resolver
	locker   Locker
	mkdirAll func(string, os.FileMode) error
	stat     func(string) (fs.FileInfo, error)
	now      func() time.Time
}

type BuilderOption func(*FSBuilder)

func WithResolver(resolver Resolver) BuilderOption {
	return func(builder *FSBuilder) {
		if resolver != nil {
			builder.resolver = resolver
		}
	}
}

func WithLocker(locker Locker) BuilderOption {
	return func(builder *FSBuilder) {
		if locker != nil {
			builder.locker = locker
		}
	}
}

func NewFSBuilder(opts ...BuilderOption) *FSBuilder {
	builder := &FSBuilder{
		resolver: NewFSResolver(0),
		locker:   NoopLocker{},
		mkdirAll: os.MkdirAll,
		stat:     os.Stat,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder
}

// CreateShotTree creates in/ and mid/, then out/, then resolves the next
// version and creates the versioned output tree. The first failure aborts
// the call; directories created before it are left in place.
//
// Without a real Locker two concurrent callers may resolve the same version
// and both succeed against the same directory.
func (builder *FSBuilder) CreateShotTree(ctx context.Context, req CreateRequest) (CreateResult, error) {
	start := builder.now()
	identity := req.Identity

	shotRoot, err := filepath.Abs(domain.ShotRoot(req.BasePath, identity))
	if err != nil {
		return CreateResult{}, &domain.FilesystemError{Op: "resolve", Path: req.BasePath, Err: err}
	}
	result := CreateResult{
		ShotRoot:   shotRoot,
		OutputRoot: domain.OutputRoot(shotRoot),
	}

	if err := builder.ensureAll(&result, domain.BaseSpec(identity).Under(shotRoot)); err != nil {
		return result, err
	}
	if err := builder.ensureAll(&result, []string{result.OutputRoot}); err != nil {
		return result, err
	}

	unlock, err := builder.locker.Lock(ctx, result.OutputRoot)
	if err != nil {
		return result, err
	}
	defer func() {
		_ = unlock()
	}()

	version, err := builder.resolver.ResolveNextVersion(result.OutputRoot, identity.Shot)
	if err != nil {
		return result, err
	}
	result.Version = version
	result.VersionPath = filepath.Join(result.OutputRoot, domain.VersionDirName(identity.Shot, version))

	if err := builder.ensureAll(&result, domain.OutputSpec(identity, version).Under(shotRoot)); err != nil {
		return result, err
	}
	result.Duration = builder.now().Sub(start)
	return result, nil
}

func (builder *FSBuilder) ensureAll(result *CreateResult, paths []string) error {
	for _, path := range paths {
		created, err := builder.ensureDir(path)
		if err != nil {
			return err
		}
		if created {
			result.Created = append(result.Created, path)
		}
	}
	return nil
}

func (builder *FSBuilder) ensureDir(path string) (bool, error) {
	info, err := builder.stat(path)
	if err == nil && info.IsDir() {
		return false, nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, &domain.FilesystemError{Op: "create directory", Path: path, Err: err}
	}
	if err := builder.mkdirAll(path, dirMode); err != nil {
		return false, &domain.FilesystemError{Op: "create directory", Path: path, Err: err}
	}
	return true, nil
}
