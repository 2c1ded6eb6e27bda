package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"fstruct/internal/domain"
)

const (
	lockDirName     = "locks"
	lockRetryDelay  = 50 * time.Millisecond
	lockNamePrefix  = 16
	lockFileSuffix  = ".lock"
	appCacheDirName = "fstruct"
)

var ErrLockTimeout = errors.New("timed out waiting for output lock")

// FileLocker takes an advisory flock per output root. Lock files live outside
// the shot tree, keyed by a hash of the absolute output root.
type FileLocker struct {
	dir     string
	timeout time.Duration
}

func NewFileLocker(dir string, timeout time.Duration) *FileLocker {
	return &FileLocker{dir: dir, timeout: timeout}
}

// DefaultLockDir is <user cache dir>/fstruct/locks.
func DefaultLockDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appCacheDirName, lockDirName), nil
}

func (locker *FileLocker) Path(outputRoot string) string {
	absolute, err := filepath.Abs(outputRoot)
	if err != nil {
		absolute = outputRoot
	}
	sum := sha256.Sum256([]byte(absolute))
	return filepath.Join(locker.dir, hex.EncodeToString(sum[:])[:lockNamePrefix]+lockFileSuffix)
}

func (locker *FileLocker) Lock(ctx context.Context, outputRoot string) (func() error, error) {
	if err := os.MkdirAll(locker.dir, dirMode); err != nil {
		return nil, &domain.FilesystemError{Op: "create lock directory", Path: locker.dir, Err: err}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if locker.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, locker.timeout)
		defer cancel()
	}

	path := locker.Path(outputRoot)
	lock := flock.New(path)
	ok, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, path)
		}
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLockTimeout, path)
	}
	return lock.Unlock, nil
}

type NoopLocker struct{}

func (NoopLocker) Lock(context.Context, string) (func() error, error) {
	return func() error { return nil }, nil
}
