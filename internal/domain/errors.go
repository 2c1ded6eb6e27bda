package domain

import (
	"errors"
	"fmt"
	"strings"
)

const (
	FieldBasePath = "Base Path"
	FieldShow     = "Show"
	FieldShot     = "Shot"
	FieldArtist   = "Artist"
)

// ValidationError reports required fields left empty. Callers raise it before
// invoking the builder; the builder never does.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing info: please fill %s", joinFields(e.Fields))
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// FilesystemError wraps the platform error behind a failed directory creation
// or existence check.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

func IsFilesystem(err error) bool {
	var target *FilesystemError
	return errors.As(err, &target)
}

func joinFields(fields []string) string {
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return fields[0]
	default:
		return strings.Join(fields[:len(fields)-1], ", ") + " and " + fields[len(fields)-1]
	}
}
