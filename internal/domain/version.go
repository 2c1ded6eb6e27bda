package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is the 1-based delivery number of a shot's output tree.
type Version int

const FirstVersion Version = 1

func (version Version) String() string {
	return fmt.Sprintf("v%03d", int(version))
}

// ParseVersion accepts "v001", "V12" or "7".
func ParseVersion(value string) (Version, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(value), "v"), "V")
	number, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse version %q: %w", value, err)
	}
	if number < int(FirstVersion) {
		return 0, fmt.Errorf("parse version %q: must be positive", value)
	}
	return Version(number), nil
}
