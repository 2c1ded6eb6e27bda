package ui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// completePath extends a base path to the longest common prefix of the
// directories that match it and returns those directories. A leading ~ is
// resolved against the home directory. Hidden directories are only offered
// when the typed name starts with a dot.
func completePath(input string) (string, []string) {
	typed := strings.TrimSpace(input)
	if typed == "" {
		return typed, nil
	}
	typed = expandHome(typed)

	parent, partial := splitPartial(typed)
	listing := parent
	if listing == "" {
		listing = "."
	}
	entries, err := os.ReadDir(listing)
	if err != nil {
		return input, nil
	}

	showHidden := strings.HasPrefix(partial, ".")
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || !strings.HasPrefix(name, partial) {
			continue
		}
		if strings.HasPrefix(name, ".") && !showHidden {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return input, nil
	}
	sort.Strings(names)

	completed := joinParent(parent, commonPrefix(names))
	if len(names) == 1 {
		completed += string(filepath.Separator)
	}
	candidates := make([]string, len(names))
	for i, name := range names {
		candidates[i] = joinParent(parent, name)
	}
	return completed, candidates
}

// splitPartial separates the directory to list from the name being typed.
// A trailing separator means the whole input is the directory.
func splitPartial(path string) (string, string) {
	if strings.HasSuffix(path, string(filepath.Separator)) {
		return path, ""
	}
	parent := filepath.Dir(path)
	if parent == "." {
		parent = ""
	}
	return parent, filepath.Base(path)
}

func joinParent(parent, name string) string {
	if parent == "" {
		return name
	}
	return filepath.Join(parent, name)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func commonPrefix(values []string) string {
	if len(values) == 0 {
		return ""
	}
	prefix := values[0]
	for _, value := range values[1:] {
		for prefix != "" && !strings.HasPrefix(value, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
