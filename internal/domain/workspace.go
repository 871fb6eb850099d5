package domain

import (
	"regexp"
	"strings"
)

// Workspace is an isolated named partition of employees, records and
// settings. Key is the sanitized storage key derived from Name; two names
// differing only in case or spacing map to the same partition.
type Workspace struct {
	ID   string
	Name string
	Key  string
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonAlnum      = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// WorkspaceKey derives the storage key for a workspace name:
// lowercased, whitespace runs collapsed to underscores.
func WorkspaceKey(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
}

// FileSafeName derives a filename-safe workspace label for export files:
// every non-alphanumeric character becomes an underscore.
func FileSafeName(name string) string {
	return nonAlnum.ReplaceAllString(name, "_")
}
