// Package storage persists uploaded media in object storage and hands
// back servable URLs. The rest of the application only ever sees the
// returned URL string.
package storage

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// allowedExtensions is the upload allow-list. Anything else is
// rejected before any bytes are stored.
var allowedExtensions = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"svg":  "image/svg+xml",
	"mp4":  "video/mp4",
	"webm": "video/webm",
	"pdf":  "application/pdf",
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// AllowedFile reports whether the filename carries an accepted
// extension.
func AllowedFile(filename string) bool {
	_, ok := allowedExtensions[extension(filename)]
	return ok
}

// ContentType returns the MIME type for an allowed filename, or an
// empty string for anything outside the allow-list.
func ContentType(filename string) string {
	return allowedExtensions[extension(filename)]
}

// MediaType classifies an allowed filename for ProjectMedia records.
func MediaType(filename string) string {
	switch extension(filename) {
	case "mp4", "webm":
		return "video"
	case "pdf":
		return "document"
	default:
		return "image"
	}
}

// ObjectName builds a collision-resistant object key: a fresh UUID hex
// prefix plus the sanitized original basename.
func ObjectName(filename string) string {
	base := filepath.Base(filename)
	base = unsafeChars.ReplaceAllString(base, "_")
	id := uuid.New()
	return fmt.Sprintf("%s_%s", strings.ReplaceAll(id.String(), "-", ""), base)
}

func extension(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
