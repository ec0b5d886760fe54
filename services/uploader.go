package services

import (
	"context"
	"io"
)

// Uploader is the file-storage boundary. Implementations validate the
// filename, persist the stream under a collision-resistant name and
// return a servable URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader, size int64) (string, error)
}

// Upload is an optional attachment carried in a curation request.
type Upload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}
