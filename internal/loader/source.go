package loader

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/conn-castle/pricebook/internal/messages"
)

// Source retrieves a named document.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
	// Location describes where documents are read from, for diagnostics.
	Location() string
}

// DirSource reads documents from a directory.
type DirSource struct {
	fsys fs.FS
	dir  string
}

// NewDirSource returns a Source reading from dir on the local filesystem.
func NewDirSource(dir string) *DirSource {
	return &DirSource{fsys: os.DirFS(dir), dir: dir}
}

// NewFSSource returns a Source reading from fsys. dir is used only in messages.
func NewFSSource(fsys fs.FS, dir string) *DirSource {
	return &DirSource{fsys: fsys, dir: dir}
}

// Fetch reads name from the directory.
func (s *DirSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf(messages.LoaderReadFileFmt, name, s.dir, err)
	}
	return data, nil
}

// Location returns the directory path.
func (s *DirSource) Location() string {
	return s.dir
}

// HTTPSource fetches documents relative to a base URL.
// Requests are never retried.
type HTTPSource struct {
	client  *resty.Client
	baseURL string
}

// NewHTTPSource returns a Source that GETs documents under baseURL.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "text/html").
		SetHeader("User-Agent", "pricebook").
		SetRetryCount(0)
	return &HTTPSource{client: client, baseURL: baseURL}
}

// Fetch downloads name. Any non-2xx status is an error.
func (s *HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	resp, err := s.client.R().SetContext(ctx).Get(name)
	if err != nil {
		return nil, fmt.Errorf(messages.LoaderFetchFmt, name, s.baseURL, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf(messages.LoaderFetchStatusFmt, name, s.baseURL, resp.Status())
	}
	return resp.Body(), nil
}

// Location returns the base URL.
func (s *HTTPSource) Location() string {
	return s.baseURL
}
