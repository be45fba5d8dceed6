package handler

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/nhdewitt/tiny-httpserver/internal/headers"
	"github.com/nhdewitt/tiny-httpserver/internal/httperr"
	"github.com/nhdewitt/tiny-httpserver/internal/request"
	"github.com/nhdewitt/tiny-httpserver/internal/response"
)

var ErrNotFound = errors.New("file not found")

var contentTypes = map[string]string{
	".html": "text/html",
	".htm":  "text/html",
	".css":  "text/css",
	".js":   "text/javascript",
	".json": "application/json",
}

// ContentRoot resolves request paths to files below a directory.
type ContentRoot struct {
	Dir string
}

// Lookup returns the contents and content type of the file that name
// resolves to. Names are cleaned as absolute paths before being joined to
// Dir, so ".." segments cannot climb out of it.
func (c ContentRoot) Lookup(name string) ([]byte, string, error) {
	full := filepath.Join(c.Dir, filepath.Clean("/"+name))

	info, err := os.Stat(full)
	if err != nil {
		return nil, "", httperr.New(httperr.ResolveFailure, fmt.Errorf("%w: %s", ErrNotFound, name))
	}
	if info.IsDir() {
		return nil, "", httperr.New(httperr.ResolveFailure, fmt.Errorf("%w: %s is a directory", ErrNotFound, name))
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return nil, "", httperr.New(httperr.ResolveFailure, err)
	}
	return data, contentType(full), nil
}

func contentType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return response.DefaultContentType
}

// Static serves pages from Root. "/" maps to index.html and "/health" to
// health.html; every other path names a file directly. Anything that
// cannot be resolved is answered by NotFound.
type Static struct {
	Root     ContentRoot
	NotFound Handler
}

func NewStatic(dir string) *Static {
	return &Static{
		Root:     ContentRoot{Dir: dir},
		NotFound: NotFound{},
	}
}

func (s *Static) Handle(req *request.Request) *response.Response {
	target, _, _ := strings.Cut(req.Resource.Path, "?")

	var name string
	switch target {
	case "", "/":
		name = "index.html"
	case "/health":
		name = "health.html"
	default:
		name = target
	}

	body, ct, err := s.Root.Lookup(name)
	if err != nil {
		return s.NotFound.Handle(req)
	}

	h := headers.NewFields()
	h.Set("Content-Type", ct)
	return response.New(response.StatusOK, h, body)
}
