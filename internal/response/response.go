package response

import (
	"fmt"

	"github.com/nhdewitt/tiny-httpserver/internal/headers"
)

const (
	DefaultVersion     = "HTTP/1.1"
	DefaultContentType = "text/html"
)

// Response is built once per request, written, and dropped. A nil Body
// means the response has no body at all.
type Response struct {
	Version    string
	StatusCode StatusCode
	Reason     string
	Headers    *headers.Fields
	Body       []byte
}

// New fills in the defaults every handler relies on: HTTP/1.1, the
// standard reason phrase, a text/html Content-Type when h has none, and a
// Content-Length matching body.
func New(code StatusCode, h *headers.Fields, body []byte) *Response {
	if h == nil {
		h = headers.NewFields()
	}
	if !h.Has("Content-Type") {
		h.Set("Content-Type", DefaultContentType)
	}
	h.Set("Content-Length", fmt.Sprintf("%d", len(body)))

	return &Response{
		Version:    DefaultVersion,
		StatusCode: code,
		Reason:     code.Reason(),
		Headers:    h,
		Body:       body,
	}
}

func (r *Response) StatusLine() string {
	return fmt.Sprintf("%s %d %s", r.Version, r.StatusCode, r.Reason)
}
