package request

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nhdewitt/tiny-httpserver/internal/headers"
	"github.com/nhdewitt/tiny-httpserver/internal/httperr"
)

const DefaultBufferSize = 4096

var ErrMalformedRequestLine = errors.New("malformed request line")

type Request struct {
	Method   Method
	Version  Version
	Resource Resource
	Headers  headers.Headers
	Body     string
}

// RequestFromReader performs a single read of at most bufSize bytes and
// parses whatever arrived as one complete request.
func RequestFromReader(reader io.Reader, bufSize int) (*Request, error) {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	buf := make([]byte, bufSize)

	n, err := reader.Read(buf)
	if n == 0 {
		if err == nil {
			err = io.ErrNoProgress
		}
		return nil, httperr.New(httperr.ReadFailure, err)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, httperr.New(httperr.ReadFailure, err)
	}

	return Parse(string(buf[:n]))
}

// Parse classifies each line of raw on its own: a line containing "HTTP"
// is the request line, a line with a colon is a header, a blank line is
// skipped and anything else is body text. Body lines are joined with "\n".
func Parse(raw string) (*Request, error) {
	r := &Request{
		Method:   MethodUninitialized,
		Version:  Version11,
		Resource: PathResource(""),
		Headers:  headers.NewHeaders(),
	}

	var body []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		switch {
		case strings.Contains(line, "HTTP"):
			if err := r.parseRequestLine(line); err != nil {
				return nil, err
			}
		case r.Headers.ParseLine(line):
		case line == "":
		default:
			body = append(body, line)
		}
	}
	r.Body = strings.Join(body, "\n")

	return r, nil
}

func (r *Request) parseRequestLine(line string) error {
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return httperr.New(httperr.MalformedRequest, fmt.Errorf("%w: %q", ErrMalformedRequestLine, line))
	}

	r.Method = ParseMethod(parts[0])
	r.Resource = PathResource(parts[1])
	r.Version = ParseVersion(parts[2])

	return nil
}
