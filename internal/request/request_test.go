package request

import (
	"errors"
	"io"
	"testing"

	"github.com/nhdewitt/tiny-httpserver/internal/httperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chunkReader struct {
	data            string
	numBytesPerRead int
	pos             int
}

// Read reads up to len(p) or numBytesPerRead bytes from the string per call
// its useful for simulating reading a variable number of bytes per chunk from a network connection
func (cr *chunkReader) Read(p []byte) (n int, err error) {
	if cr.pos >= len(cr.data) {
		return 0, io.EOF
	}
	endIndex := cr.pos + cr.numBytesPerRead
	if endIndex > len(cr.data) {
		endIndex = len(cr.data)
	}
	n = copy(p, cr.data[cr.pos:endIndex])
	cr.pos += n

	return n, nil
}

func TestMethodAndVersionMapping(t *testing.T) {
	assert.Equal(t, MethodGet, ParseMethod("GET"))
	assert.Equal(t, MethodPost, ParseMethod("POST"))
	for _, tok := range []string{"get", "PUT", "DELETE", "", "GETX"} {
		assert.Equal(t, MethodUninitialized, ParseMethod(tok), tok)
	}

	assert.Equal(t, Version11, ParseVersion("HTTP/1.1"))
	for _, tok := range []string{"HTTP/2.0", "HTTP/1.0", "http/1.1", "1.1", ""} {
		assert.Equal(t, VersionUninitialized, ParseVersion(tok), tok)
	}

	assert.Equal(t, "GET", MethodGet.String())
	assert.Equal(t, "HTTP/1.1", Version11.String())
	assert.Equal(t, "HTTP/2.0", Version20.String())
	assert.Equal(t, "UNINITIALIZED", MethodUninitialized.String())
}

func TestParseGreeting(t *testing.T) {
	r, err := Parse("GET /greeting HTTP/1.1\r\nHOST: localhost\r\nAccept: */*\r\nUser-Agent: Mobile/Iphone")
	require.NoError(t, err)
	require.NotNil(t, r)

	assert.Equal(t, MethodGet, r.Method)
	assert.Equal(t, Version11, r.Version)
	assert.Equal(t, PathResource("/greeting"), r.Resource)
	assert.Equal(t, map[string]string{
		"HOST":       " localhost",
		"Accept":     " */*",
		"User-Agent": " Mobile/Iphone",
	}, map[string]string(r.Headers))
	assert.Equal(t, "", r.Body)
}

func TestRequestLineParse(t *testing.T) {
	cases := []struct {
		data       string
		wantMethod Method
		wantTarget string
		wantVer    Version
	}{
		{"GET / HTTP/1.1\r\nHost: x\r\n\r\n", MethodGet, "/", Version11},
		{"GET /coffee HTTP/1.1\r\nHost: x\r\n\r\n", MethodGet, "/coffee", Version11},
		{"POST /api/orders HTTP/1.1\nHost: x\n\n", MethodPost, "/api/orders", Version11},
		{"PUT /coffee HTTP/1.1\r\n\r\n", MethodUninitialized, "/coffee", Version11},
		{"GET /coffee HTTP/3.0\r\n\r\n", MethodGet, "/coffee", VersionUninitialized},
		{"GET /search?q=go HTTP/1.1\r\n\r\n", MethodGet, "/search?q=go", Version11},
		{"GET   /spaced\tHTTP/1.1 extra\r\n\r\n", MethodGet, "/spaced", Version11},
	}
	for _, c := range cases {
		r, err := Parse(c.data)
		require.NoError(t, err, c.data)
		assert.Equal(t, c.wantMethod, r.Method, c.data)
		assert.Equal(t, c.wantTarget, r.Resource.Path, c.data)
		assert.Equal(t, c.wantVer, r.Version, c.data)
	}
}

func TestParseDefaults(t *testing.T) {
	// No request line at all
	r, err := Parse("Host: x\r\n\r\n")
	require.NoError(t, err)
	assert.Equal(t, MethodUninitialized, r.Method)
	assert.Equal(t, Version11, r.Version)
	assert.Equal(t, "", r.Resource.Path)
	assert.Equal(t, " x", r.Headers["Host"])

	r, err = Parse("")
	require.NoError(t, err)
	assert.Empty(t, r.Headers)
	assert.Equal(t, "", r.Body)
}

func TestParseHeadersLastWins(t *testing.T) {
	r, err := Parse("GET / HTTP/1.1\r\nA: 1\r\nA: 2\r\n\r\n")
	require.NoError(t, err)
	assert.Equal(t, " 2", r.Headers["A"])
	assert.Len(t, r.Headers, 1)
}

func TestParseBody(t *testing.T) {
	// Test: single body line after the blank separator
	r, err := Parse("POST /submit HTTP/1.1\r\nHost: x\r\n\r\nhello world")
	require.NoError(t, err)
	assert.Equal(t, "hello world", r.Body)

	// Test: multiple body lines are joined in order
	r, err = Parse("POST /submit HTTP/1.1\r\n\r\nfirst\r\nsecond\r\n\r\nthird")
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\nthird", r.Body)

	// Test: a header line without a colon becomes body text
	r, err = Parse("GET / HTTP/1.1\r\nHost localhost\r\n\r\n")
	require.NoError(t, err)
	assert.Equal(t, "Host localhost", r.Body)
	assert.Empty(t, r.Headers)
}

func TestParseMalformedRequestLine(t *testing.T) {
	for _, bad := range []string{
		"GET HTTP",
		"HTTP/1.1\r\nHost: x\r\n\r\n",
		"GET HTTP/1.1\r\n\r\n",
	} {
		r, err := Parse(bad)
		require.Error(t, err, bad)
		assert.Nil(t, r)
		assert.True(t, errors.Is(err, ErrMalformedRequestLine), bad)
		assert.True(t, httperr.Is(err, httperr.MalformedRequest), bad)
	}

	// "GET /x" without a version does not look like a request line; it is
	// kept as body and the request stays unrouted.
	r, err := Parse("GET /x")
	require.NoError(t, err)
	assert.Equal(t, MethodUninitialized, r.Method)
	assert.Equal(t, "GET /x", r.Body)
}

func TestRequestFromReader(t *testing.T) {
	data := "GET /coffee HTTP/1.1\r\nHost: x\r\n\r\n"

	// Whole request in one read
	r, err := RequestFromReader(&chunkReader{data: data, numBytesPerRead: len(data)}, 0)
	require.NoError(t, err)
	assert.Equal(t, MethodGet, r.Method)
	assert.Equal(t, "/coffee", r.Resource.Path)
	assert.Equal(t, " x", r.Headers["Host"])

	// Only one read is performed; a short read yields a partial request
	r, err = RequestFromReader(&chunkReader{data: data, numBytesPerRead: 3}, 0)
	require.NoError(t, err)
	assert.Equal(t, MethodUninitialized, r.Method)
	assert.Equal(t, "GET", r.Body)

	// Buffer size bounds the read
	r, err = RequestFromReader(&chunkReader{data: data, numBytesPerRead: len(data)}, 24)
	require.NoError(t, err)
	assert.Equal(t, "/coffee", r.Resource.Path)
	assert.Empty(t, r.Headers)

	// Nothing to read
	_, err = RequestFromReader(&chunkReader{data: ""}, 0)
	require.Error(t, err)
	assert.True(t, httperr.Is(err, httperr.ReadFailure))
	assert.True(t, errors.Is(err, io.EOF))
}
