package response

import (
	"bytes"
	"fmt"
	"io"

	"github.com/nhdewitt/tiny-httpserver/internal/headers"
	"github.com/nhdewitt/tiny-httpserver/internal/httperr"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const crlf = "\r\n"

type writerState int

const (
	StateWritingStatusLine writerState = iota
	StateWritingHeaders
	StateWritingBody
	StateDone
)

// Writer serializes one response. Nothing reaches the underlying writer
// until Flush, which hands over the whole message in a single Write.
type Writer struct {
	writer io.Writer
	buf    bytes.Buffer
	state  writerState
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		writer: w,
		state:  StateWritingStatusLine,
	}
}

func (w *Writer) WriteStatusLine(version string, statusCode StatusCode, reason string) error {
	if w.state != StateWritingStatusLine {
		return fmt.Errorf("writer state out-of-order")
	}

	fmt.Fprintf(&w.buf, "%s %d %s%s", version, statusCode, reason, crlf)

	w.state = StateWritingHeaders
	return nil
}

func (w *Writer) WriteHeaders(h *headers.Fields) error {
	if w.state != StateWritingHeaders {
		return fmt.Errorf("writer state out-of-order")
	}

	if h != nil {
		caser := cases.Title(language.English)
		h.Each(func(k, v string) {
			w.buf.WriteString(caser.String(k) + ": " + v + crlf)
		})
	}
	w.buf.WriteString(crlf)

	w.state = StateWritingBody
	return nil
}

func (w *Writer) WriteBody(p []byte) (int, error) {
	if w.state != StateWritingBody {
		return 0, fmt.Errorf("writer state out-of-order")
	}

	w.state = StateDone
	return w.buf.Write(p)
}

// Flush writes everything buffered so far to the underlying writer. Short
// writes are reported, not retried.
func (w *Writer) Flush() error {
	if w.state == StateWritingBody {
		w.state = StateDone
	}
	if w.state != StateDone {
		return fmt.Errorf("writer state out-of-order")
	}

	want := w.buf.Len()
	n, err := w.writer.Write(w.buf.Bytes())
	w.buf.Reset()
	if err != nil {
		return httperr.New(httperr.WriteFailure, err)
	}
	if n != want {
		return httperr.New(httperr.WriteFailure, io.ErrShortWrite)
	}
	return nil
}

// Send writes resp and flushes it.
func (w *Writer) Send(resp *Response) error {
	if err := w.WriteStatusLine(resp.Version, resp.StatusCode, resp.Reason); err != nil {
		return err
	}
	if err := w.WriteHeaders(resp.Headers); err != nil {
		return err
	}
	if resp.Body != nil {
		if _, err := w.WriteBody(resp.Body); err != nil {
			return err
		}
	}
	return w.Flush()
}
