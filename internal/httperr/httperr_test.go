package httperr

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorWrapping(t *testing.T) {
	err := New(WriteFailure, io.ErrClosedPipe)
	wrapped := fmt.Errorf("sending response: %w", err)

	assert.True(t, errors.Is(wrapped, io.ErrClosedPipe))
	assert.True(t, Is(wrapped, WriteFailure))
	assert.False(t, Is(wrapped, ReadFailure))

	k, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, WriteFailure, k)
	assert.Equal(t, "write failure: io: read/write on closed pipe", err.Error())
}

func TestKindOfPlainError(t *testing.T) {
	_, ok := KindOf(errors.New("plain"))
	assert.False(t, ok)
	assert.Equal(t, "malformed request", New(MalformedRequest, nil).Error())
	assert.Contains(t, Kind(42).String(), "42")
}
