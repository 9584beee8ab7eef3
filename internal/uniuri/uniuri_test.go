package uniuri

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	s := New()
	assert.Len(t, s, StdLen)

	for _, c := range []byte(s) {
		assert.True(t, bytes.IndexByte(StdChars, c) >= 0, "unexpected char %q", c)
	}

	assert.NotEqual(t, s, New())
}

func TestNewLenChars(t *testing.T) {
	assert.Empty(t, NewLen(0))

	s := NewLenChars(64, []byte("ab"))
	assert.Len(t, s, 64)
	assert.Empty(t, bytes.Trim([]byte(s), "ab"))

	assert.Panics(t, func() { NewLenChars(4, []byte("a")) })
}
