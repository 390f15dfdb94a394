package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codeError struct{ code string }

func (e *codeError) Error() string { return e.code }

var errSentinel = New("sentinel")

func TestWrapKeepsSentinel(t *testing.T) {
	err := Wrapf(Wrap(errSentinel, "inner"), "outer %d", 1)

	assert.True(t, Is(err, errSentinel))
	assert.Equal(t, "outer 1: inner: sentinel", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", WithStack(errSentinel)), "TestWrapKeepsSentinel")
	assert.NoError(t, Wrap(nil, "nothing"))
}

func TestFind(t *testing.T) {
	err := Wrap(Join(errSentinel, &codeError{code: "STORAGE_FAILURE"}), "save")

	found, ok := Find[*codeError](err)
	require.True(t, ok)
	assert.Equal(t, "STORAGE_FAILURE", found.code)

	_, ok = Find[*codeError](errSentinel)
	assert.False(t, ok)
}
