package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerbose_IncludesStack(t *testing.T) {
	err := Wrap(New("boom"), "while saving")

	out := Verbose(err)
	assert.Contains(t, out, "while saving: boom")
	assert.Contains(t, out, "errors_test.go")
}

func TestVerbose_Nil(t *testing.T) {
	assert.Empty(t, Verbose(nil))
}

func TestIs_ThroughWrap(t *testing.T) {
	base := New("base")
	assert.True(t, Is(Wrapf(base, "ctx %d", 1), base))
}
