package testutil

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// NewTestRNG creates a deterministic random number generator for tests
func NewTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NopLogger returns a pointer to a no-op logger, the shape engine configs take
func NopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// CaptureLogger returns a JSON logger writing into the returned buffer
func CaptureLogger(level zerolog.Level) (*zerolog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).Level(level)
	return &l, &buf
}

// AssertPanic asserts that f panics with a message containing want
func AssertPanic(t *testing.T, want string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic containing %q", want)
		require.Contains(t, toString(r), want)
	}()
	f()
}

func toString(r any) string {
	switch v := r.(type) {
	case string:
		return v
	case error:
		return v.Error()
	default:
		return ""
	}
}
