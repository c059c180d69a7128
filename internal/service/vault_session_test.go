package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Use(t *testing.T) {
	kdk := []byte("0123456789abcdef")
	password := []byte("p1")

	s := newSession(password, kdk)

	// inputs belong to the caller
	assert.Equal(t, []byte("0123456789abcdef"), kdk)
	assert.Equal(t, []byte("p1"), password)

	for range 2 {
		err := s.use(func(gotKDK, gotPassword []byte) error {
			assert.Equal(t, kdk, gotKDK)
			assert.Equal(t, password, gotPassword)
			return nil
		})
		require.NoError(t, err)
	}
}

func TestSession_UseReturnsCallbackError(t *testing.T) {
	s := newSession([]byte("p1"), []byte("0123456789abcdef"))
	boom := errors.New("boom")

	err := s.use(func(_, _ []byte) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestNormalizePassword(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"p1", "p1"},
		{"  p1\n", "p1"},
		{"ﬁ", "fi"},
		// composed and decomposed é normalize to the same bytes
		{"\u00e9", "e\u0301"},
		{"e\u0301", "e\u0301"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, []byte(tt.want), normalizePassword(tt.in), tt.in)
	}
}
