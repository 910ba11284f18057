package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	sentinel := New(KindNotFound, "agency not found")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("bad %s", "input"), KindValidation},
		{"wrapped sentinel", fmt.Errorf("repository: %w", sentinel), KindNotFound},
		{"persistence", Persistence("save agency", errors.New("boom")), KindPersistence},
		{"plain error", errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Dependency("publish to queue", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "publish to queue: connection refused", err.Error())
	assert.Equal(t, "publish to queue", MessageOf(err))
}

func TestSentinelIdentity(t *testing.T) {
	sentinel := New(KindAuth, "Invalid mobile number or password")
	wrapped := fmt.Errorf("service: %w", sentinel)

	assert.ErrorIs(t, wrapped, sentinel)
	assert.Equal(t, "Invalid mobile number or password", MessageOf(wrapped))
}
