package arena

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		status  Status
		str     string
		wantErr error
	}{
		{StatusFound, "found", nil},
		{StatusEmpty, "empty", ErrEmptySlot},
		{StatusOutdatedGeneration, "outdated generation", ErrOutdatedGeneration},
		{StatusOutOfBounds, "out of bounds", ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.status.String())
			assert.Equal(t, tt.wantErr, tt.status.Err())
		})
	}
}

func TestStatusUnknown(t *testing.T) {
	s := Status(42)
	assert.Equal(t, "Status(42)", s.String())
	assert.EqualError(t, s.Err(), "arena: unknown status 42")
}

func TestHandleError(t *testing.T) {
	err := &HandleError{Op: "remove", Handle: HandleFromParts(1, 0), Err: ErrOutOfBounds}

	assert.EqualError(t, err, "remove (index: 1, generation: 0): arena: handle index out of bounds")
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	assert.False(t, errors.Is(err, ErrOutdatedGeneration))
}
