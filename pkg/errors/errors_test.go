package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeNotFound, GetCode(ErrUserNotFound))
	assert.Equal(t, CodeInvalidArgument, GetCode(ErrMessageContentEmpty))
	assert.Equal(t, CodeUnavailable, GetCode(ErrStoreUnavailable(fmt.Errorf("timeout"))))
	assert.Equal(t, CodeUnknown, GetCode(fmt.Errorf("plain")))
	assert.Equal(t, CodeUnknown, GetCode(nil))
}

func TestGetCode_Wrapped(t *testing.T) {
	inner := ErrConversationNotFound
	outer := fmt.Errorf("listing feed: %w", inner)

	assert.True(t, IsNotFound(outer))
}

func TestPartialWriteKeepsCause(t *testing.T) {
	cause := fmt.Errorf("replica down")
	err := ErrFeedFanoutPartial([]string{"u1", "u2"}, cause)

	assert.True(t, IsPartialWrite(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "u1")
}
