package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("gone")))
	assert.Equal(t, KindPersistence, KindOf(Persistence("save failed", errors.New("boom"))))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", Parse("could not read spreadsheet", errors.New("bad zip")))
	assert.Equal(t, KindParse, KindOf(err))
	assert.True(t, IsKind(err, KindParse))
	assert.False(t, IsKind(err, KindValidation))
}

func TestUserMessage(t *testing.T) {
	err := Persistence("failed to insert data", errors.New("pq: deadlock detected"))

	// The cause stays in Error() for logs but out of the user message.
	assert.Equal(t, "failed to insert data", UserMessage(err))
	assert.Contains(t, err.Error(), "deadlock")

	assert.Equal(t, "internal error", UserMessage(errors.New("plain")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	assert.ErrorIs(t, Structure("could not retrieve table structure", cause), cause)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "persistence", KindPersistence.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
