package services

import (
	"strings"
	"testing"

	"sheetbase/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	s := NewSchemaService()

	name, stmt, err := s.Synthesize([]string{"name", "city", "zip_code"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(name, "sheet_"), "table name %q", name)
	assert.LessOrEqual(t, len(name), 63)

	assert.Contains(t, stmt, "CREATE TABLE IF NOT EXISTS")
	assert.Contains(t, stmt, `"`+name+`"`)
	assert.Contains(t, stmt, "id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY")

	// Data columns appear in header order, after the identity column.
	idIdx := strings.Index(stmt, "id BIGINT")
	nameIdx := strings.Index(stmt, `"name" TEXT`)
	cityIdx := strings.Index(stmt, `"city" TEXT`)
	zipIdx := strings.Index(stmt, `"zip_code" TEXT`)
	require.True(t, idIdx >= 0 && nameIdx >= 0 && cityIdx >= 0 && zipIdx >= 0, "statement: %s", stmt)
	assert.Less(t, idIdx, nameIdx)
	assert.Less(t, nameIdx, cityIdx)
	assert.Less(t, cityIdx, zipIdx)
}

func TestSynthesizeUniqueNames(t *testing.T) {
	s := NewSchemaService()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		name, _, err := s.Synthesize([]string{"a"})
		require.NoError(t, err)
		assert.False(t, seen[name], "duplicate table name %q", name)
		seen[name] = true
	}
}

func TestSynthesizeRejectsBadInput(t *testing.T) {
	s := NewSchemaService()

	_, _, err := s.Synthesize(nil)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	_, _, err = s.Synthesize([]string{"ok", "not ok"})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}
