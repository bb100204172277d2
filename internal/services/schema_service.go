package services

import (
	"fmt"
	"strings"

	"sheetbase/internal/apperrors"
	"sheetbase/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const tableNamePrefix = "sheet_"

// SchemaService synthesizes a physical table schema from a sanitized column
// list.
type SchemaService struct{}

func NewSchemaService() *SchemaService {
	return &SchemaService{}
}

// Synthesize produces a fresh physical table name and the statement that
// creates it: an identity column plus one TEXT column per identifier, in
// order. The name carries a random 128-bit suffix so concurrent uploads
// cannot synthesize the same one; the uploads.table_name UNIQUE constraint
// backs that up at the storage layer. The statement is create-if-not-exists
// so a retried ingestion does not fail on re-application.
func (s *SchemaService) Synthesize(columns []string) (string, string, error) {
	if len(columns) == 0 {
		return "", "", apperrors.Validation("at least one column is required")
	}
	for _, col := range columns {
		if !utils.IsValidIdentifier(col) {
			return "", "", apperrors.Validation(fmt.Sprintf("invalid column identifier %q", col))
		}
	}

	tableName := tableNamePrefix + strings.ReplaceAll(uuid.NewString(), "-", "")

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", pgx.Identifier{tableName}.Sanitize())
	b.WriteString("  id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY")
	for _, col := range columns {
		fmt.Fprintf(&b, ",\n  %s TEXT", pgx.Identifier{col}.Sanitize())
	}
	b.WriteString("\n)")

	return tableName, b.String(), nil
}
