package repositories

import (
	"context"
	"fmt"
	"strings"

	"sheetbase/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DynamicTableRepository runs all SQL against the per-upload physical
// tables, whose column sets are unknown until runtime. Table and column
// names are interpolated as quoted identifiers, never as parameters; every
// name passing through here comes from the sanitizer, the synthesizer or
// information_schema introspection.
type DynamicTableRepository struct {
	pool *pgxpool.Pool
}

func NewDynamicTableRepository(pool *pgxpool.Pool) *DynamicTableRepository {
	return &DynamicTableRepository{pool: pool}
}

func (r *DynamicTableRepository) CreateTable(ctx context.Context, stmt string) error {
	if _, err := r.pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

func (r *DynamicTableRepository) DropTable(ctx context.Context, table string) error {
	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", pgx.Identifier{table}.Sanitize())
	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to drop table: %w", err)
	}
	return nil
}

func (r *DynamicTableRepository) TableExists(ctx context.Context, table string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = $1
		)
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, table).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// DataColumns returns the table's column identifiers in ordinal order with
// the identity column excluded.
func (r *DynamicTableRepository) DataColumns(ctx context.Context, table string) ([]string, error) {
	query := `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = $1
		ORDER BY ordinal_position
	`

	rows, err := r.pool.Query(ctx, query, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		if name == "id" {
			continue
		}
		columns = append(columns, name)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return columns, nil
}

// BulkInsert copies rows into the table. Each row must match the column
// list positionally.
func (r *DynamicTableRepository) BulkInsert(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	count, err := r.pool.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert rows: %w", err)
	}
	return count, nil
}

func (r *DynamicTableRepository) InsertRow(ctx context.Context, table string, columns []string, values []any) error {
	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = pgx.Identifier{col}.Sanitize()
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		pgx.Identifier{table}.Sanitize(),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
	)

	if _, err := r.pool.Exec(ctx, query, values...); err != nil {
		return fmt.Errorf("failed to insert row: %w", err)
	}
	return nil
}

func (r *DynamicTableRepository) CountRows(ctx context.Context, table string, columns []string, search string) (int64, error) {
	query := "SELECT COUNT(*) FROM " + pgx.Identifier{table}.Sanitize()
	where, args := searchClause(columns, search)
	query += where

	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// SelectRows reads rows in ascending identity order. columns narrows the
// selected data columns; search narrows rows to case-insensitive substring
// matches in any of searchColumns; limit <= 0 means unbounded.
func (r *DynamicTableRepository) SelectRows(ctx context.Context, table string, columns, searchColumns []string, search string, limit, offset int) ([]models.Row, error) {
	selected := make([]string, 0, len(columns)+1)
	selected = append(selected, pgx.Identifier{"id"}.Sanitize())
	for _, col := range columns {
		selected = append(selected, pgx.Identifier{col}.Sanitize())
	}

	query := fmt.Sprintf("SELECT %s FROM %s",
		strings.Join(selected, ", "),
		pgx.Identifier{table}.Sanitize(),
	)

	where, args := searchClause(searchColumns, search)
	query += where
	query += " ORDER BY id ASC"

	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.Row{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := models.Row{"id": values[0]}
		for i, col := range columns {
			v := values[i+1]
			if v == nil {
				row[col] = ""
			} else {
				row[col] = v
			}
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// searchClause builds the OR-across-columns substring filter. The pattern
// is shared across all columns as a single parameter.
func searchClause(columns []string, search string) (string, []any) {
	if search == "" || len(columns) == 0 {
		return "", nil
	}
	clauses := make([]string, len(columns))
	for i, col := range columns {
		clauses[i] = fmt.Sprintf("%s ILIKE $1", pgx.Identifier{col}.Sanitize())
	}
	pattern := "%" + escapeLike(search) + "%"
	return " WHERE (" + strings.Join(clauses, " OR ") + ")", []any{pattern}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
