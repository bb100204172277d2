package services

import (
	"context"
	"log"
	"strings"

	"sheetbase/internal/apperrors"
	"sheetbase/internal/models"
	"sheetbase/internal/repositories"
	"sheetbase/internal/utils"

	"github.com/google/uuid"
)

// QueryService answers generic reads and writes against the dynamically
// shaped tables. Every operation resolves the logical file id through the
// registry first; none assumes a physical name.
type QueryService struct {
	uploadRepo        *repositories.UploadRepository
	dynamicRepo       *repositories.DynamicTableRepository
	configRepo        *repositories.ConfigRepository
	cache             *repositories.CacheRepository
	pageSize          int
	publicSearchLimit int
}

func NewQueryService(
	uploadRepo *repositories.UploadRepository,
	dynamicRepo *repositories.DynamicTableRepository,
	configRepo *repositories.ConfigRepository,
	cache *repositories.CacheRepository,
	pageSize int,
	publicSearchLimit int,
) *QueryService {
	return &QueryService{
		uploadRepo:        uploadRepo,
		dynamicRepo:       dynamicRepo,
		configRepo:        configRepo,
		cache:             cache,
		pageSize:          pageSize,
		publicSearchLimit: publicSearchLimit,
	}
}

func (s *QueryService) resolve(id uuid.UUID) (*models.Upload, error) {
	upload, err := s.uploadRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.Persistence("failed to load file record", err)
	}
	if upload == nil {
		return nil, apperrors.NotFound("file not found")
	}
	return upload, nil
}

// columnsFor introspects the upload's data columns, serving from cache when
// possible. An empty column set means the registry points at a table that
// no longer exists: a dangling reference, reported distinctly from a
// missing record.
func (s *QueryService) columnsFor(ctx context.Context, upload *models.Upload) ([]string, error) {
	if s.cache != nil {
		if columns, ok, err := s.cache.GetColumns(ctx, upload.ID.String()); err == nil && ok {
			return columns, nil
		}
	}

	columns, err := s.dynamicRepo.DataColumns(ctx, upload.TableName)
	if err != nil {
		return nil, apperrors.Structure("could not retrieve table structure", err)
	}
	if len(columns) == 0 {
		log.Printf("integrity warning: upload %s references missing table %s", upload.ID, upload.TableName)
		return nil, apperrors.Structure("could not retrieve table structure", nil)
	}

	if s.cache != nil {
		if err := s.cache.StoreColumns(ctx, upload.ID.String(), columns); err != nil {
			log.Printf("failed to cache columns for upload %s: %v", upload.ID, err)
		}
	}
	return columns, nil
}

// ListColumns returns the upload's data columns in original header order.
func (s *QueryService) ListColumns(ctx context.Context, id uuid.UUID) ([]string, error) {
	upload, err := s.resolve(id)
	if err != nil {
		return nil, err
	}
	return s.columnsFor(ctx, upload)
}

// Page returns one offset page of rows in ascending identity order,
// narrowed to rows where any data column contains the search term as a
// case-insensitive substring when one is given. A page past the end yields
// an empty row set, not an error.
func (s *QueryService) Page(ctx context.Context, id uuid.UUID, page int, search string) (*models.TablePage, error) {
	if page < 1 {
		page = 1
	}

	upload, err := s.resolve(id)
	if err != nil {
		return nil, err
	}
	columns, err := s.columnsFor(ctx, upload)
	if err != nil {
		return nil, err
	}

	total, err := s.dynamicRepo.CountRows(ctx, upload.TableName, columns, search)
	if err != nil {
		return nil, apperrors.Persistence("failed to count rows", err)
	}

	offset := (page - 1) * s.pageSize
	rows, err := s.dynamicRepo.SelectRows(ctx, upload.TableName, columns, columns, search, s.pageSize, offset)
	if err != nil {
		return nil, apperrors.Persistence("failed to read rows", err)
	}

	totalPages := (total + int64(s.pageSize) - 1) / int64(s.pageSize)

	return &models.TablePage{
		Headers:  columns,
		Rows:     rows,
		Filename: upload.OriginalFilename,
		Pagination: models.Pagination{
			TotalItems:  total,
			TotalPages:  totalPages,
			CurrentPage: page,
		},
	}, nil
}

// InsertRow appends one row with values keyed by column identifier.
// Identifiers outside the table's column set are rejected rather than
// passed through to a storage-layer error.
func (s *QueryService) InsertRow(ctx context.Context, id uuid.UUID, fields map[string]string) error {
	if len(fields) == 0 {
		return apperrors.Validation("no form data provided")
	}

	upload, err := s.resolve(id)
	if err != nil {
		return err
	}
	columns, err := s.columnsFor(ctx, upload)
	if err != nil {
		return err
	}

	for field := range fields {
		if !utils.Contains(columns, field) {
			return apperrors.Validation("unknown column: " + field)
		}
	}

	// Insert in table column order so the statement shape is stable.
	insertColumns := make([]string, 0, len(fields))
	values := make([]any, 0, len(fields))
	for _, col := range columns {
		if v, ok := fields[col]; ok {
			insertColumns = append(insertColumns, col)
			values = append(values, v)
		}
	}

	if err := s.dynamicRepo.InsertRow(ctx, upload.TableName, insertColumns, values); err != nil {
		return apperrors.Persistence("failed to insert data", err)
	}
	return nil
}

// PublicRows serves the embeddable display path. requested narrows the
// returned columns to its intersection with the actual columns, unknown
// names dropped silently; with no request the per-file visible_columns
// config applies, then all columns. limit caps the row count when positive.
func (s *QueryService) PublicRows(ctx context.Context, id uuid.UUID, requested []string, limit int) (*models.PublicRows, error) {
	upload, err := s.resolve(id)
	if err != nil {
		return nil, err
	}
	columns, err := s.columnsFor(ctx, upload)
	if err != nil {
		return nil, err
	}

	if len(requested) == 0 {
		requested = s.configuredColumns(upload.ID)
	}

	visible := intersectColumns(requested, columns)
	if len(visible) == 0 {
		visible = columns
	}

	rows, err := s.dynamicRepo.SelectRows(ctx, upload.TableName, visible, nil, "", limit, 0)
	if err != nil {
		return nil, apperrors.Persistence("failed to read rows", err)
	}

	return &models.PublicRows{Headers: visible, Rows: rows}, nil
}

// PublicSearch is the embeddable search path: substring OR-match across all
// data columns, capped at the configured public limit.
func (s *QueryService) PublicSearch(ctx context.Context, id uuid.UUID, term string) (*models.PublicRows, error) {
	upload, err := s.resolve(id)
	if err != nil {
		return nil, err
	}
	columns, err := s.columnsFor(ctx, upload)
	if err != nil {
		return nil, err
	}

	rows, err := s.dynamicRepo.SelectRows(ctx, upload.TableName, columns, columns, term, s.publicSearchLimit, 0)
	if err != nil {
		return nil, apperrors.Persistence("failed to search rows", err)
	}

	return &models.PublicRows{Headers: columns, Rows: rows}, nil
}

func (s *QueryService) configuredColumns(fileID uuid.UUID) []string {
	cfg, err := s.configRepo.FindByFileID(fileID)
	if err != nil {
		log.Printf("failed to load file config for %s: %v", fileID, err)
		return nil
	}
	if cfg == nil || cfg.VisibleColumns == "" {
		return nil
	}
	return SplitColumnList(cfg.VisibleColumns)
}

// SplitColumnList parses a comma-separated column list, trimming blanks.
func SplitColumnList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// intersectColumns keeps requested names that exist in actual, in requested
// order, dropping duplicates.
func intersectColumns(requested, actual []string) []string {
	out := make([]string, 0, len(requested))
	for _, col := range requested {
		if utils.Contains(actual, col) && !utils.Contains(out, col) {
			out = append(out, col)
		}
	}
	return out
}
