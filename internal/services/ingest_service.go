package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"sheetbase/internal/apperrors"
	"sheetbase/internal/models"
	"sheetbase/internal/repositories"
	"sheetbase/internal/spreadsheet"
	"sheetbase/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IngestService converts an uploaded spreadsheet into a physical table plus
// one registry row. Steps are strictly sequential: validate, parse, create
// table, bulk insert, registry write last. Any failure after table creation
// drops the table again so an aborted ingestion leaves nothing behind.
type IngestService struct {
	uploadRepo     *repositories.UploadRepository
	dynamicRepo    *repositories.DynamicTableRepository
	schemaService  *SchemaService
	maxUploadBytes int64
}

func NewIngestService(
	uploadRepo *repositories.UploadRepository,
	dynamicRepo *repositories.DynamicTableRepository,
	schemaService *SchemaService,
	maxUploadBytes int64,
) *IngestService {
	return &IngestService{
		uploadRepo:     uploadRepo,
		dynamicRepo:    dynamicRepo,
		schemaService:  schemaService,
		maxUploadBytes: maxUploadBytes,
	}
}

// MaxUploadBytes is the ingestion size ceiling, exposed so transport can
// reject oversized uploads before buffering them.
func (s *IngestService) MaxUploadBytes() int64 {
	return s.maxUploadBytes
}

func (s *IngestService) Ingest(ctx context.Context, data []byte, filename, contentType string, uploadedBy uuid.UUID) (*models.Upload, error) {
	if len(data) == 0 {
		return nil, apperrors.Validation("no file uploaded")
	}
	if int64(len(data)) > s.maxUploadBytes {
		return nil, apperrors.Validation(fmt.Sprintf("file size exceeds %dMB limit", s.maxUploadBytes>>20))
	}
	if !spreadsheet.Supported(contentType) {
		return nil, apperrors.Validation("invalid file type, please upload an Excel file (.xls or .xlsx)")
	}

	grid, err := spreadsheet.Decode(data, contentType)
	if err != nil {
		return nil, apperrors.Parse("could not read spreadsheet", err)
	}
	if len(grid) == 0 {
		return nil, apperrors.Validation("spreadsheet has no rows")
	}

	headers := grid[0]
	dataRows := grid[1:]

	columns := utils.SanitizeHeaders(headers)
	tableName, stmt, err := s.schemaService.Synthesize(columns)
	if err != nil {
		return nil, err
	}

	if err := s.dynamicRepo.CreateTable(ctx, stmt); err != nil {
		return nil, apperrors.Persistence("failed to create data table", err)
	}

	rows := make([][]any, len(dataRows))
	for i, raw := range dataRows {
		rows[i] = fitRow(raw, len(columns))
	}

	if _, err := s.dynamicRepo.BulkInsert(ctx, tableName, columns, rows); err != nil {
		s.cleanup(ctx, tableName)
		return nil, apperrors.Persistence("failed to insert spreadsheet rows", err)
	}

	upload := &models.Upload{
		OriginalFilename: utils.SanitizeFilename(filename),
		StoredFilename:   utils.SanitizeFilename(filename),
		TableName:        tableName,
		UploadedBy:       uploadedBy,
		UploadDate:       time.Now().UTC(),
	}
	if err := s.uploadRepo.Create(upload); err != nil {
		s.cleanup(ctx, tableName)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Persistence("a file with this table name already exists", err)
		}
		return nil, apperrors.Persistence("failed to record upload", err)
	}

	return upload, nil
}

// fitRow pads or truncates a ragged row to the header arity so every insert
// carries one value per column.
func fitRow(raw []string, arity int) []any {
	row := make([]any, arity)
	for i := 0; i < arity; i++ {
		if i < len(raw) {
			row[i] = raw[i]
		} else {
			row[i] = ""
		}
	}
	return row
}

func (s *IngestService) cleanup(ctx context.Context, tableName string) {
	if err := s.dynamicRepo.DropTable(ctx, tableName); err != nil {
		log.Printf("ingestion cleanup: failed to drop orphaned table %s: %v", tableName, err)
	}
}
