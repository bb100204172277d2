package services

import (
	"context"
	"log"
	"strings"

	"sheetbase/internal/apperrors"
	"sheetbase/internal/models"
	"sheetbase/internal/repositories"

	"github.com/google/uuid"
)

// FileService covers the management operations on the upload registry.
type FileService struct {
	uploadRepo  *repositories.UploadRepository
	dynamicRepo *repositories.DynamicTableRepository
	configRepo  *repositories.ConfigRepository
	cache       *repositories.CacheRepository
}

func NewFileService(
	uploadRepo *repositories.UploadRepository,
	dynamicRepo *repositories.DynamicTableRepository,
	configRepo *repositories.ConfigRepository,
	cache *repositories.CacheRepository,
) *FileService {
	return &FileService{
		uploadRepo:  uploadRepo,
		dynamicRepo: dynamicRepo,
		configRepo:  configRepo,
		cache:       cache,
	}
}

func (s *FileService) List(ctx context.Context) ([]models.FileListEntry, error) {
	entries, err := s.uploadRepo.ListWithUploader()
	if err != nil {
		return nil, apperrors.Persistence("failed to retrieve file list", err)
	}
	return entries, nil
}

// Delete removes the registry row, then drops the physical table. The
// registry row goes first: a table without a registry reference is a
// harmless leak, a registry reference to a dropped table is a dangling
// pointer. A failed drop is therefore logged, not surfaced.
func (s *FileService) Delete(ctx context.Context, id uuid.UUID) error {
	upload, err := s.uploadRepo.FindByID(id)
	if err != nil {
		return apperrors.Persistence("failed to load file record", err)
	}
	if upload == nil {
		return apperrors.NotFound("record not found")
	}

	deleted, err := s.uploadRepo.Delete(id)
	if err != nil {
		return apperrors.Persistence("failed to delete record", err)
	}
	if !deleted {
		return apperrors.NotFound("record not found")
	}

	if err := s.dynamicRepo.DropTable(ctx, upload.TableName); err != nil {
		log.Printf("integrity warning: registry row %s deleted but table %s could not be dropped: %v", id, upload.TableName, err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateColumns(ctx, id.String()); err != nil {
			log.Printf("failed to invalidate column cache for %s: %v", id, err)
		}
	}

	return nil
}

func (s *FileService) GetConfig(ctx context.Context, id uuid.UUID) (*models.FileConfig, error) {
	upload, err := s.uploadRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.Persistence("failed to load file record", err)
	}
	if upload == nil {
		return nil, apperrors.NotFound("record not found")
	}

	cfg, err := s.configRepo.FindByFileID(id)
	if err != nil {
		return nil, apperrors.Persistence("failed to load file config", err)
	}
	if cfg == nil {
		cfg = &models.FileConfig{FileID: id, HeaderRow: true}
	}
	return cfg, nil
}

// SetConfig upserts the per-file display config. Requested visible columns
// are narrowed to the table's actual data columns before storing.
func (s *FileService) SetConfig(ctx context.Context, id uuid.UUID, headerRow bool, visibleColumns []string) (*models.FileConfig, error) {
	upload, err := s.uploadRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.Persistence("failed to load file record", err)
	}
	if upload == nil {
		return nil, apperrors.NotFound("record not found")
	}

	columns, err := s.dynamicRepo.DataColumns(ctx, upload.TableName)
	if err != nil {
		return nil, apperrors.Structure("could not retrieve table structure", err)
	}

	visible := intersectColumns(visibleColumns, columns)
	cfg := &models.FileConfig{
		FileID:         id,
		HeaderRow:      headerRow,
		VisibleColumns: strings.Join(visible, ","),
	}
	if err := s.configRepo.Upsert(cfg); err != nil {
		return nil, apperrors.Persistence("failed to save file config", err)
	}
	return cfg, nil
}
