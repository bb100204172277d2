package repositories

import (
	"errors"

	"sheetbase/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

// Create inserts a registry row. A table_name collision surfaces as
// gorm.ErrDuplicatedKey (the gorm connection runs with TranslateError) so
// callers can tell a uniqueness race from other write failures.
func (r *UploadRepository) Create(upload *models.Upload) error {
	return r.db.Create(upload).Error
}

func (r *UploadRepository) FindByID(id uuid.UUID) (*models.Upload, error) {
	var upload models.Upload
	err := r.db.Where("id = ?", id).First(&upload).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &upload, nil
}

func (r *UploadRepository) ListWithUploader() ([]models.FileListEntry, error) {
	entries := []models.FileListEntry{}
	err := r.db.Table("uploads").
		Select("uploads.id, uploads.original_filename, uploads.table_name, uploads.upload_date, COALESCE(users.display_name, '') AS uploader").
		Joins("LEFT JOIN users ON users.id = uploads.uploaded_by").
		Order("uploads.upload_date DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes the registry row and reports whether it existed.
func (r *UploadRepository) Delete(id uuid.UUID) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&models.Upload{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
