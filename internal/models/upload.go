package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Upload is one registry row: the durable mapping from a logical file to
// the physical table holding its data. TableName is unique so two uploads
// can never share a physical table, and it never changes once created.
type Upload struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OriginalFilename string    `gorm:"type:text;not null" json:"original_filename"`
	StoredFilename   string    `gorm:"type:text;not null" json:"stored_filename"`
	TableName        string    `gorm:"type:text;not null;unique" json:"table_name"`
	UploadedBy       uuid.UUID `gorm:"type:uuid;not null" json:"uploaded_by"`
	UploadDate       time.Time `gorm:"type:timestamptz;not null" json:"upload_date"`
}

func (u *Upload) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}

// FileListEntry is one row of the management file list: registry fields
// joined with the uploader's display identity.
type FileListEntry struct {
	ID               uuid.UUID `json:"id"`
	OriginalFilename string    `json:"original_filename"`
	TableName        string    `json:"table_name"`
	UploadDate       time.Time `json:"upload_date"`
	Uploader         string    `json:"uploader"`
}

// FileConfig holds per-file display configuration for embeddable views.
// VisibleColumns is a comma-separated list of column identifiers; empty
// means all data columns.
type FileConfig struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FileID         uuid.UUID `gorm:"type:uuid;not null;unique" json:"file_id"`
	HeaderRow      bool      `gorm:"not null;default:true" json:"header_row"`
	VisibleColumns string    `gorm:"type:text" json:"visible_columns"`
	CreatedAt      time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (c *FileConfig) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

// Setting is one key of the installation-wide key-value settings store.
type Setting struct {
	Key   string `gorm:"type:text;primaryKey" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`
}
