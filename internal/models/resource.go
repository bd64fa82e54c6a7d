package models

import (
	"time"

	"gorm.io/gorm"
)

// Resource is a learning-hub entry: tutorial, video or download.
type Resource struct {
	ID           uint           `gorm:"primarykey" json:"id"`                           // primary key
	ResourceType string         `gorm:"type:varchar(20);not null;index" json:"resource_type"` // tutorial / video / download
	Title        string         `gorm:"not null" json:"title"`                          // display title
	Description  string         `gorm:"type:text" json:"description"`                   // summary text
	ReadTime     string         `gorm:"type:varchar(50)" json:"read_time"`              // e.g. "10 min read"
	FileURL      string         `gorm:"type:varchar(500)" json:"file_url"`              // download file path
	VideoURL     string         `gorm:"type:varchar(500)" json:"video_url"`             // external video link
	PDFURL       string         `gorm:"type:varchar(500)" json:"pdf_url"`               // pdf attachment path
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                        // created time
	UpdatedAt    time.Time      `json:"updated_at"`                                     // updated time
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                 // soft delete time
}

// TableName sets the table name.
func (Resource) TableName() string {
	return "resources"
}
