package models

import (
	"time"

	"gorm.io/gorm"
)

// Kit is a bundled project kit. Same storefront shape as a product plus a
// printable booklet.
type Kit struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                // primary key
	Name        string         `gorm:"not null;index" json:"name"`                          // display name
	Description string         `gorm:"type:text" json:"description"`                        // long description
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`  // unit price
	Features    StringArray    `gorm:"type:json" json:"features"`                           // bullet-point features
	Included    StringArray    `gorm:"type:json" json:"included"`                           // what's in the box
	ImageURL    string         `gorm:"type:varchar(500)" json:"image_url"`                  // cover image path
	PDFURL      string         `gorm:"type:varchar(500)" json:"pdf_url"`                    // project booklet path
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`                 // listed on the storefront
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`                   // display weight
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                             // created time
	UpdatedAt   time.Time      `json:"updated_at"`                                          // updated time
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                      // soft delete time
}

// TableName sets the table name.
func (Kit) TableName() string {
	return "kits"
}
