package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem snapshots one cart line at placement time. Later catalog edits
// never change what the order shows.
type OrderItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                     // primary key
	OrderID   uint           `gorm:"index;not null" json:"order_id"`                           // parent order
	ItemID    uint           `gorm:"index;not null" json:"item_id"`                            // catalog row ID at placement
	ItemKind  string         `gorm:"type:varchar(20);not null" json:"item_kind"`               // product / kit
	Name      string         `gorm:"not null" json:"name"`                                     // name snapshot
	ImageURL  string         `gorm:"type:varchar(500)" json:"image_url"`                       // image snapshot
	UnitPrice Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`  // price snapshot
	Quantity  int            `gorm:"not null" json:"quantity"`                                 // quantity
	Subtotal  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`    // unit price x quantity
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                                  // created time
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`                                  // updated time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                           // soft delete time
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
