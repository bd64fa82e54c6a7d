package models

import (
	"time"

	"gorm.io/gorm"
)

// CartItem is one cart line. A user holds at most one line per
// (item_id, item_kind) pair; adding the same item again bumps the quantity.
type CartItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                                   // primary key
	UserID    uint           `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"user_id"`                 // owner
	ItemID    uint           `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"item_id"`                 // catalog row ID
	ItemKind  string         `gorm:"type:varchar(20);not null;uniqueIndex:idx_cart_user_item" json:"item_kind"` // product / kit
	Quantity  int            `gorm:"not null" json:"quantity"`                                               // line quantity
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                                                // created time
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`                                                // updated time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                                         // soft delete time
}

// TableName sets the table name.
func (CartItem) TableName() string {
	return "cart_items"
}
