package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a cash-on-delivery order with its shipping address.
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                       // primary key
	OrderNo         string         `gorm:"uniqueIndex;not null" json:"order_no"`                       // order number
	UserID          uint           `gorm:"index;not null" json:"user_id"`                              // owner
	Status          string         `gorm:"index;not null" json:"status"`                               // lifecycle status
	Currency        string         `gorm:"not null" json:"currency"`                                   // price currency
	TotalAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`  // sum of line subtotals
	ReceiverName    string         `gorm:"not null" json:"receiver_name"`                              // ship-to name
	ReceiverPhone   string         `gorm:"type:varchar(20);not null" json:"receiver_phone"`            // 10-digit phone
	ReceiverPincode string         `gorm:"type:varchar(10);not null" json:"receiver_pincode"`          // 6-digit pincode
	ReceiverCity    string         `gorm:"not null" json:"receiver_city"`                              // ship-to city
	ReceiverAddress string         `gorm:"type:text;not null" json:"receiver_address"`                 // street address
	PaidAt          *time.Time     `gorm:"index" json:"paid_at"`                                       // payment collected time
	CancelledAt     *time.Time     `gorm:"index" json:"cancelled_at"`                                  // cancel time
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                    // created time
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`                                    // updated time
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                             // soft delete time

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // line snapshots
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
