package repository

import (
	"errors"

	"github.com/circuitaura/storefront/internal/models"

	"gorm.io/gorm"
)

// CartRepository is the cart data access interface.
type CartRepository interface {
	ListByUser(userID uint) ([]models.CartItem, error)
	GetByUserAndItem(userID, itemID uint, itemKind string) (*models.CartItem, error)
	Create(item *models.CartItem) error
	UpdateQuantity(id uint, quantity int) error
	DeleteByUserAndItem(userID, itemID uint, itemKind string) error
	ClearByUser(userID uint) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByUser returns the user's cart lines.
func (r *GormCartRepository) ListByUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("user_id = ?", userID).Order("updated_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByUserAndItem fetches one cart line, nil when absent.
func (r *GormCartRepository) GetByUserAndItem(userID, itemID uint, itemKind string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("user_id = ? AND item_id = ? AND item_kind = ?", userID, itemID, itemKind).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a cart line.
func (r *GormCartRepository) Create(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// UpdateQuantity sets the quantity of a cart line.
func (r *GormCartRepository) UpdateQuantity(id uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", id).Update("quantity", quantity).Error
}

// DeleteByUserAndItem removes one cart line.
func (r *GormCartRepository) DeleteByUserAndItem(userID, itemID uint, itemKind string) error {
	return r.db.Where("user_id = ? AND item_id = ? AND item_kind = ?", userID, itemID, itemKind).Delete(&models.CartItem{}).Error
}

// ClearByUser empties the user's cart.
func (r *GormCartRepository) ClearByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
