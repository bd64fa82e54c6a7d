package service

import (
	"strings"
	"time"

	"github.com/circuitaura/storefront/internal/constants"
	"github.com/circuitaura/storefront/internal/models"
	"github.com/circuitaura/storefront/internal/repository"

	"github.com/shopspring/decimal"
)

// CartLine is one hydrated cart row for responses.
type CartLine struct {
	ItemID      uint         `json:"item_id"`
	ItemKind    string       `json:"item_kind"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	ImageURL    string       `json:"image_url"`
	UnitPrice   models.Money `json:"unit_price"`
	Quantity    int          `json:"quantity"`
	Subtotal    models.Money `json:"subtotal"`
}

// CartSummary is the whole cart plus its totals.
type CartSummary struct {
	Lines         []CartLine   `json:"lines"`
	TotalQuantity int          `json:"total_quantity"`
	TotalAmount   models.Money `json:"total_amount"`
	Currency      string       `json:"currency"`
}

// CartService handles the server-side cart. One line per (item, kind) pair;
// adding merges quantities, setting replaces them.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	kitRepo     repository.KitRepository
	currency    string
}

// NewCartService creates the cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, kitRepo repository.KitRepository, currency string) *CartService {
	if strings.TrimSpace(currency) == "" {
		currency = constants.SiteCurrencyDefault
	}
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		kitRepo:     kitRepo,
		currency:    currency,
	}
}

// cartCatalogLine is what the cart needs to know about a catalog item.
type cartCatalogLine struct {
	Name        string
	Description string
	ImageURL    string
	Price       models.Money
}

// GetCart returns the hydrated cart. Lines whose item has been delisted or
// deleted are dropped on read so checkout never sees them.
func (s *CartService) GetCart(userID uint) (*CartSummary, error) {
	if userID == 0 {
		return nil, ErrNotFound
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	summary := &CartSummary{
		Lines:       make([]CartLine, 0, len(items)),
		TotalAmount: models.NewMoneyFromDecimal(decimal.Zero),
		Currency:    s.currency,
	}
	total := decimal.Zero
	for _, item := range items {
		catalog, err := s.resolveActiveItem(item.ItemID, item.ItemKind)
		if err != nil {
			return nil, err
		}
		if catalog == nil {
			_ = s.cartRepo.DeleteByUserAndItem(userID, item.ItemID, item.ItemKind)
			continue
		}

		subtotal := catalog.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		summary.Lines = append(summary.Lines, CartLine{
			ItemID:      item.ItemID,
			ItemKind:    item.ItemKind,
			Name:        catalog.Name,
			Description: catalog.Description,
			ImageURL:    catalog.ImageURL,
			UnitPrice:   catalog.Price,
			Quantity:    item.Quantity,
			Subtotal:    models.NewMoneyFromDecimal(subtotal),
		})
		summary.TotalQuantity += item.Quantity
		total = total.Add(subtotal)
	}
	summary.TotalAmount = models.NewMoneyFromDecimal(total.Round(2))
	return summary, nil
}

// AddItem puts an item in the cart. A line that already exists has the new
// quantity added onto it.
func (s *CartService) AddItem(userID, itemID uint, itemKind string, quantity int) error {
	if userID == 0 || itemID == 0 {
		return ErrNotFound
	}
	if quantity <= 0 {
		return ErrQuantityInvalid
	}
	kind, err := normalizeItemKind(itemKind)
	if err != nil {
		return err
	}
	catalog, err := s.resolveActiveItem(itemID, kind)
	if err != nil {
		return err
	}
	if catalog == nil {
		return ErrItemNotAvailable
	}

	existing, err := s.cartRepo.GetByUserAndItem(userID, itemID, kind)
	if err != nil {
		return err
	}
	if existing != nil {
		return s.cartRepo.UpdateQuantity(existing.ID, existing.Quantity+quantity)
	}

	now := time.Now()
	return s.cartRepo.Create(&models.CartItem{
		UserID:    userID,
		ItemID:    itemID,
		ItemKind:  kind,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// SetQuantity replaces a line's quantity. Zero or less removes the line.
func (s *CartService) SetQuantity(userID, itemID uint, itemKind string, quantity int) error {
	if userID == 0 || itemID == 0 {
		return ErrNotFound
	}
	kind, err := normalizeItemKind(itemKind)
	if err != nil {
		return err
	}
	if quantity <= 0 {
		return s.cartRepo.DeleteByUserAndItem(userID, itemID, kind)
	}

	existing, err := s.cartRepo.GetByUserAndItem(userID, itemID, kind)
	if err != nil {
		return err
	}
	if existing != nil {
		return s.cartRepo.UpdateQuantity(existing.ID, quantity)
	}

	catalog, err := s.resolveActiveItem(itemID, kind)
	if err != nil {
		return err
	}
	if catalog == nil {
		return ErrItemNotAvailable
	}
	now := time.Now()
	return s.cartRepo.Create(&models.CartItem{
		UserID:    userID,
		ItemID:    itemID,
		ItemKind:  kind,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// RemoveItem deletes a line. Removing an absent line is a no-op.
func (s *CartService) RemoveItem(userID, itemID uint, itemKind string) error {
	if userID == 0 || itemID == 0 {
		return ErrNotFound
	}
	kind, err := normalizeItemKind(itemKind)
	if err != nil {
		return err
	}
	return s.cartRepo.DeleteByUserAndItem(userID, itemID, kind)
}

// Clear empties the cart.
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrNotFound
	}
	return s.cartRepo.ClearByUser(userID)
}

func (s *CartService) resolveActiveItem(itemID uint, itemKind string) (*cartCatalogLine, error) {
	switch itemKind {
	case constants.ItemKindProduct:
		product, err := s.productRepo.GetActiveByID(itemID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, nil
		}
		return &cartCatalogLine{
			Name:        product.Name,
			Description: product.Description,
			ImageURL:    product.ImageURL,
			Price:       product.Price,
		}, nil
	case constants.ItemKindKit:
		kit, err := s.kitRepo.GetActiveByID(itemID)
		if err != nil {
			return nil, err
		}
		if kit == nil {
			return nil, nil
		}
		return &cartCatalogLine{
			Name:        kit.Name,
			Description: kit.Description,
			ImageURL:    kit.ImageURL,
			Price:       kit.Price,
		}, nil
	default:
		return nil, ErrItemKindInvalid
	}
}

func normalizeItemKind(itemKind string) (string, error) {
	kind := strings.ToLower(strings.TrimSpace(itemKind))
	switch kind {
	case constants.ItemKindProduct, constants.ItemKindKit:
		return kind, nil
	default:
		return "", ErrItemKindInvalid
	}
}
