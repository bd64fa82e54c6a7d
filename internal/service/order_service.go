package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/circuitaura/storefront/internal/constants"
	"github.com/circuitaura/storefront/internal/logger"
	"github.com/circuitaura/storefront/internal/models"
	"github.com/circuitaura/storefront/internal/queue"
	"github.com/circuitaura/storefront/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	phonePattern   = regexp.MustCompile(`^\d{10}$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
)

// ShippingAddressInput is the checkout address form.
type ShippingAddressInput struct {
	ReceiverName    string
	ReceiverPhone   string
	ReceiverPincode string
	ReceiverCity    string
	ReceiverAddress string
}

// OrderService handles cash-on-delivery checkout and the order lifecycle.
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	cartService *CartService
	queueClient *queue.Client
	currency    string
}

// NewOrderService creates the order service.
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, cartService *CartService, queueClient *queue.Client, currency string) *OrderService {
	if strings.TrimSpace(currency) == "" {
		currency = constants.SiteCurrencyDefault
	}
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		cartService: cartService,
		queueClient: queueClient,
		currency:    currency,
	}
}

// allowedStatusTransitions is the forward lifecycle. Cancellation is
// reachable until the order ships; shipped orders can only be delivered.
var allowedStatusTransitions = map[string][]string{
	constants.OrderStatusPending: {constants.OrderStatusPaid, constants.OrderStatusCancelled},
	constants.OrderStatusPaid:    {constants.OrderStatusShipped, constants.OrderStatusCancelled},
	constants.OrderStatusShipped: {constants.OrderStatusDelivered},
}

func isStatusTransitionAllowed(from, to string) bool {
	for _, next := range allowedStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// PlaceOrder turns the server-side cart into a pending COD order. The cart
// is read and cleared inside one transaction; line details are snapshotted
// so later catalog edits never rewrite order history.
func (s *OrderService) PlaceOrder(userID uint, address ShippingAddressInput) (*models.Order, error) {
	if userID == 0 {
		return nil, ErrNotFound
	}
	if err := validateShippingAddress(&address); err != nil {
		return nil, err
	}

	cartItems, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrCartEmpty
	}

	// Every line is re-checked against the live catalog here. GetCart drops
	// dead lines for display; checkout instead refuses, so a buyer never
	// silently pays for less than their cart showed.
	now := time.Now()
	items := make([]models.OrderItem, 0, len(cartItems))
	total := decimal.Zero
	for _, line := range cartItems {
		catalog, err := s.cartService.resolveActiveItem(line.ItemID, line.ItemKind)
		if err != nil {
			return nil, err
		}
		if catalog == nil {
			return nil, ErrItemNotAvailable
		}
		subtotal := catalog.Price.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2)
		items = append(items, models.OrderItem{
			ItemID:    line.ItemID,
			ItemKind:  line.ItemKind,
			Name:      catalog.Name,
			ImageURL:  catalog.ImageURL,
			UnitPrice: catalog.Price,
			Quantity:  line.Quantity,
			Subtotal:  models.NewMoneyFromDecimal(subtotal),
			CreatedAt: now,
			UpdatedAt: now,
		})
		total = total.Add(subtotal)
	}

	order := &models.Order{
		OrderNo:         generateOrderNo(),
		UserID:          userID,
		Status:          constants.OrderStatusPending,
		Currency:        s.currency,
		TotalAmount:     models.NewMoneyFromDecimal(total.Round(2)),
		ReceiverName:    address.ReceiverName,
		ReceiverPhone:   address.ReceiverPhone,
		ReceiverPincode: address.ReceiverPincode,
		ReceiverCity:    address.ReceiverCity,
		ReceiverAddress: address.ReceiverAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)
		if err := orderRepo.Create(order, items); err != nil {
			return err
		}
		return cartRepo.ClearByUser(userID)
	})
	if err != nil {
		return nil, err
	}

	s.enqueueStatusEmail(order.ID, order.OrderNo, constants.OrderStatusPending)
	return s.orderRepo.GetByID(order.ID)
}

// ListByUser returns the caller's orders, newest first.
func (s *OrderService) ListByUser(userID uint, status string, page, pageSize int) ([]models.Order, int64, error) {
	if userID == 0 {
		return nil, 0, ErrNotFound
	}
	filter := repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
		Status:   strings.ToLower(strings.TrimSpace(status)),
	}
	return s.orderRepo.ListByUser(filter)
}

// GetByUser returns one of the caller's orders with its lines.
func (s *OrderService) GetByUser(orderID, userID uint) (*models.Order, error) {
	if orderID == 0 || userID == 0 {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// CancelOrder lets the owner cancel an order that is still pending.
func (s *OrderService) CancelOrder(orderID, userID uint) (*models.Order, error) {
	order, err := s.GetByUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order.Status != constants.OrderStatusPending {
		return nil, ErrOrderCancelNotAllowed
	}

	now := time.Now()
	updates := map[string]interface{}{
		"cancelled_at": now,
		"updated_at":   now,
	}
	if err := s.orderRepo.UpdateStatus(order.ID, constants.OrderStatusCancelled, updates); err != nil {
		return nil, err
	}

	s.enqueueStatusEmail(order.ID, order.OrderNo, constants.OrderStatusCancelled)
	return s.orderRepo.GetByID(order.ID)
}

// DeleteOrder lets the owner remove a cancelled order from their history.
// The rows are gone for good; no other status may be deleted.
func (s *OrderService) DeleteOrder(orderID, userID uint) error {
	order, err := s.GetByUser(orderID, userID)
	if err != nil {
		return err
	}
	if order.Status != constants.OrderStatusCancelled {
		return ErrOrderDeleteNotAllowed
	}
	return s.orderRepo.HardDelete(order.ID)
}

// ListAdmin returns orders across all accounts for the console.
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	filter.Status = strings.ToLower(strings.TrimSpace(filter.Status))
	return s.orderRepo.ListAdmin(filter)
}

// GetAdminByID returns any order with its lines.
func (s *OrderService) GetAdminByID(orderID uint) (*models.Order, error) {
	if orderID == 0 {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// UpdateOrderStatus moves an order along the lifecycle from the console.
func (s *OrderService) UpdateOrderStatus(orderID uint, targetStatus string) (*models.Order, error) {
	order, err := s.GetAdminByID(orderID)
	if err != nil {
		return nil, err
	}

	target := strings.ToLower(strings.TrimSpace(targetStatus))
	switch target {
	case constants.OrderStatusPending, constants.OrderStatusPaid, constants.OrderStatusShipped, constants.OrderStatusDelivered, constants.OrderStatusCancelled:
	default:
		return nil, ErrOrderStatusInvalid
	}
	if target == order.Status {
		return order, nil
	}
	if !isStatusTransitionAllowed(order.Status, target) {
		return nil, ErrOrderStatusInvalid
	}

	now := time.Now()
	updates := map[string]interface{}{
		"updated_at": now,
	}
	switch target {
	case constants.OrderStatusPaid:
		updates["paid_at"] = now
	case constants.OrderStatusCancelled:
		updates["cancelled_at"] = now
	}
	if err := s.orderRepo.UpdateStatus(order.ID, target, updates); err != nil {
		return nil, err
	}

	s.enqueueStatusEmail(order.ID, order.OrderNo, target)
	return s.orderRepo.GetByID(order.ID)
}

func (s *OrderService) enqueueStatusEmail(orderID uint, orderNo, status string) {
	if s.queueClient == nil || !s.queueClient.Enabled() {
		return
	}
	payload := queue.OrderStatusEmailPayload{
		OrderID: orderID,
		Status:  status,
	}
	if err := s.queueClient.EnqueueOrderStatusEmail(payload); err != nil {
		logger.Warnw("order_status_email_enqueue_failed",
			"order_id", orderID,
			"order_no", orderNo,
			"status", status,
			"error", err,
		)
	}
}

func validateShippingAddress(address *ShippingAddressInput) error {
	address.ReceiverName = strings.TrimSpace(address.ReceiverName)
	address.ReceiverPhone = strings.TrimSpace(address.ReceiverPhone)
	address.ReceiverPincode = strings.TrimSpace(address.ReceiverPincode)
	address.ReceiverCity = strings.TrimSpace(address.ReceiverCity)
	address.ReceiverAddress = strings.TrimSpace(address.ReceiverAddress)

	if address.ReceiverName == "" || address.ReceiverCity == "" || address.ReceiverAddress == "" {
		return ErrAddressInvalid
	}
	if !phonePattern.MatchString(address.ReceiverPhone) {
		return ErrPhoneInvalid
	}
	if !pincodePattern.MatchString(address.ReceiverPincode) {
		return ErrPincodeInvalid
	}
	return nil
}

// OrderTotal recomputes the sum of line subtotals. Used to cross-check a
// stored order against its snapshots.
func OrderTotal(items []models.OrderItem) models.Money {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal.Decimal)
	}
	return models.NewMoneyFromDecimal(total.Round(2))
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("CA%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
