package service

import (
	"errors"
	"testing"

	"github.com/circuitaura/storefront/internal/constants"
	"github.com/circuitaura/storefront/internal/models"
	"github.com/circuitaura/storefront/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *CartService, *gorm.DB) {
	t.Helper()
	db := openServiceTestDB(t)
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Kit{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	// PlaceOrder runs inside a transaction on the package-level handle.
	prev := models.DB
	models.DB = db
	t.Cleanup(func() { models.DB = prev })

	cartRepo := repository.NewCartRepository(db)
	cartService := NewCartService(cartRepo, repository.NewProductRepository(db), repository.NewKitRepository(db), "INR")
	orderService := NewOrderService(repository.NewOrderRepository(db), cartRepo, cartService, nil, "INR")
	return orderService, cartService, db
}

func validTestAddress() ShippingAddressInput {
	return ShippingAddressInput{
		ReceiverName:    "Asha Patil",
		ReceiverPhone:   "9322291932",
		ReceiverPincode: "400001",
		ReceiverCity:    "Mumbai",
		ReceiverAddress: "14 MG Road, Fort",
	}
}

func TestValidateShippingAddress(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*ShippingAddressInput)
		wantErr error
	}{
		{name: "valid", mutate: func(a *ShippingAddressInput) {}, wantErr: nil},
		{name: "short phone", mutate: func(a *ShippingAddressInput) { a.ReceiverPhone = "932229193" }, wantErr: ErrPhoneInvalid},
		{name: "phone with letters", mutate: func(a *ShippingAddressInput) { a.ReceiverPhone = "93222x1932" }, wantErr: ErrPhoneInvalid},
		{name: "long pincode", mutate: func(a *ShippingAddressInput) { a.ReceiverPincode = "4000011" }, wantErr: ErrPincodeInvalid},
		{name: "short pincode", mutate: func(a *ShippingAddressInput) { a.ReceiverPincode = "40001" }, wantErr: ErrPincodeInvalid},
		{name: "missing city", mutate: func(a *ShippingAddressInput) { a.ReceiverCity = "  " }, wantErr: ErrAddressInvalid},
		{name: "missing name", mutate: func(a *ShippingAddressInput) { a.ReceiverName = "" }, wantErr: ErrAddressInvalid},
	}
	for _, item := range cases {
		t.Run(item.name, func(t *testing.T) {
			address := validTestAddress()
			item.mutate(&address)
			err := validateShippingAddress(&address)
			if !errors.Is(err, item.wantErr) {
				t.Fatalf("expected %v, got %v", item.wantErr, err)
			}
		})
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	orderService, _, _ := setupOrderServiceTest(t)
	if _, err := orderService.PlaceOrder(1, validTestAddress()); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected empty cart error, got %v", err)
	}
}

func TestPlaceOrderSnapshotsCartAndClearsIt(t *testing.T) {
	orderService, cartService, db := setupOrderServiceTest(t)
	userID := uint(5)
	product := createCartTestProduct(t, db, "Arduino Uno R3", "650.00", true)
	kit := createCartTestKit(t, db, "Home Automation Kit", "2499.00", true)

	if err := cartService.AddItem(userID, product.ID, constants.ItemKindProduct, 2); err != nil {
		t.Fatalf("add product failed: %v", err)
	}
	if err := cartService.AddItem(userID, kit.ID, constants.ItemKindKit, 1); err != nil {
		t.Fatalf("add kit failed: %v", err)
	}

	order, err := orderService.PlaceOrder(userID, validTestAddress())
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}
	if order.OrderNo == "" {
		t.Fatalf("expected an order number")
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected two snapshot lines, got %d", len(order.Items))
	}
	wantTotal := decimal.RequireFromString("3799.00")
	if !order.TotalAmount.Decimal.Equal(wantTotal) {
		t.Fatalf("expected total %s, got %s", wantTotal, order.TotalAmount.Decimal)
	}

	// Later catalog edits must not touch the snapshots.
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).Update("name", "Renamed Board").Error; err != nil {
		t.Fatalf("rename product failed: %v", err)
	}
	reloaded, err := orderService.GetByUser(order.ID, userID)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	found := false
	for _, item := range reloaded.Items {
		if item.ItemKind == constants.ItemKindProduct && item.Name == "Arduino Uno R3" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected snapshot to keep the placement-time name")
	}

	summary, err := cartService.GetCart(userID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(summary.Lines) != 0 {
		t.Fatalf("expected cart cleared after checkout, got %d lines", len(summary.Lines))
	}
}

func TestCancelOrderOnlyPending(t *testing.T) {
	orderService, cartService, db := setupOrderServiceTest(t)
	userID := uint(2)
	product := createCartTestProduct(t, db, "Servo Motor", "320.00", true)

	if err := cartService.AddItem(userID, product.ID, constants.ItemKindProduct, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := orderService.PlaceOrder(userID, validTestAddress())
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	cancelled, err := orderService.CancelOrder(order.ID, userID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.Status != constants.OrderStatusCancelled {
		t.Fatalf("expected cancelled status, got %s", cancelled.Status)
	}
	if cancelled.CancelledAt == nil {
		t.Fatalf("expected cancelled_at to be set")
	}

	if _, err := orderService.CancelOrder(order.ID, userID); !errors.Is(err, ErrOrderCancelNotAllowed) {
		t.Fatalf("expected cancel rejection on non-pending order, got %v", err)
	}

	// Other accounts never see the order.
	if _, err := orderService.CancelOrder(order.ID, userID+1); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected not found for other user, got %v", err)
	}
}

func TestDeleteOrderOnlyCancelled(t *testing.T) {
	orderService, cartService, db := setupOrderServiceTest(t)
	userID := uint(4)
	product := createCartTestProduct(t, db, "Relay Module", "150.00", true)

	if err := cartService.AddItem(userID, product.ID, constants.ItemKindProduct, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := orderService.PlaceOrder(userID, validTestAddress())
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	if err := orderService.DeleteOrder(order.ID, userID); !errors.Is(err, ErrOrderDeleteNotAllowed) {
		t.Fatalf("expected delete rejection on pending order, got %v", err)
	}

	if _, err := orderService.CancelOrder(order.ID, userID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if err := orderService.DeleteOrder(order.ID, userID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var orderCount, itemCount int64
	if err := db.Unscoped().Model(&models.Order{}).Where("id = ?", order.ID).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if err := db.Unscoped().Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error; err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if orderCount != 0 || itemCount != 0 {
		t.Fatalf("expected hard delete, got %d orders %d items", orderCount, itemCount)
	}
}

func TestUpdateOrderStatusTransitions(t *testing.T) {
	orderService, cartService, db := setupOrderServiceTest(t)
	userID := uint(6)
	product := createCartTestProduct(t, db, "Stepper Driver", "280.00", true)

	if err := cartService.AddItem(userID, product.ID, constants.ItemKindProduct, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := orderService.PlaceOrder(userID, validTestAddress())
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	// Shipping straight from pending skips payment and is rejected.
	if _, err := orderService.UpdateOrderStatus(order.ID, constants.OrderStatusShipped); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected invalid transition, got %v", err)
	}

	paid, err := orderService.UpdateOrderStatus(order.ID, constants.OrderStatusPaid)
	if err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}
	if paid.PaidAt == nil {
		t.Fatalf("expected paid_at to be set")
	}

	if _, err := orderService.UpdateOrderStatus(order.ID, constants.OrderStatusShipped); err != nil {
		t.Fatalf("mark shipped failed: %v", err)
	}
	delivered, err := orderService.UpdateOrderStatus(order.ID, constants.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("mark delivered failed: %v", err)
	}
	if delivered.Status != constants.OrderStatusDelivered {
		t.Fatalf("expected delivered, got %s", delivered.Status)
	}

	if _, err := orderService.UpdateOrderStatus(order.ID, constants.OrderStatusCancelled); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected cancel rejection after delivery, got %v", err)
	}
	if _, err := orderService.UpdateOrderStatus(order.ID, "misplaced"); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected unknown status rejection, got %v", err)
	}
}

func TestUpdateOrderStatusPaidCanBeCancelled(t *testing.T) {
	orderService, cartService, db := setupOrderServiceTest(t)
	userID := uint(7)
	product := createCartTestProduct(t, db, "IR Sensor Pair", "120.00", true)

	if err := cartService.AddItem(userID, product.ID, constants.ItemKindProduct, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := orderService.PlaceOrder(userID, validTestAddress())
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if _, err := orderService.UpdateOrderStatus(order.ID, constants.OrderStatusPaid); err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}

	cancelled, err := orderService.UpdateOrderStatus(order.ID, constants.OrderStatusCancelled)
	if err != nil {
		t.Fatalf("cancel paid order failed: %v", err)
	}
	if cancelled.Status != constants.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", cancelled.Status)
	}
	if cancelled.CancelledAt == nil {
		t.Fatalf("expected cancelled_at to be set")
	}

	// Once the parcel is on its way there is no turning back.
	other := createCartTestProduct(t, db, "Buzzer Pack", "80.00", true)
	if err := cartService.AddItem(userID, other.ID, constants.ItemKindProduct, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	second, err := orderService.PlaceOrder(userID, validTestAddress())
	if err != nil {
		t.Fatalf("place second order failed: %v", err)
	}
	if _, err := orderService.UpdateOrderStatus(second.ID, constants.OrderStatusPaid); err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}
	if _, err := orderService.UpdateOrderStatus(second.ID, constants.OrderStatusShipped); err != nil {
		t.Fatalf("mark shipped failed: %v", err)
	}
	if _, err := orderService.UpdateOrderStatus(second.ID, constants.OrderStatusCancelled); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected cancel rejection after shipping, got %v", err)
	}
}

func TestPlaceOrderRejectsDelistedLine(t *testing.T) {
	orderService, cartService, db := setupOrderServiceTest(t)
	userID := uint(8)
	keeper := createCartTestProduct(t, db, "Breadboard", "110.00", true)
	doomed := createCartTestProduct(t, db, "Discontinued Probe", "450.00", true)

	if err := cartService.AddItem(userID, keeper.ID, constants.ItemKindProduct, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := cartService.AddItem(userID, doomed.ID, constants.ItemKindProduct, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := db.Model(&models.Product{}).Where("id = ?", doomed.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("delist product failed: %v", err)
	}

	if _, err := orderService.PlaceOrder(userID, validTestAddress()); !errors.Is(err, ErrItemNotAvailable) {
		t.Fatalf("expected unavailable item error, got %v", err)
	}

	// The refusal must not place a partial order or touch the cart rows.
	var orderCount int64
	if err := db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("expected no order placed, got %d", orderCount)
	}
	var lineCount int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&lineCount).Error; err != nil {
		t.Fatalf("count cart lines failed: %v", err)
	}
	if lineCount != 2 {
		t.Fatalf("expected both cart lines kept, got %d", lineCount)
	}
}
