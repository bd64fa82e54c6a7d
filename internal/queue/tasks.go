package queue

import (
	"encoding/json"

	"github.com/circuitaura/storefront/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderStatusEmail notifies the buyer of an order status change.
	TaskOrderStatusEmail = constants.TaskOrderStatusEmail
	// TaskWelcomeEmail greets a newly registered account.
	TaskWelcomeEmail = constants.TaskWelcomeEmail
)

// OrderStatusEmailPayload is the order status task payload.
type OrderStatusEmailPayload struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}

// WelcomeEmailPayload is the welcome email task payload.
type WelcomeEmailPayload struct {
	UserID uint `json:"user_id"`
}

// NewOrderStatusEmailTask creates an order status email task.
func NewOrderStatusEmailTask(payload OrderStatusEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusEmail, body), nil
}

// NewWelcomeEmailTask creates a welcome email task.
func NewWelcomeEmailTask(payload WelcomeEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskWelcomeEmail, body), nil
}
