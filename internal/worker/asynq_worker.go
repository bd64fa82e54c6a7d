package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/circuitaura/storefront/internal/logger"
	"github.com/circuitaura/storefront/internal/provider"
	"github.com/circuitaura/storefront/internal/queue"
	"github.com/circuitaura/storefront/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer handles async notification tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register wires task handlers onto the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusEmail, c.handleOrderStatusEmail)
	mux.HandleFunc(queue.TaskWelcomeEmail, c.handleWelcomeEmail)
}

func (c *Consumer) handleOrderStatusEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_status_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_email_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	receiverEmail, locale, err := c.OrderRepo.ResolveReceiverByOrderID(order.ID)
	if err != nil {
		logger.Warnw("worker_order_status_email_resolve_receiver_failed", "order_id", order.ID, "error", err)
		return err
	}
	if receiverEmail == "" {
		logger.Debugw("worker_order_status_email_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_status_email_skip_email_service_nil", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = order.Status
	}
	input := service.OrderStatusEmailInput{
		OrderNo:  order.OrderNo,
		Status:   status,
		Amount:   order.TotalAmount,
		Currency: order.Currency,
	}
	if err := c.EmailService.SendOrderStatusEmail(receiverEmail, input, locale); err != nil {
		logger.Warnw("worker_order_status_email_send_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"receiver_email", receiverEmail,
			"status", status,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleWelcomeEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_welcome_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.WelcomeEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_welcome_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.UserID == 0 {
		logger.Debugw("worker_welcome_email_skip_invalid_payload", "user_id", payload.UserID)
		return nil
	}
	user, err := c.UserRepo.GetByID(payload.UserID)
	if err != nil {
		logger.Warnw("worker_welcome_email_fetch_user_failed", "user_id", payload.UserID, "error", err)
		return err
	}
	if user == nil || strings.TrimSpace(user.Email) == "" {
		logger.Debugw("worker_welcome_email_skip_user_not_found", "user_id", payload.UserID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_welcome_email_skip_email_service_nil", "user_id", user.ID)
		return nil
	}
	if err := c.EmailService.SendWelcomeEmail(user.Email, user.Name, user.Locale); err != nil {
		logger.Warnw("worker_welcome_email_send_failed", "user_id", user.ID, "error", err)
		return err
	}
	return nil
}
