package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/circuitaura/storefront/internal/i18n"
	"github.com/circuitaura/storefront/internal/models"

	"github.com/shopspring/decimal"
)

func TestBuildOrderStatusContent(t *testing.T) {
	tests := []struct {
		name                string
		locale              string
		orderNo             string
		status              string
		wantSubjectContains []string
		wantBodyContains    []string
	}{
		{
			name:    "placed_en",
			locale:  i18n.LocaleEN,
			orderNo: "CA-PLACED",
			status:  "pending",
			wantSubjectContains: []string{
				"Your order is now",
				"Pending",
			},
			wantBodyContains: []string{
				"We received your order CA-PLACED",
				"payable on delivery",
			},
		},
		{
			name:    "shipped_en",
			locale:  i18n.LocaleEN,
			orderNo: "CA-SHIP",
			status:  "shipped",
			wantSubjectContains: []string{
				"Your order is now",
				"Shipped",
			},
			wantBodyContains: []string{
				"Order CA-SHIP is now Shipped",
				"cash on delivery",
			},
		},
		{
			name:    "cancelled_hi",
			locale:  "hi-IN",
			orderNo: "CA-CANCEL",
			status:  "cancelled",
			wantSubjectContains: []string{
				"रद्द",
			},
			wantBodyContains: []string{
				"CA-CANCEL",
			},
		},
		{
			name:    "unknown_status_falls_back_to_raw",
			locale:  i18n.LocaleEN,
			orderNo: "CA-RAW",
			status:  "archived",
			wantSubjectContains: []string{
				"archived",
			},
			wantBodyContains: []string{
				"Order CA-RAW is now archived",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := OrderStatusEmailInput{
				OrderNo:  tt.orderNo,
				Status:   tt.status,
				Amount:   models.NewMoneyFromDecimal(decimal.NewFromFloat(549)),
				Currency: "INR",
			}
			subject, body := buildOrderStatusContent(input, tt.locale)
			for _, expected := range tt.wantSubjectContains {
				if !strings.Contains(subject, expected) {
					t.Fatalf("subject missing %q: %s", expected, subject)
				}
			}
			for _, expected := range tt.wantBodyContains {
				if !strings.Contains(body, expected) {
					t.Fatalf("body missing %q: %s", expected, body)
				}
			}
		})
	}
}

func TestIsEmailRecipientRejected(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "smtp_550_no_such_recipient",
			err:  errors.New("550 No such recipient here"),
			want: true,
		},
		{
			name: "smtp_user_unknown",
			err:  errors.New("SMTP 5.1.1 user unknown"),
			want: true,
		},
		{
			name: "smtp_550_mailbox_unavailable",
			err:  errors.New("550 mailbox unavailable"),
			want: true,
		},
		{
			name: "network_timeout",
			err:  errors.New("dial tcp timeout"),
			want: false,
		},
		{
			name: "nil_error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isEmailRecipientRejected(tt.err); got != tt.want {
				t.Fatalf("isEmailRecipientRejected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeEmailSendError(t *testing.T) {
	rejected := errors.New("550 No such recipient here")
	if got := normalizeEmailSendError(rejected); !errors.Is(got, ErrEmailRecipientRejected) {
		t.Fatalf("normalizeEmailSendError() expected ErrEmailRecipientRejected, got %v", got)
	}

	networkErr := errors.New("dial tcp timeout")
	if got := normalizeEmailSendError(networkErr); !errors.Is(got, networkErr) {
		t.Fatalf("normalizeEmailSendError() should keep original error, got %v", got)
	}

	if got := normalizeEmailSendError(nil); got != nil {
		t.Fatalf("normalizeEmailSendError(nil) should be nil, got %v", got)
	}
}

func TestSendOrderStatusEmailDisabled(t *testing.T) {
	svc := NewEmailService(nil)
	err := svc.SendOrderStatusEmail("buyer@example.com", OrderStatusEmailInput{
		OrderNo: "CA-OFF",
		Status:  "paid",
	}, i18n.LocaleEN)
	if !errors.Is(err, ErrEmailServiceDisabled) {
		t.Fatalf("expected ErrEmailServiceDisabled, got %v", err)
	}
}
