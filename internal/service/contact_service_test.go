package service

import (
	"strings"
	"testing"

	"github.com/circuitaura/storefront/internal/config"
	"github.com/circuitaura/storefront/internal/models"

	"github.com/shopspring/decimal"
)

func contactTestConfig() config.StoreConfig {
	return config.StoreConfig{
		Name:     "CircuitAura Electronics",
		Currency: "INR",
		Contact: config.StoreContactConfig{
			WhatsApp: "+91 93222 91932",
			Email:    "circuitauraelectronics@gmail.com",
			Phone:    "+91 93222 91932",
		},
	}
}

func TestContactInfoLinks(t *testing.T) {
	svc := NewContactService(contactTestConfig())
	info := svc.Info()

	if info.WhatsApp != "919322291932" {
		t.Fatalf("expected digits-only whatsapp number, got %s", info.WhatsApp)
	}
	if info.WhatsAppLink != "https://wa.me/919322291932" {
		t.Fatalf("unexpected whatsapp link: %s", info.WhatsAppLink)
	}
	if info.MailtoLink != "mailto:circuitauraelectronics@gmail.com" {
		t.Fatalf("unexpected mailto link: %s", info.MailtoLink)
	}
}

func TestBuildEnquiryLinks(t *testing.T) {
	svc := NewContactService(contactTestConfig())
	price := models.NewMoneyFromDecimal(decimal.RequireFromString("1499.00"))

	links := svc.BuildEnquiry("Line Follower Kit", price, "INR")
	if !strings.Contains(links.Message, "Line Follower Kit") {
		t.Fatalf("expected item name in message, got %s", links.Message)
	}
	if !strings.HasPrefix(links.WhatsAppLink, "https://wa.me/919322291932?text=") {
		t.Fatalf("unexpected whatsapp link: %s", links.WhatsAppLink)
	}
	if strings.Contains(links.WhatsAppLink, " ") {
		t.Fatalf("whatsapp link must be url encoded: %s", links.WhatsAppLink)
	}
	if !strings.HasPrefix(links.MailtoLink, "mailto:circuitauraelectronics@gmail.com?") {
		t.Fatalf("unexpected mailto link: %s", links.MailtoLink)
	}
	if strings.Contains(links.MailtoLink, "+") {
		t.Fatalf("mailto link must use percent escaping for spaces: %s", links.MailtoLink)
	}
}

func TestBuildEnquiryWithoutContactEndpoints(t *testing.T) {
	svc := NewContactService(config.StoreConfig{Name: "Bare Store"})
	links := svc.BuildEnquiry("Breadboard", models.NewMoneyFromDecimal(decimal.NewFromInt(120)), "INR")
	if links.WhatsAppLink != "" || links.MailtoLink != "" {
		t.Fatalf("expected empty links without endpoints, got %+v", links)
	}
	if links.Message == "" {
		t.Fatalf("expected a message even without endpoints")
	}
}
