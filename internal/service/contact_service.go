package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/circuitaura/storefront/internal/config"
	"github.com/circuitaura/storefront/internal/models"
)

// ContactInfo is the store's public contact surface.
type ContactInfo struct {
	StoreName    string `json:"store_name"`
	WhatsApp     string `json:"whatsapp"`
	WhatsAppLink string `json:"whatsapp_link"`
	Email        string `json:"email"`
	MailtoLink   string `json:"mailto_link"`
	Phone        string `json:"phone"`
}

// EnquiryLinks carries prefilled contact links for one catalog item.
type EnquiryLinks struct {
	Message      string `json:"message"`
	WhatsAppLink string `json:"whatsapp_link"`
	MailtoLink   string `json:"mailto_link"`
}

// ContactService builds WhatsApp and mailto links from the configured store
// contact endpoints. No message is sent server-side; the client opens the
// links.
type ContactService struct {
	cfg config.StoreConfig
}

// NewContactService creates the contact service.
func NewContactService(cfg config.StoreConfig) *ContactService {
	return &ContactService{cfg: cfg}
}

// Info returns the store contact block.
func (s *ContactService) Info() ContactInfo {
	number := normalizeWhatsAppNumber(s.cfg.Contact.WhatsApp)
	email := strings.TrimSpace(s.cfg.Contact.Email)
	info := ContactInfo{
		StoreName: strings.TrimSpace(s.cfg.Name),
		WhatsApp:  number,
		Email:     email,
		Phone:     strings.TrimSpace(s.cfg.Contact.Phone),
	}
	if number != "" {
		info.WhatsAppLink = "https://wa.me/" + number
	}
	if email != "" {
		info.MailtoLink = "mailto:" + email
	}
	return info
}

// BuildEnquiry returns contact links prefilled with an availability question
// for one item.
func (s *ContactService) BuildEnquiry(itemName string, price models.Money, currency string) EnquiryLinks {
	name := strings.TrimSpace(itemName)
	message := fmt.Sprintf("Hi! I'm interested in %s (%s %s). Is it available?", name, strings.TrimSpace(currency), price.String())

	links := EnquiryLinks{Message: message}

	number := normalizeWhatsAppNumber(s.cfg.Contact.WhatsApp)
	if number != "" {
		links.WhatsAppLink = fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
	}

	email := strings.TrimSpace(s.cfg.Contact.Email)
	if email != "" {
		subject := fmt.Sprintf("Enquiry: %s", name)
		query := url.Values{}
		query.Set("subject", subject)
		query.Set("body", message)
		// mailto expects %20, not + for spaces.
		links.MailtoLink = "mailto:" + email + "?" + strings.ReplaceAll(query.Encode(), "+", "%20")
	}
	return links
}

func normalizeWhatsAppNumber(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
