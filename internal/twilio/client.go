package twilio

import (
	"context"
	"fmt"
	"strings"

	"github.com/pathakanu/medReminder/internal/notify"
	twilio "github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// Client forwards reminder notifications to one WhatsApp recipient.
type Client struct {
	api          messageCreator
	fromWhatsApp string
	toWhatsApp   string
}

// New creates a Twilio client bound to the configured sender and recipient numbers.
func New(accountSID, authToken, fromWhatsApp, toWhatsApp string) *Client {
	rest := twilio.NewRestClientWithParams(twilio.ClientParams{Username: accountSID, Password: authToken})
	return &Client{
		api:          rest.Api,
		fromWhatsApp: fromWhatsApp,
		toWhatsApp:   toWhatsApp,
	}
}

// Notify sends the notification as a WhatsApp message.
func (c *Client) Notify(_ context.Context, n notify.Notification) error {
	if c.api == nil {
		return fmt.Errorf("twilio client not initialised")
	}

	sender := normalizeWhatsAppAddress(c.fromWhatsApp)
	if sender == "" {
		return fmt.Errorf("twilio sender WhatsApp number is not configured")
	}
	recipient := normalizeWhatsAppAddress(c.toWhatsApp)
	if recipient == "" {
		return fmt.Errorf("recipient number missing or invalid")
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(recipient)
	params.SetFrom(sender)
	params.SetBody(n.Title + "\n" + n.Message)

	if _, err := c.api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send message error: %w", err)
	}
	return nil
}

func normalizeWhatsAppAddress(number string) string {
	trimmed := strings.TrimSpace(number)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "whatsapp:") {
		return trimmed
	}
	if strings.HasPrefix(trimmed, "+") {
		return "whatsapp:" + trimmed
	}
	return "whatsapp:+" + trimmed
}
