// Package whatsapp delivers customer notifications through the WhatsApp
// Business Cloud API. One Send call produces one text message, preceded
// by an image message per attached photo link.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"freight/internal/core/ports"
)

const requestTimeout = 20 * time.Second

// Sender implements MessageSender against the Cloud API.
type Sender struct {
	baseURL       string
	phoneNumberID string
	accessToken   string
	http          *http.Client
}

// NewSender creates a WhatsApp sender for the given business phone number.
func NewSender(baseURL, phoneNumberID, accessToken string) *Sender {
	return &Sender{
		baseURL:       baseURL,
		phoneNumberID: phoneNumberID,
		accessToken:   accessToken,
		http:          &http.Client{Timeout: requestTimeout},
	}
}

type textPayload struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

type imagePayload struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Image            struct {
		Link string `json:"link"`
	} `json:"image"`
}

// Send delivers one outgoing message. Photo links go out first so the
// text lands last in the recipient's chat.
func (s *Sender) Send(ctx context.Context, message ports.OutgoingMessage) error {
	for _, link := range message.MediaURLs {
		payload := imagePayload{
			MessagingProduct: "whatsapp",
			To:               message.Phone,
			Type:             "image",
		}
		payload.Image.Link = link
		if err := s.post(ctx, payload); err != nil {
			return err
		}
	}

	if message.Body == "" {
		return nil
	}

	payload := textPayload{
		MessagingProduct: "whatsapp",
		To:               message.Phone,
		Type:             "text",
	}
	payload.Text.Body = message.Body
	return s.post(ctx, payload)
}

func (s *Sender) post(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/%s/messages", s.baseURL, s.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("whatsapp send: api returned %s: %s", resp.Status, detail)
	}

	return nil
}
