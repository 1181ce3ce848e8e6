package notify

import (
	"context"
	"errors"
	"strings"
	"time"

	"pick-your-pup/internal/domain/contact"
	"pick-your-pup/internal/platform/httpclient"
)

var ErrNoURL = errors.New("notify: webhook url is empty")

// Webhook reenvía mensajes de contacto como JSON a una URL fija.
type Webhook struct {
	client *httpclient.Client
	url    string
}

func NewWebhook(client *httpclient.Client, url string) (*Webhook, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrNoURL
	}
	if err := httpclient.ValidateURL(url); err != nil {
		return nil, err
	}
	if client == nil {
		client = httpclient.New(httpclient.Options{})
	}
	return &Webhook{client: client, url: url}, nil
}

type payload struct {
	Event     string    `json:"event"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (w *Webhook) Forward(ctx context.Context, m contact.Message) error {
	return w.client.PostJSON(ctx, w.url, payload{
		Event:     "contact.submitted",
		ID:        m.ID.String(),
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Body,
		CreatedAt: m.CreatedAt,
	})
}
