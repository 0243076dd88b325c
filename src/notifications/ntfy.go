// Package notifications provides the toasts shown to the user, like the one asking
// to restart the app after a source preference changes.
package notifications

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/AnthonyHewins/gotfy"

	"github.com/diogovalentte/tukangkomik/src/config"
	"github.com/diogovalentte/tukangkomik/src/util"
)

// GetNtfyPublisher returns a new NtfyPublisher
func GetNtfyPublisher(configs *config.NtfyConfigs) (*NtfyPublisher, error) {
	contextError := "could not get Ntfy publisher"

	server, err := url.Parse(configs.Address)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	customClient := &http.Client{
		Transport: &customNtfyTransport{
			ntfyToken: configs.Token,
		},
	}
	publisher, err := gotfy.NewPublisher(server, customClient)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	return &NtfyPublisher{
		Publisher: publisher,
		Topic:     configs.Topic,
		Token:     configs.Token,
	}, nil
}

type customNtfyTransport struct {
	ntfyToken string
}

func (t *customNtfyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.ntfyToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", t.ntfyToken))
	}

	return http.DefaultTransport.RoundTrip(req)
}

// NtfyPublisher is a wrapper around gotfy.Publisher
type NtfyPublisher struct {
	Publisher *gotfy.Publisher
	Topic     string
	Token     string
}

// SendMessage sends a message to the Ntfy server
func (t *NtfyPublisher) SendMessage(ctx context.Context, message *gotfy.Message) error {
	_, err := t.Publisher.SendMessage(ctx, message)
	if err != nil {
		return util.AddErrorContext("could not send message to Ntfy", err)
	}

	return nil
}

// Toast implements Toaster by sending the message to the publisher topic
func (t *NtfyPublisher) Toast(ctx context.Context, message string, _ Duration) error {
	return t.SendMessage(ctx, &gotfy.Message{
		Topic:   t.Topic,
		Title:   "Tukangkomik",
		Message: message,
	})
}
