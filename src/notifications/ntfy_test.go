package notifications

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/diogovalentte/tukangkomik/src/config"
)

func TestNtfyToast(t *testing.T) {
	var authorization, body, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		path = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"abc123","time":1700000000,"event":"message","topic":"tukangkomik","message":"ok"}`))
	}))
	defer server.Close()

	publisher, err := GetNtfyPublisher(&config.NtfyConfigs{
		Address: server.URL,
		Topic:   "tukangkomik",
		Token:   "secret",
	})
	if err != nil {
		t.Fatalf("error getting ntfy publisher: %v", err)
	}

	err = publisher.Toast(context.Background(), "Restart the app to apply the new setting.", LengthLong)
	if err != nil {
		t.Fatalf("error sending toast: %v", err)
	}

	if authorization != "Bearer secret" {
		t.Fatalf("expected bearer token, got %q", authorization)
	}
	if !strings.Contains(body+path, "tukangkomik") {
		t.Fatalf("expected topic in the request, got body %q and path %q", body, path)
	}
	if !strings.Contains(body, "Restart the app to apply the new setting.") {
		t.Fatalf("expected message in the request body, got %q", body)
	}
}

type failingToaster struct{}

func (failingToaster) Toast(context.Context, string, Duration) error {
	return errors.New("toast failed")
}

type countingToaster struct{ count int }

func (c *countingToaster) Toast(context.Context, string, Duration) error {
	c.count++
	return nil
}

func TestMultiToaster(t *testing.T) {
	log := zerolog.Nop()
	counter := &countingToaster{}
	toaster := MultiToaster{failingToaster{}, &LogToaster{Log: &log}, counter}

	err := toaster.Toast(context.Background(), "message", LengthShort)
	if err == nil || !strings.Contains(err.Error(), "toast failed") {
		t.Fatalf("expected joined error, got %v", err)
	}
	if counter.count != 1 {
		t.Fatalf("expected every toaster to be called, got %d calls", counter.count)
	}
}
