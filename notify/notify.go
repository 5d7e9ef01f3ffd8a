// Package notify posts status messages to a chat webhook.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/cyarp/commchar/logging"
)

// EnvURL is the environment variable holding the webhook URL.
const EnvURL = "SLACK_API_URL"

// Notifier sends status messages. Failing to deliver a message is not an
// error for the caller; notifiers log a warning and continue.
type Notifier interface {
	Notify(ctx context.Context, msg string)
}

// Webhook posts messages as {"text": msg} JSON to a Slack compatible incoming webhook.
type Webhook struct {
	URL    string
	Client *http.Client
	Logger logging.Logger
}

// FromEnv returns a Webhook posting to the URL in $SLACK_API_URL. If the
// variable is unset, every Notify logs a warning instead.
func FromEnv(logger logging.Logger) *Webhook {
	return &Webhook{
		URL:    os.Getenv(EnvURL),
		Client: &http.Client{Timeout: 10 * time.Second},
		Logger: logger,
	}
}

type message struct {
	Text string `json:"text"`
}

// Notify posts msg to the webhook.
func (w *Webhook) Notify(ctx context.Context, msg string) {
	if w.URL == "" {
		w.Logger.Warn("Could not read webhook url")
		return
	}
	body, err := json.Marshal(message{Text: msg})
	if err != nil {
		w.Logger.Warnf("Could not encode webhook message: %v", err)
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		w.Logger.Warnf("Could not create webhook request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	client := w.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		w.Logger.Warnf("Webhook connection error ... continuing: %v", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		w.Logger.Warnf("Could not post webhook message, code %d ... continuing", resp.StatusCode)
	}
}

type nop struct{}

func (nop) Notify(context.Context, string) {}

// Nop returns a Notifier that drops every message.
func Nop() Notifier {
	return nop{}
}

// Func adapts a function to the Notifier interface.
type Func func(ctx context.Context, msg string)

// Notify calls f.
func (f Func) Notify(ctx context.Context, msg string) {
	f(ctx, msg)
}
