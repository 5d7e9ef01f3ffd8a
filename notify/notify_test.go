package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cyarp/commchar/logging"
	"github.com/google/go-cmp/cmp"
)

func TestWebhookPostsJSON(t *testing.T) {
	var (
		got         message
		contentType string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Error(err)
		}
		if err := json.Unmarshal(body, &got); err != nil {
			t.Error(err)
		}
	}))
	defer srv.Close()

	var buf bytes.Buffer
	w := &Webhook{URL: srv.URL, Client: srv.Client(), Logger: logging.NewWithDest(&buf, "notify")}
	w.Notify(context.Background(), "*Sweep Starting*\nHost: bench1")

	if diff := cmp.Diff(message{Text: "*Sweep Starting*\nHost: bench1"}, got); diff != "" {
		t.Errorf("posted message mismatch (-want +got):\n%s", diff)
	}
	if contentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", contentType)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %s", buf.String())
	}
}

func TestWebhookFailuresAreWarnings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()
	closed := httptest.NewServer(http.NotFoundHandler())
	closed.Close()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "MissingURL", url: "", want: "Could not read webhook url"},
		{name: "BadStatus", url: srv.URL, want: "code 403"},
		{name: "ConnectionError", url: closed.URL, want: "connection error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := &Webhook{URL: tt.url, Logger: logging.NewWithDest(&buf, "notify")}
			w.Notify(context.Background(), "msg")
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("log output %q does not contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvURL, "http://example.invalid/hook")
	if got := FromEnv(logging.Nop()).URL; got != "http://example.invalid/hook" {
		t.Errorf("URL = %q", got)
	}
}
