// Package revalidate informs the frontend about view paths whose cached
// rendering went stale after an order mutation committed.
package revalidate

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// WebhookNotifier posts invalidated view paths to the frontend revalidation
// endpoint. Calls are fire-and-forget, failures are logged and dropped.
type WebhookNotifier struct {
	client *http.Client
	url    string
	logger *zap.Logger
}

// NewWebhookNotifier creates new WebhookNotifier instance
func NewWebhookNotifier(url string, logger *zap.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		url:    url,
		logger: logger,
	}
}

type invalidateRequest struct {
	Path string `json:"path"`
}

// Invalidate fires the webhook for path without waiting for the outcome
func (n *WebhookNotifier) Invalidate(path string) {
	body, err := json.Marshal(invalidateRequest{Path: path})
	if err != nil {
		n.logger.Warn("view invalidation failed", zap.String("path", path), zap.Error(err))
		return
	}

	go func() {
		resp, err := n.client.Post(n.url, "application/json", bytes.NewReader(body))
		if resp != nil {
			resp.Body.Close()
		}
		if err != nil {
			n.logger.Warn("view invalidation failed", zap.String("path", path), zap.Error(err))
		}
	}()
}

// NopNotifier discards invalidations. Used when no webhook is configured.
type NopNotifier struct{}

// Invalidate does nothing
func (NopNotifier) Invalidate(string) {}
