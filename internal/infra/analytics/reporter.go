package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"experience-market/internal/pkg/config"
	"experience-market/internal/usecase/commands"
)

// PurchaseMarker claims a transaction id for reporting. TryMark returns true
// only for the first caller; replays see false.
type PurchaseMarker interface {
	TryMark(ctx context.Context, transactionID string) (bool, error)
}

// Reporter forwards completed purchases to the analytics sink. It is
// fire-and-forget: every failure is logged and swallowed so the checkout
// response never depends on analytics availability.
type Reporter struct {
	cfg        config.AnalyticsConfig
	marker     PurchaseMarker
	logger     *slog.Logger
	httpClient *http.Client
}

func NewReporter(cfg config.AnalyticsConfig, marker PurchaseMarker, logger *slog.Logger) *Reporter {
	return &Reporter{
		cfg:    cfg,
		marker: marker,
		logger: logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (r *Reporter) Report(ctx context.Context, event commands.PurchaseEvent) {
	if event.TransactionID == "" {
		r.logger.Warn("purchase event skipped: empty transaction id")
		return
	}

	claimed, err := r.marker.TryMark(ctx, event.TransactionID)
	if err != nil {
		r.logger.Error("purchase event marker failed",
			"transaction_id", event.TransactionID, "error", err)
		return
	}
	if !claimed {
		// Already reported (e.g. a retried checkout replaying the same
		// gateway transaction).
		r.logger.Debug("purchase event already reported",
			"transaction_id", event.TransactionID)
		return
	}

	if r.cfg.Endpoint == "" {
		r.logger.Debug("analytics sink not configured, dropping purchase event",
			"transaction_id", event.TransactionID)
		return
	}

	if err := r.send(ctx, event); err != nil {
		r.logger.Error("purchase event delivery failed",
			"transaction_id", event.TransactionID, "error", err)
	}
}

func (r *Reporter) send(ctx context.Context, event commands.PurchaseEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if r.cfg.APISecret != "" {
		req.Header.Set("Authorization", "Bearer "+r.cfg.APISecret)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("analytics sink returned status %d", resp.StatusCode)
	}
	return nil
}
