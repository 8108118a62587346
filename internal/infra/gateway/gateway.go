package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"experience-market/internal/pkg/config"
	"experience-market/internal/pkg/errs"
	"experience-market/internal/usecase/commands"
)

type State string

const (
	StateUninitialized State = "uninitialized"
	StateReady         State = "ready"
	StateDegraded      State = "degraded"
)

// Adapter is the process-wide client for the external payment gateway.
// Initialization is lazy and happens exactly once: concurrent first callers
// collapse into a single attempt and observe the same outcome. Missing or
// invalid credentials put the adapter into degraded mode, logged once, and
// every Charge fails fast until the process is restarted.
type Adapter struct {
	cfg        config.GatewayConfig
	logger     *slog.Logger
	httpClient *http.Client

	initOnce sync.Once
	mu       sync.RWMutex
	state    State
	reason   string
}

func NewAdapter(cfg config.GatewayConfig, logger *slog.Logger) *Adapter {
	return &Adapter{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		state: StateUninitialized,
	}
}

func (a *Adapter) initialize() {
	var missing []string
	if strings.TrimSpace(a.cfg.APIKey) == "" {
		missing = append(missing, "api_key")
	}
	if strings.TrimSpace(a.cfg.Secret) == "" {
		missing = append(missing, "secret")
	}
	if strings.TrimSpace(a.cfg.Endpoint) == "" {
		missing = append(missing, "endpoint")
	}

	if len(missing) > 0 {
		a.setDegraded("missing configuration: " + strings.Join(missing, ", "))
		return
	}

	endpoint, err := url.Parse(a.cfg.Endpoint)
	if err != nil || endpoint.Scheme == "" || endpoint.Host == "" {
		a.setDegraded("invalid endpoint: " + a.cfg.Endpoint)
		return
	}

	a.mu.Lock()
	a.state = StateReady
	a.mu.Unlock()
}

// setDegraded records the reason and logs the single startup warning. Charge
// never logs per request in degraded mode.
func (a *Adapter) setDegraded(reason string) {
	a.mu.Lock()
	a.state = StateDegraded
	a.reason = reason
	a.mu.Unlock()
	a.logger.Warn("payment gateway entering degraded mode", "reason", reason)
}

func (a *Adapter) State() State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

type chargeRequest struct {
	BookingID   string `json:"booking_id"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

type chargeResponse struct {
	TransactionID string `json:"transaction_id"`
	AmountCents   int64  `json:"amount_cents"`
	Currency      string `json:"currency"`
	Error         string `json:"error"`
}

// Charge executes a payment against the gateway. In degraded mode it fails
// fast with errs.ErrGatewayDegraded and performs no network I/O.
func (a *Adapter) Charge(ctx context.Context, order commands.ChargeOrder) (*commands.ChargeReceipt, error) {
	a.initOnce.Do(a.initialize)

	if a.State() != StateReady {
		return nil, errs.ErrGatewayDegraded
	}

	body, err := json.Marshal(chargeRequest{
		BookingID:   order.BookingID.String(),
		AmountCents: order.AmountCents,
		Currency:    order.Currency,
		Description: order.Description,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrGatewayCharge)
	}

	endpoint := strings.TrimRight(a.cfg.Endpoint, "/") + "/charges"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrGatewayCharge)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", a.cfg.APIKey)
	req.Header.Set("X-Signature", a.sign(body))

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrGatewayCharge)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrGatewayCharge)
	}

	var decoded chargeResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, errs.Mark(err, errs.ErrGatewayCharge)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := decoded.Error
		if msg == "" {
			msg = fmt.Sprintf("gateway returned status %d", resp.StatusCode)
		}
		return nil, errs.Mark(errs.New(msg), errs.ErrGatewayCharge)
	}

	if decoded.TransactionID == "" {
		return nil, errs.Mark(errs.New("gateway response missing transaction id"), errs.ErrGatewayCharge)
	}

	return &commands.ChargeReceipt{
		TransactionID: decoded.TransactionID,
		AmountCents:   decoded.AmountCents,
		Currency:      decoded.Currency,
	}, nil
}

func (a *Adapter) sign(payload []byte) string {
	mac := hmac.New(sha256.New, []byte(a.cfg.Secret))
	_, _ = mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
