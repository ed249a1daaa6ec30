package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ndolgov/vaultmirror/models"
	"github.com/sethvargo/go-retry"
)

// HTTPClientConfig configures the resty-based adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// pullBackoff bounds the retry of idempotent pulls: at most 2 extra attempts
// with a constant pause. Mutating calls are never retried automatically —
// a duplicate save is harmless, but the caller decides, not the transport.
func pullBackoff() retry.Backoff {
	return retry.WithMaxRetries(2, retry.NewConstant(500*time.Millisecond))
}

type httpVaultAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
	owner uuid.UUID
}

// NewHTTPVaultAdapter builds the HTTP/REST [VaultServerAdapter].
func NewHTTPVaultAdapter(cfg HTTPClientConfig) VaultServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpVaultAdapter{client: cli}
}

func (h *httpVaultAdapter) SetToken(token string) error {
	token = strings.TrimSpace(token)

	owner, err := parseOwnerFromJWT(token)
	if err != nil {
		return fmt.Errorf("set token: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
	h.owner = owner
	return nil
}

func (h *httpVaultAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpVaultAdapter) Owner() uuid.UUID {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.owner
}

func (h *httpVaultAdapter) GetAll(ctx context.Context) ([]models.EncryptedRecord, error) {
	var records []models.EncryptedRecord

	err := retry.Do(ctx, pullBackoff(), func(ctx context.Context) error {
		resp, err := h.authedRequest(ctx).Get("/api/vault/records")
		if err != nil {
			// Transport failure; worth another attempt.
			return retry.RetryableError(fmt.Errorf("%w: %v", ErrNetwork, err))
		}
		if err = mapHTTPError(resp); err != nil {
			return err
		}

		records = records[:0]
		if err = json.Unmarshal(resp.Body(), &records); err != nil {
			return fmt.Errorf("decode records response: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get all records: %w", err)
	}

	return records, nil
}

type syncRequest struct {
	Since      int64       `json:"since"`
	DeletedIDs []uuid.UUID `json:"deleted_ids,omitempty"`
}

func (h *httpVaultAdapter) Sync(ctx context.Context, since time.Time, deletedIDs []uuid.UUID) (models.SyncDelta, error) {
	req := syncRequest{DeletedIDs: deletedIDs}
	if !since.IsZero() {
		req.Since = since.Unix()
	}

	var delta models.SyncDelta
	err := retry.Do(ctx, pullBackoff(), func(ctx context.Context) error {
		resp, err := h.authedRequest(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(req).
			Post("/api/vault/sync")
		if err != nil {
			return retry.RetryableError(fmt.Errorf("%w: %v", ErrNetwork, err))
		}
		if err = mapHTTPError(resp); err != nil {
			return err
		}

		delta = models.SyncDelta{}
		if err = json.Unmarshal(resp.Body(), &delta); err != nil {
			return fmt.Errorf("decode sync response: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.SyncDelta{}, fmt.Errorf("sync request: %w", err)
	}

	return delta, nil
}

func (h *httpVaultAdapter) Save(ctx context.Context, record models.EncryptedRecord) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Put("/api/vault/records")
	if err != nil {
		return fmt.Errorf("save record request: %w", fmt.Errorf("%w: %v", ErrNetwork, err))
	}

	return mapHTTPError(resp)
}

func (h *httpVaultAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/vault/records/" + id.String())
	if err != nil {
		return fmt.Errorf("delete record request: %w", fmt.Errorf("%w: %v", ErrNetwork, err))
	}

	return mapHTTPError(resp)
}

func (h *httpVaultAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// parseOwnerFromJWT extracts the owner uuid from the token's subject claim.
// The signature is not verified here: the client has no server key, and the
// token is only used to scope requests it sends back to the same server.
func parseOwnerFromJWT(tokenString string) (uuid.UUID, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, err
	}

	owner, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse owner from token subject: %w", err)
	}
	return owner, nil
}
