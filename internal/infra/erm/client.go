package erm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/H-Ngomijana/ERM/internal/domain/entity"
	"go.uber.org/zap"
)

// Client submits vehicle entries to the ERM API. One synchronous POST per
// accepted detection with a bounded timeout; there is no retry.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *Client) SubmitEntry(ctx context.Context, entry entity.VehicleEntry) (*entity.EntryResult, error) {
	body, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("marshal entry: %w", err)
	}

	url := c.baseURL + "/api/camera/vehicle-entry"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post vehicle entry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("vehicle entry rejected: status %d: %s", resp.StatusCode, string(msg))
	}

	var result entity.EntryResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		// a 200 with an unparseable body still counts as delivered
		c.logger.Warn("could not decode entry response", zap.Error(err))
		return &entity.EntryResult{}, nil
	}
	return &result, nil
}
