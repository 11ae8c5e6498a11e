// Package httpvault implements the VaultService contract against a remote
// yield vault exposing a minimal REST surface. All calls go through a
// circuit breaker so a flapping vault trips fast instead of piling up
// timeouts.
package httpvault

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/feevault-network/feevault-daemon/pkg/circuitbreaker"
	"github.com/sony/gobreaker"
)

const requestTimeout = 15 * time.Second

// Service is an HTTP client for the external yield vault.
type Service struct {
	baseURL string
	// account identifies the module towards the vault (onBehalfOf/to).
	account string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

// NewService returns a vault client for the given base url, acting on behalf
// of the given account.
func NewService(baseURL, account string) *Service {
	return &Service{
		baseURL: baseURL,
		account: account,
		client:  &http.Client{Timeout: requestTimeout},
		breaker: circuitbreaker.NewCircuitBreaker("vault"),
	}
}

type supplyRequest struct {
	Asset      string `json:"asset"`
	Amount     uint64 `json:"amount"`
	OnBehalfOf string `json:"onBehalfOf"`
}

type withdrawRequest struct {
	Asset  string `json:"asset"`
	Amount uint64 `json:"amount"`
	To     string `json:"to"`
}

type withdrawResponse struct {
	Released uint64 `json:"released"`
}

type balanceResponse struct {
	Balance uint64 `json:"balance"`
}

func (s *Service) Supply(ctx context.Context, asset string, amount uint64) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return nil, s.post(ctx, "/supply", supplyRequest{
			Asset:      asset,
			Amount:     amount,
			OnBehalfOf: s.account,
		}, nil)
	})
	return err
}

func (s *Service) Withdraw(
	ctx context.Context, asset string, amount uint64,
) (uint64, error) {
	released, err := s.breaker.Execute(func() (interface{}, error) {
		var resp withdrawResponse
		if err := s.post(ctx, "/withdraw", withdrawRequest{
			Asset:  asset,
			Amount: amount,
			To:     s.account,
		}, &resp); err != nil {
			return nil, err
		}
		return resp.Released, nil
	})
	if err != nil {
		return 0, err
	}
	return released.(uint64), nil
}

func (s *Service) ReportedBalance(
	ctx context.Context, asset string,
) (uint64, error) {
	balance, err := s.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(
			ctx, http.MethodGet,
			fmt.Sprintf("%s/balance/%s?account=%s", s.baseURL, asset, s.account),
			nil,
		)
		if err != nil {
			return nil, err
		}

		var resp balanceResponse
		if err := s.do(req, &resp); err != nil {
			return nil, err
		}
		return resp.Balance, nil
	})
	if err != nil {
		return 0, err
	}
	return balance.(uint64), nil
}

func (s *Service) post(
	ctx context.Context, path string, body, out interface{},
) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(payload),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return s.do(req, out)
}

func (s *Service) do(req *http.Request, out interface{}) error {
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("vault returned status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
