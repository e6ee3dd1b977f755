// file: internals/features/billing/subscriptions/service/paystack.go
package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

// PaystackClient memanggil REST API gateway (initialize + verify).
// Outbound saja; webhook inbound diverifikasi di webhook.go.
type PaystackClient struct {
	BaseURL   string
	SecretKey string
	HTTP      *http.Client
}

func NewPaystackClient(baseURL, secretKey string) *PaystackClient {
	return &PaystackClient{
		BaseURL:   baseURL,
		SecretKey: secretKey,
		HTTP:      &http.Client{Timeout: 10 * time.Second},
	}
}

type InitializeRequest struct {
	Email      string                 `json:"email"`
	AmountKobo int64                  `json:"amount"`
	Reference  string                 `json:"reference"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

type InitializeResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type VerifyResponse struct {
	Status     string `json:"status"` // "success" saat charge berhasil
	Reference  string `json:"reference"`
	AmountKobo int64  `json:"amount"`
	PaidAt     string `json:"paid_at"`
}

// Initialize memulai transaksi; gateway mengembalikan authorization_url
// untuk redirect checkout.
func (p *PaystackClient) Initialize(ctx context.Context, req InitializeRequest) (*InitializeResponse, error) {
	body, err := sonic.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("paystack initialize: encode: %w", err)
	}

	data, err := p.call(ctx, http.MethodPost, "/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var out InitializeResponse
	if err := sonic.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("paystack initialize: decode: %w", err)
	}
	return &out, nil
}

// Verify mengecek ulang status transaksi — dipakai endpoint verify yang
// dipicu klien setelah redirect balik.
func (p *PaystackClient) Verify(ctx context.Context, reference string) (*VerifyResponse, error) {
	data, err := p.call(ctx, http.MethodGet, "/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, err
	}

	var out VerifyResponse
	if err := sonic.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("paystack verify: decode: %w", err)
	}
	return &out, nil
}

// call membungkus satu panggilan API dan mengembalikan field `data`
// dari envelope {status, message, data} gateway.
func (p *PaystackClient) call(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, p.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("paystack: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("paystack: read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("paystack: %s %s: status %d", method, path, resp.StatusCode)
	}

	var env struct {
		Status  bool        `json:"status"`
		Message string      `json:"message"`
		Data    interface{} `json:"data"`
	}
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("paystack: decode envelope: %w", err)
	}
	if !env.Status {
		return nil, fmt.Errorf("paystack: gateway rejected: %s", env.Message)
	}
	data, err := sonic.Marshal(env.Data)
	if err != nil {
		return nil, fmt.Errorf("paystack: re-encode data: %w", err)
	}
	return data, nil
}
