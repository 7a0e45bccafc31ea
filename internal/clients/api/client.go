// Package api — HTTP-клиент JSON API объявлений для веб-сервиса.
//
// Клиент не делает повторов: любой сбой (транспорт, таймаут, не-2xx, битый JSON)
// возвращается как ErrUpstream, и решение о деградации принимает вызывающий.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pribylovaa/buy-and-sell/internal/http/middleware"
	"github.com/pribylovaa/buy-and-sell/internal/models"
	"github.com/pribylovaa/buy-and-sell/pkg/log"
)

// DefaultTimeout — таймаут запроса к API по умолчанию.
const DefaultTimeout = time.Second

// ErrUpstream — API недоступно или ответило ошибкой.
var ErrUpstream = errors.New("upstream error")

// StatusError — не-2xx ответ API. Оборачивает ErrUpstream.
type StatusError struct {
	Method string
	Path   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
}

func (e *StatusError) Unwrap() error { return ErrUpstream }

// Config — параметры клиента.
type Config struct {
	BaseURL string        // например, http://localhost:3000/api/
	Timeout time.Duration // <=0 -> DefaultTimeout
}

// Client — клиент API объявлений.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New создаёт клиента.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Offers — GET /offers.
func (c *Client) Offers(ctx context.Context) ([]models.Offer, error) {
	var out []models.Offer
	if err := c.do(ctx, http.MethodGet, nil, nil, &out, "offers"); err != nil {
		return nil, err
	}
	return out, nil
}

// Offer — GET /offers/{id}.
func (c *Client) Offer(ctx context.Context, id string) (*models.Offer, error) {
	var out models.Offer
	if err := c.do(ctx, http.MethodGet, nil, nil, &out, "offers", id); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search — GET /search?query=... Пустой результат API отдаёт как 404,
// поэтому «ничего не найдено» здесь тоже ErrUpstream.
func (c *Client) Search(ctx context.Context, query string) ([]models.Offer, error) {
	var out []models.Offer
	q := url.Values{"query": []string{query}}
	if err := c.do(ctx, http.MethodGet, q, nil, &out, "search"); err != nil {
		return nil, err
	}
	return out, nil
}

// Categories — GET /categories.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, nil, nil, &out, "categories"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateOffer — POST /offers.
func (c *Client) CreateOffer(ctx context.Context, in models.OfferInput) (*models.Offer, error) {
	var out models.Offer
	if err := c.do(ctx, http.MethodPost, nil, in, &out, "offers"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOffer — PUT /offers/{id}. API отвечает текстом, тело не разбирается.
func (c *Client) UpdateOffer(ctx context.Context, id string, in models.OfferInput) error {
	return c.do(ctx, http.MethodPut, nil, in, nil, "offers", id)
}

// do выполняет запрос и декодирует JSON-ответ в out (nil — тело отбрасывается).
// Заголовок X-Request-Id прокидывается из контекста, если он там есть.
func (c *Client) do(ctx context.Context, method string, query url.Values, body, out any, path ...string) error {
	const op = "clients/api/do"

	target, err := url.JoinPath(c.baseURL, path...)
	if err != nil {
		return fmt.Errorf("%s: build url: %w: %w", op, ErrUpstream, err)
	}
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, rd)
	if err != nil {
		return fmt.Errorf("%s: create request: %w: %w", op, ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rid := middleware.RequestIDFrom(ctx); rid != "" {
		req.Header.Set(middleware.HeaderRequestID, rid)
	}

	lg := log.Op(ctx, op, "method", method, "url", target)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		lg.Warn("upstream request failed", "err", err)
		return fmt.Errorf("%s: send request: %w: %w", op, ErrUpstream, err)
	}
	defer resp.Body.Close()

	lg.Debug("upstream response", "status", resp.StatusCode, "dur", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%s: %w", op, &StatusError{Method: method, Path: req.URL.Path, Status: resp.StatusCode})
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w: %w", op, ErrUpstream, err)
	}

	return nil
}
