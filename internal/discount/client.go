// Package discount — клиент внешнего сервиса скидок.
package discount

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"catalog/internal/domain"
)

// DefaultEndpoint — адрес сервиса скидок по умолчанию
const DefaultEndpoint = "https://6680a0be56c2c76b495c7127.mockapi.io/v1/product"

// Client запрашивает список скидок по HTTP. Ошибки не пересекают границу
// клиента: сбой транспорта, неуспешный статус и битый JSON превращаются
// в ok=false, fallback выбирает вызывающая сторона
type Client struct {
	http *http.Client
	url  string
	log  *slog.Logger
}

func NewClient(httpClient *http.Client, url string, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if url == "" {
		url = DefaultEndpoint
	}
	return &Client{http: httpClient, url: url, log: log}
}

// Fetch выполняет один GET без повторов и возвращает список скидок
func (c *Client) Fetch(ctx context.Context) (bool, []domain.DiscountRecord) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		c.log.Error("discount: build request", "err", err)
		return false, nil
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("discount: request failed", "err", err)
		return false, nil
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Error("discount: unexpected status", "status", resp.StatusCode)
		return false, nil
	}
	var records []domain.DiscountRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		c.log.Error("discount: decode response", "err", err)
		return false, nil
	}
	return true, records
}
