package logo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"go-apparel-api/internal/backend"
)

// History lists logo URLs the shopper used on earlier orders so they can be
// reused without a fresh upload.
//
//go:generate mockgen -source=logo_history.go -destination=../mock/logo/logo_history_mock.go -package=mock
type History interface {
	Previous(ctx context.Context, userID, token string) ([]string, error)
}

type history struct {
	backend *backend.Client
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHistory(b *backend.Client, rdb *redis.Client, logger ...*zap.Logger) History {
	l := zap.L().Named("logo.history")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("logo.history")
	}
	return &history{backend: b, rdb: rdb, logger: l}
}

const historyCacheTTL = 5 * time.Minute

type orderHistoryResponse struct {
	Orders []struct {
		LogoURL string `json:"logoUrl"`
	} `json:"orders"`
}

type cartLogsResponse struct {
	Logs []struct {
		LogoURL string `json:"logoUrl"`
	} `json:"logs"`
}

func (h *history) Previous(ctx context.Context, userID, token string) ([]string, error) {
	cacheKey := "logo:history:" + userID

	if h.rdb != nil {
		if raw, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached []string
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	var orders orderHistoryResponse
	if err := h.backend.GetJSON(ctx, "/orders/order-user/"+userID, token, &orders); err != nil {
		return nil, err
	}

	var logs cartLogsResponse
	if err := h.backend.GetJSON(ctx, "/cart/get-cart-product-logs", token, &logs); err != nil {
		// Order history already gives reusable logos; log the miss and go on.
		h.logger.Warn("cart product logs fetch failed", zap.Error(err))
	}

	seen := make(map[string]struct{})
	urls := make([]string, 0, len(orders.Orders)+len(logs.Logs))
	appendURL := func(u string) {
		if u == "" {
			return
		}
		if _, dup := seen[u]; dup {
			return
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}
	for _, o := range orders.Orders {
		appendURL(o.LogoURL)
	}
	for _, l := range logs.Logs {
		appendURL(l.LogoURL)
	}

	if h.rdb != nil {
		if raw, err := json.Marshal(urls); err == nil {
			_ = h.rdb.Set(ctx, cacheKey, raw, historyCacheTTL).Err()
		}
	}

	return urls, nil
}
