// Package gold values the household's gold investments against the
// current market price per gram.
package gold

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spend-tracker/backend/internal/models"
)

var ErrPriceUnavailable = errors.New("the current gold price could not be fetched")

// PriceProvider returns the current gold price per gram.
type PriceProvider interface {
	PricePerGram(ctx context.Context) (decimal.Decimal, error)
}

// HTTPProvider fetches the price from an external JSON endpoint of the
// shape {"pricePerGram": "6500"}.
type HTTPProvider struct {
	URL    string
	Client *http.Client
}

func (p HTTPProvider) PricePerGram(ctx context.Context) (decimal.Decimal, error) {
	client := p.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrPriceUnavailable, err)
	}

	res, err := client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrPriceUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: upstream returned HTTP %d", ErrPriceUnavailable, res.StatusCode)
	}

	var body struct {
		PricePerGram decimal.Decimal `json:"pricePerGram"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrPriceUnavailable, err)
	}

	return body.PricePerGram, nil
}

const priceCacheKey = "gold:price-per-gram"

// CachedProvider wraps another provider with a Redis read-through
// cache. A nil Redis client disables caching, the provider then always
// asks upstream.
type CachedProvider struct {
	Provider PriceProvider
	Redis    *redis.Client
	TTL      time.Duration
}

func (p CachedProvider) PricePerGram(ctx context.Context) (decimal.Decimal, error) {
	if p.Redis != nil {
		cached, err := p.Redis.Get(ctx, priceCacheKey).Result()
		if err == nil {
			price, err := decimal.NewFromString(cached)
			if err == nil {
				return price, nil
			}
		}
	}

	price, err := p.Provider.PricePerGram(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	if p.Redis != nil {
		ttl := p.TTL
		if ttl == 0 {
			ttl = 15 * time.Minute
		}

		if err := p.Redis.SetEx(ctx, priceCacheKey, price.String(), ttl).Err(); err != nil {
			// Caching is best effort, a failed write only costs an
			// upstream call next time
			log.Warn().Err(err).Msg("gold price could not be cached")
		}
	}

	return price, nil
}

// Item is the valuation of a single gold investment.
type Item struct {
	ID                     string          `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Owner                  string          `json:"owner" example:"Asha"`
	Amount                 decimal.Decimal `json:"amount" example:"65000"`
	PricePerGramAtPurchase decimal.Decimal `json:"pricePerGramAtPurchase" example:"6500"`
	Grams                  decimal.Decimal `json:"grams" example:"10"`
	CurrentValue           decimal.Decimal `json:"currentValue" example:"71000"`
}

// Valuation is the combined valuation of all gold investments.
type Valuation struct {
	CurrentPricePerGram decimal.Decimal `json:"currentPricePerGram" example:"7100"`
	Items               []Item          `json:"items"`
	TotalInvested       decimal.Decimal `json:"totalInvested" example:"65000"`
	TotalCurrentValue   decimal.Decimal `json:"totalCurrentValue" example:"71000"`
}

// Value computes the valuation of all gold investments in the list.
// Investments of other types, and gold entries without a purchase
// price, are skipped: without the price per gram at purchase there is
// no way to know how many grams the amount bought.
func Value(investments []models.Investment, currentPricePerGram decimal.Decimal) Valuation {
	valuation := Valuation{
		CurrentPricePerGram: currentPricePerGram,
		Items:               make([]Item, 0),
	}

	for _, investment := range investments {
		if investment.Type != models.InvestmentTypeGold {
			continue
		}

		if investment.PricePerGramAtPurchase == nil || !investment.PricePerGramAtPurchase.IsPositive() {
			continue
		}

		grams := investment.Amount.Div(*investment.PricePerGramAtPurchase)
		item := Item{
			ID:                     investment.ID.String(),
			Owner:                  investment.Owner,
			Amount:                 investment.Amount,
			PricePerGramAtPurchase: *investment.PricePerGramAtPurchase,
			Grams:                  grams,
			CurrentValue:           grams.Mul(currentPricePerGram),
		}

		valuation.Items = append(valuation.Items, item)
		valuation.TotalInvested = valuation.TotalInvested.Add(item.Amount)
		valuation.TotalCurrentValue = valuation.TotalCurrentValue.Add(item.CurrentValue)
	}

	return valuation
}
