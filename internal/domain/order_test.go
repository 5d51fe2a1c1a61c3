package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acastellanos/tradegate/internal/domain"
)

func validOrder() domain.Order {
	return domain.Order{
		Ticker:     "BTCUSD-2025E1",
		Side:       "yes",
		Count:      5,
		PriceCents: 50,
		Action:     "buy",
	}
}

func TestOrderNormalize(t *testing.T) {
	cases := map[string]struct {
		mutate  func(*domain.Order)
		wantErr string
	}{
		"valid":           {mutate: func(o *domain.Order) {}},
		"boundary prices": {mutate: func(o *domain.Order) { o.PriceCents = 0 }},
		"max price":       {mutate: func(o *domain.Order) { o.PriceCents = 100 }},
		"sell no":         {mutate: func(o *domain.Order) { o.Side, o.Action = "no", "sell" }},

		"missing ticker": {
			mutate:  func(o *domain.Order) { o.Ticker = "" },
			wantErr: "ticker",
		},
		"bad side": {
			mutate:  func(o *domain.Order) { o.Side = "maybe" },
			wantErr: "side",
		},
		"zero count": {
			mutate:  func(o *domain.Order) { o.Count = 0 },
			wantErr: "count",
		},
		"negative count": {
			mutate:  func(o *domain.Order) { o.Count = -2 },
			wantErr: "count",
		},
		"price above range": {
			mutate:  func(o *domain.Order) { o.PriceCents = 101 },
			wantErr: "price",
		},
		"negative price": {
			mutate:  func(o *domain.Order) { o.PriceCents = -1 },
			wantErr: "price",
		},
		"bad action": {
			mutate:  func(o *domain.Order) { o.Action = "hold" },
			wantErr: "action",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			order := validOrder()
			tc.mutate(&order)

			err := order.Normalize()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestOrderNormalize_DefaultsType(t *testing.T) {
	order := validOrder()
	require.Empty(t, order.OrderType)

	require.NoError(t, order.Normalize())
	assert.Equal(t, "limit", order.OrderType)

	order.OrderType = "market"
	require.NoError(t, order.Normalize())
	assert.Equal(t, "market", order.OrderType, "an explicit type is kept")
}

func TestOutcomeJSONShapes(t *testing.T) {
	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("simulation", func(t *testing.T) {
		data, err := json.Marshal(domain.Simulated("BTCUSD-2025E1", at))
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		assert.Equal(t, "simulation", m["status"])
		assert.Equal(t, "BTCUSD-2025E1", m["trade_id"])
		assert.Contains(t, m, "timestamp")
		assert.NotContains(t, m, "client_order_id")
		assert.NotContains(t, m, "details")
	})

	t.Run("submitted", func(t *testing.T) {
		data, err := json.Marshal(domain.Submitted("c1", "u1"))
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		assert.Equal(t, "submitted", m["status"])
		assert.Equal(t, "c1", m["client_order_id"])
		assert.Equal(t, "u1", m["order_id"])
		assert.NotContains(t, m, "timestamp", "zero timestamps stay off the wire")
	})

	t.Run("error", func(t *testing.T) {
		data, err := json.Marshal(domain.SubmitFailed("Unauthorized"))
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		assert.Equal(t, "error", m["status"])
		assert.Equal(t, "Unauthorized", m["details"])
	})
}
