package kalshi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acastellanos/tradegate/internal/adapters/kalshi"
)

func TestBuildHeaders_KeyPair(t *testing.T) {
	key := testKey(t)
	strategy, err := kalshi.SelectStrategy(kalshi.Credentials{
		KeyID:         "my-key-id",
		PrivateKeyPEM: string(pemEncode(t, key, true)),
	})
	require.NoError(t, err)

	client := kalshi.NewClient("https://demo-api.kalshi.co/trade-api/v2", strategy)

	before := time.Now().UnixMilli()
	headers, err := client.BuildHeaders(context.Background(), http.MethodGet, "/markets")
	require.NoError(t, err)
	after := time.Now().UnixMilli()

	assert.Equal(t, "my-key-id", headers["KALSHI-ACCESS-KEY"])

	ts, err := strconv.ParseInt(headers["KALSHI-ACCESS-TIMESTAMP"], 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ts, before)
	assert.LessOrEqual(t, ts, after)

	// The signature covers "{ts}{METHOD}{fullPath}" with the versioned
	// API prefix included in the path.
	message := headers["KALSHI-ACCESS-TIMESTAMP"] + "GET" + "/trade-api/v2/markets"
	assert.NoError(t, verify(t, &key.PublicKey, []byte(message), headers["KALSHI-ACCESS-SIGNATURE"]))
}

func TestBuildHeaders_Bearer(t *testing.T) {
	strategy, err := kalshi.SelectStrategy(kalshi.Credentials{KeyID: "the-token"})
	require.NoError(t, err)

	client := kalshi.NewClient("https://demo-api.kalshi.co/trade-api/v2", strategy)

	headers, err := client.BuildHeaders(context.Background(), http.MethodGet, "/markets")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Authorization": "Bearer the-token"}, headers)
}

func TestBuildHeaders_Unauthenticated(t *testing.T) {
	strategy, err := kalshi.SelectStrategy(kalshi.Credentials{})
	require.NoError(t, err)

	client := kalshi.NewClient("https://demo-api.kalshi.co/trade-api/v2", strategy)

	headers, err := client.BuildHeaders(context.Background(), http.MethodGet, "/markets")
	require.NoError(t, err)
	assert.Empty(t, headers)
}

func TestBuildHeaders_LoginExchange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/log_in", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@b.c", body["email"])
		require.Equal(t, "hunter2", body["password"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"member_id":"m1","token":"session-token"}`))
	}))
	defer srv.Close()

	strategy, err := kalshi.SelectStrategy(kalshi.Credentials{Email: "a@b.c", Password: "hunter2"})
	require.NoError(t, err)

	client := kalshi.NewClient(srv.URL, strategy)

	headers, err := client.BuildHeaders(context.Background(), http.MethodGet, "/markets")
	require.NoError(t, err)
	assert.Equal(t, "Bearer session-token", headers["Authorization"])
}

func TestBuildHeaders_LoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"bad credentials"}`))
	}))
	defer srv.Close()

	strategy, err := kalshi.SelectStrategy(kalshi.Credentials{Email: "a@b.c", Password: "wrong"})
	require.NoError(t, err)

	client := kalshi.NewClient(srv.URL, strategy)

	_, err = client.BuildHeaders(context.Background(), http.MethodGet, "/markets")
	require.Error(t, err)

	var loginErr *kalshi.LoginError
	require.ErrorAs(t, err, &loginErr)
	assert.Equal(t, http.StatusForbidden, loginErr.Status)
	assert.Contains(t, loginErr.Body, "bad credentials")
}

func TestBuildHeaders_LoginWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"member_id":"m1"}`))
	}))
	defer srv.Close()

	strategy, err := kalshi.SelectStrategy(kalshi.Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	client := kalshi.NewClient(srv.URL, strategy)

	_, err = client.BuildHeaders(context.Background(), http.MethodGet, "/markets")
	var loginErr *kalshi.LoginError
	require.ErrorAs(t, err, &loginErr)
}
