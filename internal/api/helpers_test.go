package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"manuparts/internal/auth"
	"manuparts/internal/config"
	"manuparts/internal/models"
	"manuparts/internal/service"
	"manuparts/internal/storetest"

	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fakeGateway struct {
	amount   int64
	currency string
	secret   string
	err      error
}

func (f *fakeGateway) CreateIntent(_ context.Context, amount int64, currency string) (string, error) {
	f.amount = amount
	f.currency = currency
	if f.err != nil {
		return "", f.err
	}
	if f.secret == "" {
		return "pi_test_secret", nil
	}
	return f.secret, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *storetest.Memory, *fakeGateway) {
	t.Helper()

	mem := storetest.NewMemory()
	gateway := &fakeGateway{}
	tokens := auth.NewTokenIssuer(testSecret, time.Hour)

	svc := Services{
		Products: service.NewProductService(mem, nil, nil),
		Bookings: service.NewBookingService(mem, nil),
		Users:    service.NewUserService(mem, tokens, nil),
		Reviews:  service.NewReviewService(mem),
		Payments: service.NewPaymentService(gateway, "usd"),
	}

	server := NewServer(config.ServerConfig{Port: 0}, config.RateLimitConfig{}, tokens, svc, mem, nil)

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts, mem, gateway
}

func issueToken(t *testing.T, email string) string {
	t.Helper()
	token, err := auth.NewTokenIssuer(testSecret, time.Hour).Issue(email)
	require.NoError(t, err)
	return token
}

func expiredToken(t *testing.T, email string) string {
	t.Helper()
	token, err := auth.NewTokenIssuer(testSecret, -time.Hour).Issue(email)
	require.NoError(t, err)
	return token
}

func seedUser(t *testing.T, mem *storetest.Memory, email, role string) {
	t.Helper()
	_, err := mem.UpsertUser(context.Background(), email, models.Profile{Name: "Seeded"})
	require.NoError(t, err)
	if role != "" {
		_, err = mem.SetUserRole(context.Background(), email, role)
		require.NoError(t, err)
	}
}

func doRequest(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
