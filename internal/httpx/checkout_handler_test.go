package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holyweird/storefront/internal/orders"
	"github.com/holyweird/storefront/internal/payments"
)

type fakeProvider struct {
	createCalls int
	sessions    map[string]*payments.Session
}

func (f *fakeProvider) CreateSession(_ context.Context, _ payments.CreateSessionParams) (*payments.Session, error) {
	f.createCalls++
	return &payments.Session{ID: "cs_test_1", URL: "https://pay.example/cs_test_1", PaymentStatus: "unpaid"}, nil
}

func (f *fakeProvider) GetSession(_ context.Context, id string) (*payments.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, payments.ErrSessionNotFound
	}
	return s, nil
}

func newCheckoutRouter(h *CheckoutHandler) http.Handler {
	r := NewRouter("test")
	h.Register(r)
	return r
}

func TestCreateSession_EmptyLinesRejectedBeforeProviderCall(t *testing.T) {
	provider := &fakeProvider{}
	router := newCheckoutRouter(&CheckoutHandler{Payments: provider, Orders: orders.NewMemoryRepo()})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout/create-session",
		strings.NewReader(`{"lines": []}`))
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, provider.createCalls)
}

func TestCreateSession_PaymentsUnconfigured(t *testing.T) {
	router := newCheckoutRouter(&CheckoutHandler{Payments: nil, Orders: orders.NewMemoryRepo()})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout/create-session",
		strings.NewReader(`{"lines": [{"product_id":"p1","name":"Kit","price_pence":4500,"quantity":1}]}`))
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestCreateSession_InvalidQuantity(t *testing.T) {
	provider := &fakeProvider{}
	router := newCheckoutRouter(&CheckoutHandler{Payments: provider, Orders: orders.NewMemoryRepo()})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout/create-session",
		strings.NewReader(`{"lines": [{"product_id":"p1","name":"Kit","price_pence":4500,"quantity":0}]}`))
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, provider.createCalls)
}

func TestCreateSession_RecordsPendingOrderWithServerSideTotal(t *testing.T) {
	provider := &fakeProvider{}
	repo := orders.NewMemoryRepo()
	router := newCheckoutRouter(&CheckoutHandler{Payments: provider, Orders: repo})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout/create-session", strings.NewReader(`{
		"lines": [
			{"product_id":"p1","name":"Service Kit","price_pence":4500,"quantity":2},
			{"product_id":"p2","name":"Gift Box","price_pence":1000,"quantity":1}
		],
		"buyer_email": "buyer@example.com"
	}`))
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "cs_test_1", resp["session_id"])
	assert.Equal(t, "https://pay.example/cs_test_1", resp["url"])

	o, err := repo.GetBySession(context.Background(), "cs_test_1")
	require.NoError(t, err)
	assert.Equal(t, orders.StatusPending, o.Status)
	assert.Equal(t, 10000, o.TotalPence)
	assert.Equal(t, "buyer@example.com", o.Email)
}

func TestGetSession_PendingOrderIsNotAnError(t *testing.T) {
	provider := &fakeProvider{sessions: map[string]*payments.Session{
		"cs_9": {ID: "cs_9", PaymentStatus: "unpaid", AmountTotal: 10000, Currency: "gbp"},
	}}
	repo := orders.NewMemoryRepo()
	require.NoError(t, repo.Create(context.Background(), &orders.Order{SessionID: "cs_9", TotalPence: 10000}))
	router := newCheckoutRouter(&CheckoutHandler{Payments: provider, Orders: repo})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checkout/session/cs_9", nil)
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "cs_9", resp["id"])
	assert.Equal(t, "unpaid", resp["status"])
	assert.Equal(t, string(orders.StatusPending), resp["order_status"])
}

func TestGetSession_UnknownIsNotFound(t *testing.T) {
	provider := &fakeProvider{sessions: map[string]*payments.Session{}}
	router := newCheckoutRouter(&CheckoutHandler{Payments: provider, Orders: orders.NewMemoryRepo()})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checkout/session/cs_missing", nil)
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}
