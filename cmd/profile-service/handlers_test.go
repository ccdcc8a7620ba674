package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/partsdirect/commerce/internal/profile"
)

//
// ---------- STUB STORE ----------
//

// stubStore implements profile.Store in memory; orders are keyed by
// ownership column so tests can steer the probe.
type stubStore struct {
	addresses      []profile.Address
	methods        []profile.PaymentMethod
	ordersByColumn map[string][]profile.Order
	errByColumn    map[string]error

	panicOnAddresses bool
}

func (s *stubStore) ListAddresses(ctx context.Context, userID string) ([]profile.Address, error) {
	if s.panicOnAddresses {
		panic("addresses store corrupted")
	}
	return s.addresses, nil
}

func (s *stubStore) ListPaymentMethods(ctx context.Context, userID string) ([]profile.PaymentMethod, error) {
	return s.methods, nil
}

func (s *stubStore) ListOrdersBy(ctx context.Context, column, userID string, limit int) ([]profile.Order, error) {
	if err := s.errByColumn[column]; err != nil {
		return nil, err
	}
	return s.ordersByColumn[column], nil
}

func newTestRouter(store profile.Store) *gin.Engine {
	agg := profile.NewAggregator(store, []string{"user_id", "profile_id", "customer_id"}, 10)
	return newRouter(agg)
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func assertCORS(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin=%q, expected *", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type" {
		t.Fatalf("Access-Control-Allow-Headers=%q, expected Content-Type", got)
	}
}

//
// ---------- TESTS ----------
//

func TestProfileData_MissingUserID(t *testing.T) {
	r := newTestRouter(&stubStore{})

	for _, body := range []string{`{}`, `{"userId":""}`, `{"userId":"   "}`, `not json`} {
		w := doJSON(r, http.MethodPost, "/profile-data", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body=%s status=%d, expected 400", body, w.Code)
		}
		if got := strings.TrimSpace(w.Body.String()); got != `{"error":"User ID required"}` {
			t.Fatalf("body=%s response=%s", body, got)
		}
		assertCORS(t, w)
	}
}

func TestProfileData_Preflight(t *testing.T) {
	r := newTestRouter(&stubStore{})

	w := doJSON(r, http.MethodOptions, "/profile-data", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, expected 200", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("preflight body not empty: %s", w.Body.String())
	}
	assertCORS(t, w)
}

func TestProfileData_OK(t *testing.T) {
	store := &stubStore{
		addresses: []profile.Address{
			{"id": "addr1", "user_id": "u1", "city": "Atlanta", "postal_code": "30301"},
		},
		methods: []profile.PaymentMethod{
			{ID: "pm1", Brand: "visa", Last4: "4242", ExpMonth: 4, ExpYear: 2028, IsDefault: true},
			{ID: "pm2", Brand: "mastercard", Last4: "4444", ExpMonth: 9, ExpYear: 2026},
		},
		// user_id is empty for this user; rows live under the legacy
		// profile_id linkage.
		ordersByColumn: map[string][]profile.Order{
			"profile_id": {{
				ID:            "ord1",
				OrderNumber:   "PD-1001",
				CreatedAt:     time.Date(2026, 5, 12, 9, 30, 0, 0, time.UTC),
				TotalAmount:   "135.50",
				Status:        "completed",
				PaymentStatus: "paid",
			}},
		},
	}
	r := newTestRouter(store)

	w := doJSON(r, http.MethodPost, "/profile-data", `{"userId":"u1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	assertCORS(t, w)
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("Content-Type=%q", ct)
	}

	var got profile.Data
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got.Addresses) != 1 || len(got.PaymentMethods) != 2 || len(got.Orders) != 1 {
		t.Fatalf("unexpected collection sizes: %d/%d/%d",
			len(got.Addresses), len(got.PaymentMethods), len(got.Orders))
	}
	if got.Orders[0].OrderNumber != "PD-1001" {
		t.Fatalf("order=%+v", got.Orders[0])
	}
}

func TestProfileData_UnknownUserGetsEmptyLists(t *testing.T) {
	r := newTestRouter(&stubStore{
		errByColumn: map[string]error{
			"user_id": errors.New(`column "user_id" does not exist`),
		},
	})

	w := doJSON(r, http.MethodPost, "/profile-data", `{"userId":"ghost"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s (missing data is not an error)", w.Code, w.Body.String())
	}

	// Collections must serialize as [], never null.
	body := w.Body.String()
	for _, key := range []string{`"addresses":[]`, `"paymentMethods":[]`, `"orders":[]`} {
		if !strings.Contains(body, key) {
			t.Fatalf("expected %s in body %s", key, body)
		}
	}
}

func TestProfileData_UnexpectedFailureBecomes500(t *testing.T) {
	r := newTestRouter(&stubStore{panicOnAddresses: true})

	w := doJSON(r, http.MethodPost, "/profile-data", `{"userId":"u1"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, expected 500", w.Code)
	}
	assertCORS(t, w)

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !strings.Contains(resp.Error, "addresses store corrupted") {
		t.Fatalf("error=%q, expected the underlying message", resp.Error)
	}
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(&stubStore{})
	w := doJSON(r, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard
	log.SetOutput(io.Discard)
}
