package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kuliner/internal/domain/storage"
	"kuliner/internal/media"
	"kuliner/internal/ratelimiter"

	"go.uber.org/zap"
)

type testServer struct {
	t   *testing.T
	app *application
	srv *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := config{
		env:   "test",
		store: "memory",
		auth: authConfig{
			basic: basicConfig{user: "ops", pass: "ops-secret"},
			token: tokenConfig{secret: "test-secret", ttl: time.Hour, iss: "kuliner"},
		},
		rateLimiter:  ratelimiter.Config{RequestsPerTimeFrame: 100, TimeFrame: time.Minute},
		slugSalt:     "test",
		frontendURL:  "http://localhost:3000",
		verification: verificationConfig{rejectUnpublishes: true},
	}

	logger := zap.NewNop().Sugar()
	app, err := newApplication(cfg, storage.NewMemoryContainer(), logger, nil, media.Nop{})
	if err != nil {
		t.Fatal(err)
	}
	if rl, ok := app.rateLimiter.(*ratelimiter.TokenBucketLimiter); ok {
		t.Cleanup(rl.Stop)
	}

	if _, _, err := app.identity.BootstrapAdmin(context.Background(), "Admin", "admin@example.com", "admin-password"); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(app.mount())
	t.Cleanup(srv.Close)
	return &testServer{t: t, app: app, srv: srv}
}

type response struct {
	status int
	body   map[string]any
}

func (r response) data() map[string]any {
	d, _ := r.body["data"].(map[string]any)
	return d
}

func (r response) list() []any {
	l, _ := r.body["data"].([]any)
	return l
}

func (ts *testServer) do(method, path, token string, body any) response {
	ts.t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			ts.t.Fatal(err)
		}
	}

	req, err := http.NewRequest(method, ts.srv.URL+path, &buf)
	if err != nil {
		ts.t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.srv.Client().Do(req)
	if err != nil {
		ts.t.Fatal(err)
	}
	defer res.Body.Close()

	out := response{status: res.StatusCode}
	if res.StatusCode != http.StatusNoContent {
		_ = json.NewDecoder(res.Body).Decode(&out.body)
	}
	return out
}

func (ts *testServer) expect(r response, status int) response {
	ts.t.Helper()
	if r.status != status {
		ts.t.Fatalf("status = %d, want %d (body %v)", r.status, status, r.body)
	}
	return r
}

func (ts *testServer) login(email, password string) string {
	ts.t.Helper()
	r := ts.expect(ts.do(http.MethodPost, "/v1/authentication/token", "", map[string]string{
		"email": email, "password": password,
	}), http.StatusOK)
	return r.data()["token"].(string)
}

// approvedPartner registers a partner, approves it as admin and logs it in.
func (ts *testServer) approvedPartner(adminToken, email string) string {
	ts.t.Helper()
	r := ts.expect(ts.do(http.MethodPost, "/v1/authentication/partner", "", map[string]any{
		"name":              "Partner",
		"email":             email,
		"password":          "partner-password",
		"business_name":     "Warung " + email,
		"national_id":       "3404012345678902",
		"business_category": "Traditional",
	}), http.StatusCreated)
	id := int64(r.data()["user"].(map[string]any)["id"].(float64))
	ts.expect(ts.do(http.MethodPost, fmt.Sprintf("/v1/admin/partners/%d/verification", id), adminToken,
		map[string]string{"decision": "approve"}), http.StatusOK)
	return ts.login(email, "partner-password")
}

func listingBody(status string) map[string]any {
	return map[string]any{
		"name":              "Gudeg Yu Djum",
		"category":          "Traditional",
		"short_description": "Sweet jackfruit stew",
		"description":       "Gudeg cooked overnight in clay pots.",
		"province":          "DI Yogyakarta",
		"city":              "Yogyakarta",
		"price_min":         15000,
		"price_max":         40000,
		"ingredients":       []string{"young jackfruit", "palm sugar", "coconut milk"},
		"steps":             []string{"boil", "simmer overnight"},
		"images":            []string{"https://res.cloudinary.com/demo/image/upload/v1/kuliner/gudeg.jpg"},
		"status":            status,
	}
}

func TestPartnerScenario(t *testing.T) {
	ts := newTestServer(t)
	adminToken := ts.login("admin@example.com", "admin-password")

	// partner signs up and cannot log in until approved
	r := ts.expect(ts.do(http.MethodPost, "/v1/authentication/partner", "", map[string]any{
		"name":              "Sri",
		"email":             "sri@example.com",
		"password":          "partner-password",
		"business_name":     "Gudeg Yu Djum",
		"national_id":       "3404012345678901",
		"business_category": "Traditional",
	}), http.StatusCreated)
	partnerID := int64(r.data()["user"].(map[string]any)["id"].(float64))

	r = ts.expect(ts.do(http.MethodPost, "/v1/authentication/token", "", map[string]string{
		"email": "sri@example.com", "password": "partner-password",
	}), http.StatusForbidden)
	if r.body["code"] != "account_pending_verification" {
		t.Fatalf("code = %v", r.body["code"])
	}

	r = ts.expect(ts.do(http.MethodGet, "/v1/admin/partners/pending", adminToken, nil), http.StatusOK)
	if len(r.list()) != 1 {
		t.Fatalf("pending partners = %v", r.list())
	}

	verify := fmt.Sprintf("/v1/admin/partners/%d/verification", partnerID)
	r = ts.expect(ts.do(http.MethodPost, verify, adminToken, map[string]string{"decision": "approve"}), http.StatusOK)
	if r.data()["changed"] != true {
		t.Fatalf("approve did not change state: %v", r.data())
	}
	ts.expect(ts.do(http.MethodPost, verify, adminToken, map[string]string{"decision": "maybe"}), http.StatusUnprocessableEntity)

	partnerToken := ts.login("sri@example.com", "partner-password")

	// drafts are hidden from everyone but the owner and admins
	r = ts.expect(ts.do(http.MethodPost, "/v1/listings", partnerToken, listingBody("draft")), http.StatusCreated)
	listingID := int64(r.data()["id"].(float64))
	slug := r.data()["slug"].(string)
	listingPath := fmt.Sprintf("/v1/listings/%d", listingID)

	ts.expect(ts.do(http.MethodGet, listingPath, "", nil), http.StatusNotFound)
	ts.expect(ts.do(http.MethodGet, listingPath, partnerToken, nil), http.StatusOK)
	ts.expect(ts.do(http.MethodGet, listingPath, adminToken, nil), http.StatusOK)
	if r = ts.expect(ts.do(http.MethodGet, "/v1/listings", "", nil), http.StatusOK); len(r.list()) != 0 {
		t.Fatalf("draft listed publicly: %v", r.list())
	}

	ts.expect(ts.do(http.MethodPatch, listingPath+"/status", partnerToken, map[string]string{"status": "published"}), http.StatusOK)
	r = ts.expect(ts.do(http.MethodGet, "/v1/listings/"+slug, "", nil), http.StatusOK)
	if r.data()["id"].(float64) != float64(listingID) {
		t.Fatalf("slug lookup returned %v", r.data())
	}

	r = ts.expect(ts.do(http.MethodGet, "/v1/admin/stats", adminToken, nil), http.StatusOK)
	if r.data()["total_listings"].(float64) != 1 || r.data()["verified_partners"].(float64) != 1 {
		t.Fatalf("stats = %v", r.data())
	}

	// rejecting the partner unpublishes and locks them out
	r = ts.expect(ts.do(http.MethodPost, verify, adminToken, map[string]string{"decision": "reject"}), http.StatusOK)
	if r.data()["listings_unpublished"].(float64) != 1 {
		t.Fatalf("reject result = %v", r.data())
	}
	r = ts.expect(ts.do(http.MethodGet, "/v1/users/me", partnerToken, nil), http.StatusForbidden)
	if r.body["code"] != "account_pending_verification" {
		t.Fatalf("code = %v", r.body["code"])
	}
	ts.expect(ts.do(http.MethodGet, listingPath, "", nil), http.StatusNotFound)

	// a rejected partner can still end its session
	ts.expect(ts.do(http.MethodPost, "/v1/users/logout", partnerToken, nil), http.StatusNoContent)
	ts.expect(ts.do(http.MethodGet, "/v1/users/me", partnerToken, nil), http.StatusUnauthorized)
	ts.expect(ts.do(http.MethodPost, "/v1/users/logout", "", nil), http.StatusUnauthorized)
	ts.expect(ts.do(http.MethodPost, "/v1/authentication/token", "", map[string]string{
		"email": "sri@example.com", "password": "partner-password",
	}), http.StatusForbidden)
}

func TestReviewFlow(t *testing.T) {
	ts := newTestServer(t)
	adminToken := ts.login("admin@example.com", "admin-password")
	partnerToken := ts.approvedPartner(adminToken, "warung@example.com")

	ts.expect(ts.do(http.MethodPost, "/v1/listings", adminToken, listingBody("published")), http.StatusForbidden)
	r := ts.expect(ts.do(http.MethodPost, "/v1/listings", partnerToken, listingBody("published")), http.StatusCreated)
	listingID := int64(r.data()["id"].(float64))
	reviewsPath := fmt.Sprintf("/v1/listings/%d/reviews", listingID)

	r = ts.expect(ts.do(http.MethodPost, "/v1/authentication/visitor", "", map[string]string{
		"name": "Budi", "email": "budi@example.com", "password": "visitor-password",
	}), http.StatusCreated)
	visitorToken := r.data()["token"].(string)

	ts.expect(ts.do(http.MethodPost, "/v1/listings", visitorToken, listingBody("draft")), http.StatusForbidden)
	ts.expect(ts.do(http.MethodGet, "/v1/admin/reviews", visitorToken, nil), http.StatusForbidden)

	r = ts.expect(ts.do(http.MethodPost, "/v1/reviews", visitorToken, map[string]any{
		"listing_id": listingID, "rating": 6, "comment": "enak sekali",
	}), http.StatusUnprocessableEntity)
	if _, ok := r.body["errors"].(map[string]any)["rating"]; !ok {
		t.Fatalf("rating not reported: %v", r.body)
	}
	ts.expect(ts.do(http.MethodPost, "/v1/reviews", "", map[string]any{
		"listing_id": listingID, "rating": 5, "comment": "enak sekali",
	}), http.StatusUnauthorized)

	r = ts.expect(ts.do(http.MethodPost, "/v1/reviews", visitorToken, map[string]any{
		"listing_id": listingID, "rating": 5, "comment": "enak sekali",
	}), http.StatusCreated)
	reviewID := int64(r.data()["id"].(float64))

	if r = ts.expect(ts.do(http.MethodGet, reviewsPath, "", nil), http.StatusOK); len(r.data()["reviews"].([]any)) != 0 {
		t.Fatal("pending review is public")
	}

	r = ts.expect(ts.do(http.MethodGet, "/v1/admin/reviews", adminToken, nil), http.StatusOK)
	if r.data()["pending_count"].(float64) != 1 {
		t.Fatalf("queue = %v", r.data())
	}

	statusPath := fmt.Sprintf("/v1/admin/reviews/%d/status", reviewID)
	ts.expect(ts.do(http.MethodPatch, statusPath, visitorToken, map[string]string{"status": "approved"}), http.StatusForbidden)
	ts.expect(ts.do(http.MethodPatch, statusPath, adminToken, map[string]string{"status": "approved"}), http.StatusOK)

	r = ts.expect(ts.do(http.MethodGet, reviewsPath, "", nil), http.StatusOK)
	summary := r.data()["summary"].(map[string]any)
	if len(r.data()["reviews"].([]any)) != 1 || summary["average"].(float64) != 5 {
		t.Fatalf("approved reviews = %v", r.data())
	}
}

func TestAuthenticationErrors(t *testing.T) {
	ts := newTestServer(t)

	ts.expect(ts.do(http.MethodGet, "/v1/users/me", "", nil), http.StatusUnauthorized)
	ts.expect(ts.do(http.MethodGet, "/v1/users/me", "not-a-token", nil), http.StatusUnauthorized)
	ts.expect(ts.do(http.MethodGet, "/v1/listings/1", "not-a-token", nil), http.StatusUnauthorized)

	r := ts.expect(ts.do(http.MethodPost, "/v1/authentication/token", "", map[string]string{
		"email": "admin@example.com", "password": "wrong-password",
	}), http.StatusUnauthorized)
	if r.body["code"] != "invalid_credentials" {
		t.Fatalf("code = %v", r.body["code"])
	}

	ts.expect(ts.do(http.MethodPost, "/v1/authentication/visitor", "", `{"name":"x","email":"x@example.com","password":"password1","role":"admin"}`), http.StatusBadRequest)
	ts.expect(ts.do(http.MethodPost, "/v1/authentication/visitor", "", map[string]string{
		"name": "Budi", "email": "ADMIN@example.com", "password": "visitor-password",
	}), http.StatusConflict)

	token := ts.login("admin@example.com", "admin-password")
	ts.expect(ts.do(http.MethodGet, "/v1/users/me", token, nil), http.StatusOK)

	r = ts.expect(ts.do(http.MethodPost, "/v1/authentication/refresh", token, nil), http.StatusOK)
	rotated := r.data()["token"].(string)
	ts.expect(ts.do(http.MethodGet, "/v1/users/me", token, nil), http.StatusUnauthorized)

	ts.expect(ts.do(http.MethodPost, "/v1/users/logout", rotated, nil), http.StatusNoContent)
	ts.expect(ts.do(http.MethodGet, "/v1/users/me", rotated, nil), http.StatusUnauthorized)
}

func TestHealthRequiresBasicAuth(t *testing.T) {
	ts := newTestServer(t)

	ts.expect(ts.do(http.MethodGet, "/v1/health", "", nil), http.StatusUnauthorized)

	req, _ := http.NewRequest(http.MethodGet, ts.srv.URL+"/v1/health", nil)
	req.SetBasicAuth("ops", "ops-secret")
	res, err := ts.srv.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
}

func TestRateLimiterOnAuthentication(t *testing.T) {
	ts := newTestServer(t)
	ts.app.config.rateLimiter.Enabled = true
	rl := ratelimiter.NewTokenBucketLimiter(2, time.Hour)
	t.Cleanup(rl.Stop)
	ts.app.rateLimiter = rl

	for i := 0; i < 2; i++ {
		ts.expect(ts.do(http.MethodPost, "/v1/authentication/token", "", map[string]string{"email": "a@b.c", "password": "x"}), http.StatusUnauthorized)
	}
	ts.expect(ts.do(http.MethodPost, "/v1/authentication/token", "", map[string]string{"email": "a@b.c", "password": "x"}), http.StatusTooManyRequests)
}
