package session

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"azure-cost-planner/internal/catalog"
	"azure-cost-planner/internal/estimate"
)

func TestNewDefaultsSeedsFromCatalog(t *testing.T) {
	d := NewDefaults(catalog.Regions(), catalog.VMSizes(), "")
	want := Defaults{
		Region:   "southindia",
		VMSize:   "Standard_B1s",
		OS:       catalog.Linux,
		Hours:    730,
		Currency: "INR",
	}
	if d != want {
		t.Fatalf("NewDefaults()=%+v want %+v", d, want)
	}

	empty := NewDefaults(nil, nil, "USD")
	if empty.Region != "" || empty.VMSize != "" || empty.Currency != "USD" {
		t.Fatalf("unexpected defaults for empty catalog: %+v", empty)
	}
}

func TestUpdateKeepsUnsetFields(t *testing.T) {
	d := NewDefaults(catalog.Regions(), catalog.VMSizes(), "")
	d.Update(estimate.Request{Region: "eastus", Hours: 100})

	if d.Region != "eastus" || d.Hours != 100 {
		t.Fatalf("update not applied: %+v", d)
	}
	if d.VMSize != "Standard_B1s" || d.OS != catalog.Linux || d.Currency != "INR" {
		t.Fatalf("unset fields changed: %+v", d)
	}
	if req := d.Request(); req.Region != "eastus" || req.Hours != 100 || req.VMSize != "Standard_B1s" {
		t.Fatalf("Request()=%+v", req)
	}
}

func TestSanitizeResetsUnknownValues(t *testing.T) {
	d := Defaults{Region: "gone", VMSize: "Standard_Old", OS: "Plan9", Hours: 9999, Currency: "EUR"}
	d.Sanitize(catalog.Regions(), catalog.VMSizes())

	want := NewDefaults(catalog.Regions(), catalog.VMSizes(), "")
	if d != want {
		t.Fatalf("Sanitize()=%+v want %+v", d, want)
	}

	kept := Defaults{Region: "westeurope", VMSize: "Standard_E2s_v5", OS: catalog.Windows, Hours: 12, Currency: "USD"}
	before := kept
	kept.Sanitize(catalog.Regions(), catalog.VMSizes())
	if kept != before {
		t.Fatalf("valid defaults changed: %+v -> %+v", before, kept)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store, err := NewStore(StoreOptions{Secret: "test-secret-test-secret-0123456", MaxAge: 60}, catalog.Regions(), catalog.VMSizes())
	if err != nil {
		t.Fatalf("NewStore err: %v", err)
	}

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := store.Load(first); got.Region != "southindia" {
		t.Fatalf("fresh session region=%q", got.Region)
	}

	rec := httptest.NewRecorder()
	saved := Defaults{Region: "eastus", VMSize: "Standard_D2s_v5", OS: catalog.Windows, Hours: 200, Currency: "USD"}
	if err := store.Save(rec, first, saved); err != nil {
		t.Fatalf("Save err: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("expected a session cookie")
	}
	if !cookies[0].HttpOnly {
		t.Fatalf("session cookie should be HttpOnly")
	}

	second := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		second.AddCookie(c)
	}
	if got := store.Load(second); got != saved {
		t.Fatalf("Load()=%+v want %+v", got, saved)
	}
}

func TestStoreIgnoresTamperedCookie(t *testing.T) {
	store, err := NewStore(StoreOptions{CookieName: "s"}, catalog.Regions(), catalog.VMSizes())
	if err != nil {
		t.Fatalf("NewStore err: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "s", Value: "not-a-valid-cookie"})

	if got := store.Load(req); got != NewDefaults(catalog.Regions(), catalog.VMSizes(), "") {
		t.Fatalf("tampered cookie should yield seeded defaults, got %+v", got)
	}
}

func TestStoreSeedsConfiguredHours(t *testing.T) {
	store, err := NewStore(StoreOptions{Hours: 100, Currency: "USD"}, catalog.Regions(), catalog.VMSizes())
	if err != nil {
		t.Fatalf("NewStore err: %v", err)
	}
	got := store.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	if got.Hours != 100 || got.Currency != "USD" {
		t.Fatalf("seeded defaults=%+v", got)
	}
}

func TestSaveLogsUnreadableCookie(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	store, err := NewStore(StoreOptions{CookieName: "s", Logger: logger}, catalog.Regions(), catalog.VMSizes())
	if err != nil {
		t.Fatalf("NewStore err: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "s", Value: "signed-with-an-old-secret"})

	rec := httptest.NewRecorder()
	if err := store.Save(rec, req, NewDefaults(catalog.Regions(), catalog.VMSizes(), "")); err != nil {
		t.Fatalf("Save err: %v", err)
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Fatalf("expected a fresh session cookie")
	}
	if !bytes.Contains(buf.Bytes(), []byte("replacing unreadable session cookie")) {
		t.Fatalf("decode failure not logged: %q", buf.String())
	}
}
