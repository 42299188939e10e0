package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"quotecraft/testhelpers"
)

func postForm(t *testing.T, path string, form url.Values) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, httptest.NewRecorder()
}

func TestHandleQuoteCreateForm(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleQuoteCreateForm(app)

	req := httptest.NewRequest(http.MethodGet, "/quotes/create", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"New Quote", `name="label"`, `name="quote_type"`, "fundraising")
}

func TestHandleQuoteSave_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleQuoteSave(app)

	req, rec := postForm(t, "/quotes", url.Values{
		"label":      {"Spring Campaign"},
		"quote_type": {"launch"},
	})
	req.Header.Set("HX-Request", "true")
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	redirect := rec.Header().Get("HX-Redirect")
	if !strings.HasSuffix(redirect, "/edit") || !strings.HasPrefix(redirect, "/quotes/") {
		t.Errorf("HX-Redirect = %q, want /quotes/{id}/edit", redirect)
	}

	records, err := app.FindRecordsByFilter("quotes", "label = 'Spring Campaign'", "", 1, 0, nil)
	if err != nil || len(records) != 1 {
		t.Fatalf("created quote not found: %v", err)
	}
	q := records[0]
	if q.GetString("quote_type") != "launch" {
		t.Errorf("quote_type = %q, want launch", q.GetString("quote_type"))
	}
	if q.GetInt("production_days") != 1 {
		t.Errorf("production_days = %d, want 1", q.GetInt("production_days"))
	}
	if q.GetBool("is_locked") || q.GetBool("recommended") {
		t.Error("new quote must start unlocked and unrecommended")
	}
}

func TestHandleQuoteSave_FundraisingType(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleQuoteSave(app)

	req, rec := postForm(t, "/quotes", url.Values{
		"label":      {"Donor Drive"},
		"quote_type": {"fundraising"},
	})
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	records, _ := app.FindRecordsByFilter("quotes", "label = 'Donor Drive'", "", 1, 0, nil)
	if len(records) != 1 {
		t.Fatal("created quote not found")
	}
	if !records[0].GetBool("fundraising_enabled") {
		t.Error("fundraising flag not set for fundraising quote")
	}
}

func TestHandleQuoteSave_ValidationErrors(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleQuoteSave(app)

	req, rec := postForm(t, "/quotes", url.Values{
		"label":      {""},
		"quote_type": {"enterprise"},
	})
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Label is required", "Unknown quote type")

	records, _ := app.FindRecordsByFilter("quotes", "deleted = false", "", 0, 0, nil)
	if len(records) != 0 {
		t.Errorf("invalid form created %d record(s)", len(records))
	}
}

func TestHandleQuoteSave_DuplicateLabel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestQuote(t, app, "Taken", "build")

	handler := HandleQuoteSave(app)

	req, rec := postForm(t, "/quotes", url.Values{
		"label":      {"Taken"},
		"quote_type": {"build"},
	})
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "already exists")
}
