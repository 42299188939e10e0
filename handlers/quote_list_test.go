package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quotecraft/testhelpers"
)

func TestHandleQuoteList_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestQuote(t, app, "Brand Film", "build")
	testhelpers.CreateTestQuote(t, app, "Launch Push", "launch")

	handler := HandleQuoteList(app)

	req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	// Totals are recomputed per record: bare base fees here.
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Brand Film", "Launch Push", "$5,000", "$10,000")
}

func TestHandleQuoteList_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleQuoteList(app)

	req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "No quotes yet")
}

func TestHandleQuoteList_ExcludesDeleted(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestQuote(t, app, "Visible", "build")
	gone := testhelpers.CreateTestQuote(t, app, "Hidden", "build")
	testhelpers.SetQuoteFields(t, app, gone, map[string]any{"deleted": true})

	handler := HandleQuoteList(app)

	req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Visible")
	testhelpers.AssertHTMLNotContains(t, body, "Hidden")
}

func TestHandleQuoteList_Badges(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "House Pick", "build")
	testhelpers.SetQuoteFields(t, app, quote, map[string]any{
		"recommended": true,
		"is_locked":   true,
	})

	handler := HandleQuoteList(app)

	req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Recommended", "Locked")
}
