package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quotecraft/testhelpers"
)

func TestHandleQuoteCompare_AgainstRecommended(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	reference := testhelpers.CreateTestQuote(t, app, "House Build", "build")
	testhelpers.SetQuoteFields(t, app, reference, map[string]any{
		"recommended":     true,
		"selected_addons": map[string]int{"strategy-workshop": 1},
	})

	candidate := testhelpers.CreateTestQuote(t, app, "Client Build", "build")
	testhelpers.SetQuoteFields(t, app, candidate, map[string]any{
		"selected_addons": map[string]int{"drone-coverage": 1},
	})

	handler := HandleQuoteCompare(app)

	req := httptest.NewRequest(http.MethodGet, "/quotes/"+candidate.Id+"/compare", nil)
	req.SetPathValue("id", candidate.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		"House Build", "Client Build",
		"Strategy Workshop", "Drone Coverage",
		"removed", "added",
		"Build — Base Fee", "Total", "Deposit")
}

func TestHandleQuoteCompare_ExplicitReference(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	other := testhelpers.CreateTestQuote(t, app, "Alt Reference", "launch")
	candidate := testhelpers.CreateTestQuote(t, app, "Candidate", "build")

	handler := HandleQuoteCompare(app)

	req := httptest.NewRequest(http.MethodGet, "/quotes/"+candidate.Id+"/compare?ref="+other.Id, nil)
	req.SetPathValue("id", candidate.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Alt Reference", "Candidate", "Launch — Base Fee", "Build — Base Fee")
}

func TestHandleQuoteCompare_NoReferenceFallsBackToSelf(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	candidate := testhelpers.CreateTestQuote(t, app, "Lonely", "build")

	handler := HandleQuoteCompare(app)

	req := httptest.NewRequest(http.MethodGet, "/quotes/"+candidate.Id+"/compare", nil)
	req.SetPathValue("id", candidate.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Lonely")
}

func TestHandleQuoteCompare_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleQuoteCompare(app)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.SetPathValue("id", "nonexistent")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
