package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"quotecraft/testhelpers"
)

func TestHandleQuoteExportExcel_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "Export Quote", "build")
	testhelpers.SetQuoteFields(t, app, quote, map[string]any{
		"selected_addons": map[string]int{"strategy-workshop": 1},
	})

	handler := HandleQuoteExportExcel(app)

	req := httptest.NewRequest(http.MethodGet, "/quotes/"+quote.Id+"/export/excel", nil)
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	disposition := rec.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "Quote_Export-Quote") || !strings.Contains(disposition, ".xlsx") {
		t.Errorf("Content-Disposition = %q", disposition)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty response body")
	}
	// XLSX files are zip archives: PK signature.
	if body := rec.Body.Bytes(); len(body) < 2 || body[0] != 'P' || body[1] != 'K' {
		t.Error("response is not a valid xlsx payload")
	}
}

func TestHandleQuoteExportPDF_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "Export Quote", "launch")

	handler := HandleQuoteExportPDF(app)

	req := httptest.NewRequest(http.MethodGet, "/quotes/"+quote.Id+"/export/pdf", nil)
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("Content-Type = %q", got)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
		t.Error("response is not a PDF")
	}
}

func TestHandleQuoteExport_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handlers := map[string]func(*core.RequestEvent) error{
		"excel": HandleQuoteExportExcel(app),
		"pdf":   HandleQuoteExportPDF(app),
	}

	for name, handler := range handlers {
		t.Run(name, func(t *testing.T) {
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
		})
	}
}
