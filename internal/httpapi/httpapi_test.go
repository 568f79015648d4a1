package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthz(t *testing.T) {
	router := NewRouter(nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestApplyInsertsParagraph(t *testing.T) {
	router := NewRouter(nil)

	reqBody := `{
		"markdown": "# Title\n\nFirst.\n",
		"operations": [
			{"op": "insert", "position": "after", "content": "Second.\n",
			 "selector": {"select_contains": "First."}}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/v1/documents/apply", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp applyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !bytes.Contains([]byte(resp.Markdown), []byte("Second.")) {
		t.Fatalf("expected inserted content in rendered markdown, got %q", resp.Markdown)
	}
	if resp.TxnID == "" {
		t.Fatalf("expected a non-empty txn id")
	}
}

func TestLocateFindsHeading(t *testing.T) {
	router := NewRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/documents/locate",
		bytes.NewBufferString(`{"markdown":"# Title\n\nFirst.\n","selector":{"select_type":"heading"}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp locateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Found {
		t.Fatalf("expected a match, got %+v", resp)
	}
}

func TestLocateNotFound(t *testing.T) {
	router := NewRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/documents/locate",
		bytes.NewBufferString(`{"markdown":"First.\n","selector":{"select_type":"heading"}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp locateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Found {
		t.Fatalf("expected no match, got %+v", resp)
	}
}
