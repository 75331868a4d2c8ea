package license

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/MIT.json" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"licenseId": "MIT", "licenseText": "Permission is hereby granted..."}`)
	}))
	defer srv.Close()

	f := &SPDXFetcher{BaseURL: srv.URL, Client: srv.Client()}
	text, err := f.FetchText("MIT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Permission is hereby granted..." {
		t.Errorf("text = %q", text)
	}
}

func TestFetchTextNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	f := &SPDXFetcher{BaseURL: srv.URL, Client: srv.Client()}
	if _, err := f.FetchText("Nonexistent-1.0"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestFetchTextMissingField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"licenseId": "MIT"}`)
	}))
	defer srv.Close()

	f := &SPDXFetcher{BaseURL: srv.URL, Client: srv.Client()}
	if _, err := f.FetchText("MIT"); err == nil {
		t.Fatal("expected error for missing licenseText field")
	}
}

func TestFetchTextTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused

	f := &SPDXFetcher{BaseURL: srv.URL}
	if _, err := f.FetchText("MIT"); err == nil {
		t.Fatal("expected error for unreachable server")
	}
}
