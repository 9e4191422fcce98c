package localeurl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestSheetLoaderFieldAliases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [
			{"sourceLocale": "en-uk", "sourcePath": "/en/uk/who-we-are", "targetLocale": "de-ch", "targetPath": "/ch/de/wer-wir-sind"},
			{"sourcelocale": "en-uk", "sourcepath": "/en/uk/contact", "targetlocale": "de-ch", "targetpath": "/ch/de/kontakt"},
			{"sourceLocale": "en-uk", "sourcePath": "/en/uk/broken"},
			{"sourceLocale": 42, "sourcePath": "/x", "targetLocale": "de-ch", "targetPath": "/y"}
		]}`))
	}))
	defer server.Close()

	loader := NewSheetLoader(server.URL)
	table, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := table.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2 (partial rows skipped)", got)
	}

	target, ok := table.Lookup("en-uk", "/en/uk/who-we-are")
	if !ok || target.Path != "/ch/de/wer-wir-sind" || target.Locale != "de-ch" {
		t.Fatalf("camelCase row = %+v, ok=%v", target, ok)
	}

	target, ok = table.Lookup("en-uk", "/en/uk/contact")
	if !ok || target.Path != "/ch/de/kontakt" {
		t.Fatalf("lowercase row = %+v, ok=%v", target, ok)
	}
}

func TestSheetLoaderZeroUsableRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [{"sourceLocale": "en-uk"}]}`))
	}))
	defer server.Close()

	loader := NewSheetLoader(server.URL)
	if _, err := loader.Load(context.Background()); !errors.Is(err, ErrNoMappings) {
		t.Fatalf("expected ErrNoMappings, got %v", err)
	}
}

func TestSheetLoaderRemoteFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non success status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", http.StatusNotFound)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data": [`))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			loader := NewSheetLoader(server.URL)
			_, err := loader.Load(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if !goerrors.IsCategory(err, goerrors.CategoryExternal) {
				t.Fatalf("expected external category, got %v", err)
			}
		})
	}
}

func TestSheetLoaderConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	loader := NewSheetLoader(url)
	_, err := loader.Load(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryExternal) {
		t.Fatalf("expected external category, got %v", err)
	}
}

func TestSheetLoaderCustomClient(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, _ = w.Write([]byte(`{"data": [{"sourceLocale": "en-uk", "sourcePath": "/a", "targetLocale": "de-ch", "targetPath": "/b"}]}`))
	}))
	defer server.Close()

	loader := NewSheetLoader(server.URL, WithSheetHTTPClient(server.Client()))
	if _, err := loader.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !called {
		t.Fatal("server not hit")
	}
}

func TestFileLoaderJSON(t *testing.T) {
	loader := NewFileLoader(filepath.Join("testdata", "url-mappings.json"))
	table, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := table.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}

	target, ok := table.Lookup("en-uk", "/en/uk/who-we-are")
	if !ok || target.Path != "/ch/de/wer-wir-sind" {
		t.Fatalf("Lookup = %+v, ok=%v", target, ok)
	}
	// Fallback files carry no target locale column.
	if target.Locale != "" {
		t.Fatalf("fallback target locale = %q, want empty", target.Locale)
	}
}

func TestFileLoaderYAML(t *testing.T) {
	loader := NewFileLoader(filepath.Join("testdata", "url-mappings.yaml"))
	table, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	target, ok := table.Lookup("fr-ch", "/ch/fr/qui-sommes-nous")
	if !ok || target.Path != "/en/uk/who-we-are" {
		t.Fatalf("Lookup = %+v, ok=%v", target, ok)
	}
}

func TestFileLoaderErrors(t *testing.T) {
	if _, err := NewFileLoader("testdata/missing.json").Load(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := NewFileLoader("testdata/url-mappings.txt").Load(context.Background()); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if _, err := NewFileLoader("").Load(context.Background()); !errors.Is(err, ErrNoMappings) {
		t.Fatalf("expected ErrNoMappings for empty path, got %v", err)
	}
}

func TestStaticLoader(t *testing.T) {
	table := Mappings{}
	table.Set("en-uk", "/en/uk/a", MappingTarget{Path: "/ch/de/a"})

	loaded, err := StaticLoader(table).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Mutating the loaded copy must not leak back into the source table.
	loaded.Set("en-uk", "/en/uk/b", MappingTarget{Path: "/ch/de/b"})
	if _, ok := table.Lookup("en-uk", "/en/uk/b"); ok {
		t.Fatal("static loader leaked its backing table")
	}

	if _, err := StaticLoader(nil).Load(context.Background()); !errors.Is(err, ErrNoMappings) {
		t.Fatalf("expected ErrNoMappings, got %v", err)
	}
}
