package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/transit-catalogue/config"
)

func TestFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/network.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"base_requests": []}`))
	}))
	defer ts.Close()

	path := filepath.Join(t.TempDir(), "network.txt")
	if err := os.WriteFile(path, []byte("0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := newFetcher(config.FetchConfig{TimeoutMS: 2000})
	f.stdin = strings.NewReader("from stdin")

	tests := []struct {
		name    string
		source  string
		want    string
		wantErr bool
	}{
		{name: "stdin", source: "-", want: "from stdin"},
		{name: "file", source: path, want: "0\n"},
		{name: "url", source: ts.URL + "/network.json", want: `{"base_requests": []}`},
		{name: "http error", source: ts.URL + "/missing.json", wantErr: true},
		{name: "missing file", source: filepath.Join(t.TempDir(), "nope.json"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.fetch(tt.source)
			if tt.wantErr {
				if err == nil {
					t.Errorf("fetch(%q) should fail", tt.source)
				}
				return
			}
			if err != nil {
				t.Fatalf("fetch(%q): %v", tt.source, err)
			}
			if string(got) != tt.want {
				t.Errorf("fetch(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}
