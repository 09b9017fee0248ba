/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubdata_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"chainguard.dev/agentprep/githubdata"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestExtractImageURLs(t *testing.T) {
	tests := []struct {
		name   string
		bodies []string
		want   []string
	}{{
		name:   "markdown image",
		bodies: []string{"see ![shot](https://example.com/a.png) above"},
		want:   []string{"https://example.com/a.png"},
	}, {
		name:   "html image",
		bodies: []string{`<img width="100" src="https://example.com/b.jpg">`},
		want:   []string{"https://example.com/b.jpg"},
	}, {
		name: "deduplicates across bodies",
		bodies: []string{
			"![one](https://example.com/a.png)",
			"again ![one](https://example.com/a.png) and ![two](https://example.com/c.gif)",
		},
		want: []string{"https://example.com/a.png", "https://example.com/c.gif"},
	}, {
		name:   "no images",
		bodies: []string{"plain text", "more text"},
		want:   nil,
	}}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := githubdata.ExtractImageURLs(tc.bodies...)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ExtractImageURLs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDownloadImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/a.png":
			w.Write([]byte("png-bytes"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	dir := t.TempDir()
	f, err := githubdata.NewFetcher(ctx, "token",
		githubdata.WithHTTPClient(srv.Client()),
		githubdata.WithImageDir(dir))
	require.NoError(t, err)

	t.Run("downloads and maps", func(t *testing.T) {
		paths, err := f.DownloadImages(ctx, []string{srv.URL + "/a.png"})
		require.NoError(t, err)
		local, ok := paths[srv.URL+"/a.png"]
		if !ok {
			t.Fatalf("no mapping for downloaded image, got %v", paths)
		}
		content, err := os.ReadFile(local)
		require.NoError(t, err)
		if string(content) != "png-bytes" {
			t.Errorf("downloaded content: got = %q, wanted = %q", content, "png-bytes")
		}
	})

	t.Run("failed download is skipped", func(t *testing.T) {
		paths, err := f.DownloadImages(ctx, []string{srv.URL + "/missing.png", srv.URL + "/a.png"})
		require.NoError(t, err)
		if _, ok := paths[srv.URL+"/missing.png"]; ok {
			t.Error("failed download must not appear in the map")
		}
		if _, ok := paths[srv.URL+"/a.png"]; !ok {
			t.Error("successful download missing from the map")
		}
	})

	t.Run("no urls means empty map and no directory", func(t *testing.T) {
		paths, err := f.DownloadImages(ctx, nil)
		require.NoError(t, err)
		if len(paths) != 0 {
			t.Errorf("paths: got = %v, wanted empty", paths)
		}
	})
}
