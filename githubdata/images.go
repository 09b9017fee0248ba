/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"

	"github.com/chainguard-dev/clog"
)

var (
	markdownImagePattern = regexp.MustCompile(`!\[[^\]]*\]\((https?://[^)\s]+)\)`)
	htmlImagePattern     = regexp.MustCompile(`<img[^>]+src="(https?://[^"]+)"`)
)

// ExtractImageURLs collects image URLs referenced by the given bodies, in
// first-seen order, covering both markdown and inline HTML image syntax.
func ExtractImageURLs(bodies ...string) []string {
	seen := make(map[string]struct{})
	var urls []string
	for _, body := range bodies {
		for _, pattern := range []*regexp.Regexp{markdownImagePattern, htmlImagePattern} {
			for _, m := range pattern.FindAllStringSubmatch(body, -1) {
				if _, ok := seen[m[1]]; ok {
					continue
				}
				seen[m[1]] = struct{}{}
				urls = append(urls, m[1])
			}
		}
	}
	return urls
}

// DownloadImages fetches each URL with the authenticated client and writes
// it under the fetcher's image directory, returning the URL to local path
// map. A single failed download is logged and skipped so one dead link
// does not sink the run.
func (f *Fetcher) DownloadImages(ctx context.Context, urls []string) (map[string]string, error) {
	paths := make(map[string]string, len(urls))
	if len(urls) == 0 {
		return paths, nil
	}

	log := clog.FromContext(ctx)
	if err := os.MkdirAll(f.imageDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating image directory %q: %w", f.imageDir, err)
	}

	for i, imageURL := range urls {
		local, err := f.downloadImage(ctx, imageURL, i)
		if err != nil {
			log.With("url", imageURL, "error", err).Warn("Failed to download image, skipping")
			continue
		}
		paths[imageURL] = local
	}
	return paths, nil
}

func (f *Fetcher) downloadImage(ctx context.Context, imageURL string, index int) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	local := filepath.Join(f.imageDir, fmt.Sprintf("image-%d%s", index, imageExtension(imageURL)))
	out, err := os.Create(local)
	if err != nil {
		return "", err
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", err
	}
	return local, nil
}

// imageExtension guesses a file extension from the URL path, defaulting to
// .png for extensionless upload URLs.
func imageExtension(imageURL string) string {
	u, err := url.Parse(imageURL)
	if err != nil {
		return ".png"
	}
	if ext := path.Ext(u.Path); ext != "" {
		return ext
	}
	return ".png"
}
