/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubdata

import "net/http"

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithImageDir sets the directory downloaded images are written to.
func WithImageDir(dir string) Option {
	return func(f *Fetcher) {
		f.imageDir = dir
	}
}

// WithBaseURL points both API clients at a GitHub Enterprise instance.
func WithBaseURL(apiURL string) Option {
	return func(f *Fetcher) {
		f.apiURL = apiURL
	}
}

// WithHTTPClient overrides the HTTP client used for API calls and image
// downloads. Intended for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.httpClient = client
	}
}
