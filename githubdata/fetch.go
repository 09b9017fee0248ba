/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubdata

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"chainguard.dev/agentprep/eventcontext"
	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v84/github"
	"github.com/shurcooL/githubv4"
	"github.com/waigani/diffparser"
	"golang.org/x/oauth2"
)

// Fetcher retrieves the data bundle for an agent run.
type Fetcher struct {
	rest       *github.Client
	graphql    *githubv4.Client
	httpClient *http.Client
	apiURL     string
	imageDir   string
}

// NewFetcher builds a Fetcher authenticating with token.
func NewFetcher(ctx context.Context, token string, opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		imageDir: filepath.Join("/tmp", "agentprep-images"),
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.httpClient == nil {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		f.httpClient = oauth2.NewClient(ctx, src)
	}

	if f.apiURL != "" {
		rest, err := github.NewClient(f.httpClient).WithEnterpriseURLs(f.apiURL, f.apiURL)
		if err != nil {
			return nil, fmt.Errorf("configuring enterprise REST client: %w", err)
		}
		f.rest = rest
		f.graphql = githubv4.NewEnterpriseClient(strings.TrimSuffix(f.apiURL, "/")+"/graphql", f.httpClient)
	} else {
		f.rest = github.NewClient(f.httpClient)
		f.graphql = githubv4.NewClient(f.httpClient)
	}
	return f, nil
}

// Fetch retrieves everything the prompt needs for the prepared context:
// metadata and the comment threads, plus changed files for PRs, plus any
// images the bodies reference.
func (f *Fetcher) Fetch(ctx context.Context, prepared *eventcontext.PreparedContext) (*FetchedData, error) {
	owner, name, err := splitRepository(prepared.Repository)
	if err != nil {
		return nil, err
	}
	number, err := strconv.Atoi(prepared.Event.Number())
	if err != nil {
		return nil, fmt.Errorf("parsing entity number %q: %w", prepared.Event.Number(), err)
	}

	var data *FetchedData
	if prepared.Event.IsPR() {
		data, err = f.fetchPullRequest(ctx, owner, name, number)
	} else {
		data, err = f.fetchIssue(ctx, owner, name, number)
	}
	if err != nil {
		return nil, err
	}

	bodies := []string{data.Metadata.Body}
	for _, c := range data.Comments {
		bodies = append(bodies, c.Body)
	}
	for _, r := range data.Reviews {
		bodies = append(bodies, r.Body)
		for _, c := range r.Comments {
			bodies = append(bodies, c.Body)
		}
	}
	data.ImagePaths, err = f.DownloadImages(ctx, ExtractImageURLs(bodies...))
	if err != nil {
		return nil, err
	}

	return data, nil
}

// commentNode is the shared GraphQL shape for issue and PR comments.
type commentNode struct {
	Author    struct{ Login githubv4.String }
	Body      githubv4.String
	CreatedAt githubv4.DateTime
}

func (f *Fetcher) fetchIssue(ctx context.Context, owner, name string, number int) (*FetchedData, error) {
	var q struct {
		Repository struct {
			Issue struct {
				Title     githubv4.String
				Body      githubv4.String
				State     githubv4.String
				CreatedAt githubv4.DateTime
				Author    struct{ Login githubv4.String }
				Comments  struct {
					Nodes []commentNode
				} `graphql:"comments(first: 100)"`
			} `graphql:"issue(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}
	vars := map[string]any{
		"owner":  githubv4.String(owner),
		"name":   githubv4.String(name),
		"number": githubv4.Int(number),
	}
	if err := f.graphql.Query(ctx, &q, vars); err != nil {
		return nil, fmt.Errorf("fetching issue %s/%s#%d: %w", owner, name, number, err)
	}

	issue := q.Repository.Issue
	return &FetchedData{
		Metadata: Metadata{
			Title:     string(issue.Title),
			Body:      string(issue.Body),
			Author:    string(issue.Author.Login),
			State:     string(issue.State),
			CreatedAt: issue.CreatedAt.Format(time.RFC3339),
		},
		Comments: convertComments(issue.Comments.Nodes),
	}, nil
}

func (f *Fetcher) fetchPullRequest(ctx context.Context, owner, name string, number int) (*FetchedData, error) {
	var q struct {
		Repository struct {
			PullRequest struct {
				Title       githubv4.String
				Body        githubv4.String
				State       githubv4.String
				CreatedAt   githubv4.DateTime
				Author      struct{ Login githubv4.String }
				BaseRefName githubv4.String
				HeadRefName githubv4.String
				Additions   githubv4.Int
				Deletions   githubv4.Int
				Commits     struct{ TotalCount githubv4.Int }
				Comments    struct {
					Nodes []commentNode
				} `graphql:"comments(first: 100)"`
				Reviews struct {
					Nodes []struct {
						Author      struct{ Login githubv4.String }
						State       githubv4.String
						Body        githubv4.String
						SubmittedAt githubv4.DateTime
						Comments    struct {
							Nodes []struct {
								Author    struct{ Login githubv4.String }
								Body      githubv4.String
								CreatedAt githubv4.DateTime
								Path      githubv4.String
								Line      githubv4.Int
							}
						} `graphql:"comments(first: 100)"`
					}
				} `graphql:"reviews(first: 100)"`
			} `graphql:"pullRequest(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}
	vars := map[string]any{
		"owner":  githubv4.String(owner),
		"name":   githubv4.String(name),
		"number": githubv4.Int(number),
	}
	if err := f.graphql.Query(ctx, &q, vars); err != nil {
		return nil, fmt.Errorf("fetching PR %s/%s#%d: %w", owner, name, number, err)
	}

	pr := q.Repository.PullRequest
	reviews := make([]Review, 0, len(pr.Reviews.Nodes))
	for _, r := range pr.Reviews.Nodes {
		review := Review{
			Author:      string(r.Author.Login),
			State:       string(r.State),
			Body:        string(r.Body),
			SubmittedAt: r.SubmittedAt.Format(time.RFC3339),
		}
		for _, c := range r.Comments.Nodes {
			review.Comments = append(review.Comments, ReviewComment{
				Author:    string(c.Author.Login),
				Body:      string(c.Body),
				CreatedAt: c.CreatedAt.Format(time.RFC3339),
				Path:      string(c.Path),
				Line:      int(c.Line),
			})
		}
		reviews = append(reviews, review)
	}

	files, err := f.listChangedFiles(ctx, owner, name, number)
	if err != nil {
		return nil, err
	}

	return &FetchedData{
		Metadata: Metadata{
			Title:       string(pr.Title),
			Body:        string(pr.Body),
			Author:      string(pr.Author.Login),
			State:       string(pr.State),
			CreatedAt:   pr.CreatedAt.Format(time.RFC3339),
			BaseBranch:  string(pr.BaseRefName),
			HeadBranch:  string(pr.HeadRefName),
			Additions:   int(pr.Additions),
			Deletions:   int(pr.Deletions),
			CommitCount: int(pr.Commits.TotalCount),
		},
		Comments:     convertComments(pr.Comments.Nodes),
		Reviews:      reviews,
		ChangedFiles: files,
	}, nil
}

// listChangedFiles pulls the changed-file list (with blob SHAs) over REST
// and enriches it with hunk counts parsed from the unified diff. A diff
// that fails to parse degrades to zero hunk counts rather than failing the
// run.
func (f *Fetcher) listChangedFiles(ctx context.Context, owner, name string, number int) ([]ChangedFile, error) {
	log := clog.FromContext(ctx)

	var files []ChangedFile
	opts := &github.ListOptions{PerPage: 100}
	for {
		page, resp, err := f.rest.PullRequests.ListFiles(ctx, owner, name, number, opts)
		if err != nil {
			return nil, fmt.Errorf("listing changed files for %s/%s#%d: %w", owner, name, number, err)
		}
		for _, cf := range page {
			files = append(files, ChangedFile{
				Path:      cf.GetFilename(),
				Status:    cf.GetStatus(),
				SHA:       cf.GetSHA(),
				Additions: cf.GetAdditions(),
				Deletions: cf.GetDeletions(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	raw, _, err := f.rest.PullRequests.GetRaw(ctx, owner, name, number, github.RawOptions{Type: github.Diff})
	if err != nil {
		return nil, fmt.Errorf("fetching diff for %s/%s#%d: %w", owner, name, number, err)
	}
	diff, err := diffparser.Parse(raw)
	if err != nil {
		log.With("error", err).Warn("Failed to parse PR diff, omitting hunk counts")
		return files, nil
	}

	hunks := make(map[string]int, len(diff.Files))
	for _, df := range diff.Files {
		hunks[df.NewName] = len(df.Hunks)
	}
	for i := range files {
		files[i].Hunks = hunks[files[i].Path]
	}
	return files, nil
}

func convertComments(nodes []commentNode) []Comment {
	comments := make([]Comment, 0, len(nodes))
	for _, n := range nodes {
		comments = append(comments, Comment{
			Author:    string(n.Author.Login),
			Body:      string(n.Body),
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}
	return comments
}

func splitRepository(repository string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(repository, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("malformed repository %q, want owner/name", repository)
	}
	return owner, name, nil
}
