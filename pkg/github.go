// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/bborbe/errors"
)

const GithubBaseURL = "https://api.github.com"

// Repository is a GitHub repository reduced to the fields the server exposes.
type Repository struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Stars       int    `json:"stars"`
	Language    string `json:"language"`
	Forks       int    `json:"forks"`
	Sampled     bool   `json:"sampled,omitempty"`
}

// RepositoryDetails contains the extended fields of a single repository lookup.
type RepositoryDetails struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	Issues      int      `json:"issues"`
	Language    string   `json:"language"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	Topics      []string `json:"topics"`
}

//counterfeiter:generate -o ../mocks/github-client.go --fake-name GithubClient . GithubClient
type GithubClient interface {
	// TrendingRepositories approximates GitHub trending via the search API:
	// most starred repositories created within the given time range.
	TrendingRepositories(ctx context.Context, language string, since string) ([]Repository, error)
	// SampleRepositories returns a random selection of the most starred
	// repositories of the given language.
	SampleRepositories(ctx context.Context, language string, count int) ([]Repository, error)
	// RepositoryInfo returns details of a single repository.
	RepositoryInfo(ctx context.Context, owner string, repo string) (*RepositoryDetails, error)
}

func NewGithubClient(
	httpClient *http.Client,
	baseURL string,
	token string,
	rnd *rand.Rand,
	now func() time.Time,
) GithubClient {
	return &githubClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		rnd:        rnd,
		now:        now,
	}
}

type githubClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
	now        func() time.Time

	// rand.Rand is not safe for concurrent use and the clients share
	// one source across parallel resource reads.
	mux sync.Mutex
	rnd *rand.Rand
}

var sinceDays = map[string]int{
	"daily":   1,
	"weekly":  7,
	"monthly": 30,
}

func (g *githubClient) TrendingRepositories(ctx context.Context, language string, since string) ([]Repository, error) {
	days, ok := sinceDays[since]
	if !ok {
		days = sinceDays["daily"]
	}
	queryParts := []string{"sort:stars"}
	if language != "" && language != "all" {
		queryParts = append(queryParts, fmt.Sprintf("language:%s", language))
	}
	queryParts = append(
		queryParts,
		fmt.Sprintf("created:>=%s", g.now().AddDate(0, 0, -days).Format("2006-01-02")),
	)
	return g.searchRepositories(ctx, strings.Join(queryParts, " "), 10)
}

func (g *githubClient) SampleRepositories(ctx context.Context, language string, count int) ([]Repository, error) {
	count = clampInt(count, 1, 10)
	queryParts := []string{"sort:stars"}
	if language != "" && language != "all" {
		queryParts = append(queryParts, fmt.Sprintf("language:%s", language))
	}
	repositories, err := g.searchRepositories(ctx, strings.Join(queryParts, " "), 50)
	if err != nil {
		return nil, err
	}
	if count > len(repositories) {
		count = len(repositories)
	}
	g.mux.Lock()
	perm := g.rnd.Perm(len(repositories))
	g.mux.Unlock()
	result := make([]Repository, 0, count)
	for _, i := range perm[:count] {
		repository := repositories[i]
		repository.Sampled = true
		result = append(result, repository)
	}
	return result, nil
}

func (g *githubClient) RepositoryInfo(ctx context.Context, owner string, repo string) (*RepositoryDetails, error) {
	var item githubRepository
	if err := getJSON(
		ctx,
		g.httpClient,
		fmt.Sprintf("%s/repos/%s/%s", g.baseURL, owner, repo),
		g.header(),
		"github",
		&item,
	); err != nil {
		return nil, errors.Wrapf(ctx, err, "get repository %s/%s failed", owner, repo)
	}
	return &RepositoryDetails{
		Name:        item.FullName,
		Description: item.Description,
		URL:         item.HTMLURL,
		Stars:       item.StargazersCount,
		Forks:       item.ForksCount,
		Issues:      item.OpenIssuesCount,
		Language:    item.Language,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
		Topics:      item.Topics,
	}, nil
}

func (g *githubClient) searchRepositories(ctx context.Context, query string, perPage int) ([]Repository, error) {
	var response struct {
		Items []githubRepository `json:"items"`
	}
	if err := getJSON(
		ctx,
		g.httpClient,
		fmt.Sprintf(
			"%s/search/repositories?q=%s&sort=stars&order=desc&per_page=%d",
			g.baseURL,
			url.QueryEscape(query),
			perPage,
		),
		g.header(),
		"github",
		&response,
	); err != nil {
		return nil, errors.Wrapf(ctx, err, "search repositories failed")
	}
	result := make([]Repository, 0, len(response.Items))
	for _, item := range response.Items {
		result = append(result, Repository{
			Name:        item.FullName,
			Description: item.Description,
			URL:         item.HTMLURL,
			Stars:       item.StargazersCount,
			Language:    item.Language,
			Forks:       item.ForksCount,
		})
	}
	return result, nil
}

func (g *githubClient) header() http.Header {
	header := http.Header{}
	header.Set("Accept", "application/vnd.github.v3+json")
	if g.token != "" {
		header.Set("Authorization", fmt.Sprintf("Bearer %s", g.token))
	}
	return header
}

type githubRepository struct {
	FullName        string   `json:"full_name"`
	Description     string   `json:"description"`
	HTMLURL         string   `json:"html_url"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	OpenIssuesCount int      `json:"open_issues_count"`
	Language        string   `json:"language"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
	Topics          []string `json:"topics"`
}
