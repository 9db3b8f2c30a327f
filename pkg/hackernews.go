// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"

	"github.com/bborbe/errors"
	"github.com/golang/glog"
)

const HackerNewsBaseURL = "https://hacker-news.firebaseio.com/v0"

// hackerNewsScanWindow is the amount of top stories searching
// and sampling operate on.
const hackerNewsScanWindow = 100

// Story is a HackerNews item reduced to the fields the server exposes.
type Story struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Score       int    `json:"score"`
	By          string `json:"by"`
	Time        int64  `json:"time"`
	Descendants int    `json:"descendants"`
	Sampled     bool   `json:"sampled,omitempty"`
}

//counterfeiter:generate -o ../mocks/hackernews-client.go --fake-name HackerNewsClient . HackerNewsClient
type HackerNewsClient interface {
	// TopStories returns up to limit stories from the top of the frontpage.
	TopStories(ctx context.Context, limit int) ([]Story, error)
	// SearchStories matches query case-insensitive against titles of the
	// current top stories.
	SearchStories(ctx context.Context, query string, limit int) ([]Story, error)
	// SampleStories returns a random selection of the current top stories.
	SampleStories(ctx context.Context, count int) ([]Story, error)
}

func NewHackerNewsClient(
	httpClient *http.Client,
	baseURL string,
	rnd *rand.Rand,
) HackerNewsClient {
	return &hackerNewsClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		rnd:        rnd,
	}
}

type hackerNewsClient struct {
	httpClient *http.Client
	baseURL    string

	// rand.Rand is not safe for concurrent use and the clients share
	// one source across parallel resource reads.
	mux sync.Mutex
	rnd *rand.Rand
}

func (h *hackerNewsClient) TopStories(ctx context.Context, limit int) ([]Story, error) {
	limit = clampInt(limit, 1, 30)
	ids, err := h.topStoryIDs(ctx)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "get top story ids failed")
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return h.stories(ctx, ids, false), nil
}

func (h *hackerNewsClient) SearchStories(ctx context.Context, query string, limit int) ([]Story, error) {
	limit = clampInt(limit, 1, 20)
	ids, err := h.topStoryIDs(ctx)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "get top story ids failed")
	}
	if len(ids) > hackerNewsScanWindow {
		ids = ids[:hackerNewsScanWindow]
	}
	needle := strings.ToLower(query)
	result := make([]Story, 0, limit)
	for _, id := range ids {
		if len(result) >= limit {
			break
		}
		story, err := h.story(ctx, id)
		if err != nil {
			glog.V(2).Infof("get story %d failed: %v", id, err)
			continue
		}
		if strings.Contains(strings.ToLower(story.Title), needle) {
			result = append(result, *story)
		}
	}
	return result, nil
}

func (h *hackerNewsClient) SampleStories(ctx context.Context, count int) ([]Story, error) {
	count = clampInt(count, 1, 20)
	ids, err := h.topStoryIDs(ctx)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "get top story ids failed")
	}
	if len(ids) > hackerNewsScanWindow {
		ids = ids[:hackerNewsScanWindow]
	}
	if count > len(ids) {
		count = len(ids)
	}
	h.mux.Lock()
	perm := h.rnd.Perm(len(ids))
	h.mux.Unlock()
	sampled := make([]int64, 0, count)
	for _, i := range perm[:count] {
		sampled = append(sampled, ids[i])
	}
	return h.stories(ctx, sampled, true), nil
}

func (h *hackerNewsClient) topStoryIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := getJSON(
		ctx,
		h.httpClient,
		fmt.Sprintf("%s/topstories.json", h.baseURL),
		nil,
		"hackernews",
		&ids,
	); err != nil {
		return nil, err
	}
	return ids, nil
}

func (h *hackerNewsClient) story(ctx context.Context, id int64) (*Story, error) {
	var story Story
	if err := getJSON(
		ctx,
		h.httpClient,
		fmt.Sprintf("%s/item/%d.json", h.baseURL, id),
		nil,
		"hackernews",
		&story,
	); err != nil {
		return nil, err
	}
	if story.URL == "" {
		story.URL = fmt.Sprintf("https://news.ycombinator.com/item?id=%d", id)
	}
	return &story, nil
}

// stories fetches the given ids and skips stories that fail to load.
func (h *hackerNewsClient) stories(ctx context.Context, ids []int64, sampled bool) []Story {
	result := make([]Story, 0, len(ids))
	for _, id := range ids {
		story, err := h.story(ctx, id)
		if err != nil {
			glog.V(2).Infof("get story %d failed: %v", id, err)
			continue
		}
		story.Sampled = sampled
		result = append(result, *story)
	}
	return result
}

func getJSON(
	ctx context.Context,
	httpClient *http.Client,
	url string,
	header http.Header,
	api string,
	target interface{},
) error {
	glog.V(2).Infof("get %s", url)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrapf(ctx, err, "create request for %s failed", url)
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		upstreamRequestCounter.WithLabelValues(api, "error").Inc()
		return errors.Wrapf(ctx, err, "get %s failed", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		upstreamRequestCounter.WithLabelValues(api, "error").Inc()
		return errors.Errorf(ctx, "get %s failed with status %d", url, resp.StatusCode)
	}
	upstreamRequestCounter.WithLabelValues(api, "success").Inc()
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.Wrapf(ctx, err, "decode response of %s failed", url)
	}
	return nil
}

func clampInt(value int, min int, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
