// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/bborbe/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterAnalysisResources adds the analysis:// templates that expose the
// AI-analysis tools as readable resources.
func RegisterAnalysisResources(
	s *server.MCPServer,
	hackerNewsClient HackerNewsClient,
	githubClient GithubClient,
) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate("analysis://hackernews/{topic}/{count}", "analysis-hackernews",
			mcp.WithTemplateDescription("Provide AI analysis of HackerNews trends as a resource"),
			mcp.WithTemplateMIMEType(jsonMimeType),
		),
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			uri := request.Params.URI
			_, segments := parseResourceURI(uri)
			if len(segments) != 3 {
				return newErrorResourceContents(uri, "invalid analysis URI: %s", uri)
			}
			topic := segments[1]
			count, err := strconv.Atoi(segments[2])
			if err != nil {
				return newErrorResourceContents(uri, "invalid count: %s", segments[2])
			}
			envelope, err := analyzeHackerNewsTrends(ctx, hackerNewsClient, topic, count, "comprehensive")
			if err != nil {
				return newErrorResourceContents(uri, "failed to create analysis resource: %v", err)
			}
			return newJSONResourceContents(uri, map[string]interface{}{
				"analysis_topic":   topic,
				"story_count":      count,
				"analysis_request": envelope,
				"instructions":     "Send the sampling request to your LLM client for analysis",
				"timestamp":        time.Now().Format(time.RFC3339),
			})
		},
	)
	s.AddResourceTemplate(
		mcp.NewResourceTemplate("analysis://github/{owner}/{repo}", "analysis-github",
			mcp.WithTemplateDescription("Provide AI analysis of GitHub repository as a resource"),
			mcp.WithTemplateMIMEType(jsonMimeType),
		),
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			uri := request.Params.URI
			_, segments := parseResourceURI(uri)
			if len(segments) != 3 {
				return newErrorResourceContents(uri, "invalid analysis URI: %s", uri)
			}
			owner := segments[1]
			repo := segments[2]
			envelope, err := reviewRepository(ctx, githubClient, owner, repo, "comprehensive")
			if err != nil {
				return newErrorResourceContents(uri, "failed to create GitHub analysis resource: %v", err)
			}
			return newJSONResourceContents(uri, map[string]interface{}{
				"repository":       fmt.Sprintf("%s/%s", owner, repo),
				"analysis_request": envelope,
				"instructions":     "Send the sampling request to your LLM client for code review analysis",
				"timestamp":        time.Now().Format(time.RFC3339),
			})
		},
	)
}

// handleAIAnalysisURI serves sampling://ai-analysis/{data_type}/{params}.
func handleAIAnalysisURI(
	ctx context.Context,
	uri string,
	dataType string,
	params map[string]string,
	hackerNewsClient HackerNewsClient,
	githubClient GithubClient,
) ([]mcp.ResourceContents, error) {
	switch dataType {
	case "hackernews":
		topic := valueOrDefault(params, "topic", "AI")
		count, err := strconv.Atoi(valueOrDefault(params, "count", "5"))
		if err != nil {
			return newErrorResourceContents(uri, "invalid count: %s", params["count"])
		}
		envelope, err := analyzeHackerNewsTrends(ctx, hackerNewsClient, topic, count, "comprehensive")
		if err != nil {
			return newErrorResourceContents(uri, "failed to create AI analysis: %v", err)
		}
		return newJSONResourceContents(uri, envelope)
	case "github":
		owner := valueOrDefault(params, "owner", "microsoft")
		repo := valueOrDefault(params, "repo", "vscode")
		envelope, err := reviewRepository(ctx, githubClient, owner, repo, "general")
		if err != nil {
			return newErrorResourceContents(uri, "failed to create AI analysis: %v", err)
		}
		return newJSONResourceContents(uri, envelope)
	case "trends":
		envelope, err := analyzeMultiSourceTrends(
			ctx,
			hackerNewsClient,
			githubClient,
			valueOrDefault(params, "query", "AI"),
			valueOrDefault(params, "language", "python"),
		)
		if err != nil {
			return newErrorResourceContents(uri, "failed to create AI analysis: %v", err)
		}
		return newJSONResourceContents(uri, envelope)
	default:
		return newErrorResourceContents(
			uri,
			"unknown data type: %s. Supported: hackernews, github, trends",
			dataType,
		)
	}
}

// analyzeMultiSourceTrends combines HackerNews search results and sampled
// GitHub repositories into one sampling envelope.
func analyzeMultiSourceTrends(
	ctx context.Context,
	hackerNewsClient HackerNewsClient,
	githubClient GithubClient,
	query string,
	language string,
) (*SamplingEnvelope, error) {
	stories, err := hackerNewsClient.SearchStories(ctx, query, 3)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "search stories failed")
	}
	repositories, err := githubClient.SampleRepositories(ctx, language, 3)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "sample repositories failed")
	}

	storiesJSON, err := marshalIndent(stories)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "marshal stories failed")
	}
	repositoriesJSON, err := marshalIndent(repositories)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "marshal repositories failed")
	}

	prompt := fmt.Sprintf(`Analyze current technology trends based on this data:

HackerNews Stories: %s

GitHub Repositories: %s

Provide insights on:
1. Emerging technology trends
2. Developer community interests
3. Market momentum and adoption
4. Future implications
5. Recommended actions for developers`,
		storiesJSON,
		repositoriesJSON,
	)

	return NewSamplingEnvelope(ctx, SamplingOptions{
		Prompt: prompt,
		ContextData: map[string]interface{}{
			"query":           query,
			"language":        language,
			"hackernews_data": stories,
			"github_data":     repositories,
			"analysis_type":   "multi_source_trends",
			"timestamp":       time.Now().Format(time.RFC3339),
		},
		MaxTokens:            2000,
		Temperature:          0.5,
		ModelHint:            "claude-3-sonnet",
		IntelligencePriority: 0.85,
		CostPriority:         0.3,
		SpeedPriority:        0.4,
	})
}

func valueOrDefault(values map[string]string, key string, defaultValue string) string {
	if value, ok := values[key]; ok && value != "" {
		return value
	}
	return defaultValue
}
