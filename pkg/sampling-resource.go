// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterSamplingResources adds all sampling:// templates. The templates
// overlap (sampling://repositories/go/3 also matches the generic
// sampling://{sampling_type}/{num_samples} pattern), so every registration
// delegates to one dispatcher keyed on the first path segment.
func RegisterSamplingResources(
	s *server.MCPServer,
	hackerNewsClient HackerNewsClient,
	githubClient GithubClient,
	generator *SampleDataGenerator,
) {
	handler := func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleSamplingURI(
			ctx,
			request.Params.URI,
			hackerNewsClient,
			githubClient,
			generator,
		)
	}

	s.AddResourceTemplate(
		mcp.NewResourceTemplate("sampling://{sampling_type}/{num_samples}", "sampling-data",
			mcp.WithTemplateDescription("Provide server-side sampling with different strategies"),
			mcp.WithTemplateMIMEType(jsonMimeType),
		),
		handler,
	)
	s.AddResourceTemplate(
		mcp.NewResourceTemplate("sampling://repositories/{language}/{count}", "sampling-repositories",
			mcp.WithTemplateDescription("Server-side sampling of repositories by language"),
			mcp.WithTemplateMIMEType(jsonMimeType),
		),
		handler,
	)
	s.AddResourceTemplate(
		mcp.NewResourceTemplate("sampling://hackernews/{count}", "sampling-hackernews",
			mcp.WithTemplateDescription("Server-side sampling of HackerNews stories"),
			mcp.WithTemplateMIMEType(jsonMimeType),
		),
		handler,
	)
	s.AddResourceTemplate(
		mcp.NewResourceTemplate("sampling://ai-analysis/{data_type}/{params}", "sampling-ai-analysis",
			mcp.WithTemplateDescription("Server-side sampling with AI analysis capabilities"),
			mcp.WithTemplateMIMEType(jsonMimeType),
		),
		handler,
	)
}

func handleSamplingURI(
	ctx context.Context,
	uri string,
	hackerNewsClient HackerNewsClient,
	githubClient GithubClient,
	generator *SampleDataGenerator,
) ([]mcp.ResourceContents, error) {
	_, segments := parseResourceURI(uri)
	if len(segments) < 2 {
		return newErrorResourceContents(uri, "invalid sampling URI: %s", uri)
	}
	switch segments[0] {
	case "repositories":
		if len(segments) != 3 {
			return newErrorResourceContents(uri, "invalid sampling URI: %s", uri)
		}
		count, err := strconv.Atoi(segments[2])
		if err != nil {
			return newErrorResourceContents(uri, "invalid count: %s", segments[2])
		}
		repositories, err := githubClient.SampleRepositories(ctx, segments[1], count)
		if err != nil {
			return newErrorResourceContents(uri, "failed to sample repositories: %v", err)
		}
		return newJSONResourceContents(uri, repositories)
	case "hackernews":
		count, err := strconv.Atoi(segments[1])
		if err != nil {
			return newErrorResourceContents(uri, "invalid count: %s", segments[1])
		}
		stories, err := hackerNewsClient.SampleStories(ctx, count)
		if err != nil {
			return newErrorResourceContents(uri, "failed to sample HackerNews stories: %v", err)
		}
		return newJSONResourceContents(uri, stories)
	case "ai-analysis":
		if len(segments) != 3 {
			return newErrorResourceContents(uri, "invalid sampling URI: %s", uri)
		}
		return handleAIAnalysisURI(
			ctx,
			uri,
			segments[1],
			parseURIParams(segments[2]),
			hackerNewsClient,
			githubClient,
		)
	default:
		numSamples, err := strconv.Atoi(segments[1])
		if err != nil {
			return newErrorResourceContents(uri, "invalid num_samples: %s", segments[1])
		}
		result, err := generator.Generate(ctx, segments[0], numSamples)
		if err != nil {
			return newErrorResourceContents(uri, "%v", err)
		}
		return newJSONResourceContents(uri, result)
	}
}
