// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterGithubResources adds the github://trending/{language}/{since}
// template plus fixed-URI variants so they show up in resources/list.
func RegisterGithubResources(s *server.MCPServer, githubClient GithubClient) {
	handler := func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		uri := request.Params.URI
		_, segments := parseResourceURI(uri)
		if len(segments) != 3 || segments[0] != "trending" {
			return newErrorResourceContents(uri, "invalid github URI: %s", uri)
		}
		repositories, err := githubClient.TrendingRepositories(ctx, segments[1], segments[2])
		if err != nil {
			return newErrorResourceContents(uri, "failed to fetch GitHub trending repos: %v", err)
		}
		return newJSONResourceContents(uri, repositories)
	}

	s.AddResourceTemplate(
		mcp.NewResourceTemplate("github://trending/{language}/{since}", "github-trending",
			mcp.WithTemplateDescription("Get trending repositories from GitHub"),
			mcp.WithTemplateMIMEType(jsonMimeType),
		),
		handler,
	)
	s.AddResource(
		mcp.NewResource("github://trending/python/daily", "github-trending-python-daily",
			mcp.WithResourceDescription("Get trending Python repositories (daily)"),
			mcp.WithMIMEType(jsonMimeType),
		),
		handler,
	)
	s.AddResource(
		mcp.NewResource("github://trending/javascript/weekly", "github-trending-javascript-weekly",
			mcp.WithResourceDescription("Get trending JavaScript repositories (weekly)"),
			mcp.WithMIMEType(jsonMimeType),
		),
		handler,
	)
}
