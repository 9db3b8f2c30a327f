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

// RegisterHackerNewsResources adds the hackernews://top/{limit} template plus
// fixed-URI variants so they show up in resources/list.
func RegisterHackerNewsResources(s *server.MCPServer, hackerNewsClient HackerNewsClient) {
	handler := func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		uri := request.Params.URI
		_, segments := parseResourceURI(uri)
		if len(segments) != 2 || segments[0] != "top" {
			return newErrorResourceContents(uri, "invalid hackernews URI: %s", uri)
		}
		limit, err := strconv.Atoi(segments[1])
		if err != nil {
			return newErrorResourceContents(uri, "invalid limit: %s", segments[1])
		}
		stories, err := hackerNewsClient.TopStories(ctx, limit)
		if err != nil {
			return newErrorResourceContents(uri, "failed to fetch HackerNews stories: %v", err)
		}
		return newJSONResourceContents(uri, stories)
	}

	s.AddResourceTemplate(
		mcp.NewResourceTemplate("hackernews://top/{limit}", "hackernews-top",
			mcp.WithTemplateDescription("Get top stories from HackerNews"),
			mcp.WithTemplateMIMEType(jsonMimeType),
		),
		handler,
	)
	s.AddResource(
		mcp.NewResource("hackernews://top/10", "hackernews-top-10",
			mcp.WithResourceDescription("Get top 10 stories from HackerNews"),
			mcp.WithMIMEType(jsonMimeType),
		),
		handler,
	)
	s.AddResource(
		mcp.NewResource("hackernews://top/5", "hackernews-top-5",
			mcp.WithResourceDescription("Get top 5 stories from HackerNews"),
			mcp.WithMIMEType(jsonMimeType),
		),
		handler,
	)
}
