// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func NewSearchHackerNewsTool(hackerNewsClient HackerNewsClient) server.ServerTool {

	type SearchArgs struct {
		Query string `json:"query"`
		Limit int    `json:"limit"`
	}

	tool := mcp.NewTool("search_hackernews",
		mcp.WithDescription("Search HackerNews stories by title"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search term to look for in story titles"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of stories to return"),
			mcp.DefaultNumber(5),
			mcp.Min(1),
			mcp.Max(20),
		),
	)
	handler := mcp.NewTypedToolHandler(func(
		ctx context.Context,
		request mcp.CallToolRequest,
		args SearchArgs,
	) (*mcp.CallToolResult, error) {
		if args.Query == "" {
			return mcp.NewToolResultError("query is required"), nil
		}
		if args.Limit == 0 {
			args.Limit = 5
		}
		stories, err := hackerNewsClient.SearchStories(ctx, args.Query, args.Limit)
		if err != nil {
			return mcp.NewToolResultError(
				fmt.Sprintf("failed to search HackerNews: %v", err),
			), nil
		}
		return newToolResultJSON(stories), nil
	})
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
