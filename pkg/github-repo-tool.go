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

func NewGithubRepoInfoTool(githubClient GithubClient) server.ServerTool {

	type RepoInfoArgs struct {
		Owner string `json:"owner"`
		Repo  string `json:"repo"`
	}

	tool := mcp.NewTool("get_github_repo_info",
		mcp.WithDescription("Get detailed information about a specific GitHub repository"),
		mcp.WithString("owner",
			mcp.Required(),
			mcp.Description("Repository owner (username or organization)"),
		),
		mcp.WithString("repo",
			mcp.Required(),
			mcp.Description("Repository name"),
		),
	)
	handler := mcp.NewTypedToolHandler(func(
		ctx context.Context,
		request mcp.CallToolRequest,
		args RepoInfoArgs,
	) (*mcp.CallToolResult, error) {
		if args.Owner == "" || args.Repo == "" {
			return mcp.NewToolResultError("owner and repo are required"), nil
		}
		details, err := githubClient.RepositoryInfo(ctx, args.Owner, args.Repo)
		if err != nil {
			return mcp.NewToolResultError(
				fmt.Sprintf("failed to fetch repository info: %v", err),
			), nil
		}
		return newToolResultJSON(details), nil
	})
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
