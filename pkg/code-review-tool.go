// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bborbe/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func NewCodeReviewTool(githubClient GithubClient) server.ServerTool {

	type CodeReviewArgs struct {
		RepoOwner   string `json:"repo_owner"`
		RepoName    string `json:"repo_name"`
		ReviewFocus string `json:"review_focus"`
	}

	tool := mcp.NewTool("code_review_with_ai",
		mcp.WithDescription("Get AI-powered code review insights for a GitHub repository"),
		mcp.WithString("repo_owner",
			mcp.Required(),
			mcp.Description("GitHub repository owner"),
		),
		mcp.WithString("repo_name",
			mcp.Required(),
			mcp.Description("Repository name"),
		),
		mcp.WithString("review_focus",
			mcp.Description("Focus area (security, performance, architecture, general)"),
			mcp.DefaultString("general"),
		),
	)
	handler := mcp.NewTypedToolHandler(func(
		ctx context.Context,
		request mcp.CallToolRequest,
		args CodeReviewArgs,
	) (*mcp.CallToolResult, error) {
		if args.RepoOwner == "" || args.RepoName == "" {
			return mcp.NewToolResultError("repo_owner and repo_name are required"), nil
		}
		envelope, err := reviewRepository(
			ctx,
			githubClient,
			args.RepoOwner,
			args.RepoName,
			args.ReviewFocus,
		)
		if err != nil {
			return mcp.NewToolResultError(
				fmt.Sprintf("failed to prepare code review: %v", err),
			), nil
		}
		return newToolResultJSON(envelope), nil
	})
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}

// reviewRepository fetches repository metadata and wraps a review prompt over
// it into a sampling envelope. Shared by the tool and the analysis:// resource.
func reviewRepository(
	ctx context.Context,
	githubClient GithubClient,
	owner string,
	repo string,
	reviewFocus string,
) (*SamplingEnvelope, error) {
	if reviewFocus == "" {
		reviewFocus = "general"
	}
	details, err := githubClient.RepositoryInfo(ctx, owner, repo)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "could not retrieve repository information")
	}

	repoContext := fmt.Sprintf(`Repository: %s
Description: %s
Language: %s
Stars: %d
Forks: %d
Last updated: %s
Topics: %s`,
		details.Name,
		details.Description,
		details.Language,
		details.Stars,
		details.Forks,
		details.UpdatedAt,
		strings.Join(details.Topics, ", "),
	)

	prompt := fmt.Sprintf(`Please provide a %s code review analysis for this GitHub repository:

%s

Based on the repository metadata, provide insights on:
1. Code quality indicators (based on stars, activity, community engagement)
2. Architectural considerations (based on language and project type)
3. %s specific analysis
4. Recommendations for improvement
5. Community adoption and maintenance indicators

Focus on actionable insights that can help developers understand the project's strengths and areas for improvement.`,
		reviewFocus,
		repoContext,
		capitalize(reviewFocus),
	)

	return NewSamplingEnvelope(ctx, SamplingOptions{
		Prompt: prompt,
		ContextData: map[string]interface{}{
			"repository":    fmt.Sprintf("%s/%s", owner, repo),
			"review_focus":  reviewFocus,
			"repo_metadata": details,
			"source":        "github",
			"timestamp":     time.Now().Format(time.RFC3339),
		},
		MaxTokens:            1200,
		Temperature:          0.4,
		ModelHint:            "claude-3-sonnet",
		IntelligencePriority: 0.95,
		CostPriority:         0.1,
		SpeedPriority:        0.3,
	})
}
