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

func NewAnalyzeHackerNewsTrendsTool(hackerNewsClient HackerNewsClient) server.ServerTool {

	type TrendsArgs struct {
		Topic        string `json:"topic"`
		Count        int    `json:"count"`
		AnalysisType string `json:"analysis_type"`
	}

	tool := mcp.NewTool("analyze_hackernews_trends_with_ai",
		mcp.WithDescription("Analyze HackerNews trends using AI through sampling"),
		mcp.WithString("topic",
			mcp.Description("Topic to analyze in HackerNews stories"),
			mcp.DefaultString("AI"),
		),
		mcp.WithNumber("count",
			mcp.Description("Number of stories to analyze"),
			mcp.DefaultNumber(5),
		),
		mcp.WithString("analysis_type",
			mcp.Description("Type of analysis (brief, detailed, comprehensive)"),
			mcp.DefaultString("comprehensive"),
		),
	)
	handler := mcp.NewTypedToolHandler(func(
		ctx context.Context,
		request mcp.CallToolRequest,
		args TrendsArgs,
	) (*mcp.CallToolResult, error) {
		envelope, err := analyzeHackerNewsTrends(
			ctx,
			hackerNewsClient,
			args.Topic,
			args.Count,
			args.AnalysisType,
		)
		if err != nil {
			return mcp.NewToolResultError(
				fmt.Sprintf("failed to analyze trends: %v", err),
			), nil
		}
		return newToolResultJSON(envelope), nil
	})
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}

// analyzeHackerNewsTrends collects matching stories and wraps an analysis
// prompt over them into a sampling envelope. Shared by the tool and the
// analysis:// resources.
func analyzeHackerNewsTrends(
	ctx context.Context,
	hackerNewsClient HackerNewsClient,
	topic string,
	count int,
	analysisType string,
) (*SamplingEnvelope, error) {
	if topic == "" {
		topic = "AI"
	}
	if count == 0 {
		count = 5
	}
	if analysisType == "" {
		analysisType = "comprehensive"
	}
	stories, err := hackerNewsClient.SearchStories(ctx, topic, count)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "search stories failed")
	}
	if len(stories) == 0 {
		return nil, errors.Errorf(ctx, "no valid stories found to analyze")
	}

	lines := make([]string, 0, len(stories))
	for _, story := range stories {
		lines = append(lines, fmt.Sprintf("- %s (%d points)", story.Title, story.Score))
	}

	prompt := fmt.Sprintf(`Please analyze these HackerNews stories about %s:

%s

Provide a %s analysis covering:
1. Main themes and trends
2. Community sentiment and engagement
3. Technical developments highlighted
4. Potential impact and implications
5. Key takeaways for the tech community

Focus on providing actionable insights based on the story titles and engagement levels.`,
		topic,
		strings.Join(lines, "\n"),
		analysisType,
	)

	return NewSamplingEnvelope(ctx, SamplingOptions{
		Prompt: prompt,
		ContextData: map[string]interface{}{
			"topic":         topic,
			"analysis_type": analysisType,
			"story_count":   len(stories),
			"stories":       stories,
			"source":        "hackernews",
			"timestamp":     time.Now().Format(time.RFC3339),
		},
		MaxTokens:            1500,
		Temperature:          0.3,
		ModelHint:            "claude-3-sonnet",
		IntelligencePriority: 0.9,
		CostPriority:         0.2,
		SpeedPriority:        0.4,
	})
}
