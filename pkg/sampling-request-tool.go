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

func NewCreateSamplingRequestTool() server.ServerTool {

	type SamplingRequestArgs struct {
		Prompt               string                 `json:"prompt"`
		ContextData          map[string]interface{} `json:"context_data,omitempty"`
		MaxTokens            int                    `json:"max_tokens"`
		Temperature          *float64               `json:"temperature"`
		ModelHint            string                 `json:"model_hint,omitempty"`
		IntelligencePriority *float64               `json:"intelligence_priority"`
		CostPriority         *float64               `json:"cost_priority"`
		SpeedPriority        *float64               `json:"speed_priority"`
	}

	tool := mcp.NewTool("create_sampling_request",
		mcp.WithDescription(
			"Create a sampling request according to MCP "+ProtocolVersion+" specification",
		),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("The prompt to send to the LLM"),
		),
		mcp.WithObject("context_data",
			mcp.Description("Optional context data to include"),
		),
		mcp.WithNumber("max_tokens",
			mcp.Description("Maximum tokens to generate"),
			mcp.DefaultNumber(1000),
		),
		mcp.WithNumber("temperature",
			mcp.Description("Sampling temperature (0.0 to 1.0)"),
			mcp.DefaultNumber(0.7),
		),
		mcp.WithString("model_hint",
			mcp.Description("Optional model name hint (e.g. claude-3-sonnet, gpt-4)"),
		),
		mcp.WithNumber("intelligence_priority",
			mcp.Description("How much to prioritize intelligence (0.0-1.0)"),
			mcp.DefaultNumber(0.8),
		),
		mcp.WithNumber("cost_priority",
			mcp.Description("How much to prioritize cost efficiency (0.0-1.0)"),
			mcp.DefaultNumber(0.3),
		),
		mcp.WithNumber("speed_priority",
			mcp.Description("How much to prioritize response speed (0.0-1.0)"),
			mcp.DefaultNumber(0.5),
		),
	)
	handler := mcp.NewTypedToolHandler(func(
		ctx context.Context,
		request mcp.CallToolRequest,
		args SamplingRequestArgs,
	) (*mcp.CallToolResult, error) {
		if args.Prompt == "" {
			return mcp.NewToolResultError("prompt is required"), nil
		}
		if args.MaxTokens == 0 {
			args.MaxTokens = 1000
		}
		envelope, err := NewSamplingEnvelope(ctx, SamplingOptions{
			Prompt:               args.Prompt,
			ContextData:          args.ContextData,
			MaxTokens:            args.MaxTokens,
			Temperature:          floatOrDefault(args.Temperature, 0.7),
			ModelHint:            args.ModelHint,
			IntelligencePriority: floatOrDefault(args.IntelligencePriority, 0.8),
			CostPriority:         floatOrDefault(args.CostPriority, 0.3),
			SpeedPriority:        floatOrDefault(args.SpeedPriority, 0.5),
		})
		if err != nil {
			return mcp.NewToolResultError(
				fmt.Sprintf("failed to create sampling request: %v", err),
			), nil
		}
		return newToolResultJSON(envelope), nil
	})
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}

func floatOrDefault(value *float64, defaultValue float64) float64 {
	if value == nil {
		return defaultValue
	}
	return *value
}
