// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServerPromptsTool exposes the prompt catalog as a tool. Clients that
// cannot reach prompts/list fall back to calling this, one JSON content item
// per prompt.
func NewServerPromptsTool() server.ServerTool {
	tool := mcp.NewTool("get_server_prompts",
		mcp.WithDescription("List all available prompt templates"),
	)
	handler := func(
		ctx context.Context,
		request mcp.CallToolRequest,
	) (*mcp.CallToolResult, error) {
		contents := make([]mcp.Content, 0)
		for _, spec := range PromptCatalog() {
			data, err := json.MarshalIndent(spec, "", "  ")
			if err != nil {
				return mcp.NewToolResultError(
					fmt.Sprintf("marshal prompt %s failed: %v", spec.Name, err),
				), nil
			}
			contents = append(contents, mcp.NewTextContent(string(data)))
		}
		return &mcp.CallToolResult{
			Content: contents,
		}, nil
	}
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
