// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// AvailableResourceURIs lists every resource URI and template the server
// serves, exposed via status://resources.
func AvailableResourceURIs() []string {
	return []string{
		"roots://",
		"hackernews://top/{limit}",
		"github://trending/{language}/{since}",
		"sampling://{sampling_type}/{num_samples}",
		"sampling://repositories/{language}/{count}",
		"sampling://hackernews/{count}",
		"analysis://hackernews/{topic}/{count}",
		"analysis://github/{owner}/{repo}",
		"sampling://ai-analysis/{data_type}/{params}",
		"status://server",
		"status://resources",
	}
}

// RegisterStatusResources adds the status://server and status://resources
// endpoints.
func RegisterStatusResources(s *server.MCPServer) {
	s.AddResource(
		mcp.NewResource("status://server", "server-status",
			mcp.WithResourceDescription("Get current server status and capabilities"),
			mcp.WithMIMEType(jsonMimeType),
		),
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			return newJSONResourceContents("status://server", map[string]interface{}{
				"status":    "running",
				"timestamp": time.Now().Format(time.RFC3339),
				"capabilities": map[string]bool{
					"resources": true,
					"tools":     true,
					"prompts":   true,
					"roots":     true,
				},
				"endpoints": map[string][]string{
					"hackernews": {"top", "search"},
					"github":     {"trending", "repo_info"},
					"sampling":   {"random", "sequential", "distribution", "repositories", "hackernews"},
				},
			})
		},
	)
	s.AddResource(
		mcp.NewResource("status://resources", "resource-list",
			mcp.WithResourceDescription("List all available resources in the server"),
			mcp.WithMIMEType(jsonMimeType),
		),
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			return newJSONResourceContents("status://resources", map[string]interface{}{
				"available_resources": AvailableResourceURIs(),
				"description":         "Use these URIs to access different data sources",
				"timestamp":           time.Now().Format(time.RFC3339),
			})
		},
	)
}
