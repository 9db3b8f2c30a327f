// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const rootsURI = "roots://"

// RegisterRootsResource adds the roots:// discovery index.
func RegisterRootsResource(s *server.MCPServer) {
	s.AddResource(
		mcp.NewResource(rootsURI, "roots",
			mcp.WithResourceDescription("List available resource roots for discovery"),
			mcp.WithMIMEType(jsonMimeType),
		),
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			return newJSONResourceContents(rootsURI, map[string]interface{}{
				"description": "Available resource categories",
				"roots": []string{
					"hackernews://",
					"github://",
					"sampling://",
					"status://",
				},
				"usage": "Use these URIs to explore different data sources",
			})
		},
	)
}
