// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

const jsonMimeType = "application/json"

func marshalIndent(value interface{}) (string, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func newToolResultJSON(value interface{}) *mcp.CallToolResult {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal result failed: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

func newJSONResourceContents(uri string, value interface{}) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: jsonMimeType,
			Text:     string(data),
		},
	}, nil
}

// newErrorResourceContents reports upstream failures as structured payloads
// instead of protocol errors, so resource reads always yield contents.
func newErrorResourceContents(uri string, format string, args ...interface{}) ([]mcp.ResourceContents, error) {
	return newJSONResourceContents(uri, map[string]interface{}{
		"error": fmt.Sprintf(format, args...),
	})
}
