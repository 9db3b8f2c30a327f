// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg_test

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/trends_mcp_server/pkg"
)

var _ = Describe("ServerPromptsTool", func() {
	var ctx context.Context
	var tool server.ServerTool
	var result *mcp.CallToolResult
	var err error

	BeforeEach(func() {
		ctx = context.Background()
		tool = pkg.NewServerPromptsTool()
	})

	It("creates tool with correct name", func() {
		Expect(tool.Tool.Name).To(Equal("get_server_prompts"))
	})

	Context("tool execution", func() {
		JustBeforeEach(func() {
			result, err = tool.Handler(ctx, mcp.CallToolRequest{
				Params: mcp.CallToolParams{
					Name: "get_server_prompts",
				},
			})
		})

		It("returns no error", func() {
			Expect(err).To(BeNil())
			Expect(result.IsError).To(BeFalse())
		})

		It("returns one content item per prompt", func() {
			Expect(result.Content).To(HaveLen(len(pkg.PromptCatalog())))
		})

		It("returns parseable prompt specs", func() {
			names := make([]string, 0)
			for _, content := range result.Content {
				var spec pkg.PromptSpec
				Expect(
					json.Unmarshal([]byte(getTextContent(content)), &spec),
				).To(Succeed())
				names = append(names, spec.Name)
			}
			Expect(names).To(ContainElements(
				"analyze_tech_trends",
				"project_research",
				"competitive_analysis",
				"learning_roadmap",
				"code_review_assistant",
			))
		})
	})
})
