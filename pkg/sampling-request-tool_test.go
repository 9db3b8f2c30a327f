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

var _ = Describe("CreateSamplingRequestTool", func() {
	var ctx context.Context
	var tool server.ServerTool
	var request mcp.CallToolRequest
	var result *mcp.CallToolResult
	var err error

	BeforeEach(func() {
		ctx = context.Background()
		tool = pkg.NewCreateSamplingRequestTool()
	})

	Context("NewCreateSamplingRequestTool", func() {
		It("creates tool with correct name", func() {
			Expect(tool.Tool.Name).To(Equal("create_sampling_request"))
		})
	})

	Context("tool execution", func() {
		JustBeforeEach(func() {
			result, err = tool.Handler(ctx, request)
		})

		Context("with prompt only", func() {
			BeforeEach(func() {
				request = mcp.CallToolRequest{
					Params: mcp.CallToolParams{
						Name: "create_sampling_request",
						Arguments: map[string]interface{}{
							"prompt": "Summarize the news",
						},
					},
				}
			})

			It("returns no error", func() {
				Expect(err).To(BeNil())
				Expect(result.IsError).To(BeFalse())
			})

			It("applies the defaults", func() {
				var envelope pkg.SamplingEnvelope
				Expect(
					json.Unmarshal([]byte(getTextContent(result.Content[0])), &envelope),
				).To(Succeed())
				Expect(envelope.SamplingRequest.Method).To(Equal("sampling/createMessage"))
				Expect(envelope.SamplingRequest.Params.MaxTokens).To(Equal(1000))
				Expect(envelope.SamplingRequest.Params.Temperature).To(Equal(0.7))
				Expect(envelope.ModelPreferences.IntelligencePriority).To(Equal(0.8))
				Expect(envelope.ModelPreferences.CostPriority).To(Equal(0.3))
				Expect(envelope.ModelPreferences.SpeedPriority).To(Equal(0.5))
			})
		})

		Context("with explicit options", func() {
			BeforeEach(func() {
				request = mcp.CallToolRequest{
					Params: mcp.CallToolParams{
						Name: "create_sampling_request",
						Arguments: map[string]interface{}{
							"prompt":      "Summarize the news",
							"max_tokens":  500,
							"temperature": 0.1,
							"model_hint":  "claude-3-haiku",
							"context_data": map[string]interface{}{
								"source": "hackernews",
							},
						},
					},
				}
			})

			It("uses the given options", func() {
				var envelope pkg.SamplingEnvelope
				Expect(
					json.Unmarshal([]byte(getTextContent(result.Content[0])), &envelope),
				).To(Succeed())
				Expect(envelope.SamplingRequest.Params.MaxTokens).To(Equal(500))
				Expect(envelope.SamplingRequest.Params.Temperature).To(Equal(0.1))
				Expect(envelope.ModelPreferences.Hints).To(HaveLen(1))
				Expect(envelope.ModelPreferences.Hints[0].Name).To(Equal("claude-3-haiku"))
				Expect(
					envelope.SamplingRequest.Params.Messages[0].Content.Text,
				).To(ContainSubstring("Context data:"))
			})
		})

		Context("with missing prompt", func() {
			BeforeEach(func() {
				request = mcp.CallToolRequest{
					Params: mcp.CallToolParams{
						Name:      "create_sampling_request",
						Arguments: map[string]interface{}{},
					},
				}
			})

			It("returns error result", func() {
				Expect(err).To(BeNil())
				Expect(result.IsError).To(BeTrue())
			})
		})

		Context("with invalid priority", func() {
			BeforeEach(func() {
				request = mcp.CallToolRequest{
					Params: mcp.CallToolParams{
						Name: "create_sampling_request",
						Arguments: map[string]interface{}{
							"prompt":        "Summarize the news",
							"cost_priority": 1.5,
						},
					},
				}
			})

			It("returns error result", func() {
				Expect(err).To(BeNil())
				Expect(result.IsError).To(BeTrue())
				Expect(getTextContent(result.Content[0])).To(ContainSubstring("cost_priority"))
			})
		})
	})
})
