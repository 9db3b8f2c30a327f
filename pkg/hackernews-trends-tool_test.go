// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg_test

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/trends_mcp_server/mocks"
	"github.com/bborbe/trends_mcp_server/pkg"
)

var _ = Describe("AnalyzeHackerNewsTrendsTool", func() {
	var ctx context.Context
	var hackerNewsClient *mocks.HackerNewsClient
	var tool server.ServerTool
	var request mcp.CallToolRequest
	var result *mcp.CallToolResult
	var err error

	BeforeEach(func() {
		ctx = context.Background()
		hackerNewsClient = &mocks.HackerNewsClient{}
		hackerNewsClient.SearchStoriesReturns([]pkg.Story{
			{ID: 1, Title: "AI beats benchmark", Score: 200},
			{ID: 2, Title: "New AI chip", Score: 150},
		}, nil)
		tool = pkg.NewAnalyzeHackerNewsTrendsTool(hackerNewsClient)
	})

	Context("NewAnalyzeHackerNewsTrendsTool", func() {
		It("creates tool with correct name", func() {
			Expect(tool.Tool.Name).To(Equal("analyze_hackernews_trends_with_ai"))
		})
	})

	Context("tool execution", func() {
		JustBeforeEach(func() {
			result, err = tool.Handler(ctx, request)
		})

		Context("without arguments", func() {
			BeforeEach(func() {
				request = mcp.CallToolRequest{
					Params: mcp.CallToolParams{
						Name:      "analyze_hackernews_trends_with_ai",
						Arguments: map[string]interface{}{},
					},
				}
			})

			It("returns no error", func() {
				Expect(err).To(BeNil())
				Expect(result.IsError).To(BeFalse())
			})

			It("searches for the default topic", func() {
				_, topic, count := hackerNewsClient.SearchStoriesArgsForCall(0)
				Expect(topic).To(Equal("AI"))
				Expect(count).To(Equal(5))
			})

			It("returns a sampling envelope over the stories", func() {
				var envelope pkg.SamplingEnvelope
				Expect(
					json.Unmarshal([]byte(getTextContent(result.Content[0])), &envelope),
				).To(Succeed())
				Expect(envelope.SamplingRequest.Method).To(Equal("sampling/createMessage"))
				Expect(envelope.SamplingRequest.Params.MaxTokens).To(Equal(1500))
				text := envelope.SamplingRequest.Params.Messages[0].Content.Text
				Expect(text).To(ContainSubstring("AI beats benchmark (200 points)"))
				Expect(text).To(ContainSubstring("comprehensive analysis"))
			})
		})

		Context("with custom topic", func() {
			BeforeEach(func() {
				request = mcp.CallToolRequest{
					Params: mcp.CallToolParams{
						Name: "analyze_hackernews_trends_with_ai",
						Arguments: map[string]interface{}{
							"topic":         "rust",
							"count":         3,
							"analysis_type": "brief",
						},
					},
				}
			})

			It("passes the arguments to the search", func() {
				_, topic, count := hackerNewsClient.SearchStoriesArgsForCall(0)
				Expect(topic).To(Equal("rust"))
				Expect(count).To(Equal(3))
			})
		})

		Context("without matching stories", func() {
			BeforeEach(func() {
				hackerNewsClient.SearchStoriesReturns(nil, nil)
				request = mcp.CallToolRequest{
					Params: mcp.CallToolParams{
						Name:      "analyze_hackernews_trends_with_ai",
						Arguments: map[string]interface{}{},
					},
				}
			})

			It("returns error result", func() {
				Expect(err).To(BeNil())
				Expect(result.IsError).To(BeTrue())
				Expect(getTextContent(result.Content[0])).To(ContainSubstring("no valid stories found"))
			})
		})

		Context("with failing api", func() {
			BeforeEach(func() {
				hackerNewsClient.SearchStoriesReturns(nil, errors.New("banana"))
				request = mcp.CallToolRequest{
					Params: mcp.CallToolParams{
						Name:      "analyze_hackernews_trends_with_ai",
						Arguments: map[string]interface{}{},
					},
				}
			})

			It("returns error result", func() {
				Expect(err).To(BeNil())
				Expect(result.IsError).To(BeTrue())
			})
		})
	})
})
