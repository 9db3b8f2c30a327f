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

func getTextContent(content mcp.Content) string {
	textContent, ok := mcp.AsTextContent(content)
	if !ok {
		return ""
	}
	return textContent.Text
}

var _ = Describe("SearchHackerNewsTool", func() {
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
			{ID: 1, Title: "Go 1.25 released", Score: 100, By: "alice"},
		}, nil)
		tool = pkg.NewSearchHackerNewsTool(hackerNewsClient)
	})

	Context("NewSearchHackerNewsTool", func() {
		It("creates tool with correct name", func() {
			Expect(tool.Tool.Name).To(Equal("search_hackernews"))
		})

		It("creates tool with handler", func() {
			Expect(tool.Handler).NotTo(BeNil())
		})
	})

	Context("tool execution", func() {
		JustBeforeEach(func() {
			result, err = tool.Handler(ctx, request)
		})

		Context("with missing query", func() {
			BeforeEach(func() {
				request = mcp.CallToolRequest{
					Params: mcp.CallToolParams{
						Name:      "search_hackernews",
						Arguments: map[string]interface{}{},
					},
				}
			})

			It("returns no error", func() {
				Expect(err).To(BeNil())
			})

			It("returns error result", func() {
				Expect(result.IsError).To(BeTrue())
			})

			It("does not call the api", func() {
				Expect(hackerNewsClient.SearchStoriesCallCount()).To(Equal(0))
			})
		})

		Context("with query", func() {
			BeforeEach(func() {
				request = mcp.CallToolRequest{
					Params: mcp.CallToolParams{
						Name: "search_hackernews",
						Arguments: map[string]interface{}{
							"query": "go",
						},
					},
				}
			})

			It("returns no error", func() {
				Expect(err).To(BeNil())
			})

			It("returns success result", func() {
				Expect(result.IsError).To(BeFalse())
			})

			It("uses the default limit", func() {
				_, query, limit := hackerNewsClient.SearchStoriesArgsForCall(0)
				Expect(query).To(Equal("go"))
				Expect(limit).To(Equal(5))
			})

			It("returns the stories as json", func() {
				var stories []pkg.Story
				Expect(
					json.Unmarshal([]byte(getTextContent(result.Content[0])), &stories),
				).To(Succeed())
				Expect(stories).To(HaveLen(1))
				Expect(stories[0].Title).To(Equal("Go 1.25 released"))
			})
		})

		Context("with custom limit", func() {
			BeforeEach(func() {
				request = mcp.CallToolRequest{
					Params: mcp.CallToolParams{
						Name: "search_hackernews",
						Arguments: map[string]interface{}{
							"query": "go",
							"limit": 10,
						},
					},
				}
			})

			It("passes the limit to the api", func() {
				_, _, limit := hackerNewsClient.SearchStoriesArgsForCall(0)
				Expect(limit).To(Equal(10))
			})
		})

		Context("with failing api", func() {
			BeforeEach(func() {
				hackerNewsClient.SearchStoriesReturns(nil, errors.New("banana"))
				request = mcp.CallToolRequest{
					Params: mcp.CallToolParams{
						Name: "search_hackernews",
						Arguments: map[string]interface{}{
							"query": "go",
						},
					},
				}
			})

			It("returns no error", func() {
				Expect(err).To(BeNil())
			})

			It("returns error result", func() {
				Expect(result.IsError).To(BeTrue())
				Expect(getTextContent(result.Content[0])).To(ContainSubstring("failed to search HackerNews"))
			})
		})
	})
})
