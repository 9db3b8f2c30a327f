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

var _ = Describe("CodeReviewTool", func() {
	var ctx context.Context
	var githubClient *mocks.GithubClient
	var tool server.ServerTool
	var request mcp.CallToolRequest
	var result *mcp.CallToolResult
	var err error

	BeforeEach(func() {
		ctx = context.Background()
		githubClient = &mocks.GithubClient{}
		githubClient.RepositoryInfoReturns(&pkg.RepositoryDetails{
			Name:        "golang/go",
			Description: "The Go programming language",
			Language:    "Go",
			Stars:       120000,
			Forks:       17000,
			UpdatedAt:   "2025-06-15T00:00:00Z",
			Topics:      []string{"go", "language"},
		}, nil)
		tool = pkg.NewCodeReviewTool(githubClient)
	})

	Context("NewCodeReviewTool", func() {
		It("creates tool with correct name", func() {
			Expect(tool.Tool.Name).To(Equal("code_review_with_ai"))
		})
	})

	Context("tool execution", func() {
		JustBeforeEach(func() {
			result, err = tool.Handler(ctx, request)
		})

		Context("with repository", func() {
			BeforeEach(func() {
				request = mcp.CallToolRequest{
					Params: mcp.CallToolParams{
						Name: "code_review_with_ai",
						Arguments: map[string]interface{}{
							"repo_owner":   "golang",
							"repo_name":    "go",
							"review_focus": "security",
						},
					},
				}
			})

			It("returns no error", func() {
				Expect(err).To(BeNil())
				Expect(result.IsError).To(BeFalse())
			})

			It("fetches the repository metadata", func() {
				_, owner, repo := githubClient.RepositoryInfoArgsForCall(0)
				Expect(owner).To(Equal("golang"))
				Expect(repo).To(Equal("go"))
			})

			It("returns a sampling envelope with the review prompt", func() {
				var envelope pkg.SamplingEnvelope
				Expect(
					json.Unmarshal([]byte(getTextContent(result.Content[0])), &envelope),
				).To(Succeed())
				Expect(envelope.SamplingRequest.Params.MaxTokens).To(Equal(1200))
				text := envelope.SamplingRequest.Params.Messages[0].Content.Text
				Expect(text).To(ContainSubstring("security code review analysis"))
				Expect(text).To(ContainSubstring("Repository: golang/go"))
				Expect(text).To(ContainSubstring("Security specific analysis"))
			})
		})

		Context("with missing repository", func() {
			BeforeEach(func() {
				request = mcp.CallToolRequest{
					Params: mcp.CallToolParams{
						Name: "code_review_with_ai",
						Arguments: map[string]interface{}{
							"repo_owner": "golang",
						},
					},
				}
			})

			It("returns error result", func() {
				Expect(err).To(BeNil())
				Expect(result.IsError).To(BeTrue())
			})

			It("does not call the api", func() {
				Expect(githubClient.RepositoryInfoCallCount()).To(Equal(0))
			})
		})

		Context("with failing api", func() {
			BeforeEach(func() {
				githubClient.RepositoryInfoReturns(nil, errors.New("banana"))
				request = mcp.CallToolRequest{
					Params: mcp.CallToolParams{
						Name: "code_review_with_ai",
						Arguments: map[string]interface{}{
							"repo_owner": "golang",
							"repo_name":  "go",
						},
					},
				}
			})

			It("returns error result", func() {
				Expect(err).To(BeNil())
				Expect(result.IsError).To(BeTrue())
				Expect(getTextContent(result.Content[0])).To(ContainSubstring("failed to prepare code review"))
			})
		})
	})
})
