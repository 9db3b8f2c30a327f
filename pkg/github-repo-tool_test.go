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

var _ = Describe("GithubRepoInfoTool", func() {
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
			Stars:       120000,
			Language:    "Go",
		}, nil)
		tool = pkg.NewGithubRepoInfoTool(githubClient)
	})

	Context("NewGithubRepoInfoTool", func() {
		It("creates tool with correct name", func() {
			Expect(tool.Tool.Name).To(Equal("get_github_repo_info"))
		})
	})

	Context("tool execution", func() {
		JustBeforeEach(func() {
			result, err = tool.Handler(ctx, request)
		})

		Context("with owner and repo", func() {
			BeforeEach(func() {
				request = mcp.CallToolRequest{
					Params: mcp.CallToolParams{
						Name: "get_github_repo_info",
						Arguments: map[string]interface{}{
							"owner": "golang",
							"repo":  "go",
						},
					},
				}
			})

			It("returns no error", func() {
				Expect(err).To(BeNil())
			})

			It("passes owner and repo to the api", func() {
				_, owner, repo := githubClient.RepositoryInfoArgsForCall(0)
				Expect(owner).To(Equal("golang"))
				Expect(repo).To(Equal("go"))
			})

			It("returns the repository details as json", func() {
				var details pkg.RepositoryDetails
				Expect(
					json.Unmarshal([]byte(getTextContent(result.Content[0])), &details),
				).To(Succeed())
				Expect(details.Name).To(Equal("golang/go"))
				Expect(details.Stars).To(Equal(120000))
			})
		})

		Context("with missing owner", func() {
			BeforeEach(func() {
				request = mcp.CallToolRequest{
					Params: mcp.CallToolParams{
						Name: "get_github_repo_info",
						Arguments: map[string]interface{}{
							"repo": "go",
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
						Name: "get_github_repo_info",
						Arguments: map[string]interface{}{
							"owner": "golang",
							"repo":  "go",
						},
					},
				}
			})

			It("returns error result", func() {
				Expect(err).To(BeNil())
				Expect(result.IsError).To(BeTrue())
				Expect(getTextContent(result.Content[0])).To(ContainSubstring("failed to fetch repository info"))
			})
		})
	})
})
