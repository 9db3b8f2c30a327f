// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate go run -mod=mod github.com/maxbrunsfeld/counterfeiter/v6 -generate

package pkg

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"
)

const (
	ServerName    = "Tech Trends MCP Server"
	ServerVersion = "1.0.0"
)

// NewMCPServer assembles the MCP server with all tools, resources and
// prompts on top of the given API clients.
func NewMCPServer(
	hackerNewsClient HackerNewsClient,
	githubClient GithubClient,
) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithInstructions(
			"Data-fetching demo server: HackerNews and GitHub integration, "+
				"server-side sampling resources and simulated MCP sampling requests.",
		),
	)

	s.AddTools(
		NewServerPromptsTool(),
		NewSearchHackerNewsTool(hackerNewsClient),
		NewGithubRepoInfoTool(githubClient),
		NewCreateSamplingRequestTool(),
		NewAnalyzeHackerNewsTrendsTool(hackerNewsClient),
		NewCodeReviewTool(githubClient),
	)

	generator := NewSampleDataGenerator(
		rand.New(rand.NewSource(time.Now().UnixNano())),
		time.Now,
	)

	RegisterRootsResource(s)
	RegisterStatusResources(s)
	RegisterHackerNewsResources(s, hackerNewsClient)
	RegisterGithubResources(s, githubClient)
	RegisterSamplingResources(s, hackerNewsClient, githubClient, generator)
	RegisterAnalysisResources(s, hackerNewsClient, githubClient)

	RegisterPrompts(s)

	return s
}

// NewDefaultMCPServer wires the server against the public HackerNews and
// GitHub APIs. The token is optional and only raises GitHub rate limits.
func NewDefaultMCPServer(githubToken string) *server.MCPServer {
	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	return NewMCPServer(
		NewHackerNewsClient(httpClient, HackerNewsBaseURL, rnd),
		NewGithubClient(httpClient, GithubBaseURL, githubToken, rnd, time.Now),
	)
}
