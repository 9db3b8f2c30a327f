// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bborbe/trends_mcp_server/pkg"
)

func main() {
	var addr string
	var githubToken string
	flag.StringVar(&addr, "listen", ":8095", "address to listen on")
	flag.StringVar(&githubToken, "github-token", os.Getenv("GITHUB_TOKEN"), "GitHub API token")
	flag.Parse()

	mcpServer := server.NewStreamableHTTPServer(pkg.NewDefaultMCPServer(githubToken))
	router := gin.Default()

	// CORS middleware for handling preflight and actual requests
	corsMiddleware := func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Mcp-Protocol-Version, Mcp-Session-Id, Content-Type")
		c.Header("Access-Control-Max-Age", "86400")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
	router.Use(corsMiddleware)

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Register POST, GET, DELETE methods for the /mcp path, all handled by MCPServer
	router.POST("/mcp/http", gin.WrapH(mcpServer))
	router.GET("/mcp/http", gin.WrapH(mcpServer))
	router.DELETE("/mcp/http", gin.WrapH(mcpServer))

	slog.Info("MCP HTTP server listening", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		slog.Error("Server error", "err", err)
		os.Exit(1)
	}
}
