// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/bborbe/trends_mcp_server/pkg"
)

func main() {
	listen := flag.String("listen", ":8080", "address to listen on")
	flag.Parse()

	mcpServer := pkg.NewDefaultMCPServer(os.Getenv("GITHUB_TOKEN"))

	// Create HTTP server
	httpServer := server.NewStreamableHTTPServer(mcpServer)

	log.Printf("Starting HTTP MCP server on %s", *listen)
	log.Println("Endpoint: http://localhost" + *listen + "/mcp")
	log.Println("")
	log.Println("Available features:")
	log.Println("- HackerNews integration (resources & tools)")
	log.Println("- GitHub repository discovery")
	log.Println("- Server-side sampling with roots capability")
	log.Println("- Tech trends analysis prompts")

	// Start the server
	if err := httpServer.Start(*listen); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
