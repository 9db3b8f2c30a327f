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

	// Create SSE server
	sseServer := server.NewSSEServer(mcpServer)

	log.Printf("Starting SSE MCP server on %s", *listen)
	log.Println("Endpoint: http://localhost" + *listen + "/sse")
	log.Println("")
	log.Println("This server uses Server-Sent Events (SSE) transport.")
	log.Println("Clients can connect using SSE for real-time communication.")

	// Start the server
	if err := sseServer.Start(*listen); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
