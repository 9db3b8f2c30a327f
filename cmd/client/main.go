// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command client is a CLI for the Tech Trends MCP Server. It speaks MCP over
// streamable HTTP (SSE framed) or plain SSE transport and prints results as
// indented JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bborbe/trends_mcp_server/pkg"
)

const defaultURL = "http://localhost:8080/mcp"

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: client [flags] <command> [command flags]

Commands:
  info                     Show server information
  list-tools               List all available tools
  list-resources           List all available resources
  list-prompts             List all available prompt templates
  list-roots               List all available roots (server sampling)
  tool <name> [-args JSON]     Call a tool
  resource <uri>           Read a resource
  root <uri>               Read a root resource
  prompt <name> [-args JSON]   Render a prompt template

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	url := flag.String("url", defaultURL, "MCP server URL")
	transportName := flag.String("transport", "http", "transport to use (http or sse)")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	mcpClient, initResult, err := connect(ctx, *transportName, *url)
	if err != nil {
		log.Fatalf("Failed to connect to server: %v", err)
	}
	defer func() {
		_ = mcpClient.Close()
	}()

	if err := dispatch(ctx, mcpClient, initResult, *url, args); err != nil {
		log.Fatalf("%v", err)
	}
}

func connect(
	ctx context.Context,
	transportName string,
	url string,
) (*client.Client, *mcp.InitializeResult, error) {
	var mcpTransport transport.Interface
	var err error
	switch transportName {
	case "http":
		mcpTransport, err = transport.NewStreamableHTTP(url)
	case "sse":
		mcpTransport, err = transport.NewSSE(url)
	default:
		return nil, nil, fmt.Errorf("unknown transport: %s", transportName)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("create %s transport failed: %w", transportName, err)
	}

	mcpClient := client.NewClient(mcpTransport)
	if err := mcpClient.Start(ctx); err != nil {
		return nil, nil, fmt.Errorf("start client failed: %w", err)
	}

	initRequest := mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			Capabilities: mcp.ClientCapabilities{
				Sampling: &struct{}{},
			},
			ClientInfo: mcp.Implementation{
				Name:    "trends-mcp-client",
				Version: "1.0.0",
			},
		},
	}
	initResult, err := mcpClient.Initialize(ctx, initRequest)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize MCP session failed: %w", err)
	}
	return mcpClient, initResult, nil
}

func dispatch(
	ctx context.Context,
	mcpClient *client.Client,
	initResult *mcp.InitializeResult,
	url string,
	args []string,
) error {
	switch args[0] {
	case "info":
		return printServerInfo(ctx, mcpClient, initResult, url)
	case "list-tools":
		return printTools(ctx, mcpClient)
	case "list-resources":
		return printResources(ctx, mcpClient)
	case "list-prompts":
		return printPrompts(ctx, mcpClient)
	case "list-roots":
		return printRoots(ctx, mcpClient)
	case "tool":
		name, toolArgs, err := nameAndArgs("tool", args[1:])
		if err != nil {
			return err
		}
		return callTool(ctx, mcpClient, name, toolArgs)
	case "resource", "root":
		if len(args) != 2 {
			return fmt.Errorf("usage: client %s <uri>", args[0])
		}
		return readResource(ctx, mcpClient, args[1])
	case "prompt":
		name, promptArgs, err := nameAndArgs("prompt", args[1:])
		if err != nil {
			return err
		}
		return getPrompt(ctx, mcpClient, name, promptArgs)
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func nameAndArgs(command string, args []string) (string, map[string]interface{}, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("usage: client %s <name> [-args JSON]", command)
	}
	name := args[0]
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	argsJSON := fs.String("args", "{}", "arguments as JSON string")
	if err := fs.Parse(args[1:]); err != nil {
		return "", nil, err
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(*argsJSON), &parsed); err != nil {
		return "", nil, fmt.Errorf("invalid JSON arguments: %w", err)
	}
	return name, parsed, nil
}

func printServerInfo(
	ctx context.Context,
	mcpClient *client.Client,
	initResult *mcp.InitializeResult,
	url string,
) error {
	fmt.Println("🖥️  MCP Server Information")
	fmt.Println("==========================================")
	fmt.Printf("Server Name:      %s\n", initResult.ServerInfo.Name)
	fmt.Printf("Version:          %s\n", initResult.ServerInfo.Version)
	fmt.Printf("Protocol Version: %s\n", initResult.ProtocolVersion)
	fmt.Printf("URL:              %s\n", url)

	tools, err := mcpClient.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return fmt.Errorf("list tools failed: %w", err)
	}
	resources, err := mcpClient.ListResources(ctx, mcp.ListResourcesRequest{})
	if err != nil {
		return fmt.Errorf("list resources failed: %w", err)
	}
	prompts, err := listPrompts(ctx, mcpClient)
	if err != nil {
		return fmt.Errorf("list prompts failed: %w", err)
	}

	fmt.Println("\nAvailable Components:")
	fmt.Printf("  • Tools:            %d\n", len(tools.Tools))
	fmt.Printf("  • Resources:        %d\n", len(resources.Resources))
	fmt.Printf("  • Prompt Templates: %d\n", len(prompts))
	return nil
}

func printTools(ctx context.Context, mcpClient *client.Client) error {
	tools, err := mcpClient.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return fmt.Errorf("list tools failed: %w", err)
	}
	fmt.Printf("🛠️  Available Tools (%d):\n", len(tools.Tools))
	fmt.Println("==========================================")
	for i, tool := range tools.Tools {
		fmt.Printf("\n%d. %s\n", i+1, tool.Name)
		if tool.Description != "" {
			fmt.Printf("   %s\n", tool.Description)
		}
		for name, parameter := range tool.InputSchema.Properties {
			parameterType := "any"
			if properties, ok := parameter.(map[string]interface{}); ok {
				if value, ok := properties["type"].(string); ok {
					parameterType = value
				}
			}
			requiredMark := ""
			for _, required := range tool.InputSchema.Required {
				if required == name {
					requiredMark = "*"
					break
				}
			}
			fmt.Printf("   - %s%s: %s\n", name, requiredMark, parameterType)
		}
	}
	fmt.Println("\n* parameter is required")
	return nil
}

func printResources(ctx context.Context, mcpClient *client.Client) error {
	resources, err := mcpClient.ListResources(ctx, mcp.ListResourcesRequest{})
	if err != nil {
		return fmt.Errorf("list resources failed: %w", err)
	}
	fmt.Printf("📚 Available Resources (%d):\n", len(resources.Resources))
	fmt.Println("==========================================")
	for _, resource := range resources.Resources {
		fmt.Printf("\n%s\n", resource.URI)
		fmt.Printf("   Name:        %s\n", resource.Name)
		if resource.Description != "" {
			fmt.Printf("   Description: %s\n", resource.Description)
		}
		if resource.MIMEType != "" {
			fmt.Printf("   MIME Type:   %s\n", resource.MIMEType)
		}
	}
	return nil
}

// listPrompts prefers prompts/list and falls back to the get_server_prompts
// tool for servers that only expose the catalog as a tool.
func listPrompts(ctx context.Context, mcpClient *client.Client) ([]pkg.PromptSpec, error) {
	prompts, err := mcpClient.ListPrompts(ctx, mcp.ListPromptsRequest{})
	if err == nil {
		result := make([]pkg.PromptSpec, 0, len(prompts.Prompts))
		for _, prompt := range prompts.Prompts {
			spec := pkg.PromptSpec{
				Name:        prompt.Name,
				Description: prompt.Description,
			}
			for _, argument := range prompt.Arguments {
				spec.Arguments = append(spec.Arguments, pkg.PromptArgumentSpec{
					Name:        argument.Name,
					Description: argument.Description,
					Required:    argument.Required,
				})
			}
			result = append(result, spec)
		}
		return result, nil
	}

	request := mcp.CallToolRequest{}
	request.Params.Name = "get_server_prompts"
	request.Params.Arguments = map[string]interface{}{}
	response, err := mcpClient.CallTool(ctx, request)
	if err != nil {
		return nil, err
	}
	var result []pkg.PromptSpec
	for _, content := range response.Content {
		textContent, ok := mcp.AsTextContent(content)
		if !ok {
			continue
		}
		var spec pkg.PromptSpec
		if err := json.Unmarshal([]byte(textContent.Text), &spec); err != nil {
			continue
		}
		result = append(result, spec)
	}
	return result, nil
}

func printPrompts(ctx context.Context, mcpClient *client.Client) error {
	prompts, err := listPrompts(ctx, mcpClient)
	if err != nil {
		return fmt.Errorf("list prompts failed: %w", err)
	}
	fmt.Printf("💬 Available Prompt Templates (%d):\n", len(prompts))
	fmt.Println("==========================================")
	for _, prompt := range prompts {
		fmt.Printf("\n%s\n", prompt.Name)
		fmt.Printf("   %s\n", prompt.Description)
		for _, argument := range prompt.Arguments {
			requiredMark := ""
			if argument.Required {
				requiredMark = "*"
			}
			fmt.Printf("   - %s%s: %s\n", argument.Name, requiredMark, argument.Description)
		}
	}
	return nil
}

func printRoots(ctx context.Context, mcpClient *client.Client) error {
	return readResource(ctx, mcpClient, "roots://")
}

func readResource(ctx context.Context, mcpClient *client.Client, uri string) error {
	request := mcp.ReadResourceRequest{}
	request.Params.URI = uri
	response, err := mcpClient.ReadResource(ctx, request)
	if err != nil {
		return fmt.Errorf("read resource %s failed: %w", uri, err)
	}
	fmt.Printf("📄 Resource: %s\n", uri)
	fmt.Println("==========================================")
	for _, content := range response.Contents {
		textContent, ok := mcp.AsTextResourceContents(content)
		if !ok {
			continue
		}
		fmt.Println(prettyJSON(textContent.Text))
	}
	return nil
}

func callTool(
	ctx context.Context,
	mcpClient *client.Client,
	name string,
	args map[string]interface{},
) error {
	request := mcp.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = args
	response, err := mcpClient.CallTool(ctx, request)
	if err != nil {
		return fmt.Errorf("call tool %s failed: %w", name, err)
	}
	if response.IsError {
		fmt.Printf("❌ Tool %s returned an error:\n", name)
	} else {
		fmt.Printf("🔧 Tool %s result:\n", name)
	}
	fmt.Println("==========================================")
	for _, content := range response.Content {
		textContent, ok := mcp.AsTextContent(content)
		if !ok {
			continue
		}
		fmt.Println(prettyJSON(textContent.Text))
		handleSamplingEnvelope(textContent.Text)
	}
	return nil
}

// handleSamplingEnvelope simulates how a real MCP client would process a
// sampling request contained in tool output: it summarizes the request and
// prints the completion it would hand back.
func handleSamplingEnvelope(text string) {
	var envelope pkg.SamplingEnvelope
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		return
	}
	if envelope.SamplingRequest.Method != "sampling/createMessage" {
		return
	}
	params := envelope.SamplingRequest.Params

	fmt.Println("\n🧠 Sampling Request Received")
	fmt.Println("==========================================")
	fmt.Printf("Method:          %s\n", envelope.SamplingRequest.Method)
	fmt.Printf("Messages:        %d message(s)\n", len(params.Messages))
	fmt.Printf("Max Tokens:      %d\n", params.MaxTokens)
	fmt.Printf("Temperature:     %v\n", params.Temperature)
	fmt.Printf("Include Context: %s\n", params.IncludeContext)
	fmt.Println("\nIn a real implementation, this would be sent to your LLM provider.")

	for i, message := range params.Messages {
		text := message.Content.Text
		if len(text) > 200 {
			text = text[:200] + "..."
		}
		fmt.Printf("\nMessage %d (%s): %s\n", i+1, message.Role, text)
	}

	simulated, err := json.MarshalIndent(
		pkg.SimulateSamplingResponse(envelope.SamplingRequest),
		"",
		"  ",
	)
	if err != nil {
		return
	}
	fmt.Println("\nSimulated response:")
	fmt.Println(string(simulated))
}

func getPrompt(
	ctx context.Context,
	mcpClient *client.Client,
	name string,
	args map[string]interface{},
) error {
	arguments := make(map[string]string, len(args))
	for key, value := range args {
		arguments[key] = fmt.Sprint(value)
	}
	request := mcp.GetPromptRequest{}
	request.Params.Name = name
	request.Params.Arguments = arguments
	response, err := mcpClient.GetPrompt(ctx, request)
	if err != nil {
		return fmt.Errorf("get prompt %s failed: %w", name, err)
	}
	fmt.Printf("💬 Prompt: %s\n", name)
	if response.Description != "" {
		fmt.Printf("   %s\n", response.Description)
	}
	fmt.Println("==========================================")
	for _, message := range response.Messages {
		textContent, ok := mcp.AsTextContent(message.Content)
		if !ok {
			continue
		}
		fmt.Printf("\n[%s]\n%s\n", message.Role, textContent.Text)
	}
	return nil
}

func prettyJSON(text string) string {
	var value interface{}
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return text
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return text
	}
	return string(data)
}
