// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bborbe/errors"
)

// ProtocolVersion is the MCP protocol revision the simulated
// sampling requests are built for.
const ProtocolVersion = "2025-03-26"

type SamplingContentAnnotations struct {
	Audience []string `json:"audience"`
	Priority float64  `json:"priority"`
}

type SamplingContent struct {
	Type        string                      `json:"type"`
	Text        string                      `json:"text"`
	Annotations *SamplingContentAnnotations `json:"annotations,omitempty"`
}

type SamplingMessage struct {
	Role    string          `json:"role"`
	Content SamplingContent `json:"content"`
}

type ModelHint struct {
	Name string `json:"name"`
}

type ModelPreferences struct {
	IntelligencePriority float64     `json:"intelligencePriority"`
	CostPriority         float64     `json:"costPriority"`
	SpeedPriority        float64     `json:"speedPriority"`
	Hints                []ModelHint `json:"hints,omitempty"`
}

type SamplingMeta struct {
	ProtocolVersion string                 `json:"protocolVersion"`
	ServerContext   map[string]interface{} `json:"serverContext"`
}

type SamplingParams struct {
	Messages         []SamplingMessage `json:"messages"`
	MaxTokens        int               `json:"maxTokens"`
	Temperature      float64           `json:"temperature"`
	ModelPreferences ModelPreferences  `json:"modelPreferences"`
	IncludeContext   string            `json:"includeContext"`
	Meta             SamplingMeta      `json:"_meta"`
}

// SamplingRequest is a simulated sampling/createMessage request. The server
// never sends it over the wire, clients receive it as tool output and decide
// what to do with it.
type SamplingRequest struct {
	Method string         `json:"method"`
	Params SamplingParams `json:"params"`
}

// SamplingEnvelope wraps a sampling request the way tool results return it.
type SamplingEnvelope struct {
	SamplingRequest  SamplingRequest  `json:"sampling_request"`
	Status           string           `json:"status"`
	Description      string           `json:"description"`
	ModelPreferences ModelPreferences `json:"model_preferences"`
}

type SamplingOptions struct {
	Prompt               string
	ContextData          map[string]interface{}
	MaxTokens            int
	Temperature          float64
	ModelHint            string
	IntelligencePriority float64
	CostPriority         float64
	SpeedPriority        float64
}

// NewSamplingEnvelope builds a sampling request envelope and validates the
// model preference priorities.
func NewSamplingEnvelope(ctx context.Context, options SamplingOptions) (*SamplingEnvelope, error) {
	for name, priority := range map[string]float64{
		"intelligence": options.IntelligencePriority,
		"cost":         options.CostPriority,
		"speed":        options.SpeedPriority,
	} {
		if priority < 0 || priority > 1 {
			return nil, errors.Errorf(ctx, "%s_priority must be between 0.0 and 1.0", name)
		}
	}

	content := SamplingContent{
		Type: "text",
		Text: options.Prompt,
	}
	if options.ContextData != nil {
		contextJSON, err := json.MarshalIndent(options.ContextData, "", "  ")
		if err != nil {
			return nil, errors.Wrapf(ctx, err, "marshal context data failed")
		}
		content.Text += fmt.Sprintf("\n\nContext data: %s", string(contextJSON))
		content.Annotations = &SamplingContentAnnotations{
			Audience: []string{"human", "assistant"},
			Priority: 0.8,
		}
	}

	modelPreferences := ModelPreferences{
		IntelligencePriority: options.IntelligencePriority,
		CostPriority:         options.CostPriority,
		SpeedPriority:        options.SpeedPriority,
	}
	if options.ModelHint != "" {
		modelPreferences.Hints = []ModelHint{{Name: options.ModelHint}}
	}

	serverContext := options.ContextData
	if serverContext == nil {
		serverContext = map[string]interface{}{}
	}

	return &SamplingEnvelope{
		SamplingRequest: SamplingRequest{
			Method: "sampling/createMessage",
			Params: SamplingParams{
				Messages: []SamplingMessage{
					{
						Role:    "user",
						Content: content,
					},
				},
				MaxTokens:        options.MaxTokens,
				Temperature:      options.Temperature,
				ModelPreferences: modelPreferences,
				IncludeContext:   "thisServer",
				Meta: SamplingMeta{
					ProtocolVersion: ProtocolVersion,
					ServerContext:   serverContext,
				},
			},
		},
		Status: "ready_for_client",
		Description: fmt.Sprintf(
			"MCP %s sampling request with enhanced model preferences",
			ProtocolVersion,
		),
		ModelPreferences: modelPreferences,
	}, nil
}

type SamplingUsage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
}

// SamplingResponse is the completion a real MCP client would return for a
// sampling request.
type SamplingResponse struct {
	Model      string          `json:"model"`
	Role       string          `json:"role"`
	Content    SamplingContent `json:"content"`
	StopReason string          `json:"stopReason"`
	Usage      SamplingUsage   `json:"usage"`
}

// SimulateSamplingResponse fabricates the completion a real client would
// obtain from its LLM provider. Token usage is a rough chars/4 estimate.
func SimulateSamplingResponse(request SamplingRequest) SamplingResponse {
	inputChars := 0
	for _, message := range request.Params.Messages {
		inputChars += len(message.Content.Text)
	}
	return SamplingResponse{
		Model: "simulated-claude-3-sonnet",
		Role:  "assistant",
		Content: SamplingContent{
			Type: "text",
			Text: "This is a simulated LLM response. In a real implementation, this would contain the actual AI-generated analysis based on the sampling request.",
		},
		StopReason: "endTurn",
		Usage: SamplingUsage{
			InputTokens:  inputChars / 4,
			OutputTokens: 50,
		},
	}
}
