// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/trends_mcp_server/pkg"
)

var _ = Describe("SamplingEnvelope", func() {
	var ctx context.Context
	var options pkg.SamplingOptions
	var envelope *pkg.SamplingEnvelope
	var err error

	BeforeEach(func() {
		ctx = context.Background()
		options = pkg.SamplingOptions{
			Prompt:               "Summarize the news",
			MaxTokens:            1000,
			Temperature:          0.7,
			IntelligencePriority: 0.8,
			CostPriority:         0.3,
			SpeedPriority:        0.5,
		}
	})

	JustBeforeEach(func() {
		envelope, err = pkg.NewSamplingEnvelope(ctx, options)
	})

	Context("with valid options", func() {
		It("returns no error", func() {
			Expect(err).To(BeNil())
		})

		It("builds a sampling/createMessage request", func() {
			Expect(envelope.SamplingRequest.Method).To(Equal("sampling/createMessage"))
		})

		It("contains one user message with the prompt", func() {
			Expect(envelope.SamplingRequest.Params.Messages).To(HaveLen(1))
			message := envelope.SamplingRequest.Params.Messages[0]
			Expect(message.Role).To(Equal("user"))
			Expect(message.Content.Type).To(Equal("text"))
			Expect(message.Content.Text).To(Equal("Summarize the news"))
			Expect(message.Content.Annotations).To(BeNil())
		})

		It("requests server context inclusion", func() {
			Expect(envelope.SamplingRequest.Params.IncludeContext).To(Equal("thisServer"))
		})

		It("carries the protocol version", func() {
			Expect(envelope.SamplingRequest.Params.Meta.ProtocolVersion).To(Equal(pkg.ProtocolVersion))
		})

		It("is marked ready for the client", func() {
			Expect(envelope.Status).To(Equal("ready_for_client"))
		})

		It("has no model hints", func() {
			Expect(envelope.ModelPreferences.Hints).To(BeEmpty())
		})
	})

	Context("with model hint", func() {
		BeforeEach(func() {
			options.ModelHint = "claude-3-sonnet"
		})

		It("adds the hint to the model preferences", func() {
			Expect(envelope.ModelPreferences.Hints).To(HaveLen(1))
			Expect(envelope.ModelPreferences.Hints[0].Name).To(Equal("claude-3-sonnet"))
		})
	})

	Context("with context data", func() {
		BeforeEach(func() {
			options.ContextData = map[string]interface{}{
				"source": "hackernews",
			}
		})

		It("appends the context data to the prompt text", func() {
			text := envelope.SamplingRequest.Params.Messages[0].Content.Text
			Expect(text).To(ContainSubstring("Summarize the news"))
			Expect(text).To(ContainSubstring("Context data:"))
			Expect(text).To(ContainSubstring(`"source": "hackernews"`))
		})

		It("annotates the content", func() {
			annotations := envelope.SamplingRequest.Params.Messages[0].Content.Annotations
			Expect(annotations).NotTo(BeNil())
			Expect(annotations.Audience).To(Equal([]string{"human", "assistant"}))
			Expect(annotations.Priority).To(Equal(0.8))
		})

		It("carries the context data as server context", func() {
			Expect(
				envelope.SamplingRequest.Params.Meta.ServerContext,
			).To(HaveKeyWithValue("source", "hackernews"))
		})
	})

	Context("with invalid priority", func() {
		BeforeEach(func() {
			options.CostPriority = 1.5
		})

		It("returns an error", func() {
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("cost_priority must be between 0.0 and 1.0"))
		})
	})

	Context("with negative priority", func() {
		BeforeEach(func() {
			options.SpeedPriority = -0.1
		})

		It("returns an error", func() {
			Expect(err).NotTo(BeNil())
		})
	})
})

var _ = Describe("SimulateSamplingResponse", func() {
	It("estimates token usage from the message length", func() {
		response := pkg.SimulateSamplingResponse(pkg.SamplingRequest{
			Method: "sampling/createMessage",
			Params: pkg.SamplingParams{
				Messages: []pkg.SamplingMessage{
					{
						Role: "user",
						Content: pkg.SamplingContent{
							Type: "text",
							Text: "12345678",
						},
					},
				},
			},
		})
		Expect(response.Model).To(Equal("simulated-claude-3-sonnet"))
		Expect(response.Role).To(Equal("assistant"))
		Expect(response.StopReason).To(Equal("endTurn"))
		Expect(response.Usage.InputTokens).To(Equal(2))
		Expect(response.Usage.OutputTokens).To(Equal(50))
	})
})
