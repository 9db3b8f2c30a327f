// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"math/rand"
	"time"

	"github.com/bborbe/errors"
)

const maxSampleCount = 1000

var sampleCategories = []string{"A", "B", "C", "D"}

type SampleDataResult struct {
	SamplingType     string                   `json:"sampling_type"`
	RequestedSamples int                      `json:"requested_samples"`
	ActualSamples    int                      `json:"actual_samples"`
	GeneratedAt      string                   `json:"generated_at"`
	Samples          []map[string]interface{} `json:"samples"`
}

// SampleDataGenerator produces synthetic data sets for the
// sampling://{type}/{count} resource.
type SampleDataGenerator struct {
	rnd *rand.Rand
	now func() time.Time
}

func NewSampleDataGenerator(rnd *rand.Rand, now func() time.Time) *SampleDataGenerator {
	return &SampleDataGenerator{
		rnd: rnd,
		now: now,
	}
}

func (s *SampleDataGenerator) Generate(
	ctx context.Context,
	samplingType string,
	numSamples int,
) (*SampleDataResult, error) {
	if numSamples <= 0 || numSamples > maxSampleCount {
		return nil, errors.Errorf(
			ctx,
			"number of samples must be between 1 and %d",
			maxSampleCount,
		)
	}
	var samples []map[string]interface{}
	switch samplingType {
	case "random":
		samples = s.randomSamples(numSamples)
	case "sequential":
		samples = s.sequentialSamples(numSamples)
	case "distribution":
		samples = s.distributionSamples(numSamples)
	default:
		return nil, errors.Errorf(
			ctx,
			"unknown sampling type: %s. Available types: random, sequential, distribution",
			samplingType,
		)
	}
	return &SampleDataResult{
		SamplingType:     samplingType,
		RequestedSamples: numSamples,
		ActualSamples:    len(samples),
		GeneratedAt:      s.now().Format(time.RFC3339),
		Samples:          samples,
	}, nil
}

func (s *SampleDataGenerator) randomSamples(amount int) []map[string]interface{} {
	samples := make([]map[string]interface{}, 0, amount)
	for i := 0; i < amount; i++ {
		samples = append(samples, map[string]interface{}{
			"id":       i + 1,
			"value":    s.rnd.Float64() * 100,
			"category": sampleCategories[s.rnd.Intn(len(sampleCategories))],
			"timestamp": s.now().
				Add(-time.Duration(s.rnd.Intn(24*7)) * time.Hour).
				Format(time.RFC3339),
		})
	}
	return samples
}

func (s *SampleDataGenerator) sequentialSamples(amount int) []map[string]interface{} {
	samples := make([]map[string]interface{}, 0, amount)
	for i := 0; i < amount; i++ {
		status := "inactive"
		if i%2 == 0 {
			status = "active"
		}
		samples = append(samples, map[string]interface{}{
			"id":        i + 1,
			"value":     float64(i) * 2.5,
			"status":    status,
			"timestamp": s.now().Format(time.RFC3339),
		})
	}
	return samples
}

func (s *SampleDataGenerator) distributionSamples(amount int) []map[string]interface{} {
	samples := make([]map[string]interface{}, 0, amount)
	for i := 0; i < amount; i++ {
		quality := "low"
		if s.rnd.NormFloat64()*15+50 > 50 {
			quality = "high"
		}
		samples = append(samples, map[string]interface{}{
			"id":          i + 1,
			"measurement": s.rnd.NormFloat64()*15 + 50,
			"quality":     quality,
			"timestamp":   s.now().Format(time.RFC3339),
		})
	}
	return samples
}
