// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var upstreamRequestCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "trends_mcp_server",
		Subsystem: "upstream",
		Name:      "requests_total",
		Help:      "Amount of requests sent to upstream APIs",
	},
	[]string{"api", "result"},
)
