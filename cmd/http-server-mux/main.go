// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"io"
	"math/rand"
	"net/http"
	"os"
	"time"

	libhttp "github.com/bborbe/http"
	libsentry "github.com/bborbe/sentry"
	"github.com/bborbe/service"
	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bborbe/trends_mcp_server/pkg"
)

func main() {
	app := &application{}
	os.Exit(service.Main(context.Background(), app, &app.SentryDSN, &app.SentryProxy))
}

type application struct {
	SentryDSN     string `required:"false" arg:"sentry-dsn"      env:"SENTRY_DSN"      usage:"SentryDSN"            display:"length"`
	SentryProxy   string `required:"false" arg:"sentry-proxy"    env:"SENTRY_PROXY"    usage:"Sentry Proxy"`
	Listen        string `required:"true"  arg:"listen"          env:"LISTEN"          usage:"address to listen to"`
	GithubToken   string `required:"false" arg:"github-token"    env:"GITHUB_TOKEN"    usage:"GitHub API token to raise rate limits" display:"length"`
	HackerNewsURL string `required:"false" arg:"hackernews-url"  env:"HACKERNEWS_URL"  usage:"HackerNews API base url" default:"https://hacker-news.firebaseio.com/v0"`
	GithubURL     string `required:"false" arg:"github-url"      env:"GITHUB_URL"      usage:"GitHub API base url"     default:"https://api.github.com"`
}

func (a *application) Run(ctx context.Context, sentryClient libsentry.Client) error {
	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	mcpServer := pkg.NewMCPServer(
		pkg.NewHackerNewsClient(httpClient, a.HackerNewsURL, rnd),
		pkg.NewGithubClient(httpClient, a.GithubURL, a.GithubToken, rnd, time.Now),
	)

	router := mux.NewRouter()
	router.Path("/healthz").Handler(libhttp.NewPrintHandler("OK"))
	router.Path("/readiness").Handler(libhttp.NewPrintHandler("OK"))
	router.Path("/metrics").Handler(promhttp.Handler())

	router.Use(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(c))
			glog.Infof("%s %s %s", r.Method, r.URL, string(c))
			handler.ServeHTTP(w, r)
		})
	})

	router.PathPrefix("/mcp/http").Handler(server.NewStreamableHTTPServer(mcpServer))

	return libhttp.NewServer(a.Listen, router).Run(ctx)
}
