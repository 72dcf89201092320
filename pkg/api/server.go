// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/flavorfinds/flavorfinds/pkg/bootstrap"
	"github.com/flavorfinds/flavorfinds/pkg/catalog"
	"github.com/flavorfinds/flavorfinds/pkg/feedback"
	"github.com/flavorfinds/flavorfinds/pkg/logging"
	"github.com/flavorfinds/flavorfinds/pkg/page"
	"github.com/flavorfinds/flavorfinds/pkg/server"
)

const (
	name           = "flavorfinds"
	versionDefault = "2.0"

	// DefaultDataDir is the directory holding the feedback file.
	DefaultDataDir = "data"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/flavorfinds/flavorfinds/pkg/api.version=2.1.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Version reports the build version, commit and date.
func Version() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

// Options configures Serve.
type Options struct {
	// DataDir holds feedback.json. It is created when missing.
	DataDir string

	// LogLevel is debug, info, warn or error. Empty falls back to LOG_LEVEL.
	LogLevel string

	// AllowedOrigins enables CORS for the listed origins.
	AllowedOrigins []string
}

// Routes maps ServeMux patterns to the application handlers.
func Routes(cat *catalog.Catalog, store *feedback.Store) map[string]http.HandlerFunc {
	ch := catalog.NewHandler(cat)
	fh := feedback.NewHandler(store)

	return map[string]http.HandlerFunc{
		"/{$}":                page.Handler(),
		"/api/recipes":        ch.List,
		"/api/recipes/{id}":   ch.Get,
		"/api/feedback":       fh.Feedback,
		"/api/feedback/stats": fh.Stats,
	}
}

// newServer prepares the data directory, loads the catalog and builds the
// server. ln may be nil when the server will only be used as a handler.
func newServer(opts Options, ln net.Listener) (*server.Server, error) {
	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = DefaultDataDir
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}

	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe catalog: %w", err)
	}
	store := feedback.NewStore(filepath.Join(dataDir, feedback.FileName))

	slog.Debug("application state ready",
		"recipes", cat.Len(),
		"feedbackFile", store.Path(),
	)

	opt := []server.Option{
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(Routes(cat, store)),
		server.WithCORS(opts.AllowedOrigins...),
	}
	if ln != nil {
		opt = append(opt, server.WithListener(ln))
	}

	return server.New(opt...), nil
}

// Serve starts the application and blocks until ctx is cancelled or the
// process receives SIGINT or SIGTERM.
func Serve(ctx context.Context, opts Options) error {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, opts.LogLevel)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	ln, err := bootstrap.Listen(ctx, bootstrap.DefaultHost, bootstrap.DefaultPorts)
	if err != nil {
		return err
	}

	s, err := newServer(opts, ln)
	if err != nil {
		ln.Close()
		return err
	}

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
