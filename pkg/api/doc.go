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

// Package api wires the FlavorFinds application together.
//
// Serve configures structured logging, binds the first free candidate
// port, loads the embedded recipe catalog, opens the feedback store in the
// data directory and runs the HTTP server until shutdown.
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET  /                    single-page front end
//   - GET  /api/recipes         every recipe in seed order
//   - GET  /api/recipes/{id}    one recipe
//   - POST /api/feedback        submit feedback
//   - GET  /api/feedback        every stored feedback record
//   - GET  /api/feedback/stats  feedback count and average rating
//
// System endpoints (no rate limiting):
//   - GET /health  - liveness
//   - GET /ready   - readiness
//   - GET /metrics - Prometheus metrics
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/flavorfinds/flavorfinds/pkg/api.version=2.1.0'"
package api
