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

// Package server hosts the FlavorFinds HTTP API.
//
// The server owns routing, the shared middleware chain and the system
// endpoints. Domain handlers (catalog, feedback, page) are registered by
// ServeMux pattern and are otherwise unaware of the server.
//
// # Architecture
//
// Every registered handler is wrapped with, outermost first:
//
//   - Prometheus request metrics labelled by route pattern
//   - API version negotiation (X-API-Version)
//   - Request ID tracking (X-Request-Id)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Debug request logging
//
// All responses carry browser hardening headers. CORS is only enabled when
// origins are configured with WithCORS.
//
// # Usage
//
//	ln, err := bootstrap.Listen(ctx, bootstrap.DefaultHost, bootstrap.DefaultPorts)
//	if err != nil {
//	    return err
//	}
//
//	s := server.New(
//	    server.WithName("flavorfinds"),
//	    server.WithVersion("2.0"),
//	    server.WithListener(ln),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/api/recipes": catalogHandler.List,
//	    }),
//	)
//	return s.Run(ctx)
//
// # System Endpoints
//
// GET /health - liveness, always 200 with {"status": "healthy"}.
//
// GET /ready - 200 while serving, 503 before start and during shutdown.
//
// GET /metrics - Prometheus exposition format.
//
// Any path without a handler returns 404 with the list of known routes in
// the error details.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "Recipe not found",
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// Status codes follow errors.HTTPStatus. Handlers should use WriteError,
// WriteErrorFromErr or WriteMethodNotAllowed rather than http.Error.
package server
