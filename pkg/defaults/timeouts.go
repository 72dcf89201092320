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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// FeedbackHandlerTimeout bounds a single feedback read-modify-write cycle,
	// including waiting for the store lock.
	FeedbackHandlerTimeout = 10 * time.Second
)

// Cache settings for catalog responses.
const (
	// CatalogCacheTTL is the max-age advertised for catalog responses. The
	// catalog never changes while the process runs.
	CatalogCacheTTL = 5 * time.Minute
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading the entire request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Request limits.
const (
	// MaxFeedbackBodyBytes caps the size of a feedback submission body.
	MaxFeedbackBodyBytes = 64 << 10
)

// Rate limiting defaults for the API routes.
const (
	// RateLimit is the sustained number of API requests per second.
	RateLimit = 100

	// RateLimitBurst is the token bucket size.
	RateLimitBurst = 200
)
