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

// Package logging provides structured logging utilities for FlavorFinds.
//
// It wraps log/slog with project defaults: JSON output to stderr, module and
// version attributes on every record, and source locations for debug logs.
//
// # Log Levels
//
// Supported levels (case-insensitive): debug, info (default), warn/warning, error.
// The level comes from the --log-level flag or, when that is empty, from the
// LOG_LEVEL environment variable.
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("flavorfinds", version, "debug")
//	    slog.Info("server started", "port", 8000)
//	}
//
// Output:
//
//	{"time":"2025-01-15T10:30:00.123Z","level":"INFO","msg":"server started",
//	 "module":"flavorfinds","version":"2.0","port":8000}
package logging
