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

// Package errors provides structured errors shared by the catalog, feedback
// store, bootstrap and HTTP layers.
//
// A StructuredError pairs an ErrorCode with a message, an optional cause and
// optional context. HTTP handlers map codes to status codes with HTTPStatus:
//
//	rec, err := cat.Get(id)
//	if err != nil {
//	    server.WriteErrorFromErr(w, r, err, "Recipe not found", nil)
//	    return
//	}
//
// Codes:
//   - NOT_FOUND (404)
//   - VALIDATION_FAILED (422)
//   - INVALID_REQUEST (400)
//   - METHOD_NOT_ALLOWED (405)
//   - RATE_LIMIT_EXCEEDED (429)
//   - STORAGE_READ, STORAGE_WRITE, INTERNAL (500)
//   - PORT_EXHAUSTED, SERVICE_UNAVAILABLE (503)
package errors
