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

// Package serializer provides the encoding helpers shared by the HTTP layer,
// the embedded catalog and the feedback store.
//
// HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, recipes)
//
// Decoding seed data:
//
//	seed, err := serializer.FromBytes[catalog.Seed](serializer.FormatYAML, data,
//	    serializer.WithStrictFields())
//
// Persisting a collection:
//
//	err := serializer.WriteJSONFile("data/feedback.json", records, 0o644)
//
// RespondJSON buffers the encoded body so a failed encoding results in a 500
// rather than a truncated response. WriteJSONFile replaces files atomically.
package serializer
