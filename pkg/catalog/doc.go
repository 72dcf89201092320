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

// Package catalog holds the read-only recipe catalog.
//
// The catalog is decoded from YAML seed data compiled into the binary,
// validated once, and never modified afterwards. List and Get return
// copies so callers cannot alter shared state.
//
// Handler exposes the catalog as:
//
//	GET /api/recipes       all recipes in seed order
//	GET /api/recipes/{id}  one recipe, 404 when unknown, 422 when id is not an integer
package catalog
