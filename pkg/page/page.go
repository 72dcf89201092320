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

// Package page serves the single-page FlavorFinds front end.
//
// The document is a static asset compiled into the binary and returned
// unchanged on every request. All search, filtering and feedback form
// handling happens in the browser against the JSON API.
package page

import (
	_ "embed"
	"net/http"

	"github.com/flavorfinds/flavorfinds/pkg/serializer"
	"github.com/flavorfinds/flavorfinds/pkg/server"
)

//go:embed index.html
var indexHTML []byte

// Handler serves GET / with the embedded document.
func Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			server.WriteMethodNotAllowed(w, r, http.MethodGet)
			return
		}
		serializer.RespondHTML(w, http.StatusOK, indexHTML)
	}
}
