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

package catalog

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/flavorfinds/flavorfinds/pkg/defaults"
	fferrors "github.com/flavorfinds/flavorfinds/pkg/errors"
	"github.com/flavorfinds/flavorfinds/pkg/serializer"
	"github.com/flavorfinds/flavorfinds/pkg/server"
)

// Handler serves the catalog over HTTP.
type Handler struct {
	catalog *Catalog
}

// NewHandler returns a Handler for c.
func NewHandler(c *Catalog) *Handler {
	return &Handler{catalog: c}
}

// List serves GET /api/recipes.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.WriteMethodNotAllowed(w, r, http.MethodGet)
		return
	}

	setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, h.catalog.List())
}

// Get serves GET /api/recipes/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.WriteMethodNotAllowed(w, r, http.MethodGet)
		return
	}

	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		lookupsTotal.WithLabelValues(lookupInvalid).Inc()
		server.WriteError(w, r, http.StatusUnprocessableEntity, fferrors.ErrCodeValidation,
			"Invalid recipe id", false, map[string]any{
				"errors": []fferrors.FieldError{{Field: "id", Problem: "must be an integer"}},
				"value":  raw,
			})
		return
	}

	recipe, err := h.catalog.Get(id)
	if err != nil {
		lookupsTotal.WithLabelValues(lookupNotFound).Inc()
		server.WriteErrorFromErr(w, r, err, "", nil)
		return
	}

	lookupsTotal.WithLabelValues(lookupFound).Inc()
	setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, recipe)
}

func setCacheHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.CatalogCacheTTL.Seconds())))
}
