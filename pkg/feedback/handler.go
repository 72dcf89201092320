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

package feedback

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/flavorfinds/flavorfinds/pkg/defaults"
	fferrors "github.com/flavorfinds/flavorfinds/pkg/errors"
	"github.com/flavorfinds/flavorfinds/pkg/serializer"
	"github.com/flavorfinds/flavorfinds/pkg/server"
)

// Handler serves the feedback endpoints.
type Handler struct {
	store *Store
}

// NewHandler returns a Handler backed by store.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Feedback serves /api/feedback: GET lists every record, POST submits one.
func (h *Handler) Feedback(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.submit(w, r)
	default:
		server.WriteMethodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

// Stats serves GET /api/feedback/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.WriteMethodNotAllowed(w, r, http.MethodGet)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.FeedbackHandlerTimeout)
	defer cancel()

	stats, err := h.store.Stats(ctx)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to compute feedback stats", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, stats)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.FeedbackHandlerTimeout)
	defer cancel()

	records, err := h.store.List(ctx)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to list feedback", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, records)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.FeedbackHandlerTimeout)
	defer cancel()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, defaults.MaxFeedbackBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			server.WriteError(w, r, http.StatusRequestEntityTooLarge, fferrors.ErrCodeInvalidRequest,
				"Request body too large", false, map[string]any{"limit": tooLarge.Limit})
			return
		}
		server.WriteError(w, r, http.StatusBadRequest, fferrors.ErrCodeInvalidRequest,
			"Failed to read request body", false, map[string]any{"error": err.Error()})
		return
	}

	sub, verr := Validate(body)
	if verr != nil {
		validationFailures.Inc()
		server.WriteError(w, r, http.StatusUnprocessableEntity, fferrors.ErrCodeValidation,
			"Invalid feedback", false, map[string]any{"errors": verr.Fields})
		return
	}

	if _, err := h.store.Submit(ctx, sub); err != nil {
		if !fferrors.Is(err, fferrors.ErrCodeStorageWrite) {
			server.WriteErrorFromErr(w, r, err, "Failed to submit feedback", nil)
			return
		}
		// The acknowledgement does not depend on persistence.
		slog.Warn("acknowledging unsaved feedback",
			"requestID", server.RequestIDFromContext(r.Context()),
			"error", err,
		)
	}

	serializer.RespondJSON(w, http.StatusOK, Ack{Message: SubmittedMessage})
}
