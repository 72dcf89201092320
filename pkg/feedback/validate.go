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
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	fferrors "github.com/flavorfinds/flavorfinds/pkg/errors"
)

const (
	problemRequired   = "field required"
	problemNotString  = "must be a string"
	problemNotInteger = "must be an integer"
	problemNotObject  = "must be a JSON object"
)

// ValidationError lists every field of a feedback document that failed
// validation, in field order.
type ValidationError struct {
	Fields []fferrors.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Problem)
	}
	return "invalid feedback: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, problem string) {
	e.Fields = append(e.Fields, fferrors.FieldError{Field: field, Problem: problem})
}

// Validate decodes a feedback submission. name, email and message must be
// strings and rating an integer; empty strings are accepted. recipe_id may
// be absent, null or an integer. Any timestamp and unknown fields are
// ignored. On failure the returned Submission is the zero value.
func Validate(raw []byte) (Submission, *ValidationError) {
	fields, verr := decodeObject(raw)
	if verr != nil {
		return Submission{}, verr
	}

	var sub Submission
	verr = &ValidationError{}
	sub.Name = stringField(fields, "name", verr)
	sub.Email = stringField(fields, "email", verr)
	sub.Rating = intField(fields, "rating", verr)
	sub.Message = stringField(fields, "message", verr)
	sub.RecipeID = optionalIntField(fields, "recipe_id", verr)

	if len(verr.Fields) > 0 {
		return Submission{}, verr
	}
	return sub, nil
}

// validateRecord decodes a stored record, which additionally requires a
// string timestamp.
func validateRecord(raw []byte) (Feedback, *ValidationError) {
	sub, verr := Validate(raw)
	if verr != nil {
		return Feedback{}, verr
	}

	fields, _ := decodeObject(raw)
	verr = &ValidationError{}
	ts := stringField(fields, "timestamp", verr)
	if len(verr.Fields) > 0 {
		return Feedback{}, verr
	}

	return Feedback{
		Name:      sub.Name,
		Email:     sub.Email,
		Rating:    sub.Rating,
		Message:   sub.Message,
		RecipeID:  sub.RecipeID,
		Timestamp: ts,
	}, nil
}

func decodeObject(raw []byte) (map[string]json.RawMessage, *ValidationError) {
	var fields map[string]json.RawMessage
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' || json.Unmarshal(trimmed, &fields) != nil {
		verr := &ValidationError{}
		verr.add("body", problemNotObject)
		return nil, verr
	}
	return fields, nil
}

func isNull(v json.RawMessage) bool {
	return string(bytes.TrimSpace(v)) == "null"
}

func stringField(fields map[string]json.RawMessage, name string, verr *ValidationError) string {
	v, ok := fields[name]
	if !ok {
		verr.add(name, problemRequired)
		return ""
	}
	var s string
	if isNull(v) || json.Unmarshal(v, &s) != nil {
		verr.add(name, problemNotString)
		return ""
	}
	return s
}

func intField(fields map[string]json.RawMessage, name string, verr *ValidationError) int {
	v, ok := fields[name]
	if !ok {
		verr.add(name, problemRequired)
		return 0
	}
	n, err := parseInt(v)
	if err != nil {
		verr.add(name, problemNotInteger)
		return 0
	}
	return n
}

func optionalIntField(fields map[string]json.RawMessage, name string, verr *ValidationError) *int {
	v, ok := fields[name]
	if !ok || isNull(v) {
		return nil
	}
	n, err := parseInt(v)
	if err != nil {
		verr.add(name, problemNotInteger)
		return nil
	}
	return &n
}

// parseInt accepts a JSON number with no fractional part (5, 5.0, 5e0) or a
// string holding a decimal integer ("5"). Fractions, booleans and other
// strings are rejected.
func parseInt(v json.RawMessage) (int, error) {
	s := string(bytes.TrimSpace(v))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(v, &str); err != nil {
			return 0, fmt.Errorf("not an integer: %s", s)
		}
		n, err := strconv.Atoi(strings.TrimSpace(str))
		if err != nil {
			return 0, fmt.Errorf("not an integer: %s", s)
		}
		return n, nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}

	var num json.Number
	if err := json.Unmarshal(v, &num); err != nil {
		return 0, fmt.Errorf("not an integer: %s", s)
	}
	f, err := num.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("not an integer: %s", s)
	}
	return int(f), nil
}
