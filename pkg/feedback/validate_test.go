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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fferrors "github.com/flavorfinds/flavorfinds/pkg/errors"
)

func TestValidate_Valid(t *testing.T) {
	recipeID := 8

	tests := []struct {
		name string
		body string
		want Submission
	}{
		{
			name: "all fields",
			body: `{"name":"Al","email":"a@x.com","rating":5,"message":"great","recipe_id":8}`,
			want: Submission{Name: "Al", Email: "a@x.com", Rating: 5, Message: "great", RecipeID: &recipeID},
		},
		{
			name: "recipe id omitted",
			body: `{"name":"Al","email":"a@x.com","rating":3,"message":"ok"}`,
			want: Submission{Name: "Al", Email: "a@x.com", Rating: 3, Message: "ok"},
		},
		{
			name: "recipe id null",
			body: `{"name":"Al","email":"a@x.com","rating":3,"message":"ok","recipe_id":null}`,
			want: Submission{Name: "Al", Email: "a@x.com", Rating: 3, Message: "ok"},
		},
		{
			name: "empty strings and out of range rating accepted",
			body: `{"name":"","email":"","rating":0,"message":""}`,
			want: Submission{Rating: 0},
		},
		{
			name: "whole float rating",
			body: `{"name":"Al","email":"a@x.com","rating":5.0,"message":"great","recipe_id":8.0}`,
			want: Submission{Name: "Al", Email: "a@x.com", Rating: 5, Message: "great", RecipeID: &recipeID},
		},
		{
			name: "exponent rating",
			body: `{"name":"Al","email":"a@x.com","rating":5e0,"message":"great"}`,
			want: Submission{Name: "Al", Email: "a@x.com", Rating: 5, Message: "great"},
		},
		{
			name: "integer strings",
			body: `{"name":"Al","email":"a@x.com","rating":"5","message":"great","recipe_id":"8"}`,
			want: Submission{Name: "Al", Email: "a@x.com", Rating: 5, Message: "great", RecipeID: &recipeID},
		},
		{
			name: "timestamp and unknown fields ignored",
			body: `{"name":"Al","email":"a@x.com","rating":4,"message":"m","timestamp":"1999-01-01T00:00:00","extra":true}`,
			want: Submission{Name: "Al", Email: "a@x.com", Rating: 4, Message: "m"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, verr := Validate([]byte(tt.body))
			require.Nil(t, verr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []fferrors.FieldError
	}{
		{
			name: "missing rating",
			body: `{"name":"Al","email":"a@x.com","message":"great"}`,
			want: []fferrors.FieldError{{Field: "rating", Problem: problemRequired}},
		},
		{
			name: "fractional rating",
			body: `{"name":"Al","email":"a@x.com","rating":4.5,"message":"great"}`,
			want: []fferrors.FieldError{{Field: "rating", Problem: problemNotInteger}},
		},
		{
			name: "fractional string rating",
			body: `{"name":"Al","email":"a@x.com","rating":"4.5","message":"great"}`,
			want: []fferrors.FieldError{{Field: "rating", Problem: problemNotInteger}},
		},
		{
			name: "non-numeric string rating",
			body: `{"name":"Al","email":"a@x.com","rating":"five","message":"great"}`,
			want: []fferrors.FieldError{{Field: "rating", Problem: problemNotInteger}},
		},
		{
			name: "boolean rating",
			body: `{"name":"Al","email":"a@x.com","rating":true,"message":"great"}`,
			want: []fferrors.FieldError{{Field: "rating", Problem: problemNotInteger}},
		},
		{
			name: "null rating",
			body: `{"name":"Al","email":"a@x.com","rating":null,"message":"great"}`,
			want: []fferrors.FieldError{{Field: "rating", Problem: problemNotInteger}},
		},
		{
			name: "null name and numeric email",
			body: `{"name":null,"email":42,"rating":5,"message":"great"}`,
			want: []fferrors.FieldError{
				{Field: "name", Problem: problemNotString},
				{Field: "email", Problem: problemNotString},
			},
		},
		{
			name: "bad recipe id",
			body: `{"name":"Al","email":"a@x.com","rating":5,"message":"great","recipe_id":"eight"}`,
			want: []fferrors.FieldError{{Field: "recipe_id", Problem: problemNotInteger}},
		},
		{
			name: "everything missing",
			body: `{}`,
			want: []fferrors.FieldError{
				{Field: "name", Problem: problemRequired},
				{Field: "email", Problem: problemRequired},
				{Field: "rating", Problem: problemRequired},
				{Field: "message", Problem: problemRequired},
			},
		},
		{
			name: "array body",
			body: `[1,2]`,
			want: []fferrors.FieldError{{Field: "body", Problem: problemNotObject}},
		},
		{
			name: "empty body",
			body: ``,
			want: []fferrors.FieldError{{Field: "body", Problem: problemNotObject}},
		},
		{
			name: "malformed json",
			body: `{"name":`,
			want: []fferrors.FieldError{{Field: "body", Problem: problemNotObject}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, verr := Validate([]byte(tt.body))
			require.NotNil(t, verr)
			assert.Equal(t, tt.want, verr.Fields)
			assert.Equal(t, Submission{}, got)
			assert.Contains(t, verr.Error(), tt.want[0].Field)
		})
	}
}

func TestValidateRecord_RequiresTimestamp(t *testing.T) {
	_, verr := validateRecord([]byte(`{"name":"Al","email":"a@x.com","rating":5,"message":"great","recipe_id":null}`))
	require.NotNil(t, verr)
	assert.Equal(t, []fferrors.FieldError{{Field: "timestamp", Problem: problemRequired}}, verr.Fields)

	fb, verr := validateRecord([]byte(`{"name":"Al","email":"a@x.com","rating":5,"message":"great","recipe_id":null,"timestamp":"2024-05-01T10:00:00"}`))
	require.Nil(t, verr)
	assert.Equal(t, "2024-05-01T10:00:00", fb.Timestamp)
	assert.Nil(t, fb.RecipeID)
}
