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
	_ "embed"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	fferrors "github.com/flavorfinds/flavorfinds/pkg/errors"
	"github.com/flavorfinds/flavorfinds/pkg/serializer"
)

const seedPath = "data/recipes.yaml"

//go:embed data/recipes.yaml
var seedData []byte

type seedFile struct {
	Recipes []Recipe `json:"recipes" yaml:"recipes"`
}

// Load builds the catalog from the embedded seed data.
func Load() (*Catalog, error) {
	return Parse(seedData, serializer.FormatFromPath(seedPath))
}

// Parse builds a catalog from a seed document of the form
// {"recipes": [...]}. Unknown fields are rejected.
func Parse(data []byte, format serializer.Format) (*Catalog, error) {
	if format.IsUnknown() {
		return nil, fferrors.NewWithContext(fferrors.ErrCodeInternal, "unsupported recipe seed format",
			map[string]any{
				"format":    string(format),
				"supported": strings.Join(serializer.SupportedFormats(), ", "),
			})
	}
	seed, err := serializer.FromBytes[seedFile](format, data, serializer.WithStrictFields())
	if err != nil {
		return nil, fferrors.Wrap(fferrors.ErrCodeInternal, "failed to decode recipe seed data", err)
	}
	return New(seed.Recipes)
}

// titleCase maps labels such as "easy" or "DESSERT" to "Easy" and "Dessert".
func titleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return cases.Title(language.English).String(strings.ToLower(s))
}
