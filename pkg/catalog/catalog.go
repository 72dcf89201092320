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
	"slices"

	fferrors "github.com/flavorfinds/flavorfinds/pkg/errors"
)

// Recipe is one immutable catalog entry.
type Recipe struct {
	ID          int      `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Type        string   `json:"type" yaml:"type"`
	Time        string   `json:"time" yaml:"time"`
	Rating      float64  `json:"rating" yaml:"rating"`
	Img         string   `json:"img" yaml:"img"`
	Desc        string   `json:"desc" yaml:"desc"`
	Ingredients []string `json:"ingredients" yaml:"ingredients"`
	Steps       []string `json:"steps" yaml:"steps"`
	Difficulty  string   `json:"difficulty" yaml:"difficulty"`
	Calories    *int     `json:"calories" yaml:"calories"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// DefaultDifficulty is applied to recipes that do not declare one.
const DefaultDifficulty = "Easy"

// Difficulties lists the accepted difficulty labels.
var Difficulties = []string{"Easy", "Medium", "Hard"}

// MaxRating is the upper bound of a recipe rating.
const MaxRating = 5.0

func (r Recipe) clone() Recipe {
	c := r
	c.Ingredients = slices.Clone(r.Ingredients)
	c.Steps = slices.Clone(r.Steps)
	c.Tags = slices.Clone(r.Tags)
	if r.Calories != nil {
		cal := *r.Calories
		c.Calories = &cal
	}
	return c
}

// Catalog is a read-only set of recipes kept in seed order.
type Catalog struct {
	recipes []Recipe
	index   map[int]int
}

// New validates recipes and builds a Catalog from them. Missing difficulty
// and nil slices are defaulted; the input slice is not retained.
func New(recipes []Recipe) (*Catalog, error) {
	c := &Catalog{
		recipes: make([]Recipe, 0, len(recipes)),
		index:   make(map[int]int, len(recipes)),
	}

	for i, r := range recipes {
		r = normalize(r.clone())
		if err := validate(r); err != nil {
			return nil, fferrors.WrapWithContext(fferrors.ErrCodeInternal,
				"invalid recipe in catalog", err, map[string]any{
					"index": i,
					"id":    r.ID,
				})
		}
		if _, dup := c.index[r.ID]; dup {
			return nil, fferrors.NewWithContext(fferrors.ErrCodeInternal,
				fmt.Sprintf("duplicate recipe id %d", r.ID), map[string]any{
					"index": i,
					"id":    r.ID,
				})
		}
		c.index[r.ID] = len(c.recipes)
		c.recipes = append(c.recipes, r)
	}

	return c, nil
}

func normalize(r Recipe) Recipe {
	r.Type = titleCase(r.Type)
	r.Difficulty = titleCase(r.Difficulty)
	if r.Difficulty == "" {
		r.Difficulty = DefaultDifficulty
	}
	if r.Ingredients == nil {
		r.Ingredients = []string{}
	}
	if r.Steps == nil {
		r.Steps = []string{}
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	return r
}

func validate(r Recipe) error {
	switch {
	case r.ID <= 0:
		return fmt.Errorf("id must be positive, got %d", r.ID)
	case r.Name == "":
		return fmt.Errorf("recipe %d: name is required", r.ID)
	case r.Rating < 0 || r.Rating > MaxRating:
		return fmt.Errorf("recipe %d: rating %.1f outside [0, %.0f]", r.ID, r.Rating, MaxRating)
	case r.Calories != nil && *r.Calories < 0:
		return fmt.Errorf("recipe %d: calories must not be negative, got %d", r.ID, *r.Calories)
	case !slices.Contains(Difficulties, r.Difficulty):
		return fmt.Errorf("recipe %d: unknown difficulty %q", r.ID, r.Difficulty)
	}
	return nil
}

// List returns every recipe in seed order. The result is a copy.
func (c *Catalog) List() []Recipe {
	out := make([]Recipe, len(c.recipes))
	for i, r := range c.recipes {
		out[i] = r.clone()
	}
	return out
}

// Get returns the recipe with the given id, or a NOT_FOUND error.
func (c *Catalog) Get(id int) (Recipe, error) {
	i, ok := c.index[id]
	if !ok {
		return Recipe{}, fferrors.NewWithContext(fferrors.ErrCodeNotFound,
			"Recipe not found", map[string]any{"id": id})
	}
	return c.recipes[i].clone(), nil
}

// Len returns the number of recipes.
func (c *Catalog) Len() int {
	return len(c.recipes)
}
