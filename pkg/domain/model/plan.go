package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/stardust-cli/stardust/pkg/domain/types"
)

// Plan is a set of categories, each becoming one List.
type Plan struct {
	Categories []*PlanCategory `yaml:"categories"`
}

// PlanCategory maps repository patterns ("owner/name" or "owner/*") to a List.
type PlanCategory struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Repositories []string `yaml:"repositories"`
}

func (x *Plan) Validate() error {
	if len(x.Categories) == 0 {
		return goerr.Wrap(types.ErrInvalidPlan, "plan has no category")
	}

	seen := make(map[string]struct{}, len(x.Categories))
	for i, c := range x.Categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return goerr.Wrap(types.ErrInvalidPlan, "category name is empty", goerr.V("index", i))
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return goerr.Wrap(types.ErrInvalidPlan, "duplicated category", goerr.V("name", name))
		}
		seen[key] = struct{}{}

		for _, pattern := range c.Repositories {
			if !strings.Contains(pattern, "/") {
				return goerr.Wrap(types.ErrInvalidPlan, "repository pattern must be owner/name",
					goerr.V("category", name),
					goerr.V("pattern", pattern),
				)
			}
		}
	}

	return nil
}

// Limit returns the first n categories.
func (x *Plan) Limit(n int) []*PlanCategory {
	if n <= 0 || n >= len(x.Categories) {
		return x.Categories
	}
	return x.Categories[:n]
}

// ClassifyConfig controls a classification run.
type ClassifyConfig struct {
	MaxCategories int
}

// OrganizeResult summarizes an organize run.
type OrganizeResult struct {
	CreatedLists []string
	Assigned     int
	Unchanged    int
	Unclassified int
	Failed       int
}
