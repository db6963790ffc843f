// Package plan classifies starred repositories by a YAML plan of categories and repository patterns.
package plan

import (
	"context"
	"os"
	"path"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/stardust-cli/stardust/pkg/domain/interfaces"
	"github.com/stardust-cli/stardust/pkg/domain/model"
	"github.com/stardust-cli/stardust/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a plan file.
//
//	categories:
//	  - name: Go tools
//	    description: CLIs written in Go
//	    repositories:
//	      - golang/*
//	      - spf13/cobra
func Load(filePath string) (*model.Plan, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read plan file", goerr.V("path", filePath))
	}
	return Parse(raw)
}

func Parse(raw []byte) (*model.Plan, error) {
	var p model.Plan
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidPlan, "failed to parse plan", goerr.V("error", err.Error()))
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	for _, c := range p.Categories {
		for _, pattern := range c.Repositories {
			if _, err := path.Match(strings.ToLower(pattern), ""); err != nil {
				return nil, goerr.Wrap(types.ErrInvalidPlan, "malformed repository pattern",
					goerr.V("category", c.Name),
					goerr.V("pattern", pattern),
				)
			}
		}
	}

	return &p, nil
}

type Classifier struct {
	plan *model.Plan
}

var _ interfaces.Classifier = (*Classifier)(nil)

func NewClassifier(p *model.Plan) *Classifier {
	return &Classifier{plan: p}
}

func (x *Classifier) Categories() []*model.PlanCategory {
	return x.plan.Categories
}

// Classify assigns each repository to the first of the leading cfg.MaxCategories categories with a
// matching pattern. Matching ignores case.
func (x *Classifier) Classify(ctx context.Context, repos []*model.StarredRepository, cfg *model.ClassifyConfig) (map[types.RepositoryID]string, error) {
	limit := 0
	if cfg != nil {
		limit = cfg.MaxCategories
	}
	categories := x.plan.Limit(limit)

	resp := make(map[types.RepositoryID]string)
	for _, repo := range repos {
		if err := ctx.Err(); err != nil {
			return nil, goerr.Wrap(err, "classification interrupted")
		}

		name := strings.ToLower(repo.FullName)
		for _, c := range categories {
			if matchAny(c.Repositories, name) {
				resp[repo.ID] = c.Name
				break
			}
		}
	}

	return resp, nil
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, _ := path.Match(strings.ToLower(pattern), name); ok {
			return true
		}
	}
	return false
}
