package plan_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/stardust-cli/stardust/pkg/domain/model"
	"github.com/stardust-cli/stardust/pkg/domain/types"
	"github.com/stardust-cli/stardust/pkg/infra/plan"
)

const testPlan = `
categories:
  - name: Go
    description: Go language
    repositories:
      - golang/*
      - spf13/cobra
  - name: Security
    repositories:
      - m-mizutani/*
  - name: Everything
    repositories:
      - "*/*"
`

func TestLoad(t *testing.T) {
	t.Run("load plan file", func(t *testing.T) {
		fpath := filepath.Join(t.TempDir(), "plan.yaml")
		gt.NoError(t, os.WriteFile(fpath, []byte(testPlan), 0600))

		p, err := plan.Load(fpath)
		gt.NoError(t, err)
		gt.V(t, len(p.Categories)).Equal(3)
		gt.V(t, p.Categories[0].Name).Equal("Go")
		gt.V(t, p.Categories[0].Description).Equal("Go language")
		gt.V(t, p.Categories[0].Repositories).Equal([]string{"golang/*", "spf13/cobra"})
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := plan.Load(filepath.Join(t.TempDir(), "none.yaml"))
		gt.Error(t, err)
	})

	t.Run("invalid documents", func(t *testing.T) {
		for _, doc := range []string{
			"categories: [",
			"categories: []",
			"categories:\n  - name: A\n    repositories: [noslash]",
			"categories:\n  - name: A\n  - name: a",
			"categories:\n  - name: A\n    repositories: ['owner/[']",
		} {
			_, err := plan.Parse([]byte(doc))
			gt.True(t, errors.Is(err, types.ErrInvalidPlan))
		}
	})
}

func TestClassify(t *testing.T) {
	p := gt.R1(plan.Parse([]byte(testPlan))).NoError(t)
	classifier := plan.NewClassifier(p)
	ctx := context.Background()

	repos := []*model.StarredRepository{
		{ID: "R_1", FullName: "golang/go"},
		{ID: "R_2", FullName: "SPF13/Cobra"},
		{ID: "R_3", FullName: "m-mizutani/goerr"},
		{ID: "R_4", FullName: "rust-lang/rust"},
	}

	t.Run("first matching category wins", func(t *testing.T) {
		resp, err := classifier.Classify(ctx, repos, &model.ClassifyConfig{MaxCategories: 32})
		gt.NoError(t, err)
		gt.V(t, resp).Equal(map[types.RepositoryID]string{
			"R_1": "Go",
			"R_2": "Go",
			"R_3": "Security",
			"R_4": "Everything",
		})
	})

	t.Run("categories beyond the maximum are ignored", func(t *testing.T) {
		resp, err := classifier.Classify(ctx, repos, &model.ClassifyConfig{MaxCategories: 1})
		gt.NoError(t, err)
		gt.V(t, resp).Equal(map[types.RepositoryID]string{
			"R_1": "Go",
			"R_2": "Go",
		})
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := classifier.Classify(ctx, repos, nil)
		gt.True(t, errors.Is(err, context.Canceled))
	})

	gt.V(t, len(classifier.Categories())).Equal(3)
}
