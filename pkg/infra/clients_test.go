package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/stardust-cli/stardust/pkg/domain/interfaces"
	"github.com/stardust-cli/stardust/pkg/domain/mock"
	"github.com/stardust-cli/stardust/pkg/infra"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.GitHub()).Equal(nil)
		gt.V(t, clients.Classifier()).Equal(nil)
	})

	t.Run("WithGitHub option sets GitHub client", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		clients := infra.New(infra.WithGitHub(mockGH))
		gt.V(t, clients.GitHub()).Equal(interfaces.GitHub(mockGH))
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		mockClassifier := &mock.ClassifierMock{}

		clients := infra.New(
			infra.WithGitHub(mockGH),
			infra.WithClassifier(mockClassifier),
		)

		gt.V(t, clients.GitHub()).Equal(interfaces.GitHub(mockGH))
		gt.V(t, clients.Classifier()).Equal(interfaces.Classifier(mockClassifier))
	})
}
