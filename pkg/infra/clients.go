package infra

import (
	"net/http"

	"github.com/stardust-cli/stardust/pkg/domain/interfaces"
)

// Clients holds the external services used by usecases.
type Clients struct {
	github     interfaces.GitHub
	classifier interfaces.Classifier
}

// HTTPClient is satisfied by *http.Client and by test doubles.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) Classifier() interfaces.Classifier {
	return x.classifier
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithClassifier(classifier interfaces.Classifier) Option {
	return func(x *Clients) {
		x.classifier = classifier
	}
}
