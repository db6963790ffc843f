package model

import (
	"strings"

	"github.com/stardust-cli/stardust/pkg/domain/types"
)

// StarredRepository is a repository starred by the authenticated user.
type StarredRepository struct {
	ID          types.RepositoryID
	FullName    string
	Owner       string
	Name        string
	Description string
	URL         string
	Language    string
	Topics      []string
	Stars       int
	IsPrivate   bool
}

// Descriptor returns a single line summary used as classifier input.
func (x *StarredRepository) Descriptor() string {
	var b strings.Builder
	b.WriteString(x.FullName)
	if x.Language != "" {
		b.WriteString(" [" + x.Language + "]")
	}
	if x.Description != "" {
		b.WriteString(": " + x.Description)
	}
	if len(x.Topics) > 0 {
		b.WriteString(" (" + strings.Join(x.Topics, ", ") + ")")
	}
	return b.String()
}
