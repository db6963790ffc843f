package model

import (
	"time"

	"github.com/stardust-cli/stardust/pkg/domain/types"
)

// List is a user-owned, curated collection of repositories.
type List struct {
	ID          types.ListID `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	IsPrivate   bool         `json:"isPrivate"`
	Slug        string       `json:"slug"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	LastAddedAt *time.Time   `json:"lastAddedAt,omitempty"`

	// TotalRepositories is the count reported by GitHub, available even when items are not fetched.
	TotalRepositories int         `json:"totalRepositories"`
	Repositories      []*ListItem `json:"repositories"`
}

// HasRepository reports whether the list contains a repository with the given URL.
func (x *List) HasRepository(url string) bool {
	for _, repo := range x.Repositories {
		if repo.URL == url {
			return true
		}
	}
	return false
}

// ListItem is a repository as seen through a List.
type ListItem struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Owner       string `json:"owner"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stars"`
	IsPrivate   bool   `json:"isPrivate"`
}

// FullName returns "owner/name".
func (x *ListItem) FullName() string {
	return x.Owner + "/" + x.Name
}

// ListsResponse is the result of fetching every List of a user.
type ListsResponse struct {
	Username   string  `json:"username"`
	TotalLists int     `json:"totalLists"`
	Lists      []*List `json:"lists"`
}

// FindByName returns the first list with exactly the given name, or nil.
func (x *ListsResponse) FindByName(name string) *List {
	for _, list := range x.Lists {
		if list.Name == name {
			return list
		}
	}
	return nil
}

// ListIDsOf returns IDs of all lists containing the repository with the given URL.
func (x *ListsResponse) ListIDsOf(url string) []types.ListID {
	var ids []types.ListID
	for _, list := range x.Lists {
		if list.HasRepository(url) {
			ids = append(ids, list.ID)
		}
	}
	return ids
}

type CreateListInput struct {
	Name        string
	Description string
	IsPrivate   bool
}

type CreatedList struct {
	List        *List
	ViewerLogin string
}

// ListUpdate holds the fields to change on a List. Nil fields are left untouched by GitHub.
type ListUpdate struct {
	Name        *string
	Description *string
	IsPrivate   *bool
}

// IsEmpty returns true if no field is set.
func (x *ListUpdate) IsEmpty() bool {
	return x == nil || (x.Name == nil && x.Description == nil && x.IsPrivate == nil)
}

// ListRef is the short form of a List returned by membership mutations.
type ListRef struct {
	ID          types.ListID `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
}

// Membership is the result of replacing the set of Lists a repository belongs to.
type Membership struct {
	Lists []*ListRef
	Item  *ListItem
}

// DeleteProgressFunc is called after each successful deletion with the running count and the total.
type DeleteProgressFunc func(deleted, total int)
