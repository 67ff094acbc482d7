package github

import (
	"context"

	"github.com/ryo246912/gdvm/internal/models"
)

// ReleaseLister defines the interface for fetching the release listing
type ReleaseLister interface {
	ListReleases(ctx context.Context) ([]models.Release, error)
}

// RepositoryInfo defines repository information interface
type RepositoryInfo interface {
	GetOwner() string
	GetName() string
}

// Repository is a fixed owner/name pair
type Repository struct {
	Owner string
	Name  string
}

func (r Repository) GetOwner() string {
	return r.Owner
}

func (r Repository) GetName() string {
	return r.Name
}

// Ensure Client implements ReleaseLister interface
var _ ReleaseLister = (*Client)(nil)
