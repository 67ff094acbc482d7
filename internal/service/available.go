package service

import (
	"context"
	"fmt"

	"github.com/ryo246912/gdvm/internal/config"
	"github.com/ryo246912/gdvm/internal/github"
	"github.com/ryo246912/gdvm/internal/logger"
	"github.com/ryo246912/gdvm/internal/models"
	"github.com/ryo246912/gdvm/internal/ui"
	"github.com/ryo246912/gdvm/internal/versions"
)

// AvailableService lists the newest stable releases per major version
type AvailableService struct {
	client      github.ReleaseLister
	printer     ui.Printer
	maxPerMajor int
}

// NewAvailableService creates a new service instance
func NewAvailableService(client github.ReleaseLister, printer ui.Printer) *AvailableService {
	return &AvailableService{
		client:      client,
		printer:     printer,
		maxPerMajor: config.MaxVersionsPerMajor,
	}
}

// Run fetches all releases and prints the capped list. Nothing is printed
// when fetching fails.
func (s *AvailableService) Run(ctx context.Context) error {
	releases, err := s.client.ListReleases(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch releases: %w", err)
	}

	listed := s.ListAvailable(releases)
	logger.Log.Debug("selected versions", "releases", len(releases), "listed", len(listed))

	if err := s.printer.PrintVersions(listed); err != nil {
		return fmt.Errorf("failed to print versions: %w", err)
	}
	return nil
}

// ListAvailable filters, sorts and caps releases without any I/O
func (s *AvailableService) ListAvailable(releases []models.Release) []models.Version {
	return versions.Group(versions.Format(releases), s.maxPerMajor)
}
