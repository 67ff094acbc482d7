package github

import (
	"context"
	"fmt"

	"github.com/ryo246912/gdvm/internal/models"
)

// MockClient implements ReleaseLister for testing
type MockClient struct {
	// Control test behavior
	Releases  []models.Release
	ListError error

	// Track method calls
	ListReleasesCalled bool
	ListReleasesCalls  int
}

// ListReleases mocks the paginated REST listing
func (m *MockClient) ListReleases(ctx context.Context) ([]models.Release, error) {
	m.ListReleasesCalled = true
	m.ListReleasesCalls++
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Releases, nil
}

// Reset clears all tracking data for fresh test
func (m *MockClient) Reset() {
	m.ListReleasesCalled = false
	m.ListReleasesCalls = 0
}

// Helper functions for creating test data
func NewRelease(tag string, prerelease, draft bool) models.Release {
	return models.Release{TagName: &tag, Prerelease: &prerelease, Draft: &draft}
}

func CreateTestReleases(count int) []models.Release {
	releases := make([]models.Release, count)
	for i := 0; i < count; i++ {
		releases[i] = NewRelease(fmt.Sprintf("%d.%d.%d-stable", 4-i%3, i%10, i%7), i%5 == 0, false)
	}
	return releases
}

// Error helpers for testing error conditions
func NewNetworkError() error {
	return &TransportError{Page: 1, Err: fmt.Errorf("network connection failed")}
}

func NewUnauthorizedError() error {
	return &AuthError{Page: 1, StatusCode: 401, Err: fmt.Errorf("Bad credentials")}
}

func NewMalformedBodyError() error {
	return &FormatError{Page: 1, Err: fmt.Errorf("invalid character '<' looking for beginning of value")}
}
