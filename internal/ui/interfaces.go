package ui

import (
	"io"
	"os"

	"github.com/ryo246912/gdvm/internal/models"
)

// Printer defines interface for presenting the version list
type Printer interface {
	PrintVersions(versions []models.Version) error
}

// DefaultPrinter writes the list to Out, or stdout when Out is nil
type DefaultPrinter struct {
	Out        io.Writer
	ArchiveURL string
}

// PrintVersions writes the version list and footer
func (p *DefaultPrinter) PrintVersions(versions []models.Version) error {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	return PrintVersions(out, versions, p.ArchiveURL)
}

// MockPrinter for testing
type MockPrinter struct {
	PrintError error

	// Call tracking
	PrintVersionsCalled bool
	Printed             []models.Version
}

// PrintVersions records the versions it was given
func (m *MockPrinter) PrintVersions(versions []models.Version) error {
	m.PrintVersionsCalled = true
	m.Printed = versions
	return m.PrintError
}
