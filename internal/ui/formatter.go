package ui

import (
	"fmt"
	"io"

	"github.com/ryo246912/gdvm/internal/models"
)

// PrintVersions writes a blank line, one version per line, a blank line and
// a footer pointing at the complete archive.
func PrintVersions(w io.Writer, versions []models.Version, archiveURL string) error {
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, v := range versions {
		if _, err := fmt.Fprintln(w, v.Raw); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nThis is a partial list. For a complete list, visit: %s\n", archiveURL)
	return err
}
