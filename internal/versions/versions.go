package versions

import (
	"slices"
	"strconv"
	"strings"

	"github.com/ryo246912/gdvm/internal/models"
)

const stableMarker = "-stable"

// ParseTag removes every "-stable" from tag and reads the first three
// dot-separated components as major, minor and patch. Missing or
// unparsable components are 0; parsing never fails.
func ParseTag(tag string) models.Version {
	raw := strings.ReplaceAll(tag, stableMarker, "")
	parts := strings.Split(raw, ".")

	return models.Version{
		Major: component(parts, 0),
		Minor: component(parts, 1),
		Patch: component(parts, 2),
		Raw:   raw,
	}
}

func component(parts []string, i int) uint32 {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(parts[i], "+"), 10, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}

// Format keeps stable releases with a tag and returns their versions sorted
// newest first. Equal versions keep their input order.
func Format(releases []models.Release) []models.Version {
	versions := make([]models.Version, 0, len(releases))
	for _, release := range releases {
		if !release.IsStable() {
			continue
		}
		tag, ok := release.Tag()
		if !ok {
			continue
		}
		versions = append(versions, ParseTag(tag))
	}

	SortDescending(versions)
	return versions
}

// SortDescending orders versions by (major, minor, patch), highest first.
func SortDescending(versions []models.Version) {
	slices.SortStableFunc(versions, func(a, b models.Version) int {
		return b.Core().Compare(a.Core())
	})
}

// Group walks versions in order and keeps at most limit entries from each run
// of equal major versions. The run counter resets whenever the major changes.
func Group(versions []models.Version, limit int) []models.Version {
	grouped := make([]models.Version, 0, len(versions))

	var (
		current    uint32
		started    bool
		countInRun int
	)
	for _, v := range versions {
		if !started || v.Major != current {
			current = v.Major
			started = true
			countInRun = 0
		}
		if countInRun < limit {
			grouped = append(grouped, v)
			countInRun++
		}
	}
	return grouped
}
