package models

import (
	"encoding/json"

	"github.com/Masterminds/semver/v3"
)

// Release represents one entry of the GitHub releases listing.
// Fields are nil when the key is absent, null, or of an unexpected JSON type.
type Release struct {
	TagName    *string `json:"tag_name,omitempty"`
	Prerelease *bool   `json:"prerelease,omitempty"`
	Draft      *bool   `json:"draft,omitempty"`
}

// UnmarshalJSON decodes a release without ever failing on its contents, so
// one odd entry cannot abort a whole page. Non-object values yield an empty Release.
func (r *Release) UnmarshalJSON(data []byte) error {
	*r = Release{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	r.TagName = optional[string](fields["tag_name"])
	r.Prerelease = optional[bool](fields["prerelease"])
	r.Draft = optional[bool](fields["draft"])
	return nil
}

func optional[T any](raw json.RawMessage) *T {
	if len(raw) == 0 {
		return nil
	}
	var v *T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

// IsStable reports whether both prerelease and draft are known to be false.
// Unknown flags count as set.
func (r Release) IsStable() bool {
	return r.Prerelease != nil && !*r.Prerelease &&
		r.Draft != nil && !*r.Draft
}

// Tag returns the tag name and whether it was present
func (r Release) Tag() (string, bool) {
	if r.TagName == nil {
		return "", false
	}
	return *r.TagName, true
}

// Version is a parsed release tag
type Version struct {
	Major uint32
	Minor uint32
	Patch uint32
	// Raw is the tag with "-stable" removed, printed as-is.
	Raw string
}

// Core returns the numeric triple as a semantic version for comparisons.
func (v Version) Core() *semver.Version {
	return semver.New(uint64(v.Major), uint64(v.Minor), uint64(v.Patch), "", "")
}

func (v Version) String() string {
	return v.Raw
}
