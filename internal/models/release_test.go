package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestRelease_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Release
	}{
		{
			name:  "all fields",
			input: `{"tag_name":"4.2.1-stable","prerelease":false,"draft":false,"name":"4.2.1"}`,
			expected: Release{
				TagName:    strPtr("4.2.1-stable"),
				Prerelease: boolPtr(false),
				Draft:      boolPtr(false),
			},
		},
		{
			name:     "missing fields",
			input:    `{"name":"x"}`,
			expected: Release{},
		},
		{
			name:     "null fields",
			input:    `{"tag_name":null,"prerelease":null,"draft":null}`,
			expected: Release{},
		},
		{
			name:     "wrong types",
			input:    `{"tag_name":42,"prerelease":"false","draft":0}`,
			expected: Release{},
		},
		{
			name:     "not an object",
			input:    `"4.2.1-stable"`,
			expected: Release{},
		},
		{
			name:  "mixed valid and invalid",
			input: `{"tag_name":"4.0-stable","prerelease":"no","draft":true}`,
			expected: Release{
				TagName: strPtr("4.0-stable"),
				Draft:   boolPtr(true),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Release
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRelease_UnmarshalPage(t *testing.T) {
	input := `[{"tag_name":"4.2-stable","prerelease":false,"draft":false}, 7, null, {"prerelease":true}]`

	var page []Release
	require.NoError(t, json.Unmarshal([]byte(input), &page))
	require.Len(t, page, 4)

	tag, ok := page[0].Tag()
	assert.True(t, ok)
	assert.Equal(t, "4.2-stable", tag)
	assert.Equal(t, Release{}, page[1])
	assert.Equal(t, Release{}, page[2])
	assert.Equal(t, Release{Prerelease: boolPtr(true)}, page[3])
}

func TestRelease_IsStable(t *testing.T) {
	tests := []struct {
		name     string
		release  Release
		expected bool
	}{
		{
			name:     "stable",
			release:  Release{Prerelease: boolPtr(false), Draft: boolPtr(false)},
			expected: true,
		},
		{
			name:     "prerelease",
			release:  Release{Prerelease: boolPtr(true), Draft: boolPtr(false)},
			expected: false,
		},
		{
			name:     "draft",
			release:  Release{Prerelease: boolPtr(false), Draft: boolPtr(true)},
			expected: false,
		},
		{
			name:     "missing prerelease",
			release:  Release{Draft: boolPtr(false)},
			expected: false,
		},
		{
			name:     "missing draft",
			release:  Release{Prerelease: boolPtr(false)},
			expected: false,
		},
		{
			name:     "empty",
			release:  Release{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.release.IsStable())
		})
	}
}

func TestVersion_Core(t *testing.T) {
	newer := Version{Major: 4, Minor: 10, Patch: 0, Raw: "4.10"}
	older := Version{Major: 4, Minor: 2, Patch: 9, Raw: "4.2.9"}

	assert.Equal(t, 1, newer.Core().Compare(older.Core()))
	assert.Equal(t, -1, older.Core().Compare(newer.Core()))
	assert.Equal(t, 0, newer.Core().Compare(Version{Major: 4, Minor: 10, Raw: "4.10.0"}.Core()))
	assert.Equal(t, "4.10", newer.String())
}
