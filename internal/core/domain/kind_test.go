package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestKindFromID tests prefix classification
func TestKindFromID(t *testing.T) {
	tests := []struct {
		id       string
		expected Kind
	}{
		{"nl-2006-05-19-16", KindLaw},
		{"sf-20061027-1196", KindRegulation},
		{"nl-", KindLaw},
		{"NL-2006-05-19-16", KindOther},
		{"lov-2006-05-19-16", KindOther},
		{"sfx", KindOther},
		{"", KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindFromID(tt.id))
		})
	}
}

// TestParseKind tests kind filter validation
func TestParseKind(t *testing.T) {
	t.Run("empty means no filter", func(t *testing.T) {
		k, err := ParseKind("")
		require.NoError(t, err)
		assert.Equal(t, Kind(""), k)
		assert.Equal(t, KindAll, k.Label())
	})

	t.Run("valid kinds", func(t *testing.T) {
		for _, want := range Kinds {
			k, err := ParseKind(string(want))
			require.NoError(t, err)
			assert.Equal(t, want, k)
			assert.Equal(t, string(want), k.Label())
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := ParseKind("treaty")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidKind))
	})
}

// TestParseFormat tests format selector validation
func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"xml", FormatXML, false},
		{"HTML", FormatHTML, false},
		{"Markdown", FormatMarkdown, false},
		{"json", FormatJSON, false},
		{"md", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

// TestRelatedPaths_Path tests per-format path lookup
func TestRelatedPaths_Path(t *testing.T) {
	paths := RelatedPaths{XML: "a.xml", Markdown: "a.md"}

	assert.Equal(t, "a.xml", paths.Path(FormatXML))
	assert.Equal(t, "", paths.Path(FormatHTML))
	assert.Equal(t, "a.md", paths.Path(FormatMarkdown))
	assert.Equal(t, "", paths.Path(FormatJSON))
	assert.Equal(t, "", paths.Path(Format("pdf")))
}
