package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/md2html/pkg/config"
)

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	original := &config.Config{
		Extensions:      []string{".md"},
		OutputExtension: ".htm",
		Ignore:          []string{"vendor/**"},
		Jobs:            4,
		Detect:          true,
	}

	data, err := original.ToYAML()
	require.NoError(t, err)

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestFromYAML_PartialDocument(t *testing.T) {
	t.Parallel()

	parsed, err := config.FromYAML([]byte("jobs: 2\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, parsed.Jobs)
	assert.Empty(t, parsed.Extensions)
	assert.Empty(t, parsed.OutputExtension)
}

func TestFromYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("jobs: [not an int"))
	assert.Error(t, err)
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()

	original := config.NewConfig()
	clone := original.Clone()

	clone.Extensions[0] = ".txt"
	clone.Jobs = 9

	assert.Equal(t, ".md", original.Extensions[0])
	assert.Zero(t, original.Jobs)
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	content, err := config.GenerateTemplate()
	require.NoError(t, err)

	text := string(content)
	assert.True(t, strings.HasPrefix(text, "# md2html configuration"))
	assert.Contains(t, text, "output_extension: .html")

	// The template must parse back to the defaults.
	parsed, err := config.FromYAML(content)
	require.NoError(t, err)
	assert.Equal(t, config.NewConfig(), parsed)
}
