package config

// templateHeader introduces the generated configuration file.
const templateHeader = `# md2html configuration
# See 'md2html --help' for the flags these settings correspond to.
`

// GenerateTemplate produces a starter .md2html.yml with default values.
func GenerateTemplate() ([]byte, error) {
	content, err := NewConfig().ToYAML()
	if err != nil {
		return nil, err
	}
	return append([]byte(templateHeader), content...), nil
}
