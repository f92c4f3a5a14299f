package buildconfig

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/zeebo/blake3"
	"go.yaml.in/yaml/v3"
)

// Output formats accepted by Render.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// RenderJSON encodes c as indented JSON. Map keys are sorted, so equal
// configs render byte-identical output.
func (c Config) RenderJSON() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding config as JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// RenderYAML encodes c as YAML.
func (c Config) RenderYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config as YAML: %w", err)
	}
	return data, nil
}

// Render encodes c in the named format.
func (c Config) Render(format string) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return c.RenderJSON()
	case FormatYAML, "yml":
		return c.RenderYAML()
	default:
		return nil, fmt.Errorf("unknown format %q: use %q or %q", format, FormatJSON, FormatYAML)
	}
}

// Fingerprint returns the hex BLAKE3-256 digest of the canonical JSON
// encoding of c.
func (c Config) Fingerprint() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encoding config for fingerprint: %w", err)
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
