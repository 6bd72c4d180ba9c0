// SPDX-License-Identifier: MIT
package themes

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseThemeDocument decodes a YAML or JSON theme document using the
// camelCase field names (primary, textPrimary, listColors, ...). An empty or
// null document returns a nil theme. Unknown keys are rejected.
func ParseThemeDocument(data []byte) (*ColorTheme, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var theme *ColorTheme
	if err := dec.Decode(&theme); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	return theme, nil
}
