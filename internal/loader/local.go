// Package loader materializes the three snapshots the merge engine consumes:
// the local translation file, the current remote state, and the optional
// baseline taken from git history.
package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"termsync/internal/models"
	"termsync/internal/validation"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Local reads the translation file and returns its terms. The file is a
// flat JSON object mapping term keys to translation strings.
func Local(path string) ([]models.Term, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read translation file: %w", err)
	}

	terms, err := parseTranslations(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse translation file %s: %w", path, err)
	}
	return terms, nil
}

// parseTranslations decodes a flat {"term.key": "text"} object. Duplicate
// keys are rejected rather than silently collapsed: the engine requires
// unique keys per snapshot, and dropping one of two colliding records could
// hide data loss in the file.
func parseTranslations(data []byte) ([]models.Term, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object of terms, got %v", tok)
	}

	var terms []models.Term
	seen := make(map[string]struct{})
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		key := keyTok.(string)

		var text string
		if err := dec.Decode(&text); err != nil {
			return nil, fmt.Errorf("term %q: translation must be a string: %w", key, err)
		}

		if err := validation.ValidateKey(key); err != nil {
			return nil, err
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicate term key %q", key)
		}
		seen[key] = struct{}{}

		terms = append(terms, models.Term{Key: key, Text: text})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return terms, nil
}
