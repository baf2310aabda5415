// Package validate checks JSON-style objects for required keys.
package validate

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMissingKeys reports that one or more required keys are absent.
var ErrMissingKeys = errors.New("missing required keys")

// Missing returns the required keys absent from obj, sorted. A key whose
// value is an explicit null counts as missing. A nil obj is missing every
// required key.
func Missing(obj map[string]any, required []string) []string {
	var missing []string
	for _, key := range required {
		if v, ok := obj[key]; !ok || v == nil {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}

// RequiredKeys returns nil when every required key is present in obj, or an
// error wrapping ErrMissingKeys naming the absent keys.
func RequiredKeys(obj map[string]any, required []string) error {
	missing := Missing(obj, required)
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingKeys, strings.Join(missing, ", "))
}
