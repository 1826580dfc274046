// Package assert provides test assertions shared by the package tests.
package assert

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// JSONEqual reports an error if expected and actual are not the same JSON document.
// Formatting and object key order are ignored.
func JSONEqual(t *testing.T, expected, actual string) {
	t.Helper()
	expectedFormatted := jsonFormat(t, expected)
	actualFormatted := jsonFormat(t, actual)
	if diff := cmp.Diff(expectedFormatted, actualFormatted); diff != "" {
		t.Errorf("JSON mismatch (-expected +actual):\n%s", diff)
	}
}

func jsonFormat(t *testing.T, input string) string {
	t.Helper()
	var obj any
	if err := json.Unmarshal([]byte(input), &obj); err != nil {
		t.Fatalf("invalid JSON %q: %v", input, err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(obj); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}
