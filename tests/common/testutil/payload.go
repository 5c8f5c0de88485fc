//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Edit changes one field of a JSON payload.
type Edit func(t testing.TB, m map[string]any)

// Payload turns a request DTO into its wire form so a test can send fields
// the typed struct cannot express, such as a string where an object goes.
func Payload(t testing.TB, v any, edits ...Edit) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, e := range edits {
		e(t, m)
	}
	return m
}

// Set replaces the value at a dotted path like "customerInfo.participants".
func Set(path string, value any) Edit {
	return func(t testing.TB, m map[string]any) {
		t.Helper()
		parent, key := walk(t, m, path)
		parent[key] = value
	}
}

// Drop removes the field at a dotted path.
func Drop(path string) Edit {
	return func(t testing.TB, m map[string]any) {
		t.Helper()
		parent, key := walk(t, m, path)
		delete(parent, key)
	}
}

func walk(t testing.TB, m map[string]any, path string) (map[string]any, string) {
	t.Helper()
	parts := strings.Split(path, ".")
	cur := m
	for _, p := range parts[:len(parts)-1] {
		next, ok := cur[p].(map[string]any)
		require.Truef(t, ok, "payload path %q: %q is not an object", path, p)
		cur = next
	}
	return cur, parts[len(parts)-1]
}
