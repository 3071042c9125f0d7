package userconfig

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

func (c *Config) GetByKey(key string) (v Value, ok bool) {
	val := reflect.ValueOf(c).Elem()
	desc, ok := descs[key]
	if !ok {
		return Value{}, false
	}

	f := val.FieldByName(desc.FieldName)
	if !f.IsValid() {
		return Value{}, false
	}

	return Value{Val: f.Interface(), Type: desc.Type}, true
}

// Render renders every setting as "key: value" lines, sorted by key.
func (c *Config) Render() string {
	var buf strings.Builder
	for _, key := range configKeys {
		v, ok := c.GetByKey(key)
		if !ok {
			continue
		}
		buf.WriteString(fmt.Sprintf("%s: %s\n", key, v))
	}
	return buf.String()
}

var configKeys = (func() []string {
	keys := slices.Collect(maps.Keys(descs))
	sort.Strings(keys)
	return keys
})()

func GetType(key string) (Type, bool) {
	typ, ok := descs[key]
	return typ.Type, ok
}

func Keys() []string {
	return configKeys
}

// SuggestKey returns the setting key closest to the unknown key,
// if any is close enough to be a likely typo.
func SuggestKey(key string) (string, bool) {
	best, bestDist := "", -1
	for _, k := range configKeys {
		if d := levenshtein.ComputeDistance(k, key); bestDist < 0 || d < bestDist {
			best, bestDist = k, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(key)/4) {
		return "", false
	}
	return best, true
}

// Docs describes every setting for command help output.
func Docs() string {
	var b strings.Builder
	for i, key := range configKeys {
		desc := descs[key]
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(key + " (" + desc.Type.Kind.String())
		if len(desc.Type.Oneof) > 0 {
			b.WriteString(": " + RenderOneof(desc.Type.Oneof))
		}
		if def := desc.Type.Default; def != nil && RenderValue(*def) != "" {
			b.WriteString("; default " + RenderValue(*def))
		}
		b.WriteString(")\n")

		for _, line := range strings.Split(strings.TrimSpace(desc.Doc), "\n") {
			b.WriteString("    " + line + "\n")
		}
	}
	return b.String()
}
