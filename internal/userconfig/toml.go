package userconfig

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml"
)

// TOML renders the settings as a TOML document that Parse accepts.
func (c *Config) TOML() (string, error) {
	root := make(map[string]any)
	for _, key := range configKeys {
		v, _ := c.GetByKey(key)
		table, name, _ := strings.Cut(key, ".")
		sub, ok := root[table].(map[string]any)
		if !ok {
			sub = make(map[string]any)
			root[table] = sub
		}
		sub[name] = v.Val
	}

	tree, err := toml.TreeFromMap(root)
	if err != nil {
		return "", errors.Wrap(err, "failed to build config tree")
	}
	data, err := tree.Marshal()
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal config")
	}
	return string(data), nil
}
