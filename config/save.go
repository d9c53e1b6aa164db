package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKey indicates a key outside ResolverConfig.ValidKeys.
var ErrUnknownKey = errors.New("unknown config key")

// Scope selects which config file Save and Unset modify.
type Scope string

// Writable scopes.
const (
	ScopeGlobal Scope = "global"
	ScopeLocal  Scope = "local"
)

// Save writes key=value to the config file for scope, keeping other keys.
func (r *Resolver) Save(scope Scope, key, value string) error {
	if !r.config.validKey(key) {
		return fmt.Errorf("%w: %s (valid keys: %s)", ErrUnknownKey, key, strings.Join(r.config.ValidKeys, ", "))
	}

	path, perm, err := r.scopePath(scope)
	if err != nil {
		return err
	}

	existing, err := readYAMLMap(path)
	if err != nil {
		return err
	}
	existing[key] = value

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return writeYAMLMap(path, existing, perm)
}

// Unset removes key from the config file for scope. A missing file or key
// is not an error.
func (r *Resolver) Unset(scope Scope, key string) error {
	path, perm, err := r.scopePath(scope)
	if err != nil {
		return err
	}

	existing, err := readYAMLMap(path)
	if err != nil {
		return err
	}
	if _, ok := existing[key]; !ok {
		return nil
	}
	delete(existing, key)
	return writeYAMLMap(path, existing, perm)
}

func (r *Resolver) scopePath(scope Scope) (string, os.FileMode, error) {
	switch scope {
	case ScopeGlobal:
		if r.globalPath == "" {
			return "", 0, fmt.Errorf("global config path not configured")
		}
		// may hold tokens
		return r.globalPath, 0o600, nil
	case ScopeLocal:
		if r.localPath == "" {
			return "", 0, fmt.Errorf("local config path not found (not in a git repository?)")
		}
		return r.localPath, 0o644, nil
	default:
		return "", 0, fmt.Errorf("unknown config scope %q", scope)
	}
}

func readYAMLMap(path string) (map[string]interface{}, error) {
	existing := make(map[string]interface{})
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return existing, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &existing); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if existing == nil {
		existing = make(map[string]interface{})
	}
	return existing, nil
}

func writeYAMLMap(path string, values map[string]interface{}, perm os.FileMode) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
