package config

import (
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// KeyInfo describes a default key that a user config file does not set.
type KeyInfo struct {
	Key          string
	Type         string
	DefaultValue string
}

// MigrationPlan lists how a config file differs from the current defaults.
type MigrationPlan struct {
	// Missing keys are added with their default value.
	Missing []KeyInfo
	// Unknown keys are no longer read and are dropped on migration.
	Unknown []string
}

// Empty reports whether the file already matches the defaults' key set.
func (p *MigrationPlan) Empty() bool {
	return p == nil || (len(p.Missing) == 0 && len(p.Unknown) == 0)
}

// Migrator brings an existing config file up to date with new defaults
// while keeping the values the user set.
type Migrator struct{}

// NewMigrator creates a new config migrator.
func NewMigrator() *Migrator {
	return &Migrator{}
}

// Check compares the config file at path with the defaults.
func (m *Migrator) Check(path string) (*MigrationPlan, error) {
	userKeys, err := m.userKeys(path)
	if err != nil {
		return nil, err
	}

	defaults := defaultsViper()
	known := make(map[string]bool)
	plan := &MigrationPlan{}
	for _, key := range defaults.AllKeys() {
		known[key] = true
		if userKeys[key] {
			continue
		}
		value := defaults.Get(key)
		plan.Missing = append(plan.Missing, KeyInfo{
			Key:          key,
			Type:         typeName(value),
			DefaultValue: formatValue(value),
		})
	}
	for key := range userKeys {
		if !known[key] {
			plan.Unknown = append(plan.Unknown, key)
		}
	}

	sort.Slice(plan.Missing, func(i, j int) bool { return plan.Missing[i].Key < plan.Missing[j].Key })
	sort.Strings(plan.Unknown)
	return plan, nil
}

// Migrate rewrites the config file at path with missing keys filled in and
// unknown keys removed. The merged config must validate before anything is
// written. It returns the plan that was applied.
func (m *Migrator) Migrate(path string) (*MigrationPlan, error) {
	plan, err := m.Check(path)
	if err != nil {
		return nil, err
	}
	if plan.Empty() {
		return plan, nil
	}

	v := defaultsViper()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file at %s: %w", path, err)
	}

	merged := &Config{}
	if err := v.Unmarshal(merged); err != nil {
		return nil, fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}
	normalizeConfig(merged)
	if err := validateConfig(merged); err != nil {
		return nil, fmt.Errorf("refusing to migrate an invalid config: %w", err)
	}

	if err := WriteConfigOrdered(merged, path); err != nil {
		return nil, err
	}
	return plan, nil
}

// userKeys returns the dotted leaf keys set in the TOML file at path.
func (m *Migrator) userKeys(path string) (map[string]bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}

	keys := make(map[string]bool)
	flattenKeys("", raw, keys)
	return keys, nil
}

func flattenKeys(prefix string, m map[string]any, out map[string]bool) {
	for k, v := range m {
		key := strings.ToLower(k)
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := v.(map[string]any); ok {
			flattenKeys(key, nested, out)
			continue
		}
		out[key] = true
	}
}

// defaultsViper returns a Viper instance holding only the defaults.
func defaultsViper() *viper.Viper {
	m := &Manager{viper: viper.New()}
	m.setDefaults()
	return m.viper
}

func typeName(value any) string {
	if value == nil {
		return "unknown"
	}

	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Map:
		return "map"
	default:
		return reflect.TypeOf(value).String()
	}
}

// formatValue renders a default the way it would appear in TOML.
func formatValue(value any) string {
	if value == nil {
		return "null"
	}

	if s, ok := value.(string); ok {
		return fmt.Sprintf("%q", s)
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		items := make([]string, rv.Len())
		for i := range items {
			items[i] = formatValue(rv.Index(i).Interface())
		}
		return "[" + strings.Join(items, ", ") + "]"
	}
	return fmt.Sprintf("%v", value)
}
