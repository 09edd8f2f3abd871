package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var sectionHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// WriteConfigOrdered encodes cfg as TOML and writes it to path with the
// tables sorted by name, so rewrites produce stable diffs.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, []byte(sortTOMLSections(buf.String())), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// sortTOMLSections reorders table blocks alphabetically. Keys that appear
// before the first table stay on top.
func sortTOMLSections(content string) string {
	type block struct {
		name  string
		lines []string
	}

	var preamble []string
	var blocks []block
	for _, line := range strings.Split(content, "\n") {
		if match := sectionHeader.FindStringSubmatch(line); match != nil {
			blocks = append(blocks, block{name: match[1], lines: []string{line}})
			continue
		}
		if len(blocks) == 0 {
			preamble = append(preamble, line)
			continue
		}
		last := &blocks[len(blocks)-1]
		last.lines = append(last.lines, line)
	}

	sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].name < blocks[j].name })

	parts := make([]string, 0, len(blocks)+1)
	if p := strings.TrimSpace(strings.Join(preamble, "\n")); p != "" {
		parts = append(parts, p)
	}
	for _, b := range blocks {
		parts = append(parts, strings.TrimRight(strings.Join(b.lines, "\n"), "\n "))
	}

	out := strings.Join(parts, "\n\n")
	if out != "" {
		out += "\n"
	}
	return out
}
