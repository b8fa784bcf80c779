// Package config loads spawnc settings from a TOML file.
//
//	[target]
//	val    = "bevy::ui::Val"
//	rect   = "bevy::ui::UiRect"
//	radius = "bevy::ui::BorderRadius"
//	color  = "bevy::color"
//
//	[output]
//	annotate = false
//	suffix   = ".spawn.rs"
//
//	[macros]
//	spawn = "spawn"
//	value = "v"
//	color = "c"
//	edges = "e"
//	turns = "t"
//
// Missing keys keep their defaults. Unknown keys are an error so typos do
// not go unnoticed.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/metaphox/spawnc/codegen"
)

// FileName is the configuration file looked up by [Find].
const FileName = "spawnc.toml"

type Config struct {
	Target Target `toml:"target"`
	Output Output `toml:"output"`
	Macros Macros `toml:"macros"`
}

// Target holds the host API paths used by generated code.
type Target struct {
	Val    string `toml:"val"`
	Rect   string `toml:"rect"`
	Radius string `toml:"radius"`
	Color  string `toml:"color"`
}

type Output struct {
	Annotate bool   `toml:"annotate"`
	Suffix   string `toml:"suffix"` // input files end in Suffix; outputs end in ".rs"
}

// Macros holds the invocation names recognised in host files.
type Macros struct {
	Spawn string `toml:"spawn"`
	Value string `toml:"value"`
	Color string `toml:"color"`
	Edges string `toml:"edges"`
	Turns string `toml:"turns"`
}

// Default returns the built-in configuration.
func Default() *Config {
	t := codegen.DefaultTarget()
	return &Config{
		Target: Target{Val: t.Val, Rect: t.Rect, Radius: t.Radius, Color: t.Color},
		Output: Output{Suffix: ".spawn.rs"},
		Macros: Macros{Spawn: "spawn", Value: "v", Color: "c", Edges: "e", Turns: "t"},
	}
}

// Parse decodes TOML over the defaults.
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find looks for FileName in dir and its parents. It returns "" when there
// is none.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		p := filepath.Join(dir, FileName)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Discover loads the configuration given explicitly, or the one found from
// dir, or the defaults.
func Discover(explicit, dir string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	p, err := Find(dir)
	if err != nil {
		return nil, err
	}
	if p == "" {
		return Default(), nil
	}
	return Load(p)
}

// Validate checks that every path and macro name is usable.
func (c *Config) Validate() error {
	var problems []string
	for key, v := range map[string]string{
		"target.val": c.Target.Val, "target.rect": c.Target.Rect,
		"target.radius": c.Target.Radius, "target.color": c.Target.Color,
		"output.suffix": c.Output.Suffix,
	} {
		if strings.TrimSpace(v) == "" {
			problems = append(problems, key+" is empty")
		}
	}
	if c.Output.Suffix == ".rs" {
		problems = append(problems, `output.suffix: ".rs" would overwrite the input`)
	}
	seen := make(map[string]string)
	for _, m := range c.macroList() {
		switch {
		case !isIdent(m.name):
			problems = append(problems, fmt.Sprintf("macros.%s: %q is not an identifier", m.key, m.name))
		case seen[m.name] != "":
			problems = append(problems, fmt.Sprintf("macros.%s: %q already used by macros.%s", m.key, m.name, seen[m.name]))
		default:
			seen[m.name] = m.key
		}
	}
	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return fmt.Errorf("config: %s", strings.Join(problems, "; "))
}

type macroName struct{ key, name string }

func (c *Config) macroList() []macroName {
	return []macroName{
		{"spawn", c.Macros.Spawn},
		{"value", c.Macros.Value},
		{"color", c.Macros.Color},
		{"edges", c.Macros.Edges},
		{"turns", c.Macros.Turns},
	}
}

// CodegenTarget converts the [target] table for the generator.
func (c *Config) CodegenTarget() codegen.Target {
	return codegen.Target{Val: c.Target.Val, Rect: c.Target.Rect, Radius: c.Target.Radius, Color: c.Target.Color}
}

// OutputPath maps an input file name to its expanded output: "menu.spawn.rs"
// becomes "menu.rs". Other files get ".out.rs" in place of their extension
// so the input is never overwritten.
func (c *Config) OutputPath(in string) string {
	if strings.HasSuffix(in, c.Output.Suffix) {
		return strings.TrimSuffix(in, c.Output.Suffix) + ".rs"
	}
	return strings.TrimSuffix(in, filepath.Ext(in)) + ".out.rs"
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
