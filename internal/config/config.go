// Package config reads the project-level configuration: search roots
// and intrinsic-module aliases. internal/resolver holds a loaded Config
// but reads neither field.
//
// Grounded on fons/norma-go/toml/toml.go and fons/norma-go/yaml/yaml.go
// (the teacher's only two direct third-party imports): faber.toml is
// tried first via go-toml/v2, falling back to faber.yaml via yaml.v3 if
// the TOML file is absent. Both were HAL config readers in the teacher;
// here they parse one project-config shape instead of an arbitrary
// table.
package config

import (
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ianzepp/faber/internal/fsys"
)

// Default file names searched, in order, under a project root.
const (
	FileTOML = "faber.toml"
	FileYAML = "faber.yaml"
)

// Config is the resolved project configuration.
type Config struct {
	// Roots lists project directories, relative to the project root.
	// Defaults to []string{"."} when unset. The resolver does not search
	// them: local import paths resolve against the importing file's
	// directory.
	Roots []string `toml:"roots" yaml:"roots"`

	// Intrinsics maps an intrinsic module alias (the name following
	// "norma/") to the package name providing it. Populated with the
	// norma-go defaults when unset.
	Intrinsics map[string]string `toml:"intrinsics" yaml:"intrinsics"`

	// Root is the absolute project directory this config was loaded
	// from; not serialized.
	Root string `toml:"-" yaml:"-"`
}

// defaultIntrinsics mirrors the teacher's norma-go submodule layout:
// each intrinsic alias a Faber program can `importa ex "norma/<alias>"`
// resolves to one of the teacher's HAL/json/yaml/toml packages.
func defaultIntrinsics() map[string]string {
	return map[string]string{
		"solum":     "fsys",
		"consolum":  "console",
		"processus": "process",
		"json":      "json",
		"yaml":      "yaml",
		"toml":      "toml",
	}
}

// Default returns the configuration used when no faber.toml/faber.yaml
// is present: search the project root itself, with the standard
// intrinsic aliases.
func Default(root string) *Config {
	return &Config{Roots: []string{"."}, Intrinsics: defaultIntrinsics(), Root: root}
}

// Load reads faber.toml or faber.yaml from root, falling back to
// Default(root) if neither file exists. A malformed file that does
// exist is a reported error, not a silent fallback.
func Load(root string) (*Config, error) {
	tomlPath := fsys.Join(root, FileTOML)
	if fsys.Exists(tomlPath) {
		return loadTOML(root, tomlPath)
	}

	yamlPath := fsys.Join(root, FileYAML)
	if fsys.Exists(yamlPath) {
		return loadYAML(root, yamlPath)
	}

	return Default(root), nil
}

func loadTOML(root, path string) (*Config, error) {
	text, err := fsys.ReadText(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := toml.Unmarshal([]byte(text), cfg); err != nil {
		return nil, err
	}
	cfg.Root = root
	normalize(cfg)
	return cfg, nil
}

func loadYAML(root, path string) (*Config, error) {
	text, err := fsys.ReadText(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(text), cfg); err != nil {
		return nil, err
	}
	cfg.Root = root
	normalize(cfg)
	return cfg, nil
}

// normalize fills in defaults left unset by a partial config file.
func normalize(cfg *Config) {
	if len(cfg.Roots) == 0 {
		cfg.Roots = []string{"."}
	}
	if cfg.Intrinsics == nil {
		cfg.Intrinsics = defaultIntrinsics()
	} else {
		for alias, pkg := range defaultIntrinsics() {
			if _, ok := cfg.Intrinsics[alias]; !ok {
				cfg.Intrinsics[alias] = pkg
			}
		}
	}
}

// ResolveIntrinsic reports the package name an intrinsic alias maps to,
// and whether it is known.
func (c *Config) ResolveIntrinsic(alias string) (string, bool) {
	pkg, ok := c.Intrinsics[alias]
	return pkg, ok
}
