package project

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file name of the project manifest.
const ManifestName = "mackerel.toml"

// Config mirrors mackerel.toml.
type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
	Render  RenderConfig  `toml:"render"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type BuildConfig struct {
	Src  string `toml:"src"`
	Out  string `toml:"out"`
	Jobs int    `toml:"jobs"`
}

type RenderConfig struct {
	Newlines    bool `toml:"newlines"`
	FrontMatter bool `toml:"front_matter"`
}

// Manifest is a loaded mackerel.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Default returns the configuration written by `mackerel init`.
func Default(name string) Config {
	return Config{
		Package: PackageConfig{Name: name},
		Build:   BuildConfig{Src: "content", Out: "public"},
	}
}

// SrcDir returns the absolute source directory.
func (m *Manifest) SrcDir() string {
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Build.Src))
}

// OutDir returns the absolute output directory.
func (m *Manifest) OutDir() string {
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Build.Out))
}

// FindManifest walks up from startDir to locate mackerel.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadManifest finds and loads the manifest governing startDir.
// ok is false when no manifest exists.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// LoadConfig decodes and validates a manifest file.
// Missing [build] keys fall back to Default.
func LoadConfig(path string) (Config, error) {
	cfg := Default("")
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if strings.TrimSpace(cfg.Build.Src) == "" {
		return Config{}, fmt.Errorf("%s: [build].src must not be empty", path)
	}
	if strings.TrimSpace(cfg.Build.Out) == "" {
		return Config{}, fmt.Errorf("%s: [build].out must not be empty", path)
	}
	if cfg.Build.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [build].jobs must not be negative", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// Encode writes cfg in TOML form.
func (cfg Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}
