package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/fivemoreminix/glslmode/pkg/glsl"
	"github.com/fivemoreminix/glslmode/ui/buffer"
	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Face overrides the style of one face of the colorscheme.
type Face struct {
	Fg        string `yaml:"fg"`
	Bg        string `yaml:"bg"`
	Bold      bool   `yaml:"bold"`
	Italic    bool   `yaml:"italic"`
	Underline bool   `yaml:"underline"`
}

// Config is the configuration file.
//
//	man_base_url: https://docs.gl/sl4/
//	additional:
//	  type: [MaterialData]
//	  builtin: [unpackMaterial]
//	faces:
//	  type: {fg: green, bold: true}
type Config struct {
	ManBaseURL string              `yaml:"man_base_url"`
	Additional map[string][]string `yaml:"additional"`
	Faces      map[string]Face     `yaml:"faces"`
}

// defaultConfigPath is $XDG_CONFIG_HOME/glslmode/config.yaml, or the
// platform equivalent.
func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "glslmode", "config.yaml"), nil
}

// LoadConfig reads the configuration at path. An empty path means the
// default location, which is allowed to be missing.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			slog.Debug("No default configuration directory", slog.Any("error", err))
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			slog.Debug("No configuration file", slog.String("path", path))
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("Loaded configuration", slog.String("path", path))
	return cfg, nil
}

// ParseConfig decodes a YAML configuration. Unknown keys are an error.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("yaml.Decode: %w", err)
	}
	return cfg, nil
}

// Registry converts the additional words into a glsl.Registry.
func (c *Config) Registry() (glsl.Registry, error) {
	var reg glsl.Registry
	for _, name := range sortedKeys(c.Additional) {
		cat, err := glsl.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("additional: %w", err)
		}
		reg = reg.Add(cat, c.Additional[name]...)
	}
	return reg, nil
}

// Classifier builds the classifier for this configuration. Dropped words
// are logged as warnings.
func (c *Config) Classifier() (*glsl.Classifier, error) {
	reg, err := c.Registry()
	if err != nil {
		return nil, err
	}
	return glsl.New(glsl.Config{
		Additional: reg,
		ManBaseURL: c.ManBaseURL,
		Warn:       warnDropped,
	}), nil
}

func warnDropped(c glsl.Category, word string, err error) {
	slog.Warn("Dropped additional word", slog.String("category", c.String()), slog.String("word", word), slog.Any("error", err))
}

// Colorscheme returns the default colorscheme with the configured faces
// applied. Colors use tcell names ("navy") or "#rrggbb".
func (c *Config) Colorscheme() (buffer.Colorscheme, error) {
	cs := buffer.DefaultColorscheme()
	for _, name := range sortedKeys(c.Faces) {
		syn, err := buffer.ParseSyntax(name)
		if err != nil {
			return nil, fmt.Errorf("faces: %w", err)
		}
		style, err := c.Faces[name].style(cs.GetStyle(buffer.Default))
		if err != nil {
			return nil, fmt.Errorf("faces: %s: %w", name, err)
		}
		cs[syn] = style
	}
	return cs, nil
}

// style applies f to base. Colors left empty keep the base colors.
func (f Face) style(base tcell.Style) (tcell.Style, error) {
	fg, bg, _ := base.Decompose()
	var err error
	if f.Fg != "" {
		if fg, err = parseColor(f.Fg); err != nil {
			return base, err
		}
	}
	if f.Bg != "" {
		if bg, err = parseColor(f.Bg); err != nil {
			return base, err
		}
	}
	return tcell.StyleDefault.Foreground(fg).Background(bg).
		Bold(f.Bold).Italic(f.Italic).Underline(f.Underline), nil
}

func parseColor(name string) (tcell.Color, error) {
	if name == "default" {
		return tcell.ColorDefault, nil
	}
	color := tcell.GetColor(name)
	if color == tcell.ColorDefault {
		return color, fmt.Errorf("unknown color %q", name)
	}
	return color, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
