// Package config loads the CLI's optional YAML configuration file into a
// jsonschemair.Config, following the read-optional-YAML-file idiom used
// elsewhere in the ecosystem for small, all-optional config structs.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/jsonschemair/jsonschemair"
)

// File is the on-disk shape of a jsonschemair config file.
type File struct {
	RootModule string `yaml:"root_module"`
	EmitSort   string `yaml:"emit_sort"`
	Strict     bool   `yaml:"strict"`
}

// decodeYAML reads a YAML file from fsys and decodes it into v. A missing
// file is returned as an error wrapping fs.ErrNotExist, so callers decide
// whether absence is acceptable; an empty file decodes to nothing and is
// not an error.
func decodeYAML(fsys fs.FS, filePath string, v any) error {
	f, err := fsys.Open(filePath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", filePath, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decoding %s: %w", filePath, err)
	}
	return nil
}

// Load reads an optional YAML config file and merges it onto
// jsonschemair.DefaultConfig(). A missing file yields the defaults
// unchanged.
func Load(fsys fs.FS, filePath string) (jsonschemair.Config, error) {
	cfg := jsonschemair.DefaultConfig()

	var file File
	if err := decodeYAML(fsys, filePath, &file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if file.RootModule != "" {
		cfg.RootModule = file.RootModule
	}
	cfg.Strict = file.Strict

	switch file.EmitSort {
	case "", "lexicographic":
		cfg.EmitSort = jsonschemair.SortLexicographic
	case "declaration_order":
		cfg.EmitSort = jsonschemair.SortDeclarationOrder
	default:
		return cfg, fmt.Errorf("config: unknown emit_sort %q", file.EmitSort)
	}

	return cfg, nil
}
