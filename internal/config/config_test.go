package config

import (
	"testing"
	"testing/fstest"

	"github.com/jsonschemair/jsonschemair"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	fsys := fstest.MapFS{}

	cfg, err := Load(fsys, "jsonschemair.yaml")
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if cfg != jsonschemair.DefaultConfig() {
		t.Errorf("Load with no file = %+v, want defaults %+v", cfg, jsonschemair.DefaultConfig())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"jsonschemair.yaml": {Data: []byte("root_module: MyApp\nemit_sort: declaration_order\nstrict: true\n")},
	}

	cfg, err := Load(fsys, "jsonschemair.yaml")
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if cfg.RootModule != "MyApp" {
		t.Errorf("RootModule = %q, want %q", cfg.RootModule, "MyApp")
	}
	if cfg.EmitSort != jsonschemair.SortDeclarationOrder {
		t.Errorf("EmitSort = %v, want %v", cfg.EmitSort, jsonschemair.SortDeclarationOrder)
	}
	if !cfg.Strict {
		t.Error("Strict = false, want true")
	}
}

func TestLoadUnknownEmitSort(t *testing.T) {
	fsys := fstest.MapFS{
		"jsonschemair.yaml": {Data: []byte("emit_sort: bogus\n")},
	}
	if _, err := Load(fsys, "jsonschemair.yaml"); err == nil {
		t.Fatal("Load: expected an error for an unknown emit_sort value")
	}
}
