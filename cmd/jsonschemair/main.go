// Command jsonschemair reads one or more JSON Schema documents and emits
// target-language type and codec source, using the IR and emitters from
// the jsonschemair package.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jsonschemair/jsonschemair"
	"github.com/jsonschemair/jsonschemair/emit/elm"
	"github.com/jsonschemair/jsonschemair/emit/golang"
	"github.com/jsonschemair/jsonschemair/internal/config"
)

type cliConfig struct {
	target     string
	outputDir  string
	configFile string
	strict     bool
	overwrite  bool
	rootModule string
	emitSort   string
}

func main() {
	cfg := &cliConfig{}

	rootCmd := &cobra.Command{
		Use:   "jsonschemair [flags] <schema.json> [schema2.json ...]",
		Short: "Generate target-language types and codecs from JSON Schema",
		Long: `jsonschemair parses one or more JSON Schema documents into a shared
intermediate representation and renders them with a pluggable emitter —
Elm (the default, full decoder/encoder pipeline) or Go (types only).`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(cfg, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&cfg.target, "target", "elm", `emitter to use: "elm" or "go"`)
	flags.StringVarP(&cfg.outputDir, "output", "o", ".", "directory to write generated files into")
	flags.StringVarP(&cfg.configFile, "config", "c", "jsonschemair.yaml", "path to an optional YAML config file")
	flags.BoolVar(&cfg.strict, "strict", false, "escalate warnings to errors")
	flags.BoolVar(&cfg.overwrite, "overwrite", false, "force overwriting existing output files")
	flags.StringVar(&cfg.rootModule, "root-module", "", "module/package prefix applied to generated output")
	flags.StringVar(&cfg.emitSort, "emit-sort", "", `type dictionary walk order: "lexicographic" or "declaration_order"`)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cliCfg *cliConfig, args []string) error {
	pipelineCfg, err := config.Load(os.DirFS("."), cliCfg.configFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlagOverrides(&pipelineCfg, cliCfg)

	var emitter jsonschemair.Emitter
	switch cliCfg.target {
	case "elm":
		emitter = elm.Emitter{}
	case "go":
		emitter = golang.Emitter{PackageName: pipelineCfg.RootModule}
	default:
		return fmt.Errorf("unknown --target %q: must be \"elm\" or \"go\"", cliCfg.target)
	}

	documents, err := readDocuments(args)
	if err != nil {
		return err
	}

	driver := jsonschemair.Driver{Emitter: emitter, Config: pipelineCfg}
	result := driver.ParseAndEmit(documents)

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w.String())
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "error: %s\n", e.String())
	}

	if err := writeFiles(cliCfg.outputDir, result.Files, cliCfg.overwrite); err != nil {
		return err
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("jsonschemair: %d error(s) while generating output", len(result.Errors))
	}
	return nil
}

func applyFlagOverrides(pipelineCfg *jsonschemair.Config, cliCfg *cliConfig) {
	if cliCfg.rootModule != "" {
		pipelineCfg.RootModule = cliCfg.rootModule
	}
	if cliCfg.strict {
		pipelineCfg.Strict = true
	}
	switch cliCfg.emitSort {
	case "lexicographic":
		pipelineCfg.EmitSort = jsonschemair.SortLexicographic
	case "declaration_order":
		pipelineCfg.EmitSort = jsonschemair.SortDeclarationOrder
	}
}

func readDocuments(paths []string) ([]jsonschemair.RawDocument, error) {
	documents := make([]jsonschemair.RawDocument, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		documents = append(documents, jsonschemair.RawDocument{URI: p, Data: data})
	}
	return documents, nil
}

func writeFiles(outputDir string, files map[string]string, overwrite bool) error {
	for name, body := range files {
		outPath := filepath.Join(outputDir, name)
		if !overwrite {
			if _, err := os.Stat(outPath); err == nil {
				log.Printf("File %s already exists, skipping without --overwrite", outPath)
				continue
			}
		}
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", outPath, err)
		}
		if err := os.WriteFile(outPath, []byte(body), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		fmt.Printf("wrote %s\n", outPath)
	}
	return nil
}
