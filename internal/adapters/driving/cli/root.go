// Package cli implements the ddsdocs command line interface. It is also
// the composition root: services are wired here and shared by every
// subcommand.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	configfile "github.com/tracedocs/ddsdocs-cli/internal/adapters/driven/config/file"
	storagefile "github.com/tracedocs/ddsdocs-cli/internal/adapters/driven/storage/file"
	"github.com/tracedocs/ddsdocs-cli/internal/adapters/driven/storage/memory"
	"github.com/tracedocs/ddsdocs-cli/internal/connectors/filesystem"
	"github.com/tracedocs/ddsdocs-cli/internal/core/ports/driven"
	"github.com/tracedocs/ddsdocs-cli/internal/core/ports/driving"
	"github.com/tracedocs/ddsdocs-cli/internal/core/services"
	"github.com/tracedocs/ddsdocs-cli/internal/extractors"
	"github.com/tracedocs/ddsdocs-cli/internal/extractors/docx"
	pdfx "github.com/tracedocs/ddsdocs-cli/internal/extractors/pdf"
	"github.com/tracedocs/ddsdocs-cli/internal/extractors/xmldoc"
	"github.com/tracedocs/ddsdocs-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "0.1.0"

// Shared services, wired once in initServices. Tests may preset these to
// inject fakes; initServices leaves non-nil services alone.
var (
	configStore   driven.ConfigStore
	fileScanner   driven.FileScanner
	ingestService driving.IngestService
	queryService  driving.QueryService
	loader        *services.Loader
	docsRoot      string
)

var (
	flagVerbose   bool
	flagDocsRoot  string
	flagCachePath string
	flagConfigDir string
	flagNoCache   bool
)

var rootCmd = &cobra.Command{
	Use:   "ddsdocs",
	Short: "Query DDS API documentation from the command line",
	Long: `ddsdocs ingests a folder of API documentation (.docx, .xml, .pdf),
mines endpoints, request/response samples and validation rules from it,
and answers queries from the resulting knowledge base.

The knowledge base is cached as a single JSON file; delete the cache or
run "ddsdocs ingest" to force a fresh pipeline run.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagDocsRoot, "docs", "", "documentation folder (default from config, then ./docs)")
	rootCmd.PersistentFlags().StringVar(&flagCachePath, "cache", "", "knowledge cache file (default <config dir>/knowledge.json)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.ddsdocs)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "keep the knowledge base in memory only")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices wires the adapters and services. It is idempotent so that
// tests can inject fakes before commands run.
func initServices() error {
	if queryService != nil {
		return nil
	}

	cfg, err := configfile.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	configStore = cfg

	root := flagDocsRoot
	if root == "" {
		root = cfg.GetString("docs_root")
	}
	if root == "" {
		root = "docs"
	}
	resolved, err := filesystem.ResolveRoot(root)
	if err != nil {
		return fmt.Errorf("resolving docs root: %w", err)
	}
	docsRoot = resolved

	registry := extractors.NewRegistry()
	registry.Register(docx.New())
	registry.Register(xmldoc.New())
	registry.Register(pdfx.New())

	fileScanner = filesystem.New()
	pipeline := services.NewPipeline(docsRoot, fileScanner, registry)
	ingestService = pipeline

	var store driven.KnowledgeStore
	if flagNoCache {
		store = memory.NewKnowledgeStore()
	} else {
		cachePath := flagCachePath
		if cachePath == "" {
			cachePath = cfg.GetString("cache_path")
		}
		if cachePath == "" {
			cachePath = filepath.Join(filepath.Dir(cfg.Path()), "knowledge.json")
		}
		store = storagefile.NewKnowledgeStore(cachePath)
	}

	loader = services.NewLoader(pipeline, store)
	queryService = services.NewQuery(loader)

	logger.Debug("Services wired: docs root %s", docsRoot)
	return nil
}
