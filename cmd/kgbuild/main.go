package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/TTa77/PheKnowLator/analysis"
	"github.com/TTa77/PheKnowLator/config"
	"github.com/TTa77/PheKnowLator/engine"
	"github.com/TTa77/PheKnowLator/metric"
	"github.com/TTa77/PheKnowLator/multigraph"
	"github.com/TTa77/PheKnowLator/owltool"
	"github.com/TTa77/PheKnowLator/rdf"
	"github.com/TTa77/PheKnowLator/stats"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "kgbuild",
		Short: "Biomedical knowledge graph construction engine",
		Long: `kgbuild merges source ontologies into a normalized knowledge graph,
splits structural from annotation content, derives the adjacency
multigraph, and writes the integer-identifier artifacts.`,
		Version: version,
	}

	rootCmd.AddCommand(buildCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(ancestorsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildCmd() *cobra.Command {
	var configPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run a full knowledge graph build",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			opts := []engine.Option{
				engine.WithLogger(logger),
				engine.WithMetrics(metric.NewRegistry()),
			}
			if cfg.OWLToolsPath != "" {
				tool, err := owltool.New(cfg.OWLToolsPath, logger)
				if err != nil {
					return err
				}
				opts = append(opts, engine.WithFormatter(tool))
			}

			builder, err := engine.NewBuilder(cfg, opts...)
			if err != nil {
				return err
			}
			result, err := builder.Run(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println(result.Statistics)
			fmt.Printf("connected components: %d\n", len(result.Components))
			fmt.Printf("nodes mapped: %d\n", len(result.IdentifierMap))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "kgbuild.yaml", "build configuration file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <ontology-file>",
		Short: "Print structural statistics for an ontology file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := rdf.LoadGraph(args[0])
			if err != nil {
				return err
			}
			fmt.Println(stats.Derive(stats.GraphSource{G: g}))
			return nil
		},
	}
}

func ancestorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ancestors <ontology-file> <class-iri>...",
		Short: "Resolve the transitive superclass closure of the given classes",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := rdf.LoadGraph(args[0])
			if err != nil {
				return err
			}
			classes := make([]rdf.Term, 0, len(args)-1)
			for _, iri := range args[1:] {
				classes = append(classes, rdf.IRI(iri))
			}
			ancestors, err := analysis.ClassAncestors(multigraph.Build(g), classes)
			if err != nil {
				return err
			}
			for _, a := range ancestors {
				fmt.Println(a)
			}
			return nil
		},
	}
}
