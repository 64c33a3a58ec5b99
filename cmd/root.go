package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rodrigouchoa/cyclop/pkg/conf"
	"github.com/rodrigouchoa/cyclop/pkg/cql"
	"github.com/rodrigouchoa/cyclop/pkg/schema"
	"github.com/spf13/cobra"
)

var (
	configFile      string
	interactiveMode bool
	selectLimit     int
	partitionCols   []string
)

var rootCmd = &cobra.Command{
	Use:   "cyclop [file ...]",
	Short: "Query console for sparse column-family data",
	Long: `cyclop is a query console for column-family style data, where rows of one
table may carry different sets of populated columns.

Each JSONL file becomes a table named after the file. Columns populated in
more than one row are rendered as the common table layout; columns populated
in at most one row are listed per row as dynamic.

Examples:
  cyclop users.jsonl
  cyclop -i users.jsonl events.jsonl
  cyclop --key id --limit 20 users.jsonl`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		source, err := loadSources(args)
		if err != nil {
			return err
		}

		if interactiveMode {
			return RunInteractive(cfg, source)
		}

		for _, table := range source.Catalog().Tables() {
			rs, err := source.Select(table, nil, selectLimit)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "-- %s\n", table)
			if err := renderResult(os.Stdout, rs); err != nil {
				return err
			}
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (*conf.Config, error) {
	if configFile == "" {
		return conf.Default(), nil
	}
	return conf.Load(configFile)
}

// loadSources reads every file into a table named after it.
func loadSources(files []string) (*schema.Source, error) {
	catalog := schema.NewCatalog()
	source := schema.NewSource(catalog)

	for _, path := range files {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		table := cql.NewTable(name)
		if len(partitionCols) > 0 {
			catalog.SetPartitionKey(table, partitionCols...)
		}

		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		n, err := source.LoadJSONL(table, f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		fmt.Fprintf(os.Stderr, "loaded %d rows into %s\n", n, table)
	}
	return source, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&interactiveMode, "interactive", "i", false, "Interactive console mode")
	rootCmd.PersistentFlags().IntVar(&selectLimit, "limit", 0, "Maximum rows to display per table (0 = all)")
	rootCmd.PersistentFlags().StringSliceVar(&partitionCols, "key", nil, "Partition key column(s) to assume for loaded tables")

	rootCmd.AddCommand(historyCmd)
}
