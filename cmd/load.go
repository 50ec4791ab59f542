package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sqlbench/internal/config"
	"sqlbench/internal/driver"
	"sqlbench/internal/loader"
)

var (
	loadFile      string
	loadDatabase  string
	loadBatchSize int
	loadNoSchema  bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Import the collision dataset into the suite's databases",
	Long: `Import the NYC Motor Vehicle Collisions TSV export into the crash_data
table of every database in the suite (or a single one with --database).

The input may be plain, gzip-compressed (.gz) or zstd-compressed (.zst).
Rows with missing columns or an unparseable collision id are skipped and
counted; the import carries on.

Examples:
  # Load into every database in the suite
  sqlbench load --suite suites/crash.yaml --file Motor_Vehicle_Collisions.tsv

  # Compressed input, one database only
  sqlbench load --suite suites/crash.yaml --file crashes.tsv.gz --database local-pg`,
	Args: cobra.NoArgs,
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().StringVarP(&loadFile, "file", "f", "", "Dataset file (.tsv, .tsv.gz or .tsv.zst)")
	loadCmd.Flags().StringVarP(&loadDatabase, "database", "d", "", "Load only the named suite database")
	loadCmd.Flags().IntVar(&loadBatchSize, "batch-size", loader.DefaultBatchSize, "Rows per insert transaction")
	loadCmd.Flags().BoolVar(&loadNoSchema, "no-schema", false, "Skip CREATE TABLE IF NOT EXISTS")
	loadCmd.MarkFlagRequired("file")
}

func runLoad(cmd *cobra.Command, args []string) error {
	suite, err := config.LoadSuite(cfg.SuitePath)
	if err != nil {
		return err
	}

	targets := suite.Targets
	if loadDatabase != "" {
		targets = nil
		for _, t := range suite.Targets {
			if t.Name == loadDatabase {
				targets = append(targets, t)
				break
			}
		}
		if len(targets) == 0 {
			return fmt.Errorf("suite has no database named %q", loadDatabase)
		}
	}

	ctx := cmd.Context()
	for _, t := range targets {
		d, err := driver.Resolve(t.Driver)
		if err != nil {
			return err
		}

		op := log.StartOperation(fmt.Sprintf("load %s", t.Name))
		db, err := d.Open(t)
		if err == nil {
			err = db.PingContext(ctx)
		}
		if err != nil {
			op.Fail("connection failed", "error", err)
			return err
		}

		l := loader.New(db, d, log, loadBatchSize, true)
		if !loadNoSchema {
			if err := l.EnsureSchema(ctx); err != nil {
				db.Close()
				op.Fail("schema creation failed", "error", err)
				return err
			}
		}

		res, err := l.Load(ctx, loadFile)
		db.Close()
		if err != nil {
			op.Fail("import failed", "error", err)
			return err
		}
		op.Complete("import finished", "rows", res.Inserted, "skipped", res.Skipped)
	}
	return nil
}
