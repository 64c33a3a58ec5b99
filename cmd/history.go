package cmd

import (
	"fmt"
	"time"

	"github.com/rodrigouchoa/cyclop/pkg/history"
	"github.com/rodrigouchoa/cyclop/pkg/result"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the stored query history",
	Long: `Lists previously executed statements, newest first, with the column
classification captured for each result. Row data is never stored with
history; re-run the statement to see rows.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		hist := history.New(cfg.History.Limit)
		if err := hist.LoadFrom(history.NewFileStore(cfg.History.File)); err != nil {
			return err
		}
		if hist.Len() == 0 {
			fmt.Println("history is empty")
			return nil
		}

		return hist.Each(func(e history.Entry) error {
			rs := result.FromSnapshot(e.Result)
			fmt.Printf("%s  %s\n", e.Executed.Format(time.RFC3339), e.Statement)
			if len(rs.Columns()) > 0 {
				fmt.Printf("    common: %v  dynamic: %v\n",
					columnNames(rs.CommonColumns()), columnNames(rs.DynamicColumns()))
			}
			return nil
		})
	},
}
