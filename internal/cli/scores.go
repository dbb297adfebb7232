package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHighScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "highscore",
		Short: "Show the persisted high score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HighScore

			if err := client.Get("/api/v1/highscore", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRecordsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "records",
		Short: "List recent finished rounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameRecordList

			path := "/api/v1/records"
			if limit > 0 {
				path = fmt.Sprintf("%s?limit=%d", path, limit)
			}

			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of records to return")

	return cmd
}
