package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/history"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List, show, delete, export and import saved runs",
	}
	cmd.AddCommand(newHistoryListCmd(a))
	cmd.AddCommand(newHistoryShowCmd(a))
	cmd.AddCommand(newHistoryDeleteCmd(a))
	cmd.AddCommand(newHistoryExportCmd(a))
	cmd.AddCommand(newHistoryImportCmd(a))

	return cmd
}

func newHistoryListCmd(a *app) *cobra.Command {
	var (
		filter history.Filter
		output string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved runs, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(output); err != nil {
				return err
			}
			st, err := a.openHistory()
			if err != nil {
				return err
			}
			defer st.Close()

			recs, err := st.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if output != formatText {
				return encode(a.out, output, recs)
			}
			if len(recs) == 0 {
				fmt.Fprintln(a.out, "No saved runs")
				return nil
			}
			return printRecordTable(a.out, recs)
		},
	}
	cmd.Flags().StringVarP(&filter.Algorithm, "algorithm", "a", "", "only runs of this algorithm")
	cmd.Flags().IntVarP(&filter.Limit, "limit", "n", 0, "only the most recent N runs")
	cmd.Flags().StringVarP(&output, "output", "o", formatText, "output format: text, json or yaml")

	return cmd
}

func newHistoryShowCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved run and redraw its path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(output); err != nil {
				return err
			}
			st, err := a.openHistory()
			if err != nil {
				return err
			}
			defer st.Close()

			rec, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if output != formatText {
				return encode(a.out, output, rec)
			}
			printRecord(a.out, rec)
			g, err := rec.Grid()
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out)
			fmt.Fprintln(a.out, a.renderer().Render(g, nil, rec.Path))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", formatText, "output format: text, json or yaml")

	return cmd
}

func newHistoryDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete saved runs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openHistory()
			if err != nil {
				return err
			}
			defer st.Close()

			for _, id := range args {
				if err := st.Delete(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Deleted %s\n", id)
			}
			return nil
		},
	}
}

func newHistoryExportCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every saved run as JSONL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openHistory()
			if err != nil {
				return err
			}
			defer st.Close()

			if file == "" || file == "-" {
				return history.ExportJSONL(cmd.Context(), st, a.out)
			}
			f, err := os.Create(file)
			if err != nil {
				return err
			}
			if err = history.ExportJSONL(cmd.Context(), st, f); err != nil {
				f.Close()
				return err
			}
			a.log.Info("history exported", "path", file)
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "write to FILE instead of stdout")

	return cmd
}

func newHistoryImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: `Load runs from a JSONL export ("-" reads stdin)`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openHistory()
			if err != nil {
				return err
			}
			defer st.Close()

			in := a.in
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			n, err := history.ImportJSONL(cmd.Context(), st, in)
			if err != nil {
				return fmt.Errorf("import after %d records: %w", n, err)
			}
			fmt.Fprintf(a.out, "Imported %d runs\n", n)
			return nil
		},
	}
}
