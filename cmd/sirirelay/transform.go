package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/siri-relay/formatter"
	"github.com/theoremus-urban-solutions/siri-relay/notification"
	"github.com/theoremus-urban-solutions/siri-relay/xmltree"
)

func newTransformCommand(ctx *commandContext) *cobra.Command {
	var asTable bool

	cmd := &cobra.Command{
		Use:   "transform <file|url|->",
		Short: "Show the record a SIRI document would be forwarded as",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			raw, err := newFetcher().fetch(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			tree, err := notification.ParseDocument(raw)
			if err != nil {
				return err
			}
			rec := notification.Flatten(tree)
			allowed := notification.NewClassifier(cfg.Receiver.ExcludedTypes...).Allow(rec)
			out := cmd.OutOrStdout()

			if !asTable {
				fmt.Fprintln(out, string(formatter.BuildJSON(rec)))
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Key", "Kind", "Items"},
				recordRows(rec),
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))
			fmt.Fprintf(out, "disposition: %s\n", disposition(rec, allowed))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asTable, "table", false, "Print the top-level keys and the disposition instead of JSON")
	return cmd
}

func recordRows(rec *xmltree.Tree) [][]string {
	rows := make([][]string, 0, rec.Len())
	for _, e := range rec.Entries() {
		n := 1
		switch e.Value.Kind() {
		case xmltree.Sequence:
			n = len(e.Value.Items())
		case xmltree.Null:
			n = 0
		}
		rows = append(rows, []string{e.Key.Label(), e.Value.Kind().String(), strconv.Itoa(n)})
	}
	return rows
}

func disposition(rec *xmltree.Tree, allowed bool) string {
	switch {
	case rec.Len() == 0:
		return "empty (not forwarded)"
	case allowed:
		return "forward"
	default:
		return "drop"
	}
}
