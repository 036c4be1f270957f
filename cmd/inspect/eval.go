package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expr>...",
		Short: "Evaluate expressions and print their kinds and conversions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodeBuffer, err := cmd.Flags().GetBool(nodeBufferFlag)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			s, err := newSession(ctx, nodeBuffer)
			if err != nil {
				return err
			}
			defer s.Close(ctx)

			for _, expr := range args {
				in, err := s.inspect(expr)
				if err != nil {
					return fmt.Errorf("eval %q: %w", expr, err)
				}
				writeInspection(cmd.OutOrStdout(), in)
			}
			return nil
		},
	}
}

func writeInspection(w io.Writer, in *inspection) {
	kinds := make([]string, len(in.kinds))
	for i, k := range in.kinds {
		kinds[i] = k.String()
	}
	fmt.Fprintf(w, "%s\n", in.expr)
	fmt.Fprintf(w, "  kind:     %s\n", in.kind)
	fmt.Fprintf(w, "  kinds:    %s\n", strings.Join(kinds, ", "))
	for _, c := range in.conversions {
		if c.err != nil {
			fmt.Fprintf(w, "  %-9s error: %v\n", c.name+":", c.err)
			continue
		}
		fmt.Fprintf(w, "  %-9s %s\n", c.name+":", c.result)
	}
}
