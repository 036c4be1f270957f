// Command inspect evaluates JavaScript expressions with goja and shows how
// each result classifies and converts to native values.
//
//	inspect eval "new Uint8Array([1, 2, 3]).subarray(1)"
//	inspect check --cases cases.yaml --report report.xml
//	inspect repl
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/valuebridge/conformance"
	"github.com/wippyai/valuebridge/jsvalue"
	"github.com/wippyai/valuebridge/linear"
)

const (
	debugFlag      = "debug"
	nodeBufferFlag = "node-buffer"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [sub-command]",
		Short: "Inspect value conversions between goja and native types",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: setupLogging,
		SilenceUsage:      true,
	}

	cmd.PersistentFlags().Bool(debugFlag, false, "enable development logging")
	cmd.PersistentFlags().Bool(nodeBufferFlag, true, "enable the Node-style Buffer global")

	cmd.AddCommand(newEvalCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newReplCmd())
	return cmd
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	debug, err := cmd.Flags().GetBool(debugFlag)
	if err != nil {
		return err
	}
	log := zap.NewNop()
	if debug {
		if log, err = zap.NewDevelopment(); err != nil {
			return err
		}
	}
	jsvalue.SetLogger(log.Named("jsvalue"))
	linear.SetLogger(log.Named("linear"))
	conformance.SetLogger(log.Named("conformance"))
	return nil
}
