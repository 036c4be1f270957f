package main

import (
	"fmt"
	"os"

	"github.com/dop251/goja"
	"github.com/spf13/cobra"

	"github.com/wippyai/valuebridge/conformance"
	"github.com/wippyai/valuebridge/jsvalue"
)

const (
	casesFlag  = "cases"
	reportFlag = "report"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the conformance scenarios against the goja adapter",
		Args:  cobra.NoArgs,
		RunE:  runCheck,
	}
	cmd.Flags().StringSlice(casesFlag, nil, "YAML case files to run in addition to the built-in scenarios")
	cmd.Flags().String(reportFlag, "", "write a JUnit XML report to this path")
	return cmd
}

func runCheck(cmd *cobra.Command, _ []string) error {
	nodeBuffer, err := cmd.Flags().GetBool(nodeBufferFlag)
	if err != nil {
		return err
	}
	casePaths, err := cmd.Flags().GetStringSlice(casesFlag)
	if err != nil {
		return err
	}
	reportPath, err := cmd.Flags().GetString(reportFlag)
	if err != nil {
		return err
	}

	factory := conformance.Goja(jsvalue.Options{NodeBuffer: nodeBuffer})
	suites := []*conformance.Suite{conformance.Run(factory, conformance.Builtin[goja.Value]())}

	for _, path := range casePaths {
		cf, err := conformance.LoadCases(path)
		if err != nil {
			return err
		}
		suite := conformance.Run(factory, conformance.CaseScenarios[goja.Value](cf.Cases))
		if cf.Suite != "" {
			suite.Name = cf.Suite
		} else {
			suite.Name = path
		}
		suites = append(suites, suite)
	}

	out := cmd.OutOrStdout()
	failures := 0
	for _, s := range suites {
		for _, r := range s.Results {
			switch r.Status {
			case conformance.StatusFail:
				fmt.Fprintf(out, "FAIL %s/%s: %v\n", s.Name, r.Name, r.Err)
			case conformance.StatusSkip:
				fmt.Fprintf(out, "SKIP %s/%s: %v\n", s.Name, r.Name, r.Err)
			default:
				fmt.Fprintf(out, "ok   %s/%s (%s)\n", s.Name, r.Name, r.Duration)
			}
		}
		failures += s.Failures()
	}

	if reportPath != "" {
		f, err := os.Create(reportPath)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		if err := conformance.WriteJUnit(f, suites...); err != nil {
			f.Close()
			return fmt.Errorf("write report: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close report: %w", err)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d scenario(s) failed", failures)
	}
	return nil
}
