package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"termtools/collector"
	"termtools/ui"
)

var sysinfoCmd = &cobra.Command{
	Use:   "sysinfo",
	Short: "One-shot system information dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSysinfo()
	},
}

func runSysinfo() error {
	render := ui.New(os.Stdout)

	report, err := collector.Report()
	if err != nil {
		return err
	}

	render.Report(report)
	return nil
}
