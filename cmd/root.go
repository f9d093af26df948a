package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"termtools/ui"
)

var rootCmd = &cobra.Command{
	Use:   "termtools",
	Short: "Terminal system utilities: process monitor, system info, network diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLauncher()
	},
}

// Execute is the program entry.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(procCmd, sysinfoCmd, netCmd)
}

// runLauncher shows the tool menu and dispatches until the user quits.
func runLauncher() error {
	render := ui.New(os.Stdout)
	reader := bufio.NewReader(os.Stdin)

	for {
		render.Menu("Terminal Utilities", [][2]string{
			{"1", "Process monitor"},
			{"2", "System information"},
			{"3", "Network utilities"},
			{"q", "Quit"},
		})
		render.Prompt("Your choice")

		choice, err := reader.ReadString('\n')
		if err != nil {
			render.Notice("Goodbye!")
			return nil
		}

		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "1":
			if err := runProc(reader); err != nil {
				return err
			}
		case "2":
			if err := runSysinfo(); err != nil {
				return err
			}
		case "3":
			if err := runNet(reader); err != nil {
				return err
			}
		case "q":
			render.Notice("Goodbye!")
			return nil
		default:
			render.Warning("Invalid choice! Please enter 1-3 or 'q' to quit.")
		}
	}
}
