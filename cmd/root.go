package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cineplus-cli/tui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of CinePlus CLI",
	Long:  `CinePlus CLI Version`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("CinePlus CLI v0.1 -- HEAD")
	},
}

var rootCmd = &cobra.Command{
	Use:   "cineplus",
	Short: "CinePlus cinema dashboard",
	Long:  `Browse movies, theaters and showtimes and reserve your seats from the terminal :)`,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := tea.NewProgram(tui.New(), tea.WithAltScreen()).Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func Execute() {
	rootCmd.AddCommand(moviesCmd, reservationsCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
