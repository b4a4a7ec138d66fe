package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"cineplus-cli/cmd"
)

func main() {
	// Optional; CINEPLUS_API_URL and CINEPLUS_DEBUG may come from a
	// .env file next to the binary.
	_ = godotenv.Load()

	if os.Getenv("CINEPLUS_DEBUG") != "" {
		f, err := tea.LogToFile("cineplus-debug.log", "debug")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
	}

	cmd.Execute()
}
