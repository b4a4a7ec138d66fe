package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"cineplus-cli/model"
	"cineplus-cli/service"
)

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "List the movie catalog",
	Long:  `Print every movie in the catalog as a table, without opening the dashboard`,
	Run: func(cmd *cobra.Command, args []string) {
		client := service.NewClient(nil)
		movies, err := client.GetMovies(context.Background())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Título", "Clasificación", "Duración", "Categoría"})
		for _, movie := range movies {
			t.AppendRow(table.Row{
				movie.Id,
				movie.Title,
				movie.Classification,
				fmt.Sprintf("%d min", movie.Duration.Int()),
				model.DisplayCategory(movie.Category),
			})
		}
		t.Render()
	},
}
