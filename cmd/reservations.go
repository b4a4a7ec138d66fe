package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"cineplus-cli/model"
	"cineplus-cli/service"
)

var reservationsCmd = &cobra.Command{
	Use:   "reservations",
	Short: "List all reservations",
	Long:  `Print every reservation with its movie, theater, showtime and seats`,
	Run: func(cmd *cobra.Command, args []string) {
		client := service.NewClient(nil)
		reservations, err := client.GetReservations(context.Background())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Película", "Sala", "Fecha", "Hora", "Asientos", "Nombre", "Correo"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 2, WidthMax: 30},
		})
		for _, view := range model.BuildReservationViews(reservations) {
			t.AppendRow(table.Row{
				view.Id,
				view.MovieTitle,
				view.Theater,
				view.Date,
				view.Time,
				strings.Join(view.Seats, " "),
				view.Name,
				view.Email,
			})
		}
		t.Render()
	},
}
