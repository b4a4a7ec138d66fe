package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cineplus-cli/model"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	titleStyle     = lipgloss.NewStyle().Bold(true)
	dateStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	badgeStyle     = lipgloss.NewStyle().Faint(true)
	emptyStyle     = lipgloss.NewStyle().Italic(true).Faint(true)
	containerStyle = lipgloss.NewStyle().Padding(1, 2)
)

func (m appModel) View() string {
	var body string
	switch m.state {
	case stateLoadingMovies:
		body = m.loadingView("Cargando películas...")
	case stateLoadingTheaters:
		body = m.loadingView("Cargando salas...")
	case stateLoadingReservations:
		body = m.loadingView("Cargando reservas...")
	case stateLoadingShowtimes:
		body = m.loadingView("Cargando horarios de " + m.selectedMovie.Title + "...")
	case stateMovies:
		body = m.movieList.View() + "\n" + hint("enter ver horarios • a agregar • / filtrar • tab sección • q salir")
	case stateTheaters:
		body = m.theaterList.View() + "\n" + hint("enter ver detalle • a agregar sala • f agregar función • tab sección • q salir")
	case stateReservations:
		body = m.reservationList.View() + "\n" + hint("/ filtrar • tab sección • q salir")
	case stateAddMovie:
		body = m.movieForm.view()
	case stateAddTheater:
		body = m.theaterForm.view()
	case stateAddFunction:
		body = m.functionForm.view()
	case stateMovieDetail:
		body = m.movieDetailView()
	case stateTheaterDetail:
		body = m.theaterDetailView()
	case stateReservation:
		body = m.reservationView()
	case stateError:
		body = m.errorView()
	}
	return containerStyle.Render(m.headerView() + "\n\n" + body)
}

func (m appModel) headerView() string {
	labels := [...]string{"[1] Películas", "[2] Salas", "[3] Reservas"}
	current := m.currentSection()
	for i := range labels {
		if section(i) == current {
			labels[i] = headerStyle.Render(labels[i])
		} else {
			labels[i] = hint(labels[i])
		}
	}
	return headerStyle.Render("CinePlus") + "  " + strings.Join(labels[:], "  ")
}

func (m appModel) loadingView(message string) string {
	return m.spinner.View() + " " + message
}

func (m appModel) errorView() string {
	return errorStyle.Render("Algo salió mal") + "\n\n" +
		m.err.Error() + "\n\n" +
		hint("esc volver • q salir")
}

func (m appModel) movieDetailView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.selectedMovie.Title))
	b.WriteString("\n")
	b.WriteString(badgeStyle.Render(fmt.Sprintf("%s • %d min • %s",
		m.selectedMovie.Classification,
		m.selectedMovie.Duration.Int(),
		model.DisplayCategory(m.selectedMovie.Category))))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Horarios Disponibles"))
	b.WriteString("\n")

	if len(m.showtimeGroups) == 0 {
		b.WriteString(emptyStyle.Render("¡No hay horarios disponibles para esta película!"))
		b.WriteString("\n\n")
		b.WriteString(hint("esc volver"))
		return b.String()
	}

	index := 0
	for _, group := range m.showtimeGroups {
		b.WriteString("\n")
		b.WriteString(dateStyle.Render(group.Date))
		b.WriteString("\n")
		for _, showtime := range group.Showtimes {
			marker := "  "
			line := fmt.Sprintf("%s • %s", showtime.Time, showtime.Theater)
			if index == m.showtimeCursor {
				marker = cursorStyle.Render("→ ")
				line = cursorStyle.Render(line)
			}
			b.WriteString(marker + line + "\n")
			index++
		}
	}
	b.WriteString("\n")
	b.WriteString(hint("↑/↓ elegir horario • enter reservar • esc volver"))
	return b.String()
}

func (m appModel) theaterDetailView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.selectedTheater.Name))
	b.WriteString("\n")
	b.WriteString(badgeStyle.Render(fmt.Sprintf("Capacidad: %d asientos", m.selectedTheater.Capacity)))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Programación"))
	b.WriteString("\n")

	if len(m.selectedTheater.Schedule) == 0 {
		b.WriteString(emptyStyle.Render("Sin funciones programadas."))
	} else {
		lastDate := ""
		for _, showtime := range m.selectedTheater.Schedule {
			if showtime.Date != lastDate {
				b.WriteString("\n")
				b.WriteString(dateStyle.Render(showtime.Date))
				b.WriteString("\n")
				lastDate = showtime.Date
			}
			b.WriteString(fmt.Sprintf("  %s • %s\n", showtime.Time, showtime.MovieTitle))
		}
	}
	b.WriteString("\n")
	b.WriteString(hint("esc volver"))
	return b.String()
}

func (m appModel) reservationView() string {
	if m.session == nil {
		return ""
	}
	s := m.session

	header := titleStyle.Render(s.movieTitle) + "\n" +
		badgeStyle.Render(fmt.Sprintf("%s • %s %s", s.showtime.Theater, s.showtime.Date, s.showtime.Time))

	switch s.step {
	case stepLoadingSeats:
		return header + "\n\n" + m.spinner.View() + " Cargando asientos..."

	case stepSelectSeats:
		return header + "\n\n" + s.renderSeatGrid() + "\n\n" +
			hint("←↑↓→ mover • espacio seleccionar • enter continuar • esc cancelar")

	case stepConfirm:
		var b strings.Builder
		b.WriteString(header)
		b.WriteString("\n\n")
		b.WriteString(titleStyle.Render("Confirmar Reserva"))
		b.WriteString("\n")
		b.WriteString("Asientos: " + strings.Join(s.selectedNumbers(), " "))
		b.WriteString("\n\n")
		b.WriteString(m.contact.view())
		b.WriteString("\n\n")
		if s.submitErr != "" {
			b.WriteString(errorStyle.Render(s.submitErr))
			b.WriteString("\n")
		}
		switch {
		case m.submitting:
			b.WriteString(m.spinner.View() + " Reservando...")
		case s.canSubmit():
			b.WriteString(hint("enter confirmar • esc volver a los asientos"))
		default:
			b.WriteString(hint("complete nombre y correo • esc volver a los asientos"))
		}
		return b.String()

	case stepDone:
		return header + "\n\n" +
			successStyle.Render("¡Reserva Exitosa!") + "\n\n" +
			fmt.Sprintf("Asientos %s reservados a nombre de %s (%s).\n\n",
				strings.Join(s.selectedNumbers(), " "), s.name, s.email) +
			hint("enter cerrar")

	case stepFailed:
		return header + "\n\n" +
			errorStyle.Render("No se pudieron cargar los asientos") + "\n\n" +
			s.loadErr + "\n\n" +
			hint("esc cerrar")
	}
	return ""
}
