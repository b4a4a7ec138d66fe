package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cineplus-cli/model"
)

var (
	formLabelStyle   = lipgloss.NewStyle().Bold(true)
	formFocusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	formErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	formChoiceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	formSavingString = "Guardando..."
)

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Prompt = "> "
	return in
}

func renderField(label string, in textinput.Model, focused bool) string {
	rendered := formLabelStyle.Render(label)
	if focused {
		rendered = formFocusStyle.Render(label)
	}
	return rendered + "\n" + in.View()
}

func renderChoice(label string, value string, focused bool) string {
	rendered := formLabelStyle.Render(label)
	if focused {
		rendered = formFocusStyle.Render(label)
	}
	return rendered + "\n" + formChoiceStyle.Render("< "+value+" >")
}

// movieForm is the add-movie dialog: title, classification (cycled with
// left/right), duration and category. Required-field validation only;
// the backend owns everything else.
type movieForm struct {
	title    textinput.Model
	duration textinput.Model
	category textinput.Model
	classIdx int
	focus    int
	err      string
	saving   bool
}

const (
	movieFieldTitle = iota
	movieFieldClassification
	movieFieldDuration
	movieFieldCategory
	movieFieldCount
)

func newMovieForm() movieForm {
	f := movieForm{
		title:    newInput("Título", 80),
		duration: newInput("Duración (min)", 4),
		category: newInput("Categoría", 40),
		classIdx: 1, // PG, the original form default
	}
	f.title.Focus()
	return f
}

func (f movieForm) update(msg tea.KeyMsg) (movieForm, bool) {
	switch msg.String() {
	case "tab", "down":
		f.setFocus((f.focus + 1) % movieFieldCount)
		return f, true
	case "shift+tab", "up":
		f.setFocus((f.focus + movieFieldCount - 1) % movieFieldCount)
		return f, true
	case "left":
		if f.focus == movieFieldClassification {
			f.classIdx = (f.classIdx + len(model.Classifications) - 1) % len(model.Classifications)
			return f, true
		}
	case "right":
		if f.focus == movieFieldClassification {
			f.classIdx = (f.classIdx + 1) % len(model.Classifications)
			return f, true
		}
	}

	var handled bool
	switch f.focus {
	case movieFieldTitle:
		f.title, _ = f.title.Update(msg)
		handled = true
	case movieFieldDuration:
		f.duration, _ = f.duration.Update(msg)
		handled = true
	case movieFieldCategory:
		f.category, _ = f.category.Update(msg)
		handled = true
	}
	return f, handled
}

func (f *movieForm) setFocus(focus int) {
	f.focus = focus
	f.title.Blur()
	f.duration.Blur()
	f.category.Blur()
	switch focus {
	case movieFieldTitle:
		f.title.Focus()
	case movieFieldDuration:
		f.duration.Focus()
	case movieFieldCategory:
		f.category.Focus()
	}
}

func (f movieForm) valid() bool {
	if strings.TrimSpace(f.title.Value()) == "" || strings.TrimSpace(f.category.Value()) == "" {
		return false
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(f.duration.Value()))
	return err == nil && minutes > 0
}

func (f movieForm) payload() model.MoviePayload {
	return model.MoviePayload{
		Title:          strings.TrimSpace(f.title.Value()),
		Category:       strings.TrimSpace(f.category.Value()),
		Duration:       strings.TrimSpace(f.duration.Value()),
		Classification: model.Classifications[f.classIdx],
	}
}

func (f movieForm) view() string {
	sections := []string{
		renderField("Título", f.title, f.focus == movieFieldTitle),
		renderChoice("Clasificación", model.Classifications[f.classIdx], f.focus == movieFieldClassification),
		renderField("Duración (min)", f.duration, f.focus == movieFieldDuration),
		renderField("Categoría", f.category, f.focus == movieFieldCategory),
	}
	return renderForm("Agregar Nueva Película", sections, f.err, f.saving, f.valid())
}

// theaterForm is the add-theater dialog: name and capacity.
type theaterForm struct {
	name     textinput.Model
	capacity textinput.Model
	focus    int
	err      string
	saving   bool
}

func newTheaterForm() theaterForm {
	f := theaterForm{
		name:     newInput("Nombre", 60),
		capacity: newInput("Capacidad", 5),
	}
	f.name.Focus()
	return f
}

func (f theaterForm) update(msg tea.KeyMsg) (theaterForm, bool) {
	switch msg.String() {
	case "tab", "down", "shift+tab", "up":
		f.focus = 1 - f.focus
		if f.focus == 0 {
			f.name.Focus()
			f.capacity.Blur()
		} else {
			f.name.Blur()
			f.capacity.Focus()
		}
		return f, true
	}
	if f.focus == 0 {
		f.name, _ = f.name.Update(msg)
	} else {
		f.capacity, _ = f.capacity.Update(msg)
	}
	return f, true
}

func (f theaterForm) valid() bool {
	if strings.TrimSpace(f.name.Value()) == "" {
		return false
	}
	capacity, err := strconv.Atoi(strings.TrimSpace(f.capacity.Value()))
	return err == nil && capacity > 0
}

func (f theaterForm) payload() model.RoomPayload {
	return model.RoomPayload{
		Name:     strings.TrimSpace(f.name.Value()),
		Capacity: strings.TrimSpace(f.capacity.Value()),
	}
}

func (f theaterForm) view() string {
	sections := []string{
		renderField("Nombre", f.name, f.focus == 0),
		renderField("Capacidad", f.capacity, f.focus == 1),
	}
	return renderForm("Agregar Nueva Sala", sections, f.err, f.saving, f.valid())
}

// functionForm is the add-showtime dialog for one room: date, time and
// a movie cycled from the fetched catalog.
type functionForm struct {
	roomId   int
	roomName string
	date     textinput.Model
	time     textinput.Model
	movies   []model.Movie
	movieIdx int
	focus    int
	err      string
	saving   bool
}

const (
	functionFieldDate = iota
	functionFieldTime
	functionFieldMovie
	functionFieldCount
)

func newFunctionForm(roomId int, roomName string, movies []model.Movie) functionForm {
	f := functionForm{
		roomId:   roomId,
		roomName: roomName,
		date:     newInput("YYYY-MM-DD", 10),
		time:     newInput("HH:MM", 5),
		movies:   movies,
	}
	f.date.Focus()
	return f
}

func (f functionForm) update(msg tea.KeyMsg) (functionForm, bool) {
	switch msg.String() {
	case "tab", "down":
		f.setFocus((f.focus + 1) % functionFieldCount)
		return f, true
	case "shift+tab", "up":
		f.setFocus((f.focus + functionFieldCount - 1) % functionFieldCount)
		return f, true
	case "left":
		if f.focus == functionFieldMovie && len(f.movies) > 0 {
			f.movieIdx = (f.movieIdx + len(f.movies) - 1) % len(f.movies)
			return f, true
		}
	case "right":
		if f.focus == functionFieldMovie && len(f.movies) > 0 {
			f.movieIdx = (f.movieIdx + 1) % len(f.movies)
			return f, true
		}
	}

	switch f.focus {
	case functionFieldDate:
		f.date, _ = f.date.Update(msg)
	case functionFieldTime:
		f.time, _ = f.time.Update(msg)
	}
	return f, true
}

func (f *functionForm) setFocus(focus int) {
	f.focus = focus
	f.date.Blur()
	f.time.Blur()
	switch focus {
	case functionFieldDate:
		f.date.Focus()
	case functionFieldTime:
		f.time.Focus()
	}
}

func (f functionForm) valid() bool {
	return strings.TrimSpace(f.date.Value()) != "" &&
		strings.TrimSpace(f.time.Value()) != "" &&
		len(f.movies) > 0
}

func (f functionForm) payload() model.FunctionPayload {
	return model.FunctionPayload{
		Date:    strings.TrimSpace(f.date.Value()),
		Time:    strings.TrimSpace(f.time.Value()) + ":00",
		MovieId: strconv.Itoa(f.movies[f.movieIdx].Id),
		RoomId:  strconv.Itoa(f.roomId),
	}
}

func (f functionForm) view() string {
	movieLabel := "(sin películas)"
	if len(f.movies) > 0 {
		movieLabel = f.movies[f.movieIdx].Title
	}
	sections := []string{
		renderField("Fecha", f.date, f.focus == functionFieldDate),
		renderField("Hora", f.time, f.focus == functionFieldTime),
		renderChoice("Película", movieLabel, f.focus == functionFieldMovie),
	}
	title := fmt.Sprintf("Agregar Función • %s", f.roomName)
	return renderForm(title, sections, f.err, f.saving, f.valid())
}

// contactForm collects name and email on the reservation confirm step.
type contactForm struct {
	name  textinput.Model
	email textinput.Model
	focus int
}

func newContactForm(name string, email string) contactForm {
	f := contactForm{
		name:  newInput("Ingrese su nombre", 60),
		email: newInput("Ingrese su correo", 80),
	}
	f.name.SetValue(name)
	f.email.SetValue(email)
	f.name.Focus()
	return f
}

func (f contactForm) update(msg tea.KeyMsg) (contactForm, bool) {
	switch msg.String() {
	case "tab", "down", "shift+tab", "up":
		f.focus = 1 - f.focus
		if f.focus == 0 {
			f.name.Focus()
			f.email.Blur()
		} else {
			f.name.Blur()
			f.email.Focus()
		}
		return f, true
	}
	if f.focus == 0 {
		f.name, _ = f.name.Update(msg)
	} else {
		f.email, _ = f.email.Update(msg)
	}
	return f, true
}

func (f contactForm) view() string {
	return renderField("Nombre", f.name, f.focus == 0) + "\n\n" +
		renderField("Correo Electrónico", f.email, f.focus == 1)
}

func renderForm(title string, sections []string, errText string, saving bool, valid bool) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(title))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(sections, "\n\n"))
	b.WriteString("\n\n")
	if errText != "" {
		b.WriteString(formErrorStyle.Render(errText))
		b.WriteString("\n")
	}
	switch {
	case saving:
		b.WriteString(hint(formSavingString))
	case valid:
		b.WriteString(hint("enter guardar • esc cancelar • tab siguiente campo"))
	default:
		b.WriteString(hint("complete los campos requeridos • esc cancelar"))
	}
	return b.String()
}
