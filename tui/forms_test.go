package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"cineplus-cli/model"
)

func typeInto(msgs ...string) []tea.KeyMsg {
	keys := make([]tea.KeyMsg, 0, len(msgs))
	for _, s := range msgs {
		if s == "tab" {
			keys = append(keys, tea.KeyMsg{Type: tea.KeyTab})
			continue
		}
		keys = append(keys, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}
	return keys
}

func TestMovieForm_Validation(t *testing.T) {
	f := newMovieForm()
	if f.valid() {
		t.Fatal("expected empty form invalid")
	}

	f.title.SetValue("Dune")
	f.category.SetValue("Sci-Fi")
	f.duration.SetValue("abc")
	if f.valid() {
		t.Fatal("expected non-numeric duration invalid")
	}

	f.duration.SetValue("155")
	if !f.valid() {
		t.Fatal("expected complete form valid")
	}
}

func TestMovieForm_ClassificationCycles(t *testing.T) {
	f := newMovieForm()
	f.setFocus(movieFieldClassification)
	start := f.classIdx

	f, _ = f.update(tea.KeyMsg{Type: tea.KeyRight})
	if f.classIdx == start {
		t.Fatal("expected right to advance classification")
	}
	f, _ = f.update(tea.KeyMsg{Type: tea.KeyLeft})
	if f.classIdx != start {
		t.Fatalf("expected left to undo, got %d", f.classIdx)
	}
}

func TestMovieForm_PayloadTrimsAndStringifies(t *testing.T) {
	f := newMovieForm()
	f.title.SetValue("  Dune ")
	f.category.SetValue("Sci-Fi")
	f.duration.SetValue("155")
	f.classIdx = 2

	payload := f.payload()
	want := model.MoviePayload{Title: "Dune", Category: "Sci-Fi", Duration: "155", Classification: model.Classifications[2]}
	if payload != want {
		t.Fatalf("expected %+v, got %+v", want, payload)
	}
}

func TestTheaterForm_Validation(t *testing.T) {
	f := newTheaterForm()
	f.name.SetValue("Sala IMAX")
	f.capacity.SetValue("0")
	if f.valid() {
		t.Fatal("expected zero capacity invalid")
	}
	f.capacity.SetValue("120")
	if !f.valid() {
		t.Fatal("expected positive capacity valid")
	}
}

func TestFunctionForm_PayloadAppendsSeconds(t *testing.T) {
	movies := []model.Movie{{Id: 5, Title: "Dune"}, {Id: 6, Title: "Coco"}}
	f := newFunctionForm(2, "Sala 1", movies)
	f.date.SetValue("2026-09-12")
	f.time.SetValue("19:30")
	f.movieIdx = 1

	payload := f.payload()
	want := model.FunctionPayload{Date: "2026-09-12", Time: "19:30:00", MovieId: "6", RoomId: "2"}
	if payload != want {
		t.Fatalf("expected %+v, got %+v", want, payload)
	}
}

func TestFunctionForm_InvalidWithoutMovies(t *testing.T) {
	f := newFunctionForm(2, "Sala 1", nil)
	f.date.SetValue("2026-09-12")
	f.time.SetValue("19:30")
	if f.valid() {
		t.Fatal("expected form invalid with an empty catalog")
	}
	if !strings.Contains(f.view(), "sin películas") {
		t.Fatal("expected empty-catalog placeholder in view")
	}
}

func TestContactForm_TabMovesFocus(t *testing.T) {
	f := newContactForm("Ana", "ana@example.com")
	if !f.name.Focused() {
		t.Fatal("expected name focused first")
	}
	for _, key := range typeInto("tab") {
		f, _ = f.update(key)
	}
	if !f.email.Focused() || f.name.Focused() {
		t.Fatal("expected focus moved to email")
	}
	if f.name.Value() != "Ana" || f.email.Value() != "ana@example.com" {
		t.Fatalf("expected prefill kept, got %q %q", f.name.Value(), f.email.Value())
	}
}
