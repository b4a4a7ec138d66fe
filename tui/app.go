package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cineplus-cli/model"
	"cineplus-cli/service"
	"cineplus-cli/store"
)

type appState int

const (
	stateLoadingMovies appState = iota
	stateMovies
	stateAddMovie
	stateLoadingShowtimes
	stateMovieDetail
	stateLoadingTheaters
	stateTheaters
	stateTheaterDetail
	stateAddTheater
	stateAddFunction
	stateLoadingReservations
	stateReservations
	stateReservation
	stateError
)

type section int

const (
	sectionMovies section = iota
	sectionTheaters
	sectionReservations
)

type appModel struct {
	client *service.Client

	state     appState
	lastState appState
	err       error

	width  int
	height int

	movies       []model.Movie
	theaters     []model.TheaterView
	reservations []model.ReservationView

	movieList       list.Model
	theaterList     list.Model
	reservationList list.Model

	selectedMovie   model.Movie
	showtimeGroups  []model.DateGroup
	showtimeCursor  int
	selectedTheater model.TheaterView

	movieForm    movieForm
	theaterForm  theaterForm
	functionForm functionForm

	// One reservation session per open dialog. The generation counter
	// discards responses that arrive after the dialog closed.
	session       *reservationSession
	sessionGen    int
	sessionCtx    context.Context
	sessionCancel context.CancelFunc
	contact       contactForm
	submitting    bool

	contactPrefill store.Contact

	spinner spinner.Model
}

type errMsg struct {
	err            error
	returnState    appState
	returnStateSet bool
}

type moviesMsg struct {
	movies []model.Movie
	err    error
}

type theatersMsg struct {
	theaters []model.TheaterView
	movies   []model.Movie
	err      error
}

type reservationsMsg struct {
	reservations []model.ReservationView
	err          error
}

type showtimesMsg struct {
	showtimes []model.ShowtimeView
	err       error
}

type movieCreatedMsg struct {
	movie model.Movie
	err   error
}

type theaterCreatedMsg struct {
	room model.Room
	err  error
}

type functionCreatedMsg struct {
	err error
}

type seatsMsg struct {
	gen   int
	seats []model.Seat
	err   error
}

type reservationSubmittedMsg struct {
	gen int
	err error
}

func New() tea.Model {
	m := appModel{
		client: service.NewClient(nil),
		state:  stateLoadingMovies,
	}

	m.movieList = newList("Películas Disponibles")
	m.theaterList = newList("Salas Disponibles")
	m.reservationList = newList("Reservas Realizadas")

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	if contact, err := store.LoadContact(); err == nil {
		m.contactPrefill = contact
	}

	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.fetchMoviesCmd(), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		next, cmd, handled := m.handleKey(msg)
		if handled {
			return next, cmd
		}
		m = next

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.isLoadingState() {
			return m, cmd
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		if msg.returnStateSet {
			m.lastState = msg.returnState
		} else {
			m.lastState = recoverStateFrom(m.state)
		}
		m.state = stateError
		return m, nil

	case moviesMsg:
		if msg.err != nil {
			return m, errCmd(msg.err)
		}
		m.movies = msg.movies
		m.movieList.SetItems(buildMovieItems(msg.movies))
		m.state = stateMovies
		return m, nil

	case theatersMsg:
		if msg.err != nil {
			return m, errCmd(msg.err)
		}
		m.theaters = msg.theaters
		m.movies = msg.movies
		m.movieList.SetItems(buildMovieItems(msg.movies))
		m.theaterList.SetItems(buildTheaterItems(msg.theaters))
		m.state = stateTheaters
		return m, nil

	case reservationsMsg:
		if msg.err != nil {
			return m, errCmd(msg.err)
		}
		m.reservations = msg.reservations
		m.reservationList.SetItems(buildReservationItems(msg.reservations))
		m.state = stateReservations
		return m, nil

	case showtimesMsg:
		if msg.err != nil {
			return m, errWithReturnCmd(msg.err, stateMovies)
		}
		m.showtimeGroups = model.GroupShowtimesByDate(msg.showtimes)
		m.showtimeCursor = 0
		m.state = stateMovieDetail
		return m, nil

	case movieCreatedMsg:
		m.movieForm.saving = false
		if msg.err != nil {
			m.movieForm.err = msg.err.Error()
			return m, nil
		}
		m.movies = append(m.movies, msg.movie)
		m.movieList.SetItems(buildMovieItems(m.movies))
		m.state = stateMovies
		return m, nil

	case theaterCreatedMsg:
		m.theaterForm.saving = false
		if msg.err != nil {
			m.theaterForm.err = msg.err.Error()
			return m, nil
		}
		m.theaters = append(m.theaters, model.TheaterView{
			Id:       msg.room.Id,
			Name:     msg.room.Name,
			Capacity: msg.room.Capacity.Int(),
		})
		m.theaterList.SetItems(buildTheaterItems(m.theaters))
		m.state = stateTheaters
		return m, nil

	case functionCreatedMsg:
		m.functionForm.saving = false
		if msg.err != nil {
			m.functionForm.err = msg.err.Error()
			return m, nil
		}
		// A new function changes the joined schedule display, so the
		// whole theaters section is re-fetched.
		m.state = stateLoadingTheaters
		return m, tea.Batch(m.fetchTheatersCmd(), m.spinner.Tick)

	case seatsMsg:
		if msg.gen != m.sessionGen || m.session == nil {
			return m, nil
		}
		if msg.err != nil {
			m.session.loadFailed(msg.err.Error())
			return m, nil
		}
		m.session.seatsLoaded(msg.seats)
		return m, nil

	case reservationSubmittedMsg:
		if msg.gen != m.sessionGen || m.session == nil {
			return m, nil
		}
		m.submitting = false
		if msg.err != nil {
			m.session.submitFailed(msg.err.Error())
			return m, nil
		}
		if m.session.submitted() {
			_ = store.RememberContact(store.Contact{Name: m.session.name, Email: m.session.email})
			m.contactPrefill = store.Contact{Name: m.session.name, Email: m.session.email}
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case stateMovies:
		m.movieList, cmd = m.movieList.Update(msg)
	case stateTheaters:
		m.theaterList, cmd = m.theaterList.Update(msg)
	case stateReservations:
		m.reservationList, cmd = m.reservationList.Update(msg)
	}
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit, true
	}

	// While the list filter prompt is open, every key belongs to it.
	if listPtr := m.activeList(); listPtr != nil && listPtr.SettingFilter() {
		return m, nil, false
	}

	switch m.state {
	case stateAddMovie, stateAddTheater, stateAddFunction:
		return m.handleFormKey(msg)
	case stateReservation:
		return m.handleReservationKey(msg)
	case stateMovieDetail:
		return m.handleMovieDetailKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit, true
	case "esc":
		if listPtr := m.activeList(); listPtr != nil && listPtr.IsFiltered() {
			listPtr.ResetFilter()
			return m, nil, true
		}
		next, cmd := m.goBack()
		return next, cmd, true
	case "tab":
		return m.switchSection(nextSection(m.currentSection()))
	case "1":
		return m.switchSection(sectionMovies)
	case "2":
		return m.switchSection(sectionTheaters)
	case "3":
		return m.switchSection(sectionReservations)
	case "a":
		switch m.state {
		case stateMovies:
			m.movieForm = newMovieForm()
			m.state = stateAddMovie
			return m, nil, true
		case stateTheaters:
			m.theaterForm = newTheaterForm()
			m.state = stateAddTheater
			return m, nil, true
		}
	case "f":
		if m.state == stateTheaters {
			item, ok := m.theaterList.SelectedItem().(theaterItem)
			if !ok {
				return m, nil, true
			}
			m.functionForm = newFunctionForm(item.theater.Id, item.theater.Name, m.movies)
			m.state = stateAddFunction
			return m, nil, true
		}
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateMovies:
			item, ok := m.movieList.SelectedItem().(movieItem)
			if !ok {
				return m, nil, true
			}
			m.selectedMovie = item.movie
			_ = store.RememberMovie(item.movie.Id, item.movie.Title)
			m.state = stateLoadingShowtimes
			return m, tea.Batch(m.fetchShowtimesCmd(item.movie.Id), m.spinner.Tick), true
		case stateTheaters:
			item, ok := m.theaterList.SelectedItem().(theaterItem)
			if !ok {
				return m, nil, true
			}
			m.selectedTheater = item.theater
			m.state = stateTheaterDetail
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m appModel) handleFormKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	if msg.String() == "esc" {
		next, cmd := m.goBack()
		return next, cmd, true
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateAddMovie:
			if m.movieForm.valid() && !m.movieForm.saving {
				m.movieForm.saving = true
				m.movieForm.err = ""
				return m, m.createMovieCmd(m.movieForm.payload()), true
			}
			return m, nil, true
		case stateAddTheater:
			if m.theaterForm.valid() && !m.theaterForm.saving {
				m.theaterForm.saving = true
				m.theaterForm.err = ""
				return m, m.createTheaterCmd(m.theaterForm.payload()), true
			}
			return m, nil, true
		case stateAddFunction:
			if m.functionForm.valid() && !m.functionForm.saving {
				m.functionForm.saving = true
				m.functionForm.err = ""
				return m, m.createFunctionCmd(m.functionForm.payload()), true
			}
			return m, nil, true
		}
	}

	switch m.state {
	case stateAddMovie:
		m.movieForm, _ = m.movieForm.update(msg)
	case stateAddTheater:
		m.theaterForm, _ = m.theaterForm.update(msg)
	case stateAddFunction:
		m.functionForm, _ = m.functionForm.update(msg)
	}
	return m, nil, true
}

func (m appModel) handleMovieDetailKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	total := m.showtimeCount()
	switch msg.String() {
	case "esc", "q":
		m.state = stateMovies
		return m, nil, true
	case "up", "k":
		if m.showtimeCursor > 0 {
			m.showtimeCursor--
		}
		return m, nil, true
	case "down", "j":
		if m.showtimeCursor < total-1 {
			m.showtimeCursor++
		}
		return m, nil, true
	case "enter":
		showtime, ok := m.showtimeAt(m.showtimeCursor)
		if !ok {
			return m, nil, true
		}
		return m.openReservation(showtime)
	}
	return m, nil, true
}

func (m appModel) handleReservationKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	if m.session == nil {
		m.state = stateMovieDetail
		return m, nil, true
	}

	switch m.session.step {
	case stepLoadingSeats, stepFailed:
		if msg.String() == "esc" {
			return m.closeReservation(), nil, true
		}
		return m, nil, true

	case stepSelectSeats:
		switch msg.String() {
		case "esc":
			return m.closeReservation(), nil, true
		case "left", "h":
			m.session.moveCursor(-1, 0)
		case "right", "l":
			m.session.moveCursor(1, 0)
		case "up", "k":
			m.session.moveCursor(0, -1)
		case "down", "j":
			m.session.moveCursor(0, 1)
		case " ", "x":
			m.session.toggleSeat()
		case "enter":
			if m.session.advance() {
				m.contact = newContactForm(m.contactPrefill.Name, m.contactPrefill.Email)
				m.session.name = m.contact.name.Value()
				m.session.email = m.contact.email.Value()
			}
		}
		return m, nil, true

	case stepConfirm:
		switch msg.String() {
		case "esc":
			m.session.back()
			return m, nil, true
		case "enter":
			m.session.name = m.contact.name.Value()
			m.session.email = m.contact.email.Value()
			if m.session.canSubmit() && !m.submitting {
				m.submitting = true
				return m, tea.Batch(
					m.submitReservationCmd(m.sessionCtx, m.sessionGen, m.session.payload()),
					m.spinner.Tick,
				), true
			}
			return m, nil, true
		}
		m.contact, _ = m.contact.update(msg)
		m.session.name = m.contact.name.Value()
		m.session.email = m.contact.email.Value()
		return m, nil, true

	case stepDone:
		switch msg.String() {
		case "esc", "enter", "q":
			return m.closeReservation(), nil, true
		}
		return m, nil, true
	}
	return m, nil, true
}

func (m appModel) openReservation(showtime model.ShowtimeView) (appModel, tea.Cmd, bool) {
	m.session = newReservationSession(showtime, m.selectedMovie.Title)
	m.sessionGen++
	ctx, cancel := context.WithCancel(context.Background())
	m.sessionCtx = ctx
	m.sessionCancel = cancel
	m.submitting = false
	m.state = stateReservation
	return m, tea.Batch(m.fetchSeatsCmd(ctx, m.sessionGen, showtime.Id), m.spinner.Tick), true
}

// closeReservation tears down the dialog: the fetch context is
// cancelled and the generation bumped so a late response is dropped.
// No seat-release call is made; unsubmitted selections simply vanish.
func (m appModel) closeReservation() appModel {
	if m.sessionCancel != nil {
		m.sessionCancel()
		m.sessionCancel = nil
	}
	m.sessionCtx = nil
	m.session = nil
	m.sessionGen++
	m.submitting = false
	m.state = stateMovieDetail
	return m
}

func (m appModel) goBack() (appModel, tea.Cmd) {
	switch m.state {
	case stateAddMovie:
		m.state = stateMovies
	case stateMovieDetail, stateLoadingShowtimes:
		m.state = stateMovies
	case stateAddTheater, stateAddFunction, stateTheaterDetail:
		m.state = stateTheaters
	case stateReservation:
		return m.closeReservation(), nil
	case stateError:
		m.state = m.lastState
	}
	return m, nil
}

func (m appModel) currentSection() section {
	switch m.state {
	case stateLoadingTheaters, stateTheaters, stateTheaterDetail, stateAddTheater, stateAddFunction:
		return sectionTheaters
	case stateLoadingReservations, stateReservations:
		return sectionReservations
	default:
		return sectionMovies
	}
}

func nextSection(s section) section {
	switch s {
	case sectionMovies:
		return sectionTheaters
	case sectionTheaters:
		return sectionReservations
	default:
		return sectionMovies
	}
}

func (m appModel) switchSection(s section) (appModel, tea.Cmd, bool) {
	switch s {
	case sectionMovies:
		m.state = stateLoadingMovies
		return m, tea.Batch(m.fetchMoviesCmd(), m.spinner.Tick), true
	case sectionTheaters:
		m.state = stateLoadingTheaters
		return m, tea.Batch(m.fetchTheatersCmd(), m.spinner.Tick), true
	default:
		m.state = stateLoadingReservations
		return m, tea.Batch(m.fetchReservationsCmd(), m.spinner.Tick), true
	}
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateMovies:
		return &m.movieList
	case stateTheaters:
		return &m.theaterList
	case stateReservations:
		return &m.reservationList
	default:
		return nil
	}
}

func (m appModel) isLoadingState() bool {
	return m.state == stateLoadingMovies ||
		m.state == stateLoadingTheaters ||
		m.state == stateLoadingReservations ||
		m.state == stateLoadingShowtimes ||
		(m.state == stateReservation && m.session != nil && m.session.step == stepLoadingSeats) ||
		m.submitting
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
	m.theaterList.SetSize(m.width, h)
	m.reservationList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err}
	}
}

func errWithReturnCmd(err error, returnState appState) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err, returnState: returnState, returnStateSet: true}
	}
}

func recoverStateFrom(state appState) appState {
	switch state {
	case stateLoadingMovies, stateLoadingShowtimes:
		return stateMovies
	case stateLoadingTheaters:
		return stateTheaters
	case stateLoadingReservations:
		return stateReservations
	default:
		return state
	}
}

func (m appModel) showtimeCount() int {
	total := 0
	for _, group := range m.showtimeGroups {
		total += len(group.Showtimes)
	}
	return total
}

func (m appModel) showtimeAt(index int) (model.ShowtimeView, bool) {
	for _, group := range m.showtimeGroups {
		if index < len(group.Showtimes) {
			return group.Showtimes[index], true
		}
		index -= len(group.Showtimes)
	}
	return model.ShowtimeView{}, false
}

func (m appModel) fetchMoviesCmd() tea.Cmd {
	return func() tea.Msg {
		movies, err := m.client.GetMovies(context.Background())
		return moviesMsg{movies: movies, err: err}
	}
}

func (m appModel) fetchTheatersCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		rooms, err := m.client.GetRooms(ctx)
		if err != nil {
			return theatersMsg{err: err}
		}
		functions, err := m.client.GetFunctions(ctx)
		if err != nil {
			if !service.IsNotFound(err) {
				return theatersMsg{err: err}
			}
			functions = nil
		}
		movies, err := m.client.GetMovies(ctx)
		if err != nil {
			return theatersMsg{err: err}
		}
		return theatersMsg{
			theaters: model.BuildTheaterViews(rooms, functions, movies),
			movies:   movies,
		}
	}
}

func (m appModel) fetchReservationsCmd() tea.Cmd {
	return func() tea.Msg {
		reservations, err := m.client.GetReservations(context.Background())
		if err != nil {
			return reservationsMsg{err: err}
		}
		return reservationsMsg{reservations: model.BuildReservationViews(reservations)}
	}
}

func (m appModel) fetchShowtimesCmd(movieId int) tea.Cmd {
	return func() tea.Msg {
		functions, err := m.client.GetFunctions(context.Background())
		if err != nil {
			// The backend answers 404 when no function exists at all;
			// the movie simply has no showtimes yet.
			if service.IsNotFound(err) {
				return showtimesMsg{}
			}
			return showtimesMsg{err: err}
		}
		return showtimesMsg{showtimes: model.ShowtimesForMovie(functions, movieId)}
	}
}

func (m appModel) createMovieCmd(payload model.MoviePayload) tea.Cmd {
	return func() tea.Msg {
		created, err := m.client.CreateMovie(context.Background(), payload)
		if err != nil {
			return movieCreatedMsg{err: err}
		}
		// The backend may echo a partial record; locally entered fields
		// fill the gaps, keeping the appended row complete.
		if created.Title == "" {
			created.Title = payload.Title
		}
		if created.Category == "" {
			created.Category = payload.Category
		}
		if created.Classification == "" {
			created.Classification = payload.Classification
		}
		return movieCreatedMsg{movie: created}
	}
}

func (m appModel) createTheaterCmd(payload model.RoomPayload) tea.Cmd {
	return func() tea.Msg {
		created, err := m.client.CreateRoom(context.Background(), payload)
		if err != nil {
			return theaterCreatedMsg{err: err}
		}
		if created.Name == "" {
			created.Name = payload.Name
		}
		return theaterCreatedMsg{room: created}
	}
}

func (m appModel) createFunctionCmd(payload model.FunctionPayload) tea.Cmd {
	return func() tea.Msg {
		_, err := m.client.CreateFunction(context.Background(), payload)
		return functionCreatedMsg{err: err}
	}
}

func (m appModel) fetchSeatsCmd(ctx context.Context, gen int, functionId int) tea.Cmd {
	return func() tea.Msg {
		fn, err := m.client.GetFunction(ctx, functionId)
		if err != nil {
			return seatsMsg{gen: gen, err: err}
		}
		return seatsMsg{gen: gen, seats: fn.Seats}
	}
}

func (m appModel) submitReservationCmd(ctx context.Context, gen int, payload model.ReservationPayload) tea.Cmd {
	return func() tea.Msg {
		_, err := m.client.CreateReservation(ctx, payload)
		return reservationSubmittedMsg{gen: gen, err: err}
	}
}
