package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/meltforce/gymtrack/internal/app"
	"github.com/meltforce/gymtrack/internal/models"
	"github.com/meltforce/gymtrack/internal/session"
)

type viewKind int

const (
	viewHome viewKind = iota
	viewRecord
	viewCreate
	viewHistory
	viewDetail
	viewStats
)

// filterCategories is the category cycle shown in the home view: the
// catch-all option first, then every real category.
var filterCategories = func() []string {
	names := []string{models.CategoryAll}
	for _, c := range models.Categories {
		names = append(names, string(c))
	}
	return names
}()

// Model is the top-level bubbletea model. It owns no domain state of its
// own: every render queries the app afresh, so finishing a session from
// the home view is immediately visible in history and stats.
type Model struct {
	app     *app.App
	theme   Theme
	version string
	units   string

	width  int
	height int

	view   viewKind
	status string

	// home
	cursor      int
	search      textinput.Model
	searching   bool
	categoryIdx int

	// record form
	target   models.WorkoutDefinition
	inputs   []textinput.Model
	labels   []string
	focusIdx int
	formErr  string

	// create form: row 0 is name, row 1 the category cycle, row 2 description
	createName textinput.Model
	createDesc textinput.Model
	createCat  int
	createRow  int
	createErr  string

	// history
	histCursor   int
	confirmClear bool

	detail models.Session
}

func NewModel(a *app.App, version, units string) *Model {
	search := textinput.New()
	search.Placeholder = "Search workouts..."
	search.Prompt = "/ "
	search.CharLimit = 64

	return &Model{
		app:     a,
		theme:   NewTheme(),
		version: version,
		units:   units,
		width:   100,
		height:  30,
		search:  search,
		status:  "Press s to start a session.",
	}
}

// Run drives the TUI until the user quits.
func Run(a *app.App, version, units string) error {
	p := tea.NewProgram(NewModel(a, version, units), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.view {
		case viewHome:
			return m.updateHome(msg)
		case viewRecord:
			return m.updateRecord(msg)
		case viewCreate:
			return m.updateCreate(msg)
		case viewHistory:
			return m.updateHistory(msg)
		case viewDetail:
			return m.updateDetail(msg)
		case viewStats:
			return m.updateStats(msg)
		}
	}
	return m, nil
}

func (m *Model) visibleWorkouts() []models.WorkoutDefinition {
	return m.app.Workouts(m.search.Value(), filterCategories[m.categoryIdx])
}

func (m *Model) clampCursor(n int) {
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// --- Home ---

func (m *Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.Type {
		case tea.KeyEsc:
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			return m, nil
		case tea.KeyEnter:
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.clampCursor(len(m.visibleWorkouts()))
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visibleWorkouts())-1 {
			m.cursor++
		}
	case "/":
		m.searching = true
		return m, m.search.Focus()
	case "c":
		m.categoryIdx = (m.categoryIdx + 1) % len(filterCategories)
		m.clampCursor(len(m.visibleWorkouts()))
	case "s":
		if _, outcome := m.app.StartSession(); outcome == session.Applied {
			m.status = "Session started. Pick a workout and press Enter to log it."
		} else {
			m.status = "A session is already running."
		}
	case "e":
		sess, outcome := m.app.EndSession(context.Background())
		if outcome == session.Applied {
			m.status = fmt.Sprintf("Session saved: %d exercises, %s.",
				len(sess.Exercises), models.FormatDuration(sess.Duration))
		} else {
			m.status = "Log at least one exercise before finishing."
		}
	case "x":
		if m.app.CancelSession() == session.Applied {
			m.status = "Session discarded."
		} else {
			m.status = "No session to discard."
		}
	case "n":
		m.openCreate()
	case "h":
		m.histCursor = 0
		m.confirmClear = false
		m.view = viewHistory
	case "t":
		m.view = viewStats
	case "enter":
		workouts := m.visibleWorkouts()
		if len(workouts) == 0 {
			return m, nil
		}
		if _, active := m.app.ActiveSession(); !active {
			m.status = "Start a session first (s)."
			return m, nil
		}
		m.openRecord(workouts[m.cursor])
	}
	return m, nil
}

// --- Record form ---

func (m *Model) openRecord(w models.WorkoutDefinition) {
	m.target = w
	m.formErr = ""
	m.focusIdx = 0

	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = ""
		ti.CharLimit = 8
		ti.Width = 10
		return ti
	}

	if w.Category.IsCardio() {
		m.labels = []string{"Minutes"}
		m.inputs = []textinput.Model{newInput("30")}
	} else {
		m.labels = []string{"Weight (" + m.units + ")", "Reps", "Sets"}
		m.inputs = []textinput.Model{newInput("60"), newInput("8"), newInput("3")}
	}
	m.inputs[0].Focus()
	m.view = viewRecord
}

func (m *Model) updateRecord(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.view = viewHome
		return m, nil
	case tea.KeyEnter:
		return m, m.submitRecord()
	case tea.KeyTab, tea.KeyDown:
		m.moveFocus(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.moveFocus(-1)
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	return m, cmd
}

func (m *Model) moveFocus(delta int) {
	m.inputs[m.focusIdx].Blur()
	m.focusIdx = (m.focusIdx + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focusIdx].Focus()
}

func (m *Model) submitRecord() tea.Cmd {
	var weight, reps, sets, minutes string
	if m.target.Category.IsCardio() {
		minutes = m.inputs[0].Value()
	} else {
		weight, reps, sets = m.inputs[0].Value(), m.inputs[1].Value(), m.inputs[2].Value()
	}

	measurement, err := parseMeasurement(m.target.Category, weight, reps, sets, minutes)
	if err != nil {
		m.formErr = err.Error()
		return nil
	}

	_, outcome, err := m.app.RecordExercise(m.target.ID, measurement)
	switch {
	case err != nil:
		m.formErr = err.Error()
		return nil
	case outcome != session.Applied:
		m.view = viewHome
		m.status = "Start a session first (s)."
		return nil
	}

	m.view = viewHome
	m.status = m.target.Name + " logged."
	return nil
}

// --- Create workout form ---

func (m *Model) openCreate() {
	m.createName = textinput.New()
	m.createName.Placeholder = "Workout name"
	m.createName.Prompt = ""
	m.createName.CharLimit = 64
	m.createName.Focus()

	m.createDesc = textinput.New()
	m.createDesc.Placeholder = "Description (optional)"
	m.createDesc.Prompt = ""
	m.createDesc.CharLimit = 128

	m.createCat = 0
	m.createRow = 0
	m.createErr = ""
	m.view = viewCreate
}

func (m *Model) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.view = viewHome
		return m, nil
	case tea.KeyEnter:
		return m, m.submitCreate()
	case tea.KeyTab, tea.KeyDown:
		m.moveCreateRow(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.moveCreateRow(-1)
		return m, nil
	}

	if m.createRow == 1 {
		switch msg.String() {
		case "left", "h":
			m.createCat = (m.createCat - 1 + len(models.Categories)) % len(models.Categories)
		case "right", "l", " ":
			m.createCat = (m.createCat + 1) % len(models.Categories)
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.createRow == 0 {
		m.createName, cmd = m.createName.Update(msg)
	} else {
		m.createDesc, cmd = m.createDesc.Update(msg)
	}
	return m, cmd
}

func (m *Model) moveCreateRow(delta int) {
	m.createName.Blur()
	m.createDesc.Blur()
	m.createRow = (m.createRow + delta + 3) % 3
	switch m.createRow {
	case 0:
		m.createName.Focus()
	case 2:
		m.createDesc.Focus()
	}
}

func (m *Model) submitCreate() tea.Cmd {
	category := string(models.Categories[m.createCat])
	w, err := m.app.CreateWorkout(context.Background(), m.createName.Value(), category, m.createDesc.Value())
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			m.createErr = "Name and a valid category are required."
		} else {
			m.createErr = err.Error()
		}
		return nil
	}
	m.view = viewHome
	m.status = w.Name + " added to the catalog."
	return nil
}

// --- History ---

func (m *Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sessions := m.app.Sessions()

	if m.confirmClear {
		switch msg.String() {
		case "y":
			m.app.ClearHistory(context.Background())
			m.histCursor = 0
			m.confirmClear = false
			m.status = "History cleared."
		default:
			m.confirmClear = false
		}
		return m, nil
	}

	switch msg.String() {
	case "esc", "q", "h":
		m.view = viewHome
	case "up", "k":
		if m.histCursor > 0 {
			m.histCursor--
		}
	case "down", "j":
		if m.histCursor < len(sessions)-1 {
			m.histCursor++
		}
	case "enter":
		if len(sessions) > 0 {
			m.detail = sessions[m.histCursor]
			m.view = viewDetail
		}
	case "d":
		if len(sessions) > 0 {
			if m.app.DeleteSession(context.Background(), sessions[m.histCursor].ID) {
				if m.histCursor >= len(sessions)-1 && m.histCursor > 0 {
					m.histCursor--
				}
				m.status = "Session deleted."
			}
		}
	case "C":
		if len(sessions) > 0 {
			m.confirmClear = true
		}
	}
	return m, nil
}

func (m *Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.view = viewHistory
	}
	return m, nil
}

// --- Stats ---

func (m *Model) updateStats(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "t":
		m.view = viewHome
	}
	return m, nil
}
