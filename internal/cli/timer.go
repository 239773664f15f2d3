package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubetimer"
	"github.com/SeamusWaldron/cubetimer/internal/recorder"
	"github.com/SeamusWaldron/cubetimer/internal/timer"
)

var (
	timerLen        int
	timerInspection bool
	timerNoSave     bool
	timerSession    string
	timerStrict     bool
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Interactive solve timer",
	Long: `Start an interactive TUI that shows a scramble, times the solve and
keeps running session statistics.

Keyboard shortcuts:
  SPACE   - Start inspection / start the timer / stop the timer
  any key - Stop the timer while it is running
  n       - New scramble
  2       - Toggle +2 on the last solve
  f       - Toggle DNF on the last solve
  x       - Delete the last solve
  c       - Show or hide the scrambled cube
  i       - Toggle 15 second WCA inspection
  q/Esc   - Quit`,
	RunE: runTimer,
}

func init() {
	rootCmd.AddCommand(timerCmd)
	timerCmd.Flags().IntVarP(&timerLen, "length", "l", 20, "Moves per scramble (default: CUBETIMER_SCRAMBLE_LENGTH or 20)")
	timerCmd.Flags().BoolVar(&timerInspection, "inspection", false, "Enable 15 second WCA inspection")
	timerCmd.Flags().BoolVar(&timerNoSave, "no-save", false, "Do not store solves")
	timerCmd.Flags().StringVarP(&timerSession, "session", "s", "", "Session to record into (default: active session)")
	timerCmd.Flags().BoolVar(&timerStrict, "strict-axis", false, "Reject patterns such as U D U that stay on one axis")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	inspectStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var faceletColors = map[cubetimer.Color]lipgloss.Color{
	cubetimer.White:  lipgloss.Color("15"),
	cubetimer.Yellow: lipgloss.Color("11"),
	cubetimer.Orange: lipgloss.Color("208"),
	cubetimer.Red:    lipgloss.Color("9"),
	cubetimer.Green:  lipgloss.Color("10"),
	cubetimer.Blue:   lipgloss.Color("12"),
}

// Messages
type tickMsg time.Time

const tickInterval = 50 * time.Millisecond

// recentCount is how many of the latest times the TUI lists.
const recentCount = 12

// Model
type timerModel struct {
	gen    *cubetimer.Generator
	length int
	sw     *timer.Stopwatch
	rec    *recorder.Recorder // nil when solves are not saved
	logger *zap.Logger
	now    func() time.Time

	session  string
	scramble string
	moves    []cubetimer.Move
	showCube bool

	results []timer.Result
	stats   timer.Stats

	err      error
	quitting bool
}

func newTimerModel(gen *cubetimer.Generator, length int, sw *timer.Stopwatch, rec *recorder.Recorder, logger *zap.Logger) (*timerModel, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &timerModel{
		gen:    gen,
		length: length,
		sw:     sw,
		rec:    rec,
		logger: logger,
		now:    time.Now,
	}

	if rec != nil {
		if s := rec.Session(); s != nil {
			m.session = s.Name
		}
		results, err := rec.Results(0)
		if err != nil {
			return nil, err
		}
		m.results = results
	}
	m.stats = timer.Summarize(m.results)

	if err := m.newScramble(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *timerModel) Init() tea.Cmd {
	return nil
}

func (m *timerModel) tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// active reports whether the clock is counting.
func (m *timerModel) active() bool {
	s := m.sw.State()
	return s == timer.StateInspecting || s == timer.StateRunning
}

func (m *timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if msg.Type == tea.KeySpace {
			key = " "
		}

		if key == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		// Any key stops a running solve.
		if m.sw.State() == timer.StateRunning {
			m.press()
			return m, nil
		}

		switch key {
		case " ":
			m.press()
			if m.active() {
				return m, m.tickCmd()
			}

		case "q", "esc":
			if m.sw.State() == timer.StateInspecting {
				m.sw.Reset()
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit

		case "n":
			if m.sw.State() != timer.StateInspecting {
				m.err = m.newScramble()
			}

		case "2":
			m.togglePenalty(timer.PenaltyPlusTwo)

		case "f":
			m.togglePenalty(timer.PenaltyDNF)

		case "x":
			m.deleteLast()

		case "c":
			m.showCube = !m.showCube

		case "i":
			if m.sw.State() != timer.StateInspecting {
				m.sw.SetInspection(!m.sw.Inspection())
			}
		}

	case tickMsg:
		if m.active() {
			return m, m.tickCmd()
		}
	}

	return m, nil
}

// press forwards a key press to the stopwatch and records a finished solve.
func (m *timerModel) press() {
	res, done := m.sw.Press(m.now())
	if !done {
		m.logger.Debug("stopwatch", zap.Stringer("state", m.sw.State()))
		return
	}

	m.err = nil
	m.results = append(m.results, res)
	m.stats = timer.Summarize(m.results)

	if m.rec != nil {
		if _, err := m.rec.Record(strings.TrimSpace(m.scramble), res); err != nil {
			m.err = err
		}
	}
	m.logger.Info("solve finished",
		zap.String("time", res.String()),
		zap.Duration("inspection", res.Inspection),
	)

	if err := m.newScramble(); err != nil {
		m.err = err
	}
}

func (m *timerModel) newScramble() error {
	moves, err := m.gen.Scramble(m.length)
	if err != nil {
		return fmt.Errorf("failed to generate scramble: %w", err)
	}
	m.moves = moves
	m.scramble = cubetimer.FormatMoves(moves)
	return nil
}

// togglePenalty sets p on the last solve, or clears it if already set.
func (m *timerModel) togglePenalty(p timer.Penalty) {
	if len(m.results) == 0 {
		m.err = recorder.ErrNoSolves
		return
	}

	last := &m.results[len(m.results)-1]
	next := p
	if last.Penalty == p {
		next = timer.PenaltyNone
	}

	if m.rec != nil {
		if _, err := m.rec.SetLastPenalty(next); err != nil {
			m.err = err
			return
		}
	}

	last.Penalty = next
	m.stats = timer.Summarize(m.results)
	m.err = nil
}

func (m *timerModel) deleteLast() {
	if len(m.results) == 0 {
		m.err = recorder.ErrNoSolves
		return
	}

	if m.rec != nil {
		if _, err := m.rec.DeleteLast(); err != nil {
			m.err = err
			return
		}
	}

	m.results = m.results[:len(m.results)-1]
	m.stats = timer.Summarize(m.results)
	m.err = nil
}

func (m *timerModel) View() string {
	if m.quitting {
		return fmt.Sprintf("Goodbye! %d solves this session.\n", len(m.results))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Cube Timer"))
	b.WriteString("\n")
	if m.session != "" {
		b.WriteString(statusStyle.Render("Session: " + m.session))
	} else {
		b.WriteString(statusStyle.Render("Not saving solves"))
	}
	if m.sw.Inspection() {
		b.WriteString(statusStyle.Render("  |  inspection on"))
	}
	b.WriteString("\n\n")

	b.WriteString("Scramble: ")
	b.WriteString(moveStyle.Render(m.scramble))
	b.WriteString("\n\n")

	if m.showCube {
		b.WriteString(renderCube(m.moves))
		b.WriteString("\n")
	}

	b.WriteString(m.clockView())
	b.WriteString("\n\n")

	b.WriteString(m.statsView())

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "SPACE=start  n=new scramble  2=+2  f=DNF  x=delete  c=cube  i=inspection  q=quit"
	switch m.sw.State() {
	case timer.StateInspecting:
		help = "SPACE=start solve  q=cancel"
	case timer.StateRunning:
		help = "Any key to stop"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

func (m *timerModel) clockView() string {
	now := m.now()
	elapsed := m.sw.Elapsed(now)

	switch m.sw.State() {
	case timer.StateInspecting:
		switch timer.InspectionPenalty(elapsed) {
		case timer.PenaltyDNF:
			return inspectStyle.Render("INSPECTION  DNF")
		case timer.PenaltyPlusTwo:
			return inspectStyle.Render("INSPECTION  +2")
		}
		left := timer.InspectionLimit - elapsed
		return inspectStyle.Render(fmt.Sprintf("INSPECTION  %d", int(left.Seconds())+1))

	case timer.StateRunning:
		return clockStyle.Render(timer.FormatDuration(elapsed))

	case timer.StateStopped:
		if len(m.results) > 0 {
			return clockStyle.Render(m.results[len(m.results)-1].String())
		}
	}

	return clockStyle.Render(timer.FormatDuration(0))
}

func (m *timerModel) statsView() string {
	var b strings.Builder
	st := m.stats

	fmt.Fprintf(&b, "Solves: %d   Best: %s   Mean: %s\n",
		st.Count, formatStat(st.Best, st.Count > 0), formatStat(st.Mean, st.Finished > 0))
	fmt.Fprintf(&b, "Ao5: %s   Ao12: %s   Best Ao5: %s   Best Ao12: %s\n",
		formatStat(st.Ao5, st.Count >= 5), formatStat(st.Ao12, st.Count >= 12),
		formatStat(st.BestAo5, st.Count >= 5), formatStat(st.BestAo12, st.Count >= 12))

	if len(m.results) > 0 {
		start := max(0, len(m.results)-recentCount)
		times := make([]string, 0, recentCount)
		for _, r := range m.results[start:] {
			times = append(times, r.String())
		}
		if start > 0 {
			b.WriteString("... ")
		}
		b.WriteString(statusStyle.Render(strings.Join(times, "  ")))
		b.WriteString("\n")
	}

	return b.String()
}

func formatStat(d time.Duration, ok bool) string {
	if !ok {
		return "-"
	}
	return timer.FormatDuration(d)
}

// renderCube draws the cube after moves as a colored net.
func renderCube(moves []cubetimer.Move) string {
	cube := cubetimer.NewCube()
	cube.Apply(moves...)

	row := func(face cubetimer.Face, r int) string {
		colors := cube.FaceColors(face)
		var b strings.Builder
		for c := 0; c < 3; c++ {
			style := lipgloss.NewStyle().Background(faceletColors[colors[r*3+c]])
			b.WriteString(style.Render("  "))
		}
		b.WriteString(" ")
		return b.String()
	}

	pad := strings.Repeat(" ", 7)
	var b strings.Builder
	for r := 0; r < 3; r++ {
		b.WriteString(pad + row(cubetimer.FaceU, r) + "\n")
	}
	for r := 0; r < 3; r++ {
		for _, f := range []cubetimer.Face{cubetimer.FaceL, cubetimer.FaceF, cubetimer.FaceR, cubetimer.FaceB} {
			b.WriteString(row(f, r))
		}
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString(pad + row(cubetimer.FaceD, r) + "\n")
	}
	return b.String()
}

func runTimer(cmd *cobra.Command, args []string) error {
	// The TUI owns the terminal, so logs go to a file.
	if cfg.Log.File == "" {
		path, err := defaultLogPath()
		if err != nil {
			return err
		}
		if err := initLogger(path); err != nil {
			return err
		}
	}

	var rec *recorder.Recorder
	if !timerNoSave {
		db, r, err := openRecorder(timerSession)
		if err != nil {
			return err
		}
		defer db.Close()
		rec = r
	}

	inspection := timerInspection || cfg.Timer.Inspection
	gen := newGenerator(cmd, 0, timerStrict)
	model, err := newTimerModel(gen, scrambleLength(cmd, timerLen), timer.NewStopwatch(inspection), rec, logger)
	if err != nil {
		if errors.Is(err, cubetimer.ErrInvalidLength) {
			return fmt.Errorf("invalid scramble length: %w", err)
		}
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if len(model.results) > 0 {
		st := model.stats
		fmt.Printf("Solves: %d  Best: %s  Ao5: %s  Ao12: %s\n",
			st.Count, formatStat(st.Best, true),
			formatStat(st.Ao5, st.Count >= 5), formatStat(st.Ao12, st.Count >= 12))
	}
	return nil
}
