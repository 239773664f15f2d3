package cli

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/SeamusWaldron/cubetimer"
	"github.com/SeamusWaldron/cubetimer/internal/recorder"
	"github.com/SeamusWaldron/cubetimer/internal/storage"
	"github.com/SeamusWaldron/cubetimer/internal/timer"
)

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	quitKey  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// fakeClock is advanced by hand.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time      { return c.t }
func (c *fakeClock) add(d time.Duration) { c.t = c.t.Add(d) }

func newTestModel(t *testing.T, inspection bool, rec *recorder.Recorder) (*timerModel, *fakeClock) {
	t.Helper()
	gen := cubetimer.NewGenerator(cubetimer.WithSeed(42))
	m, err := newTimerModel(gen, 20, timer.NewStopwatch(inspection), rec, zaptest.NewLogger(t))
	require.NoError(t, err)

	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	m.now = clock.now
	return m, clock
}

func press(m *timerModel, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func TestTimerModel_TimesASolve(t *testing.T) {
	m, clock := newTestModel(t, false, nil)
	assert.Len(t, m.moves, 20)
	first := m.scramble

	cmd := press(m, spaceKey)
	assert.Equal(t, timer.StateRunning, m.sw.State())
	assert.NotNil(t, cmd, "running clock keeps ticking")

	clock.add(12340 * time.Millisecond)
	assert.Contains(t, m.View(), "12.34")

	press(m, spaceKey)
	assert.Equal(t, timer.StateStopped, m.sw.State())
	require.Len(t, m.results, 1)
	assert.Equal(t, 12340*time.Millisecond, m.results[0].Duration)
	assert.Equal(t, 1, m.stats.Count)
	assert.NotEqual(t, first, m.scramble, "a new scramble follows each solve")

	// Ticks stop once the solve is over.
	assert.Nil(t, press(m, tickMsg(clock.now())))
}

func TestTimerModel_AnyKeyStops(t *testing.T) {
	m, clock := newTestModel(t, false, nil)

	press(m, spaceKey)
	clock.add(5 * time.Second)
	press(m, runeKey('q'))

	assert.False(t, m.quitting, "q stops the solve before it quits")
	require.Len(t, m.results, 1)
	assert.Equal(t, 5*time.Second, m.results[0].Duration)
}

func TestTimerModel_Inspection(t *testing.T) {
	m, clock := newTestModel(t, true, nil)

	press(m, spaceKey)
	assert.Equal(t, timer.StateInspecting, m.sw.State())
	assert.Contains(t, m.View(), "INSPECTION")

	clock.add(16 * time.Second)
	assert.Contains(t, m.View(), "+2")

	press(m, spaceKey)
	assert.Equal(t, timer.StateRunning, m.sw.State())

	clock.add(10 * time.Second)
	press(m, spaceKey)

	require.Len(t, m.results, 1)
	assert.Equal(t, timer.PenaltyPlusTwo, m.results[0].Penalty)
	assert.Equal(t, 12*time.Second, m.results[0].Effective())
}

func TestTimerModel_CancelInspection(t *testing.T) {
	m, _ := newTestModel(t, true, nil)

	press(m, spaceKey)
	press(m, quitKey)

	assert.Equal(t, timer.StateIdle, m.sw.State())
	assert.False(t, m.quitting)
	assert.Empty(t, m.results)
}

func TestTimerModel_PenaltiesAndDelete(t *testing.T) {
	m, clock := newTestModel(t, false, nil)

	press(m, runeKey('2'))
	assert.ErrorIs(t, m.err, recorder.ErrNoSolves)

	press(m, spaceKey)
	clock.add(9 * time.Second)
	press(m, spaceKey)

	press(m, runeKey('2'))
	assert.NoError(t, m.err)
	assert.Equal(t, timer.PenaltyPlusTwo, m.results[0].Penalty)
	assert.Equal(t, 11*time.Second, m.stats.Best)

	press(m, runeKey('2'))
	assert.Equal(t, timer.PenaltyNone, m.results[0].Penalty)

	press(m, runeKey('f'))
	assert.Equal(t, timer.PenaltyDNF, m.results[0].Penalty)
	assert.Contains(t, m.View(), "DNF")

	press(m, runeKey('x'))
	assert.Empty(t, m.results)
	assert.Equal(t, 0, m.stats.Count)
}

func TestTimerModel_Toggles(t *testing.T) {
	m, _ := newTestModel(t, false, nil)
	scramble := m.scramble

	press(m, runeKey('n'))
	assert.NotEqual(t, scramble, m.scramble)

	press(m, runeKey('i'))
	assert.True(t, m.sw.Inspection())

	press(m, runeKey('c'))
	assert.True(t, m.showCube)
	assert.Greater(t, strings.Count(m.View(), "\n"), 9+5)

	cmd := press(m, quitKey)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTimerModel_Records(t *testing.T) {
	dir := t.TempDir()
	db, err := storage.Open(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.MigrateUp())

	sf, err := recorder.NewStateFile(filepath.Join(dir, "state.json"))
	require.NoError(t, err)
	rec := recorder.New(db, sf, zaptest.NewLogger(t))
	_, err = rec.UseSession("practice")
	require.NoError(t, err)

	m, clock := newTestModel(t, false, rec)
	assert.Contains(t, m.View(), "Session: practice")

	for _, d := range []time.Duration{8 * time.Second, 7 * time.Second} {
		scramble := m.scramble
		press(m, spaceKey)
		clock.add(d)
		press(m, spaceKey)
		require.NoError(t, m.err)

		last, err := storage.NewSolveRepository(db).GetLast(rec.Session().SessionID)
		require.NoError(t, err)
		assert.Equal(t, scramble, last.ScrambleText)
		assert.Equal(t, d.Milliseconds(), last.DurationMs)
	}

	press(m, runeKey('f'))
	press(m, runeKey('x'))

	// A fresh model picks up the stored history.
	again, _ := newTestModel(t, false, rec)
	require.Len(t, again.results, 1)
	assert.Equal(t, 8*time.Second, again.results[0].Duration)
}

func TestRenderCube(t *testing.T) {
	out := renderCube(nil)
	assert.Equal(t, 9, strings.Count(out, "\n"))

	scrambled := renderCube([]cubetimer.Move{cubetimer.R, cubetimer.U})
	assert.NotEmpty(t, scrambled)
}
