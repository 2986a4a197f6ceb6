package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-clock/internal/engine"
)

func newTestPage(t *testing.T) (*HostPage, *clockwork.FakeClock) {
	t.Helper()
	a := test.NewApp()

	fc := clockwork.NewFakeClockAt(time.Date(2024, 3, 7, 8, 5, 9, 0, time.UTC))
	page := NewHostPage(a, "Clock", NewClockWidget(fc))
	t.Cleanup(page.Close)
	return page, fc
}

func TestHostPage_MountsOnOpen(t *testing.T) {
	page, _ := newTestPage(t)

	assert.Equal(t, engine.StateMounted, page.Widget.State())
	assert.Equal(t, "Clock", page.Window.Title())
	assert.Equal(t, "08:05:09", page.Widget.Moment().TimeOfDay())
}

func TestHostPage_CentersSingleWidget(t *testing.T) {
	page, _ := newTestPage(t)

	content, ok := page.Window.Content().(*fyne.Container)
	require.True(t, ok, "content must be a container")
	require.Len(t, content.Objects, 1, "exactly one clock per page")
	assert.Same(t, page.Widget, content.Objects[0])

	size := fyne.NewSize(400, 300)
	content.Resize(size)

	minSize := page.Widget.MinSize()
	pos := page.Widget.Position()
	assert.InDelta(t, (size.Width-minSize.Width)/2, pos.X, 0.5)
	assert.InDelta(t, (size.Height-minSize.Height)/2, pos.Y, 0.5)
}

func TestHostPage_CloseUnmounts(t *testing.T) {
	page, fc := newTestPage(t)

	page.Close()
	assert.Equal(t, engine.StateUnmounted, page.Widget.State())

	fc.Advance(time.Minute)
	assert.Never(t, func() bool { return page.Widget.Renders() > 0 }, quiet, pollStep)

	// Second close is a no-op.
	assert.NotPanics(t, page.Close)
}

func TestHostPage_WindowCloseUnmounts(t *testing.T) {
	page, _ := newTestPage(t)

	page.Window.Close()
	assert.Equal(t, engine.StateUnmounted, page.Widget.State())
}
