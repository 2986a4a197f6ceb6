package ui

import (
	"image/color"
	"sync"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
	"github.com/tartampluch/go-clock/internal/style"
)

// LiveRegion describes how assistive technology should announce the clock.
type LiveRegion struct {
	Role       string
	Politeness string
	Atomic     bool
	// Content is re-announced as a unit whenever it changes.
	Content string
	Label   string
}

// ClockWidget renders the current date and time as two text segments.
// It embeds widget.BaseWidget to integrate with the Fyne widget tree.
type ClockWidget struct {
	widget.BaseWidget

	display  *engine.Display
	rowClass []string
	timeCls  []string

	liveMu  sync.RWMutex
	live    LiveRegion
	renders atomic.Uint64
}

// NewClockWidget creates an unmounted clock reading from clock.
// classes extends the default styling; later classes win their conflict group.
func NewClockWidget(clock engine.Clock, classes ...string) *ClockWidget {
	w := &ClockWidget{
		display:  engine.NewDisplay(clock),
		rowClass: style.Row(classes...),
		timeCls:  style.TimeSegment(classes...),
	}
	w.ExtendBaseWidget(w)

	w.display.OnChange(func(engine.Moment) {
		// Ticks arrive on the source goroutine; widget state lives on the UI goroutine.
		fyne.Do(w.applyTick)
	})
	return w
}

// Mount shows the current time immediately and starts the one second refresh.
func (w *ClockWidget) Mount() {
	w.display.Mount()
	w.Refresh()
}

// Unmount stops the refresh. The time source is released before it returns.
func (w *ClockWidget) Unmount() {
	w.display.Unmount()
}

// State exposes the lifecycle stage of the underlying display.
func (w *ClockWidget) State() engine.State {
	return w.display.State()
}

// Moment returns the moment currently held by the widget.
func (w *ClockWidget) Moment() engine.Moment {
	return w.display.Current()
}

// Renders counts tick-driven re-renders.
func (w *ClockWidget) Renders() uint64 {
	return w.renders.Load()
}

// Classes returns the merged styling of the row.
func (w *ClockWidget) Classes() []string {
	out := make([]string, len(w.rowClass))
	copy(out, w.rowClass)
	return out
}

// Accessible returns the live region as of the last render.
func (w *ClockWidget) Accessible() LiveRegion {
	w.liveMu.RLock()
	defer w.liveMu.RUnlock()
	return w.live
}

func (w *ClockWidget) applyTick() {
	// A render queued before Unmount must not touch a torn down widget.
	if w.display.State() != engine.StateMounted {
		return
	}
	w.renders.Add(1)
	w.Refresh()
}

func (w *ClockWidget) updateLiveRegion(m engine.Moment) {
	w.liveMu.Lock()
	w.live = LiveRegion{
		Role:       config.LiveRegionRole,
		Politeness: config.LiveRegionPoliteness,
		Atomic:     config.LiveRegionAtomic,
		Content:    m.Announcement(),
		Label:      m.Label(),
	}
	w.liveMu.Unlock()
}

// CreateRenderer implements fyne.Widget.
func (w *ClockWidget) CreateRenderer() fyne.WidgetRenderer {
	rowSpec := style.Resolve(w.rowClass)
	timeSpec := style.Resolve(w.timeCls)

	date := canvas.NewText("", nil)
	clock := canvas.NewText("", nil)
	applySpec(date, rowSpec)
	applySpec(clock, timeSpec)

	gap := float32(rowSpec.Gap) * config.SpacingUnit
	row := container.New(layout.NewCustomPaddedHBoxLayout(gap), date, clock)

	r := &clockRenderer{
		widget:   w,
		date:     date,
		clock:    clock,
		row:      row,
		rowSpec:  rowSpec,
		timeSpec: timeSpec,
	}
	r.Refresh()
	return r
}

// clockRenderer draws a ClockWidget.
type clockRenderer struct {
	widget      *ClockWidget
	date, clock *canvas.Text
	row         *fyne.Container

	rowSpec, timeSpec style.Spec
}

func (r *clockRenderer) Layout(size fyne.Size) {
	r.row.Resize(size)
}

func (r *clockRenderer) MinSize() fyne.Size {
	return r.row.MinSize()
}

func (r *clockRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.row}
}

func (r *clockRenderer) Destroy() {}

// Refresh derives both segments from the held moment and updates the live region in the same pass.
func (r *clockRenderer) Refresh() {
	m := r.widget.display.Current()

	// Theme may have changed since the last pass.
	applySpec(r.date, r.rowSpec)
	applySpec(r.clock, r.timeSpec)

	// Nothing is read from the clock before Mount.
	if !m.IsZero() {
		r.date.Text = m.Date()
		r.clock.Text = m.TimeOfDay()
		r.widget.updateLiveRegion(m)
	}

	r.date.Refresh()
	r.clock.Refresh()
	r.row.Refresh()
}

// applySpec maps a resolved style onto a Fyne text object.
// Letter tracking has no canvas.Text equivalent and is ignored.
func applySpec(t *canvas.Text, spec style.Spec) {
	t.TextSize = theme.Size(theme.SizeNameText) * spec.SizeScale
	t.TextStyle = fyne.TextStyle{
		Monospace: spec.Monospace,
		Bold:      spec.Bold,
		Italic:    spec.Italic,
	}
	t.Color = themeColor(spec.Color)
}

func themeColor(c style.Color) color.Color {
	switch c {
	case style.ColorPrimary:
		return theme.Color(theme.ColorNamePrimary)
	case style.ColorMuted:
		return theme.Color(theme.ColorNameDisabled)
	case style.ColorError:
		return theme.Color(theme.ColorNameError)
	case style.ColorSuccess:
		return theme.Color(theme.ColorNameSuccess)
	default:
		return theme.Color(theme.ColorNameForeground)
	}
}
