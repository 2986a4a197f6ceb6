package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
)

// HostPage is a window whose whole content area centers one ClockWidget.
type HostPage struct {
	Window fyne.Window
	Widget *ClockWidget

	closed bool
}

// NewHostPage opens a window around cw and mounts it.
// Closing the window, or calling Close, unmounts the widget.
func NewHostPage(a fyne.App, title string, cw *ClockWidget) *HostPage {
	p := &HostPage{
		Window: a.NewWindow(title),
		Widget: cw,
	}

	p.Window.SetContent(container.NewCenter(cw))
	p.Window.Resize(fyne.NewSize(config.HostWindowWidth, config.HostWindowHeight))
	p.Window.SetOnClosed(func() {
		p.closed = true
		p.unmount()
	})

	cw.Mount()

	slog.Info(config.MsgPageOpen,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyMoment, cw.Moment().String())
	return p
}

// SetFullScreen toggles a full viewport presentation.
func (p *HostPage) SetFullScreen(full bool) {
	p.Window.SetFullScreen(full)
}

// Show displays the window.
func (p *HostPage) Show() {
	p.Window.Show()
}

// Close unmounts the widget and closes the window. It is safe to call more than once.
func (p *HostPage) Close() {
	p.unmount()
	if !p.closed {
		p.closed = true
		p.Window.Close()
	}
}

func (p *HostPage) unmount() {
	if p.Widget.State() == engine.StateUnmounted {
		return
	}
	p.Widget.Unmount()
	slog.Info(config.MsgPageClose, config.LogKeyComponent, config.CompUI)
}
