package ui

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
)

// GoClockApp encapsulates the UI state, preferences, and the clock host page.
type GoClockApp struct {
	App         fyne.App
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Translator  Translator
	Ctx         context.Context

	Clock engine.Clock // Injected clock for testability (e.g. fake time travel)

	// Classes extends the default styling of the clock.
	Classes    []string
	FullScreen bool

	SupportedLanguages []string
	Page               *HostPage
}

// NewGoClockApp constructs the application and wires dependencies.
func NewGoClockApp(a fyne.App, ctx context.Context, clock engine.Clock) *GoClockApp {
	a.SetIcon(theme.HistoryIcon())

	if clock == nil {
		clock = engine.RealClock()
	}

	return &GoClockApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Clock:              clock,
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run opens the host page and blocks in the UI loop until the app quits.
// The clock is unmounted on every exit path, including a panic in the loop.
func (app *GoClockApp) Run() {
	app.SetupI18n()

	page := app.OpenPage()
	defer page.Close()

	// Lifecycle Bridge: quit the UI loop when the root context is cancelled.
	go func() {
		<-app.Ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompUI)
		fyne.Do(app.App.Quit)
	}()

	page.Show()
	app.App.Run()
}

// SetupI18n initializes the translation bundle and detects available languages.
func (app *GoClockApp) SetupI18n() {
	bundle, langs := LoadBundle()
	app.I18nBundle = bundle
	if len(langs) > 0 {
		app.SupportedLanguages = langs
	}
	app.UpdateLocalizer()
}

// UpdateLocalizer refreshes the translator based on the user's language preference.
func (app *GoClockApp) UpdateLocalizer() {
	lang := app.Preferences.String(config.PrefLanguage)
	app.Translator = NewTranslator(app.I18nBundle, lang)

	slog.Debug(config.MsgLocaleLoaded,
		config.LogKeyComponent, config.CompI18n,
		config.LogKeyLang, lang)
}

// GetMsg is a helper to translate a key safely.
func (app *GoClockApp) GetMsg(key string) string {
	return app.Translator.Msg(key)
}

// OpenPage builds the clock widget and its host page.
func (app *GoClockApp) OpenPage() *HostPage {
	// The live region label stays in English whatever the UI language.
	cw := NewClockWidget(app.Clock, app.Classes...)

	app.Page = NewHostPage(app.App, app.GetMsg(config.TKeyWinTitle), cw)
	if app.FullScreen {
		app.Page.SetFullScreen(true)
	}
	return app.Page
}
