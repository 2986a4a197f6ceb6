package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Clock"
	AppID       = "com.github.tartampluch.go-clock"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion    = "version"
	FlagDebug      = "debug"
	FlagLanguage   = "lang"
	FlagFullScreen = "fullscreen"
	FlagTerminal   = "tui"
	FlagClasses    = "class"

	FlagDescVersion    = "Show application version and exit"
	FlagDescDebug      = "Enable debug logging to stdout"
	FlagDescLanguage   = "UI language (ISO 639-1), stored in preferences"
	FlagDescFullScreen = "Show the clock window in full screen"
	FlagDescTerminal   = "Render the clock in the terminal instead of a window"
	FlagDescClasses    = "Extra style classes merged with the default clock styling"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Clock Behaviour
// -----------------------------------------------------------------------------

const (
	// TickPeriod is the interval between two refreshes of the displayed moment.
	TickPeriod = 1000 * time.Millisecond

	// DateLayout renders the date segment as MM/DD.
	DateLayout = "01/02"

	// TimeLayout renders the time segment as HH:MM:SS on a 24-hour clock.
	TimeLayout = "15:04:05"

	// SegmentSeparator joins the date and time segments in announcements.
	SegmentSeparator = " "
)

// -----------------------------------------------------------------------------
// Accessibility (Live Region)
// -----------------------------------------------------------------------------

const (
	LiveRegionRole       = "status"
	LiveRegionPoliteness = "polite"
	LiveRegionAtomic     = true
)

// -----------------------------------------------------------------------------
// Style Classes
// -----------------------------------------------------------------------------

// DefaultRowClasses is the default visual styling of the clock row.
var DefaultRowClasses = []string{
	"flex", "flex-row", "items-center", "space-x-2", "h-6",
	"font-sans", "text-sm", "text-foreground",
}

// TimeSegmentClasses is appended to the row styling for the time segment only.
// A fixed-width face keeps the row from shifting as digits change.
var TimeSegmentClasses = []string{"font-mono", "tracking-wider"}

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	HostWindowWidth  = 480
	HostWindowHeight = 320

	// SpacingUnit converts a space-x-N class into device independent pixels.
	SpacingUnit float32 = 4

	// Preference Keys
	PrefLanguage = "language"
	PrefLastRun  = "last_run_version"

	DefaultLanguage = "en"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle    = "win_title"
	TKeyTermHelp    = "term_help"
	TKeyTermLoading = "term_loading"
)

// -----------------------------------------------------------------------------
// Fallbacks
// -----------------------------------------------------------------------------

const (
	FallbackA11yLabel = "Current date and time is %s %s"
	FallbackTermHelp  = "q: quit"
)

// -----------------------------------------------------------------------------
// Log & Error Messages
// -----------------------------------------------------------------------------

const (
	ErrAppFailed     = "Application failed"
	ErrCacheDir      = "failed to get user cache dir"
	ErrCreateDir     = "failed to create log dir"
	ErrLogFile       = "Failed to open log file"
	ErrLocalesAccess = "Failed to read embedded locales"
	ErrLocaleLoad    = "Failed to load locale file"
	ErrTermProgram   = "terminal program failed"
	ErrHostPanic     = "Host terminated by panic"

	MsgAppStarting   = "Application starting"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, quitting UI"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Invalid locale filename"
	MsgLocaleLoaded  = "Locale loaded"
	MsgTransMissing  = "Missing translation key"
	MsgMounted       = "Clock mounted"
	MsgUnmounted     = "Clock unmounted"
	MsgTick          = "Tick"
	MsgTickDropped   = "Tick ignored after unmount"
	MsgSourceStart   = "Time source started"
	MsgSourceStop    = "Time source stopped"
	MsgPageOpen      = "Host page opened"
	MsgPageClose     = "Host page closed"
	MsgStyleUnknown  = "Ignoring unknown style class"
	MsgTermStart     = "Terminal clock started"
	MsgTermStop      = "Terminal clock stopped"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyInterval  = "interval"
	LogKeyMoment    = "moment"
	LogKeyUpdates   = "updates"
	LogKeyClass     = "class"
	LogKeyState     = "state"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompEngine = "engine"
	CompSource = "time_source"
	CompStyle  = "style"
	CompTUI    = "tui"
	CompMain   = "main"
	CompI18n   = "i18n"
)
