// Package style maps utility style classes onto toolkit-neutral text attributes.
//
// Classes are merged with tailwind-merge, so callers can extend the default
// styling without removing the classes they override. Resolve then reads the
// text size, font family, weight, slant, color and horizontal spacing out of
// the merged list.
package style

import (
	"log/slog"
	"strconv"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/tartampluch/go-clock/internal/config"
)

// Color names a semantic palette entry. Renderers translate it to their theme.
type Color string

const (
	ColorForeground Color = "foreground"
	ColorPrimary    Color = "primary"
	ColorMuted      Color = "muted"
	ColorError      Color = "error"
	ColorSuccess    Color = "success"
)

// Spec is the resolved styling of one text segment.
type Spec struct {
	// SizeScale multiplies the renderer's base text size.
	SizeScale float32
	Monospace bool
	Bold      bool
	Italic    bool
	Color     Color
	// Gap is the horizontal spacing between segments, in spacing units.
	Gap int
	// Tracking widens letter spacing where the renderer supports it.
	Tracking bool
}

type group int

const (
	groupNone group = iota
	groupSize
	groupFamily
	groupWeight
	groupSlant
	groupColor
	groupGap
	groupTracking
)

var sizeScales = map[string]float32{
	"text-xs":   0.75,
	"text-sm":   0.875,
	"text-base": 1,
	"text-lg":   1.125,
	"text-xl":   1.25,
	"text-2xl":  1.5,
	"text-3xl":  1.875,
	"text-4xl":  2.25,
}

var colors = map[string]Color{
	"text-foreground": ColorForeground,
	"text-primary":    ColorPrimary,
	"text-muted":      ColorMuted,
	"text-error":      ColorError,
	"text-success":    ColorSuccess,
}

// layoutClasses are accepted for compatibility but carry no text attribute.
var layoutClasses = map[string]bool{
	"flex":         true,
	"flex-row":     true,
	"items-center": true,
	"h-6":          true,
}

func classify(class string) group {
	switch {
	case sizeScales[class] != 0:
		return groupSize
	case colors[class] != "":
		return groupColor
	case class == "font-sans" || class == "font-mono":
		return groupFamily
	case class == "font-bold" || class == "font-normal":
		return groupWeight
	case class == "italic" || class == "not-italic":
		return groupSlant
	case class == "tracking-wider" || class == "tracking-normal":
		return groupTracking
	case strings.HasPrefix(class, "space-x-"):
		if _, err := strconv.Atoi(strings.TrimPrefix(class, "space-x-")); err == nil {
			return groupGap
		}
	}
	return groupNone
}

// Merge returns base extended by extra. Conflicts are resolved by tailwind-merge:
// a later class replaces an earlier class of the same group, and duplicates collapse.
// Entries may hold several space separated classes.
func Merge(base []string, extra ...string) []string {
	args := make([]string, 0, len(base)+len(extra))
	args = append(args, base...)
	args = append(args, extra...)
	return strings.Fields(twmerge.Merge(args...))
}

// Resolve turns merged classes into a Spec. Unknown classes are ignored.
func Resolve(classes []string) Spec {
	spec := Spec{SizeScale: 1, Color: ColorForeground}

	for _, c := range classes {
		switch classify(c) {
		case groupSize:
			spec.SizeScale = sizeScales[c]
		case groupColor:
			spec.Color = colors[c]
		case groupFamily:
			spec.Monospace = c == "font-mono"
		case groupWeight:
			spec.Bold = c == "font-bold"
		case groupSlant:
			spec.Italic = c == "italic"
		case groupTracking:
			spec.Tracking = c == "tracking-wider"
		case groupGap:
			spec.Gap, _ = strconv.Atoi(strings.TrimPrefix(c, "space-x-"))
		default:
			if !layoutClasses[c] {
				slog.Debug(config.MsgStyleUnknown,
					config.LogKeyComponent, config.CompStyle,
					config.LogKeyClass, c)
			}
		}
	}
	return spec
}

// Row returns the merged classes of the clock row.
func Row(extra ...string) []string {
	return Merge(config.DefaultRowClasses, extra...)
}

// TimeSegment returns the merged classes of the time segment.
// Its own classes are applied after the row's, so they win their groups.
func TimeSegment(extra ...string) []string {
	return Merge(Row(extra...), config.TimeSegmentClasses...)
}
