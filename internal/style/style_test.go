package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/style"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		base  []string
		extra []string
		want  []string
	}{
		{
			name: "NoExtra",
			base: []string{"font-sans", "text-sm"},
			want: []string{"font-sans", "text-sm"},
		},
		{
			name:  "LastSizeWins",
			base:  []string{"font-sans", "text-sm", "text-foreground"},
			extra: []string{"text-lg"},
			want:  []string{"font-sans", "text-foreground", "text-lg"},
		},
		{
			name:  "SpaceSeparatedExtra",
			base:  []string{"text-sm"},
			extra: []string{"font-bold text-error"},
			want:  []string{"text-sm", "font-bold", "text-error"},
		},
		{
			name:  "DuplicatesCollapse",
			base:  []string{"flex", "h-6"},
			extra: []string{"flex"},
			want:  []string{"h-6", "flex"},
		},
		{
			name:  "SpacingGroup",
			base:  []string{"space-x-2"},
			extra: []string{"space-x-6"},
			want:  []string{"space-x-6"},
		},
		{
			name:  "FontFamilyGroup",
			base:  []string{"font-sans", "text-sm"},
			extra: []string{"font-mono"},
			want:  []string{"text-sm", "font-mono"},
		},
		{
			name:  "SizeAndColorCoexist",
			base:  []string{"text-sm", "text-foreground"},
			extra: []string{"text-primary"},
			want:  []string{"text-sm", "text-primary"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, style.Merge(tt.base, tt.extra...))
		})
	}
}

func TestMerge_DoesNotMutateBase(t *testing.T) {
	base := []string{"text-sm", "font-sans"}
	_ = style.Merge(base, "text-xl", "font-mono")
	assert.Equal(t, []string{"text-sm", "font-sans"}, base)
}

func TestResolve_Defaults(t *testing.T) {
	row := style.Resolve(style.Row())

	assert.InDelta(t, 0.875, row.SizeScale, 1e-6)
	assert.False(t, row.Monospace)
	assert.Equal(t, style.ColorForeground, row.Color)
	assert.Equal(t, 2, row.Gap)

	tm := style.Resolve(style.TimeSegment())
	assert.True(t, tm.Monospace, "time segment uses a fixed-width face")
	assert.True(t, tm.Tracking)
	assert.InDelta(t, row.SizeScale, tm.SizeScale, 1e-6)
}

func TestResolve_Extension(t *testing.T) {
	spec := style.Resolve(style.Row("text-2xl", "font-bold", "italic", "text-primary", "space-x-4"))

	assert.InDelta(t, 1.5, spec.SizeScale, 1e-6)
	assert.True(t, spec.Bold)
	assert.True(t, spec.Italic)
	assert.Equal(t, style.ColorPrimary, spec.Color)
	assert.Equal(t, 4, spec.Gap)
}

func TestResolve_UnknownClassesIgnored(t *testing.T) {
	spec := style.Resolve([]string{"bg-background", "rounded"})
	assert.Equal(t, style.Spec{SizeScale: 1, Color: style.ColorForeground}, spec)
}

func TestTimeSegment_SwapsFontFamily(t *testing.T) {
	classes := style.TimeSegment("text-xl")

	assert.Contains(t, classes, "font-mono")
	assert.Contains(t, classes, "text-xl")
	assert.NotContains(t, classes, "font-sans")
	assert.NotContains(t, classes, "text-sm")
}

func TestRow_KeepsDefaults(t *testing.T) {
	assert.Equal(t, config.DefaultRowClasses, style.Row())
}
