package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/giovan110109-blip/homePageuUni/platform"
)

// ThemeMode is the color scheme.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// Valid reports whether m is a known mode.
func (m ThemeMode) Valid() bool { return m == ThemeLight || m == ThemeDark }

// ThemeColors is the palette of one mode.
type ThemeColors struct {
	BgPrimary      string `json:"bgPrimary"`
	BgSecondary    string `json:"bgSecondary"`
	BgTertiary     string `json:"bgTertiary"`
	BgCard         string `json:"bgCard"`
	BgElevated     string `json:"bgElevated"`
	TextPrimary    string `json:"textPrimary"`
	TextSecondary  string `json:"textSecondary"`
	TextTertiary   string `json:"textTertiary"`
	TextMuted      string `json:"textMuted"`
	TextInverse    string `json:"textInverse"`
	Border         string `json:"border"`
	BorderLight    string `json:"borderLight"`
	BorderDark     string `json:"borderDark"`
	Primary        string `json:"primary"`
	PrimaryHover   string `json:"primaryHover"`
	PrimaryLight   string `json:"primaryLight"`
	Secondary      string `json:"secondary"`
	SecondaryHover string `json:"secondaryHover"`
	Accent         string `json:"accent"`
	Success        string `json:"success"`
	Warning        string `json:"warning"`
	Error          string `json:"error"`
}

var (
	LightPalette = ThemeColors{
		BgPrimary:      "#f5f5f5",
		BgSecondary:    "#f8fafc",
		BgTertiary:     "#f1f5f9",
		BgCard:         "#ffffff",
		BgElevated:     "#ffffff",
		TextPrimary:    "#0f172a",
		TextSecondary:  "#334155",
		TextTertiary:   "#64748b",
		TextMuted:      "#94a3b8",
		TextInverse:    "#ffffff",
		Border:         "#e2e8f0",
		BorderLight:    "#f1f5f9",
		BorderDark:     "#cbd5e1",
		Primary:        "#6366f1",
		PrimaryHover:   "#4f46e5",
		PrimaryLight:   "#a5b4fc",
		Secondary:      "#8b5cf6",
		SecondaryHover: "#7c3aed",
		Accent:         "#06b6d4",
		Success:        "#10b981",
		Warning:        "#f59e0b",
		Error:          "#ef4444",
	}

	DarkPalette = ThemeColors{
		BgPrimary:      "#0f172a",
		BgSecondary:    "#1e293b",
		BgTertiary:     "#334155",
		BgCard:         "#1e293b",
		BgElevated:     "#334155",
		TextPrimary:    "#f8fafc",
		TextSecondary:  "#e2e8f0",
		TextTertiary:   "#cbd5e1",
		TextMuted:      "#64748b",
		TextInverse:    "#0f172a",
		Border:         "#334155",
		BorderLight:    "#1e293b",
		BorderDark:     "#475569",
		Primary:        "#818cf8",
		PrimaryHover:   "#a5b4fc",
		PrimaryLight:   "#6366f1",
		Secondary:      "#a78bfa",
		SecondaryHover: "#c4b5fd",
		Accent:         "#22d3ee",
		Success:        "#34d399",
		Warning:        "#fbbf24",
		Error:          "#f87171",
	}
)

// Navigation bar colors per mode: front (title/icons) and background.
var navigationBarColors = map[ThemeMode][2]string{
	ThemeDark:  {"#ffffff", "#0f172a"},
	ThemeLight: {"#000000", "#ffffff"},
}

// Palette returns the colors of mode; unknown modes get the light palette.
func Palette(mode ThemeMode) ThemeColors {
	if mode == ThemeDark {
		return DarkPalette
	}
	return LightPalette
}

// Theme holds the active mode and palette.
type Theme struct {
	storage platform.Storage
	ui      platform.UI
	opts    options

	mu   sync.RWMutex
	mode ThemeMode
}

// NewTheme returns a container in light mode. ui may be nil; navigation bar
// colors are applied only when it implements platform.NavigationBarStyler.
func NewTheme(storage platform.Storage, ui platform.UI, opts ...Option) *Theme {
	return &Theme{storage: storage, ui: ui, opts: applyOptions(opts), mode: ThemeLight}
}

// Mode returns the active mode.
func (t *Theme) Mode() ThemeMode {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.mode
}

// Colors returns the active palette.
func (t *Theme) Colors() ThemeColors { return Palette(t.Mode()) }

// Init restores the stored mode. Missing or invalid values mean light.
func (t *Theme) Init(ctx context.Context) {
	mode := ThemeLight
	stored, err := t.storage.Get(ctx, platform.ThemeModeKey)
	switch {
	case err == nil && ThemeMode(stored).Valid():
		mode = ThemeMode(stored)
	case err != nil && !platform.IsNotFound(err):
		t.opts.log.Warn().Err(err).Msg("read stored theme failed")
	}
	// mode is valid here
	_ = t.SetTheme(ctx, mode)
}

// SetTheme switches to mode, persists it and recolors the navigation bar.
// A storage failure is logged; the switch still takes effect.
func (t *Theme) SetTheme(ctx context.Context, mode ThemeMode) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown theme mode %q", mode)
	}
	t.mu.Lock()
	t.mode = mode
	t.mu.Unlock()

	if err := t.storage.Set(ctx, platform.ThemeModeKey, string(mode)); err != nil {
		t.opts.log.Warn().Err(err).Str("mode", string(mode)).Msg("store theme failed")
	}
	t.apply(mode)
	return nil
}

// Toggle flips between light and dark and returns the new mode.
func (t *Theme) Toggle(ctx context.Context) ThemeMode {
	next := ThemeDark
	if t.Mode() == ThemeDark {
		next = ThemeLight
	}
	_ = t.SetTheme(ctx, next)
	return next
}

func (t *Theme) apply(mode ThemeMode) {
	styler, ok := t.ui.(platform.NavigationBarStyler)
	if !ok {
		return
	}
	c := navigationBarColors[mode]
	styler.SetNavigationBarColor(c[0], c[1])
}
