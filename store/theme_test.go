package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giovan110109-blip/homePageuUni/platform"
	"github.com/giovan110109-blip/homePageuUni/platform/platformtest"
)

func TestTheme_DefaultsToLight(t *testing.T) {
	th := NewTheme(platform.NewMemoryStorage(), nil)
	assert.Equal(t, ThemeLight, th.Mode())
	assert.Equal(t, LightPalette, th.Colors())
}

func TestTheme_SetThemePersistsAndStylesNavigationBar(t *testing.T) {
	storage := platform.NewMemoryStorage()
	ui := &platformtest.RecordingUI{}
	th := NewTheme(storage, ui)
	ctx := context.Background()

	require.NoError(t, th.SetTheme(ctx, ThemeDark))
	assert.Equal(t, ThemeDark, th.Mode())
	assert.Equal(t, DarkPalette, th.Colors())

	stored, err := storage.Get(ctx, platform.ThemeModeKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", stored)

	require.NoError(t, th.SetTheme(ctx, ThemeLight))
	assert.Equal(t, [][2]string{{"#ffffff", "#0f172a"}, {"#000000", "#ffffff"}}, ui.NavColors)
}

func TestTheme_SetThemeRejectsUnknownMode(t *testing.T) {
	th := NewTheme(platform.NewMemoryStorage(), nil)
	assert.Error(t, th.SetTheme(context.Background(), "sepia"))
	assert.Equal(t, ThemeLight, th.Mode())
}

func TestTheme_Toggle(t *testing.T) {
	th := NewTheme(platform.NewMemoryStorage(), platform.NopUI{})
	ctx := context.Background()
	assert.Equal(t, ThemeDark, th.Toggle(ctx))
	assert.Equal(t, ThemeLight, th.Toggle(ctx))
}

func TestTheme_Init(t *testing.T) {
	ctx := context.Background()
	cases := map[string]struct {
		stored *string
		want   ThemeMode
	}{
		"missing": {nil, ThemeLight},
		"dark":    {strPtr("dark"), ThemeDark},
		"light":   {strPtr("light"), ThemeLight},
		"invalid": {strPtr("purple"), ThemeLight},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			storage := platform.NewMemoryStorage()
			if tc.stored != nil {
				require.NoError(t, storage.Set(ctx, platform.ThemeModeKey, *tc.stored))
			}
			th := NewTheme(storage, nil)
			th.Init(ctx)
			assert.Equal(t, tc.want, th.Mode())
		})
	}
}

func TestTheme_StorageFailureStillSwitches(t *testing.T) {
	th := NewTheme(failingStorage{err: errors.New("disk full")}, nil)
	ctx := context.Background()
	th.Init(ctx)
	assert.Equal(t, ThemeLight, th.Mode())
	require.NoError(t, th.SetTheme(ctx, ThemeDark))
	assert.Equal(t, ThemeDark, th.Mode())
}

func TestPalettesAreComplete(t *testing.T) {
	for _, p := range []ThemeColors{LightPalette, DarkPalette} {
		assert.NotContains(t, []string{
			p.BgPrimary, p.BgSecondary, p.BgTertiary, p.BgCard, p.BgElevated,
			p.TextPrimary, p.TextSecondary, p.TextTertiary, p.TextMuted, p.TextInverse,
			p.Border, p.BorderLight, p.BorderDark, p.Primary, p.PrimaryHover, p.PrimaryLight,
			p.Secondary, p.SecondaryHover, p.Accent, p.Success, p.Warning, p.Error,
		}, "")
	}
}

func strPtr(s string) *string { return &s }
