package platform

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// ConsoleUI renders UI primitives for a terminal: toasts are printed to Out,
// everything else is logged.
type ConsoleUI struct {
	Out io.Writer
	Log zerolog.Logger

	mu    sync.Mutex
	route string
}

// NewConsoleUI returns a ConsoleUI writing toasts to out.
func NewConsoleUI(out io.Writer, log zerolog.Logger) *ConsoleUI {
	return &ConsoleUI{Out: out, Log: log}
}

func (c *ConsoleUI) ShowLoading(caption string) {
	c.Log.Debug().Str("caption", caption).Msg("loading shown")
}

func (c *ConsoleUI) HideLoading() {
	c.Log.Debug().Msg("loading hidden")
}

func (c *ConsoleUI) Notify(message string) {
	if c.Out != nil {
		_, _ = fmt.Fprintf(c.Out, "! %s\n", message)
	}
}

func (c *ConsoleUI) Navigate(route string) {
	c.mu.Lock()
	c.route = route
	c.mu.Unlock()
	c.Log.Info().Str("route", route).Msg("navigate")
}

func (c *ConsoleUI) SetNavigationBarColor(frontColor, backgroundColor string) {
	c.Log.Debug().Str("front", frontColor).Str("background", backgroundColor).Msg("navigation bar color")
}

// Route returns the last route navigated to.
func (c *ConsoleUI) Route() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.route
}
