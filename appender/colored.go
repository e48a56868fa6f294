package appender

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/philipp01105/pipelog/core"
)

// Color names a foreground console color.
type Color string

const (
	ColorNone    Color = ""
	ColorRed     Color = "red"
	ColorGreen   Color = "green"
	ColorYellow  Color = "yellow"
	ColorBlue    Color = "blue"
	ColorMagenta Color = "magenta"
	ColorCyan    Color = "cyan"
	ColorWhite   Color = "white"
	ColorDefault Color = "default"
)

// fgDefault is the SGR code for the terminal's default foreground color.
const fgDefault color.Attribute = 39

var colorAttributes = map[Color]color.Attribute{
	ColorRed:     color.FgRed,
	ColorGreen:   color.FgGreen,
	ColorYellow:  color.FgYellow,
	ColorBlue:    color.FgBlue,
	ColorMagenta: color.FgMagenta,
	ColorCyan:    color.FgCyan,
	ColorWhite:   color.FgWhite,
	ColorDefault: fgDefault,
}

// levelPalette is used when no fixed color is configured.
var levelPalette = map[core.Level]Color{
	core.DebugLevel:    ColorCyan,
	core.InfoLevel:     ColorGreen,
	core.WarningLevel:  ColorYellow,
	core.ErrorLevel:    ColorRed,
	core.CriticalLevel: ColorMagenta,
}

// ParseColor converts a color name to a Color.
func ParseColor(name string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(name)))
	if c == ColorNone {
		return ColorNone, nil
	}
	if _, ok := colorAttributes[c]; !ok {
		return ColorNone, fmt.Errorf("%w: unknown color %q", core.ErrValidation, name)
	}
	return c, nil
}

// ColoredConsole writes records like Console, wrapped in ANSI color codes.
// The color is reset after every line.
type ColoredConsole struct {
	Console
	colors map[core.Level]*color.Color
}

// ColoredConsoleConfig holds configuration for the colored console appender
type ColoredConsoleConfig struct {
	ConsoleConfig
	// Color applied to every line. ColorNone selects a color per level.
	Color Color
}

// NewColoredConsole creates a colored console appender
func NewColoredConsole(cfg ColoredConsoleConfig) (*ColoredConsole, error) {
	if cfg.Color != ColorNone {
		if _, ok := colorAttributes[cfg.Color]; !ok {
			return nil, fmt.Errorf("%w: unknown color %q", core.ErrValidation, cfg.Color)
		}
	}

	colors := make(map[core.Level]*color.Color, len(levelPalette))
	for lvl, c := range levelPalette {
		if cfg.Color != ColorNone {
			c = cfg.Color
		}
		cc := color.New(colorAttributes[c])
		// Output may be a pipe or buffer; the caller asked for color explicitly.
		cc.EnableColor()
		colors[lvl] = cc
	}

	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	return &ColoredConsole{
		Console: Console{
			Base:   NewBase(cfg.Formatter, cfg.Filters...),
			writer: cfg.Writer,
		},
		colors: colors,
	}, nil
}

// Name identifies the destination
func (c *ColoredConsole) Name() string {
	return "colored_console"
}

// Append formats, colors and writes a record
func (c *ColoredConsole) Append(rec *core.Record) error {
	if !c.Accepts(rec) {
		return nil
	}
	data, err := c.Render(rec)
	if err != nil {
		return c.done(err)
	}
	return c.done(c.writeLine([]byte(c.colorize(rec.Level, string(data)))))
}

func (c *ColoredConsole) colorize(level core.Level, s string) string {
	cc, ok := c.colors[level]
	if !ok {
		cc = c.colors[core.InfoLevel]
	}
	return cc.Sprint(s)
}
