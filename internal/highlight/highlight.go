// Package highlight provides syntax highlighting of single lines via Chroma,
// and UI colours derived from a Chroma theme.
package highlight

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const maxCacheEntries = 4000

// Highlighter renders lines of one language in one theme. The zero value and
// a nil *Highlighter highlight nothing.
type Highlighter struct {
	language string
	theme    string

	mu    sync.Mutex
	cache map[string]string
}

// New returns a Highlighter, or nil when language is empty or plain text,
// or when the lexer or theme are unknown.
func New(language, theme string) *Highlighter {
	if language == "" || language == "text" || theme == "" {
		return nil
	}
	if lexers.Get(language) == nil {
		return nil
	}
	if _, ok := styles.Registry[theme]; !ok {
		return nil
	}
	return &Highlighter{
		language: language,
		theme:    theme,
		cache:    make(map[string]string),
	}
}

// Enabled reports whether h produces highlighted output.
func (h *Highlighter) Enabled() bool { return h != nil }

// Line highlights a single line on the given "#rrggbb" background.
// Returns text unchanged when highlighting is disabled.
func (h *Highlighter) Line(text, bgHex string) string {
	if h == nil || text == "" {
		return text
	}
	key := bgHex + "\x00" + text
	h.mu.Lock()
	if v, ok := h.cache[key]; ok {
		h.mu.Unlock()
		return v
	}
	h.mu.Unlock()

	out := Highlight(text, h.language, h.theme, bgHex)

	h.mu.Lock()
	if len(h.cache) > maxCacheEntries {
		h.cache = make(map[string]string)
	}
	h.cache[key] = out
	h.mu.Unlock()
	return out
}

// Highlight returns an ANSI-highlighted version of text using the given
// Chroma language and theme. bgHex is injected after every ANSI reset so the
// background colour is never lost.
func Highlight(text, language, theme, bgHex string) string {
	lex := lexers.Get(language)
	if lex == nil {
		return text
	}
	lex = chroma.Coalesce(lex)
	sty := styles.Get(theme)
	fmtr := formatters.Get("terminal16m")
	if fmtr == nil {
		fmtr = formatters.Fallback
	}
	it, err := lex.Tokenise(nil, text)
	if err != nil {
		return text
	}
	var buf strings.Builder
	if err := fmtr.Format(&buf, sty, it); err != nil {
		return text
	}
	raw := strings.TrimRight(buf.String(), "\n")

	// terminal16m skips bg on tokens inheriting from Background and every
	// reset clears bg, so re-apply it after each reset.
	bgSeq := hexToBgSeq(bgHex)
	return bgSeq + strings.ReplaceAll(raw, "\x1b[0m", "\x1b[0m"+bgSeq)
}

// hexToBgSeq converts "#rrggbb" to an ANSI 24-bit background escape sequence.
func hexToBgSeq(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return ""
	}
	r := hexByte(hex[1], hex[2])
	g := hexByte(hex[3], hex[4])
	b := hexByte(hex[5], hex[6])
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
}

func hexByte(hi, lo byte) int {
	return hexNibble(hi)<<4 | hexNibble(lo)
}

func hexNibble(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 0
}

// Palette holds UI chrome colours derived deterministically from a Chroma
// theme. The grey ramp interpolates from bg to fg; the accent is the most
// saturated token colour.
type Palette struct {
	Bg       string // Theme background
	Fg       string // Theme foreground
	Border   string // 10% bg→fg
	CursorBg string // 18% bg→fg, cursor line band
	BlurBg   string // 8% bg→fg, cursor band while a modal is open
	Dim      string // 35% bg→fg
	Accent   string // Most saturated token colour
	Error    string // Error token, lerped 45% toward fg
}

// ThemePalette derives a UI palette from a Chroma theme name. Unknown themes
// get the default palette.
func ThemePalette(theme string) Palette {
	sty, ok := styles.Registry[theme]
	if !ok || sty == nil {
		return DefaultPalette()
	}
	entry := sty.Get(chroma.Background)
	bg := "#000000"
	fg := "#c8c8c8"
	if entry.Background.IsSet() {
		bg = entry.Background.String()
	}
	if entry.Colour.IsSet() {
		fg = entry.Colour.String()
	}

	return Palette{
		Bg:       bg,
		Fg:       fg,
		Border:   lerpHex(bg, fg, 0.10),
		CursorBg: lerpHex(bg, fg, 0.18),
		BlurBg:   lerpHex(bg, fg, 0.08),
		Dim:      lerpHex(bg, fg, 0.35),
		Accent:   pickAccent(sty, fg),
		Error:    pickError(sty, bg, fg),
	}
}

// DefaultPalette is used when no theme is configured.
func DefaultPalette() Palette {
	return Palette{
		Bg: "#000000", Fg: "#c8c8c8",
		Border: "#141414", CursorBg: "#242424", BlurBg: "#101010",
		Dim: "#464646", Accent: "#00dfff", Error: "#932e2e",
	}
}

// pickAccent returns the most saturated foreground colour across all tokens.
func pickAccent(sty *chroma.Style, fallback string) string {
	best := fallback
	bestSat := 0.0
	for _, tt := range sty.Types() {
		e := sty.Get(tt)
		if !e.Colour.IsSet() {
			continue
		}
		hex := e.Colour.String()
		r, g, b := hexToRGBf(hex)
		mx := max(r, g, b)
		mn := min(r, g, b)
		if mx == 0 {
			continue
		}
		sat := (mx - mn) / mx
		if sat > bestSat {
			bestSat = sat
			best = hex
		}
	}
	return best
}

func pickError(sty *chroma.Style, bg, fg string) string {
	e := sty.Get(chroma.Error)
	if !e.Colour.IsSet() {
		return lerpHex(bg, fg, 0.45)
	}
	return lerpHex(bg, e.Colour.String(), 0.45)
}

// lerpHex linearly interpolates between two hex colours at fraction t.
func lerpHex(a, b string, t float64) string {
	ar, ag, ab := hexToRGBf(a)
	br, bg, bb := hexToRGBf(b)
	return fmt.Sprintf("#%02x%02x%02x",
		clampByte(ar+(br-ar)*t),
		clampByte(ag+(bg-ag)*t),
		clampByte(ab+(bb-ab)*t),
	)
}

func hexToRGBf(hex string) (float64, float64, float64) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	return float64(hexByte(hex[1], hex[2])),
		float64(hexByte(hex[3], hex[4])),
		float64(hexByte(hex[5], hex[6]))
}

func clampByte(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(v + 0.5)
}
