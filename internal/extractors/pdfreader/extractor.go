// Package pdfreader extracts document text with a pure-Go PDF reader.
// It needs no external tools and is the first strategy tried by default.
package pdfreader

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
)

const (
	// lineTolerance is how far, in text space units, the baseline may
	// drift before text is treated as a new line.
	lineTolerance = 1.0

	// kernSpace is the TJ adjustment, in thousandths of an em, that
	// stands in for a word space.
	kernSpace = 200
)

// Extractor reads page text with github.com/ledongthuc/pdf.
type Extractor struct{}

// New creates a pdfreader extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the strategy name.
func (e *Extractor) Name() string {
	return domain.StrategyPDFReader
}

// Extract returns the text of every page joined in page order, one line
// per text line on the page.
// The reader panics on some malformed files; that is reported as an error.
func (e *Extractor) Extract(ctx context.Context, content []byte) (text string, err error) {
	if len(content) == 0 {
		return "", fmt.Errorf("%w: empty PDF content", domain.ErrInvalidInput)
	}

	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("read pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(pageText(page))
	}

	return b.String(), nil
}

// pageText walks the page's content streams and rebuilds text lines from
// the positions the text operators move to.
func pageText(page pdf.Page) string {
	encoders := make(map[string]pdf.TextEncoding)
	for _, name := range page.Fonts() {
		encoders[name] = page.Font(name).Encoder()
	}

	w := &lineWriter{}
	var enc pdf.TextEncoding

	walk := func(stk *pdf.Stack, op string) {
		n := stk.Len()
		args := make([]pdf.Value, n)
		for i := n - 1; i >= 0; i-- {
			args[i] = stk.Pop()
		}

		decode := func(v pdf.Value) string {
			if enc == nil {
				return v.RawString()
			}
			return enc.Decode(v.RawString())
		}

		switch op {
		case "BT":
			w.lineX, w.lineY = 0, 0
		case "Tf":
			if n >= 1 {
				enc = encoders[args[0].Name()]
			}
		case "TL":
			if n >= 1 {
				w.leading = args[0].Float64()
			}
		case "Td":
			if n >= 2 {
				w.moveTo(w.lineX+args[0].Float64(), w.lineY+args[1].Float64())
			}
		case "TD":
			if n >= 2 {
				w.leading = -args[1].Float64()
				w.moveTo(w.lineX+args[0].Float64(), w.lineY+args[1].Float64())
			}
		case "Tm":
			if n >= 6 {
				w.moveTo(args[4].Float64(), args[5].Float64())
			}
		case "T*":
			w.nextLine()
		case "Tj":
			if n >= 1 {
				w.show(decode(args[0]))
			}
		case "'":
			if n >= 1 {
				w.nextLine()
				w.show(decode(args[0]))
			}
		case "\"":
			if n >= 3 {
				w.nextLine()
				w.show(decode(args[2]))
			}
		case "TJ":
			if n < 1 {
				return
			}
			v := args[0]
			for i := 0; i < v.Len(); i++ {
				x := v.Index(i)
				if x.Kind() == pdf.String {
					w.show(decode(x))
				} else if -x.Float64() >= kernSpace {
					w.gap = true
				}
			}
		}
	}

	contents := page.V.Key("Contents")
	if contents.Kind() == pdf.Array {
		for i := 0; i < contents.Len(); i++ {
			pdf.Interpret(contents.Index(i), walk)
		}
	} else {
		pdf.Interpret(contents, walk)
	}

	return w.b.String()
}

// lineWriter accumulates shown text, breaking lines when the baseline moves.
type lineWriter struct {
	b strings.Builder

	// lineX and lineY are the start of the current text line.
	lineX, lineY float64
	leading      float64

	lastY   float64
	wrote   bool
	newline bool
	gap     bool
}

func (w *lineWriter) moveTo(x, y float64) {
	if math.Abs(y-w.lineY) <= lineTolerance && x != w.lineX {
		w.gap = true
	}
	w.lineX, w.lineY = x, y
}

func (w *lineWriter) nextLine() {
	w.lineY -= w.leading
	w.newline = true
}

func (w *lineWriter) show(s string) {
	if s == "" {
		return
	}
	if w.wrote {
		switch {
		case w.newline || math.Abs(w.lineY-w.lastY) > lineTolerance:
			w.b.WriteByte('\n')
		case w.gap && !strings.HasSuffix(w.b.String(), " ") && !strings.HasPrefix(s, " "):
			w.b.WriteByte(' ')
		}
	}
	w.b.WriteString(s)
	w.wrote, w.newline, w.gap = true, false, false
	w.lastY = w.lineY
}
