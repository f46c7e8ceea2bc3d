package layout

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// CodeStyle is the chroma style used to color code blocks on paper.
const CodeStyle = "github"

const tabWidth = 4

type codeRun struct {
	text  string
	color Color
	bold  bool
}

// highlightLines tokenizes code with the lexer for lang and returns the runs
// of every source line. Unknown languages are rendered in the text color.
func highlightLines(code, lang string, fallback Color) [][]codeRun {
	code = strings.ReplaceAll(code, "\t", strings.Repeat(" ", tabWidth))
	src := strings.Split(code, "\n")

	lexer := lexers.Get(lang)
	if lang == "" || lexer == nil {
		return plainCode(src, fallback)
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return plainCode(src, fallback)
	}
	style := styles.Get(CodeStyle)

	out := make([][]codeRun, 1, len(src))
	for _, tok := range it.Tokens() {
		entry := style.Get(tok.Type)
		c := fallback
		if entry.Colour.IsSet() {
			c = Color{entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()}
		}
		bold := entry.Bold == chroma.Yes
		for i, part := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				out = append(out, nil)
			}
			if part != "" {
				out[len(out)-1] = append(out[len(out)-1], codeRun{text: part, color: c, bold: bold})
			}
		}
	}
	// The lexer terminates the input with a newline.
	for len(out) > len(src) && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out
}

func plainCode(src []string, c Color) [][]codeRun {
	out := make([][]codeRun, len(src))
	for i, s := range src {
		if s != "" {
			out[i] = []codeRun{{text: s, color: c}}
		}
	}
	return out
}

// wrapCode hard-wraps one highlighted source line to width. An empty source
// line yields one empty line.
func wrapCode(m Measurer, f Font, runs []codeRun, width float64) []line {
	var lines []line
	var cur line
	for _, r := range runs {
		rf := f
		rf.Bold = r.bold
		for _, ch := range r.text {
			s := string(ch)
			w := m.TextWidth(rf, s)
			if len(cur.runs) > 0 && cur.width+w > width {
				lines = append(lines, cur)
				cur = line{}
			}
			if n := len(cur.runs); n > 0 && cur.runs[n-1].color == r.color && cur.runs[n-1].font == rf {
				cur.runs[n-1].text += s
				cur.runs[n-1].w += w
			} else {
				cur.runs = append(cur.runs, run{text: s, font: rf, color: r.color, x: cur.width, w: w})
			}
			cur.width += w
		}
	}
	return append(lines, cur)
}
