package layout

// Font families understood by Measurer and Canvas implementations.
const (
	FamilySans = "sans"
	FamilyMono = "mono"
)

// Font selects a face and size in points.
type Font struct {
	Family string
	Bold   bool
	Italic bool
	Size   float64
}

// Color is an sRGB color.
type Color struct{ R, G, B uint8 }

// Measurer reports text advance widths. Pass 1 uses it to break lines; pass
// 2 uses it to right-align page numbers.
type Measurer interface {
	// TextWidth returns the width of s set in f, in points.
	TextWidth(f Font, s string) float64
}

// Op is the kind of a deferred draw command.
type Op int

const (
	// OpText draws Text with its baseline at (X, Y).
	OpText Op = iota
	// OpRect fills the rectangle (X, Y, W, H) with Color.
	OpRect
	// OpLine strokes from (X, Y) to (X2, Y2) with Width and Color.
	OpLine
	// OpLink makes (X, Y, W, H) clickable, jumping to Anchor or opening URL.
	OpLink
	// OpAnchor defines the named destination Anchor at height Y.
	OpAnchor
	// OpOutline adds a bookmark Text at outline Level pointing at height Y.
	OpOutline
	// OpTOCPage is a placeholder for the page number of TOC entry Entry,
	// right-aligned at X. Replay turns it into OpText.
	OpTOCPage
)

// Command is one deferred draw call. Coordinates are points from the top-left
// corner of the page.
type Command struct {
	Op     Op
	X, Y   float64
	W, H   float64
	X2, Y2 float64
	Width  float64
	Text   string
	Font   Font
	Color  Color
	Anchor string
	URL    string
	Level  int
	Entry  int
}

// Page is the captured state of one physical page between the two passes.
type Page struct {
	Commands []Command
}

// Canvas receives the final drawing in pass 2. Draw is never called with
// OpTOCPage.
type Canvas interface {
	AddPage()
	Draw(cmd Command)
}

// Position locates the first line of a block.
type Position struct {
	Page int // 1-based physical page
	Y    float64
}
