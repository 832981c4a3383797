package protocol

// Command is one decoded redraw instruction. The set is closed: every
// implementation lives in this file.
type Command interface {
	isCommand()
}

// GridResize reallocates the grid to Cols x Rows blank cells.
type GridResize struct {
	Grid int
	Cols int
	Rows int
}

// GridClear blanks the grid without changing its dimensions.
type GridClear struct {
	Grid int
}

// CellRun is one run-length encoded cell entry. Highlight is already
// resolved against the carry-forward rule; -1 means no highlight was ever
// given in the batch.
type CellRun struct {
	Text      string
	Highlight int
	Repeat    int
}

// LineEntry overwrites cells of Row starting at Col.
type LineEntry struct {
	Grid  int
	Row   int
	Col   int
	Cells []CellRun
}

// GridLine carries every line entry of one grid_line event.
type GridLine struct {
	Lines []LineEntry
}

// GridCursorGoto moves the logical cursor.
type GridCursorGoto struct {
	Grid int
	Row  int
	Col  int
}

// GridScroll shifts the region [Top,Bot) x [Left,Right) by Rows. Positive
// Rows moves content up. Cols is reserved by the editor and always zero.
type GridScroll struct {
	Grid  int
	Top   int
	Bot   int
	Left  int
	Right int
	Rows  int
	Cols  int
}

// Highlight describes a style. Unset colors are NoColor.
type Highlight struct {
	Foreground    Color
	Background    Color
	Special       Color
	Bold          bool
	Italic        bool
	Underline     bool
	Undercurl     bool
	Strikethrough bool
	Reverse       bool
	Blend         int
}

// DefaultHighlight returns a highlight that inherits every color.
func DefaultHighlight() Highlight {
	return Highlight{Foreground: NoColor, Background: NoColor, Special: NoColor}
}

// HighlightAttrDefine upserts one highlight table entry.
type HighlightAttrDefine struct {
	ID    int
	Attrs Highlight
}

// DefaultColorsSet replaces the default color triple.
type DefaultColorsSet struct {
	Foreground Color
	Background Color
	Special    Color
}

// Mode is the coarse input mode of the editor.
type Mode int

const (
	ModeOther Mode = iota
	ModeNormal
	ModeInsert
	ModeCommand
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	case ModeCommand:
		return "command"
	default:
		return "other"
	}
}

// ModeFromName maps an editor mode name to a Mode.
func ModeFromName(name string) Mode {
	switch name {
	case "normal", "operator", "visual", "select":
		return ModeNormal
	case "insert", "replace", "showmatch":
		return ModeInsert
	case "cmdline_normal", "cmdline_insert", "cmdline_replace":
		return ModeCommand
	default:
		return ModeOther
	}
}

// ModeChange reports the current mode and its index into the mode info table.
type ModeChange struct {
	Mode  Mode
	Name  string
	Index int
}

// CursorShape is the cursor form requested for a mode.
type CursorShape int

const (
	CursorUnset CursorShape = iota
	CursorBlock
	CursorHorizontal
	CursorVertical
)

// ModeInfo is one entry of the mode info table.
type ModeInfo struct {
	Name           string
	ShortName      string
	CursorShape    CursorShape
	CellPercentage int
	AttrID         int
	BlinkWait      int
	BlinkOn        int
	BlinkOff       int
}

// ModeInfoSet replaces the mode info table.
type ModeInfoSet struct {
	CursorStyleEnabled bool
	Modes              []ModeInfo
}

// SetTitle asks for a new window title.
type SetTitle struct {
	Title string
}

// Bell rings the bell. Visual is set for visual_bell.
type Bell struct {
	Visual bool
}

// MouseEnabled toggles mouse support (mouse_on / mouse_off).
type MouseEnabled struct {
	Enabled bool
}

// Busy toggles the busy state (busy_start / busy_stop).
type Busy struct {
	Busy bool
}

// Flush marks the end of a consistent batch.
type Flush struct{}

// Close reports that the editor connection is gone. Err is nil on a clean exit.
type Close struct {
	Err error
}

func (GridResize) isCommand()          {}
func (GridClear) isCommand()           {}
func (GridLine) isCommand()            {}
func (GridCursorGoto) isCommand()      {}
func (GridScroll) isCommand()          {}
func (HighlightAttrDefine) isCommand() {}
func (DefaultColorsSet) isCommand()    {}
func (ModeChange) isCommand()          {}
func (ModeInfoSet) isCommand()         {}
func (SetTitle) isCommand()            {}
func (Bell) isCommand()                {}
func (MouseEnabled) isCommand()        {}
func (Busy) isCommand()                {}
func (Flush) isCommand()               {}
func (Close) isCommand()               {}
