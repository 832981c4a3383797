package protocol

import "strings"

// ClientCommand is a request sent from the front-end to the editor.
type ClientCommand interface {
	isClientCommand()
}

// InputText sends keys in chord notation (e.g. "<C-S-A>") or literal text.
type InputText struct {
	Keys string
}

// InputMouse sends one mouse action at a grid position.
type InputMouse struct {
	Button   string
	Action   string
	Modifier string
	Grid     int
	Row      int
	Col      int
}

// TryResize asks the editor to resize its grid.
type TryResize struct {
	Cols int
	Rows int
}

func (InputText) isClientCommand()  {}
func (InputMouse) isClientCommand() {}
func (TryResize) isClientCommand()  {}

// EscapeText prepares literal text for the input request, which would
// otherwise read "<" as the start of a chord.
func EscapeText(text string) string {
	if !strings.Contains(text, "<") {
		return text
	}
	return strings.ReplaceAll(text, "<", "<lt>")
}
