package theming

import (
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/framegrace/texelvim/protocol"
)

func TestLoadDefaultStyle(t *testing.T) {
	p := Load("", "", "")
	want := FromStyle(styles.Get(DefaultStyleName))
	if p != want {
		t.Fatalf("palette = %#v, want %#v", p, want)
	}
	if !p.Foreground.Valid() || !p.Background.Valid() {
		t.Fatalf("palette has unset colors: %#v", p)
	}
	if p.Foreground == p.Background {
		t.Fatalf("foreground equals background: %#x", p.Foreground)
	}
}

func TestLoadUnknownStyleFallsBack(t *testing.T) {
	if got, want := Load("no-such-style", "", ""), Load(DefaultStyleName, "", ""); got != want {
		t.Fatalf("unknown style palette = %#v, want %#v", got, want)
	}
}

func TestLoadOverrides(t *testing.T) {
	tests := []struct {
		name   string
		fg, bg string
		wantFg protocol.Color
		wantBg protocol.Color
	}{
		{"both", "#101112", "#202122", 0x101112, 0x202122},
		{"invalid ignored", "red", "#202122", Load("", "", "").Foreground, 0x202122},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Load("", tt.fg, tt.bg)
			if p.Foreground != tt.wantFg || p.Background != tt.wantBg {
				t.Fatalf("palette = %#v", p)
			}
		})
	}
}

func TestFromStyleUsesFallbackForUnsetColors(t *testing.T) {
	style, err := chroma.NewStyle("bare", chroma.StyleEntries{})
	if err != nil {
		t.Fatal(err)
	}
	if p := FromStyle(style); p != Fallback {
		t.Fatalf("palette = %#v, want fallback", p)
	}
}
