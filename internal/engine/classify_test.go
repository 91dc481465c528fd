package engine

import (
	"testing"

	m "github.com/sanddino/orfix/internal/model"
)

func TestClassifyCategories(t *testing.T) {
	tests := []struct {
		name string
		line string
		want m.Category
	}{
		{"command list header", "[CommandListBodyA]", m.CategorySectionHeader},
		{"texture override header", "[TextureOverrideHead]", m.CategorySectionHeader},
		{"indented header", "  [TextureOverrideHead]", m.CategorySectionHeader},
		{"lowercase header is not a header", "[commandlistBodyA]", m.CategoryOther},
		{"resource header is not a section", "[ResourceBodyDiffuse]", m.CategoryOther},
		{"if swapvar", "if $swapvar == 0", m.CategorySwapOpen},
		{"else if swapvar", "else if $swapvar == 12", m.CategorySwapOpen},
		{"indented swapvar", "\tif $swapvar == 3", m.CategorySwapOpen},
		{"uppercase swapvar", "IF $SWAPVAR == 1", m.CategorySwapOpen},
		{"swapvar spacing", "if $swapvar==2", m.CategorySwapOpen},
		{"other variable is not a swap open", "if $toggle == 1", m.CategoryOther},
		{"endif", "endif", m.CategoryEndIf},
		{"indented endif", "    endif", m.CategoryEndIf},
		{"uppercase endif", "ENDIF", m.CategoryEndIf},
		{"slot assignment", "ps-t0 = ResourceBodyDiffuse", m.CategorySlotAssignment},
		{"slot assignment no spaces", "ps-t3=ResourceBody", m.CategorySlotAssignment},
		{"indented slot assignment", "    ps-t1 = ResourceHead", m.CategorySlotAssignment},
		{"slot without assignment", "ps-t0", m.CategoryOther},
		{"orfix directive", `run = CommandList\global\ORFix\ORFix`, m.CategoryDirective},
		{"nnfix directive", `run = CommandList\global\ORFix\NNFix`, m.CategoryDirective},
		{"directive case insensitive", `RUN = commandlist\global\orfix\nnfix`, m.CategoryDirective},
		{"indented directive", `  run = CommandList\global\ORFix\ORFix`, m.CategoryDirective},
		{"other run target is not a directive", `run = CommandList\global\Other\Thing`, m.CategoryOther},
		{"plain assignment", "hash = abcd1234", m.CategoryOther},
		{"blank line", "", m.CategoryOther},
		{"comment", "; drawindexed = auto", m.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.line)
			if got.Category != tt.want {
				t.Errorf("Classify(%q).Category = %v, want %v", tt.line, got.Category, tt.want)
			}
		})
	}
}

func TestClassifyDepth(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{"no indent", "ps-t0 = Resource", 0},
		{"spaces", "    ps-t0 = Resource", 4},
		{"tab", "\tps-t0 = Resource", 1},
		{"mixed", " \t ps-t0 = Resource", 3},
		{"blank", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.line); got.Depth != tt.want {
				t.Errorf("Classify(%q).Depth = %d, want %d", tt.line, got.Depth, tt.want)
			}
		})
	}
}

func TestClassifySlotDetails(t *testing.T) {
	l := Classify("ps-t4 = ResourceExtraBodyDiffuse")
	if l.Slot != 4 {
		t.Errorf("Slot = %d, want 4", l.Slot)
	}
	if !l.IsExtra || !l.IsDiffuse {
		t.Errorf("IsExtra/IsDiffuse = %v/%v, want true/true", l.IsExtra, l.IsDiffuse)
	}

	l = Classify("ps-t0 = ResourceBody")
	if l.IsExtra || l.IsDiffuse {
		t.Errorf("IsExtra/IsDiffuse = %v/%v, want false/false", l.IsExtra, l.IsDiffuse)
	}
}

func TestClassifyNormalMapMarker(t *testing.T) {
	if !Classify("ps-t2 = ResourceBodyNormalMap").HasNormalMap {
		t.Error("expected NormalMap marker on slot assignment")
	}
	if !Classify("; uses NormalMap below").HasNormalMap {
		t.Error("expected NormalMap marker on arbitrary line")
	}
	if Classify("ps-t2 = ResourceBodyDiffuse").HasNormalMap {
		t.Error("unexpected NormalMap marker")
	}
}
