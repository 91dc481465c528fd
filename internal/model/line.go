// Package model defines the data structures shared by the orfix engine,
// workflow, and adapters.
package model

// Path represents a file system path.
type Path string

// Category classifies a single line of a mod .ini file.
type Category int

const (
	// CategoryOther is any line the engine passes through untouched.
	CategoryOther Category = iota
	// CategorySectionHeader is a [CommandList...] or [TextureOverride...] header.
	CategorySectionHeader
	// CategorySwapOpen opens a swap-conditional arm (if/else if $swapvar == N).
	CategorySwapOpen
	// CategoryEndIf closes a swap-conditional block.
	CategoryEndIf
	// CategorySlotAssignment binds a ps-t<n> texture slot to a resource.
	CategorySlotAssignment
	// CategoryDirective is a run line invoking one of the two ORFix targets.
	CategoryDirective
)

// Line is a classified line: its raw text plus everything the transformer
// needs to decide what to do with it.
type Line struct {
	Text     string
	Depth    int // count of leading whitespace characters
	Category Category

	// Slot index, only meaningful for CategorySlotAssignment.
	Slot int
	// IsExtra and IsDiffuse drive the slot-0 rename rule.
	IsExtra   bool
	IsDiffuse bool

	// HasNormalMap marks the line as content evidence that the block needs
	// the normal-map directive target. Independent of Category.
	HasNormalMap bool
}
