package engine

import (
	"strings"

	m "github.com/sanddino/orfix/internal/model"
)

// Transform rewrites one block (a whole section's un-conditioned content or
// a single swap-conditional arm) so that the canonical run directive sits
// immediately after the last slot assignment of every indentation depth,
// and nowhere else. When rename is set, ps-t0 assignments carrying both
// "Extra" and "Diffuse" are moved to ps-t1 first.
//
// Excluded and empty blocks are returned untouched with no change records.
// The result is stable: transforming an already-transformed block yields
// the same block and an empty change list.
func Transform(block []string, section string, excluded, rename bool) ([]string, []m.Change) {
	if len(block) == 0 || excluded {
		return block, nil
	}

	correct := correctDirective(block)

	var changes []m.Change

	lines := make([]string, 0, len(block))
	for _, text := range block {
		l := Classify(text)
		if rename && l.Category == m.CategorySlotAssignment && l.Slot == 0 && l.IsExtra && l.IsDiffuse {
			after := strings.Replace(text, "ps-t0", "ps-t1", 1)
			lines = append(lines, after)
			changes = append(changes, m.Change{
				Kind:    m.ChangeRenamed,
				Section: section,
				Before:  strings.TrimSpace(text),
				After:   strings.TrimSpace(after),
			})

			continue
		}

		lines = append(lines, text)
	}

	classified := make([]m.Line, len(lines))
	for i, text := range lines {
		classified[i] = Classify(text)
	}

	// Position of the last slot assignment per indentation depth. Depths
	// are independent transformation units; only the last assignment at
	// each depth governs a directive.
	lastSlot := make(map[int]int)

	for i, l := range classified {
		if l.Category == m.CategorySlotAssignment {
			lastSlot[l.Depth] = i
		}
	}

	// A directive survives only directly after the last slot assignment of
	// its own depth, with the canonical content for this block.
	keep := func(i int) bool {
		last, ok := lastSlot[classified[i].Depth]
		return ok && i == last+1 && strings.TrimSpace(classified[i].Text) == correct
	}

	out := make([]string, 0, len(lines)+len(lastSlot))

	for i, l := range classified {
		if l.Category == m.CategoryDirective {
			if keep(i) {
				out = append(out, l.Text)
				continue
			}

			changes = append(changes, m.Change{
				Kind:    m.ChangeRemovedDirective,
				Section: section,
				Line:    strings.TrimSpace(l.Text),
			})

			continue
		}

		out = append(out, l.Text)

		if l.Category != m.CategorySlotAssignment || lastSlot[l.Depth] != i {
			continue
		}

		// Exiting the run of slot assignments at this depth: make sure the
		// canonical directive follows.
		next := i + 1
		if next < len(classified) && classified[next].Category == m.CategoryDirective && keep(next) {
			continue
		}

		out = append(out, l.Text[:l.Depth]+correct)
		changes = append(changes, m.Change{
			Kind:    m.ChangeAddedDirective,
			Section: section,
			Line:    correct,
		})
	}

	return out, changes
}
