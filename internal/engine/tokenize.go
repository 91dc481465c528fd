package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	m "github.com/sanddino/orfix/internal/model"
)

// ErrNoSection reports block content that cannot be attributed to any
// section. The tokenizer never produces this from well-formed input; it
// guards against conditional arms opened before the first section header.
var ErrNoSection = errors.New("block content outside any section")

// Tokenize runs the full-file transform: it groups lines into blocks, asks
// excluded once per section header whether that section is exempt, and
// pushes every completed block through Transform. Lines outside any section
// pass through verbatim.
//
// Every input line is emitted exactly once; the returned change records are
// in file order, renames first within each block.
func Tokenize(lines []string, excluded func(section string) bool, rename bool) ([]string, []m.Change, error) {
	out := make([]string, 0, len(lines))

	var (
		changes         []m.Change
		block           []string
		section         string
		insideSection   bool
		sectionExcluded bool
	)

	flush := func() error {
		if len(block) == 0 {
			return nil
		}

		if !insideSection {
			return fmt.Errorf("%w: %q", ErrNoSection, strings.TrimSpace(block[0]))
		}

		fixed, blockChanges := Transform(block, section, sectionExcluded, rename)
		out = append(out, fixed...)
		changes = append(changes, blockChanges...)
		block = block[:0]

		return nil
	}

	for _, line := range lines {
		l := Classify(line)

		switch {
		case l.Category == m.CategorySectionHeader:
			// The pending block still belongs to the previous section and
			// must be transformed under its exclusion flag before the new
			// header is emitted.
			if err := flush(); err != nil {
				return nil, nil, err
			}

			section = strings.TrimSpace(line)
			insideSection = true
			sectionExcluded = excluded(section)
			out = append(out, line)

		case l.Category == m.CategorySwapOpen:
			if err := flush(); err != nil {
				return nil, nil, err
			}

			block = append(block, line)

		case insideSection && l.Category == m.CategoryEndIf:
			// The closing line is part of the block: directive fix-up must
			// see it so nothing is inserted after it.
			block = append(block, line)

			if err := flush(); err != nil {
				return nil, nil, err
			}

		case insideSection:
			block = append(block, line)

		default:
			if l.Category == m.CategoryEndIf {
				slog.Warn("endif outside any section, passing through", "line", strings.TrimSpace(line))
			}

			out = append(out, line)
		}
	}

	if err := flush(); err != nil {
		return nil, nil, err
	}

	return out, changes, nil
}
