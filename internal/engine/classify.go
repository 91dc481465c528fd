// Package engine implements the parsing-and-transformation core: line
// classification, section exclusion rules, the block tokenizer, and the
// block transformer. It is pure with respect to I/O; callers hand it an
// already-decoded line sequence and get the rewritten sequence back.
package engine

import (
	"regexp"
	"strconv"
	"strings"

	m "github.com/sanddino/orfix/internal/model"
)

// Canonical directive lines. DirectiveNormalMap is written into blocks that
// carry a NormalMap resource, DirectivePlain into blocks that do not.
const (
	DirectiveNormalMap = `run = CommandList\global\ORFix\ORFix`
	DirectivePlain     = `run = CommandList\global\ORFix\NNFix`

	normalMapMarker = "NormalMap"
)

var (
	swapOpenPattern  = regexp.MustCompile(`(?i)^\s*(?:if|else if)\s+\$swapvar\s*==\s*\d+`)
	endIfPattern     = regexp.MustCompile(`(?i)^\s*endif`)
	slotPattern      = regexp.MustCompile(`^ps-t(\d+)\s*=`)
	directivePattern = regexp.MustCompile(`(?i)^\s*run\s*=\s*CommandList\\global\\ORFix\\(?:NNFix|ORFix)`)
)

// Classify derives a line's category and indentation depth. Unrecognized
// lines fall to CategoryOther; the classifier never fails.
func Classify(line string) m.Line {
	trimmed := strings.TrimLeft(line, " \t")
	l := m.Line{
		Text:         line,
		Depth:        len(line) - len(trimmed),
		Category:     m.CategoryOther,
		HasNormalMap: strings.Contains(line, normalMapMarker),
	}

	stripped := strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(stripped, "[CommandList"), strings.HasPrefix(stripped, "[TextureOverride"):
		l.Category = m.CategorySectionHeader
	case swapOpenPattern.MatchString(line):
		l.Category = m.CategorySwapOpen
	case endIfPattern.MatchString(line):
		l.Category = m.CategoryEndIf
	case directivePattern.MatchString(line):
		l.Category = m.CategoryDirective
	default:
		if match := slotPattern.FindStringSubmatch(trimmed); match != nil {
			l.Category = m.CategorySlotAssignment
			l.Slot, _ = strconv.Atoi(match[1])
			l.IsExtra = strings.Contains(trimmed, "Extra")
			l.IsDiffuse = strings.Contains(trimmed, "Diffuse")
		}
	}

	return l
}

// correctDirective picks the canonical directive for a block: the normal-map
// target when any line carries the NormalMap marker, the plain target
// otherwise.
func correctDirective(block []string) string {
	for _, line := range block {
		if strings.Contains(line, normalMapMarker) {
			return DirectiveNormalMap
		}
	}

	return DirectivePlain
}
