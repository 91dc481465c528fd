package engine

import "regexp"

// Sections whose name ends in one of these suffixes hold geometry or
// metadata, never shading, and must not receive run lines.
var autoExcludePattern = regexp.MustCompile(
	`(?i)^\[(?:commandlist|textureoverride).*(?:ib|position|texcoord|blend|info|vertexlimitraise)\]$`)

// AutoExcluded reports whether the section name matches one of the fixed
// auto-exclusion suffixes. The rule is case-insensitive and not overridable.
func AutoExcluded(section string) bool {
	return autoExcludePattern.MatchString(section)
}

// Excluded reports whether a section's blocks are exempt from
// transformation: auto-excluded sections always are, everything else only
// through membership in the caller-supplied manual set.
func Excluded(section string, manual map[string]struct{}) bool {
	if AutoExcluded(section) {
		return true
	}

	_, ok := manual[section]

	return ok
}
