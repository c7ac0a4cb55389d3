package readme

import (
	"regexp"
	"strings"
)

// Installation signatures. Go's regexp engine (RE2) runs in linear time,
// so these single-line patterns cannot be driven into backtracking blowups
// by adversarial input.
var (
	// Carthage: github "owner/repo" with an optional version requirement.
	carthageLinePattern = regexp.MustCompile(`github\s+"[^"\s]+/[^"\s]+"`)

	// CocoaPods: pod 'Name' or pod "Name".
	cocoapodsLinePattern = regexp.MustCompile(`pod\s+['"][A-Za-z0-9_./+-]+['"]`)
)

// spmSignature marks a Swift Package Manager dependency declaration inside
// a fenced block.
const spmSignature = ".package("

func (e *Extractor) extractInstallation(doc string) InstallationInfo {
	var info InstallationInfo
	lines := splitLines(doc)

	// SPM: first fenced block containing a package declaration, captured
	// verbatim with the fences stripped.
	for _, b := range scanBlocks(lines, 0, len(lines)) {
		if strings.Contains(b.body, spmSignature) {
			info.SPM = b.body
			break
		}
	}

	// Carthage and CocoaPods: first matching line each, captured verbatim.
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		if info.Carthage == "" && carthageLinePattern.MatchString(t) {
			info.Carthage = t
		}
		if info.CocoaPods == "" && cocoapodsLinePattern.MatchString(t) {
			info.CocoaPods = t
		}
		if info.Carthage != "" && info.CocoaPods != "" {
			break
		}
	}
	return info
}
