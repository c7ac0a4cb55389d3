package readme

// UsageExample is a single code example extracted from a README.
// Examples are immutable once returned; their only identity is their
// position in the returned slice, which follows document order.
type UsageExample struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Code        string `json:"code"`
	Language    string `json:"language"`
}

// InstallationInfo holds at most one installation snippet per known
// packaging tool, each a verbatim substring of the source document.
// A document without any recognizable signature yields the zero value.
type InstallationInfo struct {
	SPM       string `json:"spm,omitempty"`
	Carthage  string `json:"carthage,omitempty"`
	CocoaPods string `json:"cocoapods,omitempty"`
}

// IsEmpty reports whether no installation snippet was found.
func (i InstallationInfo) IsEmpty() bool {
	return i.SPM == "" && i.Carthage == "" && i.CocoaPods == ""
}
