package counter

import (
	"path/filepath"
	"strings"
)

// Extensions is the allow-list of counted file extensions. Matching is
// exact and case-sensitive.
var Extensions = []string{
	".c", ".h", ".cpp", ".asm",
	".py", ".cs", ".scala", ".tcl",
	".sh", ".bat",
	".config", ".ds", ".hds", ".hex",
	".txt", ".md",
	".v", ".sv", ".vhd", ".xdc",
}

// Exclusions lists slash-separated directory sequences whose contents are
// never counted: vendored zydis, the ia32-doc headers and build output.
var Exclusions = []string{
	"dependencies/zydis",
	"dependencies/ia32-doc",
	"build/bin",
}

// Filter decides whether a file qualifies for counting.
type Filter struct {
	extensions map[string]struct{}
	exclusions [][]string
}

// NewFilter builds a filter from an extension allow-list and a set of
// excluded segment sequences.
func NewFilter(extensions, exclusions []string) *Filter {
	f := &Filter{
		extensions: make(map[string]struct{}, len(extensions)),
		exclusions: make([][]string, 0, len(exclusions)),
	}

	for _, ext := range extensions {
		f.extensions[ext] = struct{}{}
	}
	for _, ex := range exclusions {
		if segs := splitSegments(ex); len(segs) > 0 {
			f.exclusions = append(f.exclusions, segs)
		}
	}

	return f
}

// DefaultFilter returns the filter built from Extensions and Exclusions.
func DefaultFilter() *Filter {
	return NewFilter(Extensions, Exclusions)
}

// Qualifies reports whether path has an allowed extension and lies outside
// every excluded directory sequence.
func (f *Filter) Qualifies(path string) bool {
	return f.HasAllowedExtension(path) && !f.IsExcluded(path)
}

// HasAllowedExtension reports whether the extension of path is allowed.
func (f *Filter) HasAllowedExtension(path string) bool {
	_, ok := f.extensions[filepath.Ext(path)]
	return ok
}

// IsExcluded reports whether path contains one of the excluded segment
// sequences as consecutive path elements.
func (f *Filter) IsExcluded(path string) bool {
	segs := splitSegments(path)
	for _, ex := range f.exclusions {
		if containsRun(segs, ex) {
			return true
		}
	}
	return false
}

func splitSegments(path string) []string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	segs := parts[:0]
	for _, p := range parts {
		if p != "" && p != "." {
			segs = append(segs, p)
		}
	}
	return segs
}

func containsRun(segs, run []string) bool {
	for i := 0; i+len(run) <= len(segs); i++ {
		match := true
		for j := range run {
			if segs[i+j] != run[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
