package domain

import (
	"fmt"
	"path"
	"strings"
)

type FilterKind int

const (
	FilterExtension FilterKind = iota
	FilterFileName
)

func (kind FilterKind) String() string {
	switch kind {
	case FilterExtension:
		return "extension"
	case FilterFileName:
		return "name"
	default:
		return fmt.Sprintf("FilterKind(%d)", int(kind))
	}
}

// Filter is a case-sensitive substring test against either a file's
// extension or its base name.
type Filter struct {
	Kind FilterKind
	Text string
}

func Extension(text string) Filter {
	return Filter{Kind: FilterExtension, Text: text}
}

func FileName(text string) Filter {
	return Filter{Kind: FilterFileName, Text: text}
}

func (filter Filter) Contains(candidate string) bool {
	return strings.Contains(candidate, filter.Text)
}

func (filter Filter) String() string {
	return fmt.Sprintf("%s:%s", filter.Kind, filter.Text)
}

// FilterSet splits filters into an extension group and a name group. A file
// passes a group if it matches any filter in it, and passes the set only if
// it passes every non-empty group.
type FilterSet struct {
	extensions []Filter
	names      []Filter
}

func NewFilterSet(filters []Filter) FilterSet {
	var set FilterSet
	for _, filter := range filters {
		switch filter.Kind {
		case FilterExtension:
			set.extensions = append(set.extensions, filter)
		case FilterFileName:
			set.names = append(set.names, filter)
		}
	}
	return set
}

func (set FilterSet) Empty() bool {
	return len(set.extensions) == 0 && len(set.names) == 0
}

// Match reports whether a file with the given base name passes the set.
func (set FilterSet) Match(name string) bool {
	if len(set.names) > 0 && !anyContains(set.names, name) {
		return false
	}
	if len(set.extensions) > 0 {
		ext, ok := FileExtension(name)
		if !ok || !anyContains(set.extensions, ext) {
			return false
		}
	}
	return true
}

// FileExtension returns the text after the last dot of name. Names without a
// dot, and dotfiles such as ".bashrc", have no extension.
func FileExtension(name string) (string, bool) {
	base := path.Base(name)
	ext := path.Ext(base)
	if ext == "" || ext == base {
		return "", false
	}
	return strings.TrimPrefix(ext, "."), true
}

func anyContains(filters []Filter, candidate string) bool {
	for _, filter := range filters {
		if filter.Contains(candidate) {
			return true
		}
	}
	return false
}
