package services

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// ignoreFileNames are read in order, so rules in .ignore override .gitignore
// rules of the same directory.
var ignoreFileNames = []string{".gitignore", ".ignore"}

var osReadFile = os.ReadFile

// ignoreRules is the pattern stack in effect for one directory: the parent's
// patterns followed by those of the directory itself. Later patterns win.
type ignoreRules struct {
	patterns []gitignore.Pattern
	matcher  gitignore.Matcher
}

func newIgnoreRules(patterns []gitignore.Pattern) ignoreRules {
	if len(patterns) == 0 {
		return ignoreRules{}
	}
	return ignoreRules{
		patterns: patterns,
		matcher:  gitignore.NewMatcher(patterns),
	}
}

// extend returns the rules for dir, whose path segments below the scan root
// are given. Parent rules are shared, never modified.
func (rules ignoreRules) extend(dir string, segments []string) (ignoreRules, error) {
	var own []gitignore.Pattern
	var firstErr error
	for _, name := range ignoreFileNames {
		content, err := osReadFile(filepath.Join(dir, name))
		if err != nil {
			if !os.IsNotExist(err) && firstErr == nil {
				firstErr = err
			}
			continue
		}
		own = append(own, parseIgnorePatterns(content, segments)...)
	}
	if len(own) == 0 {
		return rules, firstErr
	}
	return newIgnoreRules(slices.Concat(rules.patterns, own)), firstErr
}

func (rules ignoreRules) ignored(segments []string, isDir bool) bool {
	if rules.matcher == nil {
		return false
	}
	return rules.matcher.Match(segments, isDir)
}

func parseIgnorePatterns(content []byte, domain []string) []gitignore.Pattern {
	patterns := make([]gitignore.Pattern, 0)
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, "#") {
			continue
		}
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, slices.Clone(domain)))
	}
	return patterns
}
