package embedder

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// ErrInvalidSymbol is returned when a derived symbol is not a valid C identifier.
	ErrInvalidSymbol = errors.New("invalid symbol name")
	// ErrDuplicateSymbol is returned when two inputs derive the same symbol.
	ErrDuplicateSymbol = errors.New("duplicate symbol name")
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SymbolName derives the array name for an input path: the base filename with
// its last extension removed. Leading dots do not start an extension, so
// ".config" stays ".config" and "a.tar.gz" becomes "a.tar".
func SymbolName(path string) string {
	base := filepath.Base(filepath.ToSlash(path))
	if base == "." || base == "/" {
		return ""
	}

	// Skip leading dots when looking for the extension separator.
	start := 0
	for start < len(base) && base[start] == '.' {
		start++
	}
	if i := strings.LastIndexByte(base[start:], '.'); i >= 0 {
		return base[:start+i]
	}
	return base
}

// CheckSymbols verifies that every input derives a valid, unique C identifier.
func CheckSymbols(inputs []string) error {
	seen := make(map[string]string, len(inputs))
	for _, in := range inputs {
		sym := SymbolName(in)
		if !identRe.MatchString(sym) {
			return fmt.Errorf("%w: %q (from %s)", ErrInvalidSymbol, sym, in)
		}
		if prev, ok := seen[sym]; ok {
			return fmt.Errorf("%w: %q (from %s and %s)", ErrDuplicateSymbol, sym, prev, in)
		}
		seen[sym] = in
	}
	return nil
}
