package importer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// requiredColumns are the normalized header names every statement must
// provide. Matching is case- and diacritic-insensitive.
var requiredColumns = []string{
	"data lancamento",
	"historico",
	"descricao",
	"valor",
	"saldo",
}

var lineBreakRe = regexp.MustCompile(`\r?\n`)

// stripDiacritics decomposes accented runes and drops the combining marks,
// so "Descrição" and "Descricao" normalize to the same key.
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeKey canonicalizes a CSV column name: BOM removed, diacritics
// stripped, trimmed, lowercased.
func NormalizeKey(key string) string {
	key = strings.ReplaceAll(key, "\uFEFF", "")
	if stripped, _, err := transform.String(stripDiacritics, key); err == nil {
		key = stripped
	}
	return strings.ToLower(strings.TrimSpace(key))
}

// NormalizeStatement strips the free-text banner some banks print above the
// real CSV and returns the text starting at the true header row. When no
// line qualifies as a header the input is returned unchanged; the parser
// will then fail with a clear error instead of misreading banner text.
func NormalizeStatement(raw string) string {
	lines := lineBreakRe.Split(raw, -1)
	idx := findHeaderLine(lines)
	if idx == -1 {
		return raw
	}
	return strings.Join(lines[idx:], "\n")
}

// findHeaderLine returns the index of the first line whose column set,
// split by comma or semicolon and normalized, covers every required column.
func findHeaderLine(lines []string) int {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		for _, delimiter := range []string{",", ";"} {
			columns := strings.Split(trimmed, delimiter)
			normalized := make(map[string]bool, len(columns))
			for _, col := range columns {
				normalized[NormalizeKey(col)] = true
			}
			hasAll := true
			for _, want := range requiredColumns {
				if !normalized[want] {
					hasAll = false
					break
				}
			}
			if hasAll {
				return i
			}
		}
	}
	return -1
}

// DetectDelimiter inspects the first line of the cleaned statement:
// semicolon when present, comma otherwise.
func DetectDelimiter(cleaned string) rune {
	firstLine, _, _ := strings.Cut(cleaned, "\n")
	if strings.ContainsRune(firstLine, ';') {
		return ';'
	}
	return ','
}
