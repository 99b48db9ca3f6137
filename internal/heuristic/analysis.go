// Package heuristic builds Arabic code explanations from pattern matching
// alone. It never touches the network and never fails: when a pattern is
// absent the matching section of the explanation is simply left out.
package heuristic

import "strings"

// Complexity labels a snippet by its number of non-blank lines.
type Complexity string

const (
	ComplexitySimple  Complexity = "بسيط"
	ComplexityMedium  Complexity = "متوسط"
	ComplexityComplex Complexity = "معقد"
)

const maxVariables = 5

// Item is a named element detected in the source with a short Arabic description.
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Variable is an assignment target with its inferred type label.
type Variable struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Analysis aggregates everything detected in a single snippet. It is built
// fresh for every call and never shared.
type Analysis struct {
	Language   string     `json:"language"`
	LineCount  int        `json:"line_count"`
	Complexity Complexity `json:"complexity"`
	Purpose    string     `json:"purpose,omitempty"`
	Imports    []Item     `json:"imports"`
	Functions  []Item     `json:"functions"`
	Classes    []Item     `json:"classes"`
	Variables  []Variable `json:"variables"`
	Concepts   []string   `json:"concepts"`
	Steps      []string   `json:"steps"`
	Output     string     `json:"output,omitempty"`
}

// Source is the input handed to a Scanner: the raw text plus its trimmed,
// non-blank lines.
type Source struct {
	Text  string
	Lines []string
}

// Scanner fills an Analysis for one source language.
type Scanner interface {
	Language() string
	Scan(src Source, a *Analysis)
}

var scanners = map[string]Scanner{
	"python":     pythonScanner{},
	"javascript": javaScriptScanner{},
	"java":       javaScanner{},
}

// ScannerFor returns the scanner registered for the language tag, or the
// generic scanner when the tag is not recognised.
func ScannerFor(language string) Scanner {
	if s, ok := scanners[NormalizeLanguage(language)]; ok {
		return s
	}
	return genericScanner{}
}

// Languages lists the tags that have a dedicated scanner.
func Languages() []string {
	return []string{"python", "javascript", "java"}
}

// Analyze scans code with the scanner selected by language.
func Analyze(code, language string) *Analysis {
	lines := splitLines(code)
	a := &Analysis{
		Language:   strings.TrimSpace(language),
		LineCount:  len(lines),
		Complexity: ComplexityFor(len(lines)),
	}
	ScannerFor(language).Scan(Source{Text: code, Lines: lines}, a)
	return a
}

// Explain analyzes code and renders the Arabic explanation. Identical input
// always yields byte-identical output.
func Explain(code, language string) string {
	return Render(Analyze(code, language))
}

// ComplexityFor maps a non-blank line count to its complexity label.
func ComplexityFor(lines int) Complexity {
	switch {
	case lines > 50:
		return ComplexityComplex
	case lines > 20:
		return ComplexityMedium
	default:
		return ComplexitySimple
	}
}

func splitLines(code string) []string {
	raw := strings.Split(code, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func (a *Analysis) addConcept(concept string) {
	for _, existing := range a.Concepts {
		if existing == concept {
			return
		}
	}
	a.Concepts = append(a.Concepts, concept)
}

func (a *Analysis) addVariable(name, typ string) {
	if len(a.Variables) >= maxVariables || name == "" {
		return
	}
	a.Variables = append(a.Variables, Variable{Name: name, Type: typ})
}
