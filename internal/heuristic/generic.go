package heuristic

import "regexp"

var (
	genericLoopRe = regexp.MustCompile(`\b(?:for|while|foreach|loop)\b`)
	genericCondRe = regexp.MustCompile(`\bif\b`)
)

// genericScanner handles every language without a dedicated scanner.
type genericScanner struct{}

func (genericScanner) Language() string { return "generic" }

func (genericScanner) Scan(src Source, a *Analysis) {
	code := src.Text
	a.Purpose = "كود برمجي عام"
	if genericLoopRe.MatchString(code) {
		a.addConcept(conceptLoops)
	}
	if genericCondRe.MatchString(code) {
		a.addConcept(conceptConditionals)
	}
	if containsAny(code, "print", "cout", "Console.Write", "echo", "fmt.Print") {
		a.Output = "يطبع نتائج على الشاشة"
	}
}
