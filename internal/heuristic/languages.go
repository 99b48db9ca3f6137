package heuristic

import "strings"

var displayNames = map[string]string{
	"python":     "Python",
	"javascript": "JavaScript",
	"java":       "Java",
	"cpp":        "C++",
	"csharp":     "C#",
	"php":        "PHP",
	"ruby":       "Ruby",
	"go":         "Go",
	"rust":       "Rust",
	"swift":      "Swift",
	"kotlin":     "Kotlin",
	"typescript": "TypeScript",
	"html":       "HTML",
	"css":        "CSS",
	"sql":        "SQL",
	"bash":       "Bash",
}

var languageAliases = map[string]string{
	"py":      "python",
	"python3": "python",
	"js":      "javascript",
	"node":    "javascript",
	"nodejs":  "javascript",
	"mjs":     "javascript",
	"ts":      "typescript",
	"c++":     "cpp",
	"c#":      "csharp",
	"cs":      "csharp",
	"golang":  "go",
	"sh":      "bash",
	"shell":   "bash",
	"rb":      "ruby",
	"rs":      "rust",
	"kt":      "kotlin",
}

// NormalizeLanguage lower-cases a language tag and resolves common aliases
// and display names ("Python", "C++") to their canonical tag.
func NormalizeLanguage(language string) string {
	tag := strings.ToLower(strings.TrimSpace(language))
	if canonical, ok := languageAliases[tag]; ok {
		return canonical
	}
	return tag
}

// DisplayName returns the human-readable label for a language tag. Unknown
// tags are returned as given.
func DisplayName(language string) string {
	if name, ok := displayNames[NormalizeLanguage(language)]; ok {
		return name
	}
	return strings.TrimSpace(language)
}
