package heuristic

import (
	"regexp"
	"strings"
)

var (
	javaImportRe = regexp.MustCompile(`^import\s+(?:static\s+)?([\w.]+(?:\.\*)?)\s*;`)
	javaTypeRe   = regexp.MustCompile(`\b(class|interface|enum|record)\s+(\w+)`)
	javaMethodRe = regexp.MustCompile(`^(?:(?:public|private|protected|static|final|abstract|synchronized|native|default)\s+)*(?:<[^>]+>\s+)?([\w.]+(?:<[^>]*>)?(?:\[\])*)\s+(\w+)\s*\(([^)]*)\)\s*(?:throws\s+[\w.,\s]+)?\{?\s*$`)
	javaAssignRe = regexp.MustCompile(`^(?:(?:final|static|private|public|protected)\s+)*([\w.]+(?:<[^>]*>)?(?:\[\])*)\s+(\w+)\s*=([^=].*)?$`)
	javaPrintRe  = regexp.MustCompile(`System\.out\.print(?:ln|f)?\(`)
)

var javaKeywords = map[string]bool{
	"if": true, "for": true, "while": true, "switch": true, "catch": true,
	"return": true, "new": true, "else": true, "throw": true, "synchronized": true,
}

var javaTypeDescriptions = map[string]string{
	"class":     classDescription,
	"interface": "واجهة (Interface) تحدد سلوكاً مشتركاً",
	"enum":      "تعداد (Enum) لمجموعة قيم ثابتة",
	"record":    "سجل (Record) لحمل البيانات",
}

type javaScanner struct{}

func (javaScanner) Language() string { return "java" }

func (javaScanner) Scan(src Source, a *Analysis) {
	for _, line := range src.Lines {
		if strings.HasPrefix(line, "import ") {
			if m := javaImportRe.FindStringSubmatch(line); m != nil {
				name := javaImportName(m[1])
				a.Imports = append(a.Imports, Item{
					Name:        name,
					Description: describeLibrary(javaLibraries, name, javaLibraryDefault),
				})
			}
			continue
		}

		if strings.Contains(line, "public static void main") {
			a.Purpose = "برنامج Java رئيسي قابل للتنفيذ"
		}

		if m := javaTypeRe.FindStringSubmatch(line); m != nil && !strings.HasPrefix(line, "//") && !strings.Contains(line, "\"") {
			a.Classes = append(a.Classes, Item{Name: m[2], Description: javaTypeDescriptions[m[1]]})
			continue
		}

		if m := javaMethodRe.FindStringSubmatch(line); m != nil && !javaKeywords[m[1]] && !javaKeywords[m[2]] {
			desc := describeFunction(m[2], m[3])
			if m[2] == "main" {
				desc = "نقطة بداية تنفيذ البرنامج"
			}
			a.Functions = append(a.Functions, Item{Name: m[2], Description: desc})
			continue
		}

		if m := javaAssignRe.FindStringSubmatch(line); m != nil && !javaKeywords[m[1]] {
			a.addVariable(m[2], javaVariableType(m[1], m[3]))
		}
	}

	code := src.Text
	if strings.Contains(code, "class ") {
		a.addConcept(conceptOOP)
	}
	if containsAny(code, "for (", "for(", "while (", "while(") {
		a.addConcept(conceptLoops)
	}
	if containsAny(code, "if (", "if(") {
		a.addConcept(conceptConditionals)
	}
	if strings.Contains(code, "try") && strings.Contains(code, "catch") {
		a.addConcept(conceptExceptions)
	}

	appendDefinitionSteps(a)

	if count := len(javaPrintRe.FindAllStringIndex(code, -1)); count > 0 {
		a.Output = printedOutput(count, "في Terminal")
	}
}

func javaImportName(path string) string {
	parts := strings.Split(path, ".")
	name := parts[len(parts)-1]
	if name == "*" && len(parts) > 1 {
		return parts[len(parts)-2] + ".*"
	}
	return name
}

func javaVariableType(declared, rhs string) string {
	base := declared
	if idx := strings.Index(base, "<"); idx > 0 {
		base = base[:idx]
	}
	switch {
	case strings.HasSuffix(declared, "[]"):
		return TypeList
	case base == "int" || base == "long" || base == "short" || base == "byte" || base == "Integer" || base == "Long":
		return TypeInteger
	case base == "double" || base == "float" || base == "Double" || base == "Float":
		return TypeFloat
	case base == "boolean" || base == "Boolean":
		return TypeBoolean
	case base == "String" || base == "char":
		return TypeString
	case strings.HasSuffix(base, "List") || strings.HasSuffix(base, "Set"):
		return TypeList
	case strings.HasSuffix(base, "Map"):
		return TypeDictionary
	}
	return inferType(rhs, "true", "false")
}
