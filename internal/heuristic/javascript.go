package heuristic

import (
	"regexp"
	"strings"
)

var (
	jsQuotedRe   = regexp.MustCompile("['\"`](.+?)['\"`]")
	jsFuncRe     = regexp.MustCompile(`\bfunction\b\s*\*?\s*(\w+)\s*\(`)
	jsArrowRe    = regexp.MustCompile(`^(?:export\s+)?(?:const|let|var)\s+(\w+)\s*=\s*(?:async\s*)?(?:\(|\w+\s*=>|function\b)`)
	jsClassRe    = regexp.MustCompile(`^(?:export\s+)?(?:default\s+)?class\s+(\w+)`)
	jsAssignRe   = regexp.MustCompile(`^(?:export\s+)?(?:const|let|var)\s+(\w+)\s*=([^=].*)?$`)
	jsConsoleRe  = regexp.MustCompile(`console\.log\(`)
	jsDeclPrefix = []string{"const ", "let ", "var "}
)

type javaScriptScanner struct{}

func (javaScriptScanner) Language() string { return "javascript" }

func (javaScriptScanner) Scan(src Source, a *Analysis) {
	for _, line := range src.Lines {
		isDecl := hasAnyPrefix(line, jsDeclPrefix...) || hasAnyPrefix(line, "export const ", "export let ", "export var ")

		if strings.HasPrefix(line, "import ") || (isDecl && strings.Contains(line, "require(")) {
			if m := jsQuotedRe.FindStringSubmatch(line); m != nil {
				a.Imports = append(a.Imports, Item{Name: m[1], Description: describeJSModule(m[1])})
			}
			continue
		}

		if m := jsClassRe.FindStringSubmatch(line); m != nil {
			a.Classes = append(a.Classes, Item{Name: m[1], Description: classDescription})
			continue
		}

		if m := jsArrowRe.FindStringSubmatch(line); m != nil && containsAny(line, "=>", "function") {
			desc := "Arrow function حديثة"
			if !strings.Contains(line, "=>") {
				desc = "دالة لتنفيذ مهمة محددة"
			}
			a.Functions = append(a.Functions, Item{Name: m[1], Description: desc})
			continue
		}

		if strings.Contains(line, "function") {
			if m := jsFuncRe.FindStringSubmatch(line); m != nil {
				a.Functions = append(a.Functions, Item{Name: m[1], Description: "دالة لتنفيذ مهمة محددة"})
				continue
			}
		}

		if isDecl {
			if m := jsAssignRe.FindStringSubmatch(line); m != nil {
				a.addVariable(m[1], inferType(m[2], "true", "false"))
			}
		}
	}

	code := src.Text
	if strings.Contains(code, "console.log") {
		a.Purpose = "برنامج يطبع نتائج في Console"
	}
	if strings.Contains(code, "document.") {
		a.Purpose = "سكريبت للتعامل مع عناصر صفحة الويب"
	}

	if containsAny(code, "for (", "for(", "while (", "while(", ".forEach(") {
		a.addConcept(conceptLoops)
	}
	if containsAny(code, "if (", "if(") {
		a.addConcept(conceptConditionals)
	}
	if containsAny(code, "function", "=>") {
		a.addConcept(conceptFunctions)
	}
	if strings.Contains(code, "class ") {
		a.addConcept(conceptOOP)
	}
	if strings.Contains(code, "addEventListener") {
		a.addConcept(conceptEvents)
	}
	if containsAny(code, "async ", "await ") {
		a.addConcept(conceptAsync)
	}
	if containsAny(code, "fetch(", "axios", "XMLHttpRequest") {
		a.addConcept(conceptHTTP)
	}

	appendDefinitionSteps(a)

	if count := len(jsConsoleRe.FindAllStringIndex(code, -1)); count > 0 {
		a.Output = printedOutput(count, "في Console")
	}
}

func describeJSModule(name string) string {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "/") {
		return localModuleDescription
	}
	return describeLibrary(javaScriptLibraries, name, javaScriptLibraryDefault)
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
