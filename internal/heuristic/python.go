package heuristic

import (
	"regexp"
	"strings"
)

var (
	pyFuncRe   = regexp.MustCompile(`^(?:async\s+)?def\s+(\w+)\s*\((.*?)\)`)
	pyClassRe  = regexp.MustCompile(`^class\s+(\w+)`)
	pyAssignRe = regexp.MustCompile(`^(?:self\.)?(\w+)\s*=([^=].*)?$`)
	pyPrintRe  = regexp.MustCompile(`print\((.*?)\)`)
)

type pythonScanner struct{}

func (pythonScanner) Language() string { return "python" }

func (pythonScanner) Scan(src Source, a *Analysis) {
	for _, line := range src.Lines {
		switch {
		case strings.HasPrefix(line, "import "), strings.HasPrefix(line, "from "):
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}
			name := strings.Replace(fields[1], ",", "", 1)
			a.Imports = append(a.Imports, Item{
				Name:        name,
				Description: describeLibrary(pythonLibraries, name, pythonLibraryDefault),
			})
		case strings.HasPrefix(line, "def "), strings.HasPrefix(line, "async def "):
			if m := pyFuncRe.FindStringSubmatch(line); m != nil {
				a.Functions = append(a.Functions, Item{Name: m[1], Description: describeFunction(m[1], m[2])})
			}
		case strings.HasPrefix(line, "class "):
			if m := pyClassRe.FindStringSubmatch(line); m != nil {
				a.Classes = append(a.Classes, Item{Name: m[1], Description: classDescription})
			}
		case strings.Contains(line, "="):
			if m := pyAssignRe.FindStringSubmatch(line); m != nil {
				a.addVariable(m[1], inferType(m[2], "True", "False"))
			}
		}
	}

	code := src.Text
	if strings.Contains(code, "print(") {
		a.Purpose = "برنامج يقوم بطباعة نص أو قيم على الشاشة"
	}
	if strings.Contains(code, "input(") {
		a.Purpose = "برنامج تفاعلي يطلب إدخال من المستخدم"
	}
	if containsAny(code, "for ", "while ") {
		a.addConcept(conceptLoops)
		a.Purpose = "برنامج يستخدم التكرار لتنفيذ عمليات متعددة"
	}
	if strings.Contains(code, "if ") {
		a.addConcept(conceptConditionals)
	}
	if strings.Contains(code, "def ") {
		a.addConcept(conceptFunctions)
	}
	if strings.Contains(code, "class ") {
		a.addConcept(conceptOOP)
	}
	if strings.Contains(code, "[") && strings.Contains(code, "]") {
		a.addConcept(conceptLists)
	}
	if strings.Contains(code, "{") && strings.Contains(code, "}") && strings.Contains(code, ":") {
		a.addConcept(conceptDictionaries)
	}

	if containsAny(code, "def main()", "if __name__") {
		a.Steps = append(a.Steps, "يبدأ البرنامج من دالة main()")
	}
	appendDefinitionSteps(a)

	if prints := pyPrintRe.FindAllString(code, -1); len(prints) > 0 {
		a.Output = printedOutput(len(prints), "على الشاشة")
	}
}
