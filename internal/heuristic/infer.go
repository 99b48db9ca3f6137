package heuristic

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	TypeList       = "قائمة (List)"
	TypeDictionary = "قاموس (Dictionary)"
	TypeString     = "نص (String)"
	TypeFloat      = "رقم عشري (Float)"
	TypeInteger    = "رقم (Integer)"
	TypeBoolean    = "قيمة منطقية (Boolean)"
	TypeObject     = "كائن (Object)"
	TypeUnknown    = "متغير"
)

const (
	conceptLoops        = "الحلقات التكرارية (Loops)"
	conceptConditionals = "الشروط المنطقية (Conditionals)"
	conceptFunctions    = "الدوال (Functions)"
	conceptOOP          = "البرمجة الكائنية (OOP)"
	conceptLists        = "القوائم (Lists)"
	conceptDictionaries = "القواميس (Dictionaries)"
	conceptEvents       = "معالجة الأحداث (Event Handling)"
	conceptAsync        = "البرمجة غير المتزامنة (Async)"
	conceptHTTP         = "طلبات HTTP"
	conceptExceptions   = "معالجة الاستثناءات (Exceptions)"
)

const classDescription = "كلاس يمثل كائن برمجي"

var (
	quotedRe  = regexp.MustCompile("^[rRbBfFuU]{0,2}[\"'`]")
	floatRe   = regexp.MustCompile(`^-?\d+\.\d+$`)
	integerRe = regexp.MustCompile(`^-?\d+$`)
)

// inferType guesses a type label from the shape of an assignment's
// right-hand side. boolLiterals lists the language's boolean spellings.
func inferType(rhs string, boolLiterals ...string) string {
	rhs = strings.TrimSpace(rhs)
	rhs = strings.TrimSpace(strings.TrimSuffix(rhs, ";"))
	switch {
	case strings.HasPrefix(rhs, "["):
		return TypeList
	case strings.HasPrefix(rhs, "{"):
		return TypeDictionary
	case quotedRe.MatchString(rhs):
		return TypeString
	case floatRe.MatchString(rhs):
		return TypeFloat
	case integerRe.MatchString(rhs):
		return TypeInteger
	case strings.HasPrefix(rhs, "new "):
		return TypeObject
	}
	for _, literal := range boolLiterals {
		if rhs == literal {
			return TypeBoolean
		}
	}
	return TypeUnknown
}

func containsAny(text string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

func itemNames(items []Item) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

// appendDefinitionSteps adds the narrative steps shared by every scanner,
// in declaration order: imports, variables, classes, functions.
func appendDefinitionSteps(a *Analysis) {
	if len(a.Imports) > 0 {
		a.Steps = append(a.Steps, "استيراد المكتبات المطلوبة: "+strings.Join(itemNames(a.Imports), ", "))
	}
	if len(a.Variables) > 0 {
		a.Steps = append(a.Steps, "تعريف المتغيرات الأساسية")
	}
	if len(a.Classes) > 0 {
		a.Steps = append(a.Steps, fmt.Sprintf("تعريف %d كلاس لتنظيم البيانات والسلوك", len(a.Classes)))
	}
	if len(a.Functions) > 0 {
		a.Steps = append(a.Steps, fmt.Sprintf("تعريف %d دالة لتنفيذ المهام", len(a.Functions)))
	}
}

func printedOutput(count int, target string) string {
	return fmt.Sprintf("سيطبع البرنامج %d نتيجة %s", count, target)
}
