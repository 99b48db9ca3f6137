package heuristic

import (
	"fmt"
	"strings"
)

// Render assembles the templated Arabic explanation. Sections appear in a
// fixed order and a section is omitted when it has nothing to show.
func Render(a *Analysis) string {
	if a == nil {
		return ""
	}
	name := DisplayName(a.Language)
	b := &strings.Builder{}

	fmt.Fprintf(b, "📖 **شرح الكود (%s)**\n\n", name)

	b.WriteString("**📋 نظرة عامة:**\n")
	fmt.Fprintf(b, "• اللغة: %s\n", name)
	fmt.Fprintf(b, "• عدد الأسطر: %d\n", a.LineCount)
	fmt.Fprintf(b, "• مستوى التعقيد: %s\n\n", a.Complexity)

	if a.Purpose != "" {
		fmt.Fprintf(b, "**🎯 الغرض من الكود:**\n%s\n\n", a.Purpose)
	}

	if len(a.Imports) > 0 {
		b.WriteString("**📦 المكتبات المستوردة:**\n")
		for _, imp := range a.Imports {
			fmt.Fprintf(b, "• %s - %s\n", imp.Name, imp.Description)
		}
		b.WriteString("\n")
	}

	if len(a.Functions) > 0 {
		b.WriteString("**⚙️ الدوال (Functions):**\n")
		for _, fn := range a.Functions {
			fmt.Fprintf(b, "• **%s**: %s\n", fn.Name, fn.Description)
		}
		b.WriteString("\n")
	}

	if len(a.Classes) > 0 {
		b.WriteString("**🏗️ الكلاسات (Classes):**\n")
		for _, cls := range a.Classes {
			fmt.Fprintf(b, "• **%s**: %s\n", cls.Name, cls.Description)
		}
		b.WriteString("\n")
	}

	if len(a.Variables) > 0 {
		b.WriteString("**📊 المتغيرات الرئيسية:**\n")
		for _, v := range a.Variables {
			fmt.Fprintf(b, "• %s (%s)\n", v.Name, v.Type)
		}
		b.WriteString("\n")
	}

	if len(a.Concepts) > 0 {
		b.WriteString("**💡 المفاهيم البرمجية المستخدمة:**\n")
		for _, concept := range a.Concepts {
			fmt.Fprintf(b, "• %s\n", concept)
		}
		b.WriteString("\n")
	}

	if len(a.Steps) > 0 {
		b.WriteString("**📝 شرح الخطوات:**\n")
		for i, step := range a.Steps {
			fmt.Fprintf(b, "%d. %s\n", i+1, step)
		}
		b.WriteString("\n")
	}

	if a.Output != "" {
		fmt.Fprintf(b, "**🖥️ النتيجة المتوقعة:**\n%s\n\n", a.Output)
	}

	return b.String()
}
