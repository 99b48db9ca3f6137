package ai

import (
	"fmt"
	"strings"
)

// BuildPrompt embeds the language label and the code in the fixed Arabic
// instruction sent to every provider.
func BuildPrompt(code, language string) string {
	builder := &strings.Builder{}
	fmt.Fprintf(builder, "شرح الكود التالي المكتوب بلغة %s باللغة العربية بشكل مفصل وواضح:\n\n", language)
	fmt.Fprintf(builder, "```%s\n%s\n```\n\n", language, code)
	builder.WriteString("اشرح ما يفعله الكود، كيف يعمل، والمفاهيم المهمة. الشرح بالعربية:")
	return builder.String()
}
