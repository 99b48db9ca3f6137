package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("print('hi')", "python")

	assert.True(t, strings.HasPrefix(prompt, "شرح الكود التالي المكتوب بلغة python باللغة العربية"))
	assert.Contains(t, prompt, "```python\nprint('hi')\n```")
	assert.True(t, strings.HasSuffix(prompt, "الشرح بالعربية:"))
}
