package heuristic

import "strings"

var pythonLibraries = map[string]string{
	"numpy":      "للحسابات الرياضية والمصفوفات",
	"pandas":     "لتحليل البيانات",
	"matplotlib": "لرسم المخططات البيانية",
	"requests":   "للتعامل مع HTTP",
	"flask":      "لإنشاء تطبيقات ويب",
	"django":     "إطار عمل ويب متكامل",
	"random":     "لتوليد أرقام عشوائية",
	"math":       "للعمليات الرياضية",
	"datetime":   "للتعامل مع التاريخ والوقت",
	"os":         "للتعامل مع نظام التشغيل",
	"sys":        "للوصول لمعاملات النظام",
	"json":       "للتعامل مع JSON",
}

var javaScriptLibraries = map[string]string{
	"react":   "مكتبة لبناء واجهات المستخدم",
	"express": "إطار عمل لبناء سيرفرات Node.js",
	"axios":   "للتعامل مع HTTP requests",
	"fs":      "للتعامل مع الملفات",
	"path":    "للتعامل مع مسارات الملفات",
}

var javaLibraries = map[string]string{
	"Scanner":     "لقراءة المدخلات من المستخدم",
	"ArrayList":   "قائمة ديناميكية قابلة للتوسع",
	"List":        "واجهة القوائم",
	"HashMap":     "لتخزين أزواج مفتاح وقيمة",
	"Map":         "واجهة الخرائط (مفتاح وقيمة)",
	"Random":      "لتوليد أرقام عشوائية",
	"Arrays":      "أدوات للتعامل مع المصفوفات",
	"IOException": "للتعامل مع أخطاء الإدخال والإخراج",
	"File":        "للتعامل مع الملفات",
	"LocalDate":   "للتعامل مع التاريخ",
}

const (
	pythonLibraryDefault     = "مكتبة خارجية"
	javaScriptLibraryDefault = "مكتبة JavaScript"
	javaLibraryDefault       = "مكتبة Java"
	localModuleDescription   = "ملف محلي داخل المشروع"
)

// describeLibrary looks name up in table, retrying with its first dotted or
// slashed segment ("os.path" -> "os", "@scope/pkg" stays as is).
func describeLibrary(table map[string]string, name, fallback string) string {
	if desc, ok := table[name]; ok {
		return desc
	}
	if idx := strings.IndexAny(name, "./"); idx > 0 {
		if desc, ok := table[name[:idx]]; ok {
			return desc
		}
	}
	return fallback
}

// describeFunction guesses the role of a function from its name prefix.
func describeFunction(name, params string) string {
	params = strings.TrimSpace(params)
	switch {
	case name == "main":
		return "الدالة الرئيسية للبرنامج"
	case strings.HasPrefix(name, "get"):
		return "دالة لجلب أو إرجاع قيمة"
	case strings.HasPrefix(name, "set"):
		return "دالة لتعيين قيمة"
	case strings.HasPrefix(name, "calculate"):
		return "دالة لحساب قيمة"
	case strings.HasPrefix(name, "print"):
		return "دالة للطباعة"
	case params != "":
		return "دالة تأخذ معاملات: " + params
	default:
		return "دالة مخصصة"
	}
}
