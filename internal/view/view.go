package view

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"
)

// Page names as registered with gin.
const (
	LoginPage          = "login.html"
	RegisterPage       = "register.html"
	AdminDashboardPage = "admin_dashboard.html"
	StudentDashboard   = "student_dashboard.html"
	TakeExamPage       = "take_exam.html"
	ExamResultPage     = "exam_result.html"
	ErrorPage          = "error.html"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"join": strings.Join,
	"inc":  func(i int) int { return i + 1 },
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
	"percent": func(p float64) string { return fmt.Sprintf("%.1f%%", p) },
	"datetime": func(t time.Time) string {
		return t.UTC().Format("2006-01-02 15:04:05")
	},
	"optionFields":  func() []string { return []string{"option_a", "option_b", "option_c", "option_d"} },
	"optionLetters": func() []string { return []string{"A", "B", "C", "D"} },
}

// Templates parses every embedded page.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}
