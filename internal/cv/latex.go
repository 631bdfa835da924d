package cv

import (
	"strings"
	"text/template"

	"github.com/anand/career-pilot/internal/types"
)

// cvTemplate is the single-page CV layout. All profile values pass through
// the escape function before they reach the document.
const cvTemplate = `\documentclass[a4paper,11pt]{article}
\usepackage[margin=1in]{geometry}
\usepackage{enumitem}
\begin{document}

\begin{center}
{\LARGE \textbf{ {{- escape .Name -}} }}\\[4pt]
{{if .Email}}{{escape .Email}}{{if .Phone}} \textbar{} {{end}}{{end}}{{if .Phone}}{{escape .Phone}}{{end}}{{if .Address}}\\
{{escape .Address}}{{end}}
\end{center}

\section*{Qualification}
{{if .Qualification}}{{escape .Qualification}}{{else}}Not specified{{end}}

{{if .Skills}}\section*{Skills}
\begin{itemize}[noitemsep]
{{range .Skills}}  \item {{escape .}}
{{end}}\end{itemize}
{{end}}
{{- if .Industries}}\section*{Preferred Industries}
\begin{itemize}[noitemsep]
{{range .Industries}}  \item {{escape .}}
{{end}}\end{itemize}
{{end}}
{{- if .Experience}}\section*{Experience}
\begin{itemize}[noitemsep]
{{range .Experience}}  \item \textbf{ {{- escape .RoleTitle -}} }, {{escape .Company}}{{if .StartDate}} ({{escape .StartDate}}{{if .EndDate}} -- {{escape .EndDate}}{{end}}){{end}}
{{end}}\end{itemize}
{{end}}
{{- if .Education}}\section*{Education}
\begin{itemize}[noitemsep]
{{range .Education}}  \item {{escape .School}}{{if .Degree}}, {{escape .Degree}}{{end}}{{if .Field}} ({{escape .Field}}){{end}}
{{end}}\end{itemize}
{{end}}
\end{document}
`

// Document renders the LaTeX CV for a profile.
func Document(profile *types.UserProfile) (string, error) {
	if profile == nil {
		return "", &TemplateError{Message: "profile is nil"}
	}

	tmpl, err := template.New("cv").Funcs(template.FuncMap{
		"escape": EscapeLaTeX,
	}).Parse(cvTemplate)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse template", Cause: err}
	}

	data := struct {
		Name          string
		Email         string
		Phone         string
		Address       string
		Qualification string
		Skills        []string
		Industries    []string
		Experience    []types.ExperienceEntry
		Education     []types.EducationEntry
	}{
		Name:          profile.Name,
		Email:         profile.Email,
		Phone:         profile.MobileNumber,
		Address:       profile.Address,
		Qualification: profile.Qualification,
		Skills:        profile.Skills,
		Industries:    profile.Industries,
		Experience:    profile.Experience,
		Education:     profile.Education,
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return result.String(), nil
}
