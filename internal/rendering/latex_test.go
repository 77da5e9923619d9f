package rendering

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/cv-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLaTeX_FullDocument(t *testing.T) {
	latex, err := RenderLaTeX(sampleDocument(), Options{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(latex, `\documentclass`))
	assert.Contains(t, latex, `\textbf{Juan Pérez}`)
	assert.Contains(t, latex, `juan@email.com \quad +34600111222 \quad Madrid`)
	assert.Contains(t, latex, `\section*{Resumen Profesional}`)
	assert.Contains(t, latex, `\textbf{Desarrollador}\\`)
	assert.Contains(t, latex, `\textit{Acme}\\`)
	assert.Contains(t, latex, "Febrero 2023 - Actual")
	assert.Contains(t, latex, `\textbullet{} Go --- Nivel: Experto`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(latex), `\end{document}`))
}

func TestRenderLaTeX_EmptyDocument(t *testing.T) {
	latex, err := RenderLaTeX(&types.CVDocument{}, Options{})
	require.NoError(t, err)

	assert.Contains(t, latex, `\textbf{Nombre Apellido}`)
	assert.NotContains(t, latex, "Resumen Profesional")
	assert.Contains(t, latex, "Sin experiencia registrada.")
	assert.Contains(t, latex, "Sin educación registrada.")
	assert.Contains(t, latex, "Sin habilidades registradas.")
}

func TestRenderLaTeX_EscapesSpecialCharacters(t *testing.T) {
	doc := sampleDocument()
	doc.PersonalInfo.FullName = "John & Jane"
	doc.PersonalInfo.Summary = "Ahorro de $1M al 100% en #infra"
	doc.Experiences[0].Description = `\input{/etc/passwd}`

	latex, err := RenderLaTeX(doc, Options{})
	require.NoError(t, err)

	assert.Contains(t, latex, `John \& Jane`)
	assert.NotContains(t, latex, "John & Jane")
	assert.Contains(t, latex, `Ahorro de \$1M al 100\% en \#infra`)
	assert.Contains(t, latex, `\textbackslash{}input\{/etc/passwd\}`)
	assert.NotContains(t, latex, `\input{`)
}

func TestRenderLaTeX_Deterministic(t *testing.T) {
	first, err := RenderLaTeX(sampleDocument(), Options{})
	require.NoError(t, err)
	second, err := RenderLaTeX(sampleDocument(), Options{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseLaTeXTemplate_InvalidTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	templatePath := filepath.Join(tmpDir, "invalid.tex")
	templateContent := `\documentclass{article}
\begin{document}
{{.InvalidSyntax{{}}
\end{document}`
	require.NoError(t, os.WriteFile(templatePath, []byte(templateContent), 0644))

	_, err := parseLaTeXTemplate(templatePath)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
}

func TestRenderLaTeX_CustomTemplateWithEscapeFunc(t *testing.T) {
	templatePath := filepath.Join(t.TempDir(), "custom.tex")
	templateContent := `Name: {{.Name}}; raw: {{escape "50%"}}`
	require.NoError(t, os.WriteFile(templatePath, []byte(templateContent), 0644))

	latex, err := RenderLaTeX(sampleDocument(), Options{TemplatePath: templatePath})
	require.NoError(t, err)
	assert.Equal(t, `Name: Juan Pérez; raw: 50\%`, latex)
}

func TestRenderLaTeX_MissingTemplate(t *testing.T) {
	_, err := RenderLaTeX(sampleDocument(), Options{TemplatePath: "/nonexistent/template.tex"})
	var templateErr *TemplateError
	require.True(t, errors.As(err, &templateErr))
	assert.Contains(t, err.Error(), "template file not found")
}
