package rendering

import (
	"testing"

	"github.com/jonathan/cv-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainText_FullDocument(t *testing.T) {
	markup, err := RenderHTML(sampleDocument(), Options{})
	require.NoError(t, err)

	text, err := PlainText(markup)
	require.NoError(t, err)

	assert.Contains(t, text, "Juan Pérez\n==========\n")
	assert.Contains(t, text, "📧 juan@email.com  📱 +34600111222  📍 Madrid")
	assert.Contains(t, text, "Experiencia Laboral\n-------------------\n")
	assert.Contains(t, text, "  Desarrollador | Acme | Marzo 2020 - Enero 2023 | APIs internas\n")
	assert.Contains(t, text, "  Arquitecto | Globex | Febrero 2023 - Actual\n")
	assert.Contains(t, text, "  Grado | Informática | Universidad de Sevilla | Año: 2019\n")
	assert.Contains(t, text, "  • Go — Nivel: Experto\n")
	assert.NotContains(t, text, "font-family")
}

func TestPlainText_EmptyDocument(t *testing.T) {
	markup, err := RenderHTML(&types.CVDocument{}, Options{Locale: "en"})
	require.NoError(t, err)

	text, err := PlainText(markup)
	require.NoError(t, err)

	assert.Contains(t, text, "Full Name\n")
	assert.Contains(t, text, "  No experience recorded.\n")
	assert.Contains(t, text, "  No education recorded.\n")
	assert.Contains(t, text, "  No skills recorded.\n")
}
