package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validJSON = "../../internal/cvfile/testdata/valid.json"
	validYAML = "../../internal/cvfile/testdata/valid.yaml"
)

// executeCommand runs the root command in-process with fresh flag values.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithInput(t, "", args...)
}

// executeWithInput is executeCommand with stdin answers.
func executeWithInput(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	rootConfigPath, rootVerbose = "", false
	renderInputFile, renderOutputFile, renderFormat, renderWatch = "", "", "html", false
	previewInputFile = ""
	validateJobs = 4
	exportInputFile, exportConverter, exportView, exportShare = "", "", false, false
	newOutputFile, newPDF, newNoPhoto = "", false, false

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeInvalidCV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "invalid.json")
	content := `{
  "personalInfo": {"fullName": "Juan", "email": "no-es-un-email", "phone": "+34600111222", "location": "Madrid"},
  "experiences": [],
  "education": [],
  "skills": []
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidate_ValidFiles(t *testing.T) {
	out, err := executeCommand(t, "validate", validJSON, validYAML)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "✅ VALID"))
}

func TestValidate_ReportsInvalidFilesInOrder(t *testing.T) {
	invalid := writeInvalidCV(t)

	out, err := executeCommand(t, "validate", "--jobs", "2", invalid, validJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files are invalid")

	invalidAt := strings.Index(out, "❌ INVALID")
	validAt := strings.Index(out, "✅ VALID")
	require.NotEqual(t, -1, invalidAt)
	require.NotEqual(t, -1, validAt)
	assert.Less(t, invalidAt, validAt)
}

func TestValidate_MissingFile(t *testing.T) {
	out, err := executeCommand(t, "validate", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, out, "❌ INVALID")
}

func TestValidate_RejectsZeroJobs(t *testing.T) {
	_, err := executeCommand(t, "validate", "--jobs", "0", validJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--jobs")
}

func TestRender_HTMLToFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out", "cv.html")

	out, err := executeCommand(t, "render", "--in", validJSON, "--out", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "Rendered")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
	assert.Contains(t, string(data), "Juan Pérez")
}

func TestRender_LaTeXToStdout(t *testing.T) {
	out, err := executeCommand(t, "render", "--in", validYAML, "--format", "latex")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `\documentclass`))
	assert.Contains(t, out, `\textbf{Juan Pérez}`)
}

func TestRender_RejectsUnknownFormat(t *testing.T) {
	_, err := executeCommand(t, "render", "--in", validJSON, "--format", "docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestRender_WatchRequiresOut(t *testing.T) {
	_, err := executeCommand(t, "render", "--in", validJSON, "--watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch requires --out")
}

func TestRender_InvalidDocument(t *testing.T) {
	_, err := executeCommand(t, "render", "--in", writeInvalidCV(t))
	require.Error(t, err)
}

func TestPreview_PrintsPlainText(t *testing.T) {
	out, err := executeCommand(t, "preview", "--in", validJSON)
	require.NoError(t, err)
	assert.Contains(t, out, "Juan Pérez\n==========\n")
	assert.Contains(t, out, "Experiencia Laboral")
	assert.NotContains(t, out, "<html")
}

func TestExport_ReportsToCommandOutput(t *testing.T) {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		t.Skip("pdflatex not installed")
	}
	outDir := t.TempDir()
	t.Setenv("CV_OUTPUT_DIR", outDir)

	out, err := executeCommand(t, "export", "--in", validJSON, "--converter", "latex")
	require.NoError(t, err)
	assert.Contains(t, out, "PDF GENERATED")
	assert.Contains(t, out, "File:")
	assert.FileExists(t, filepath.Join(outDir, "cv.pdf"))
}

func TestExport_MissingInputFile(t *testing.T) {
	_, err := executeCommand(t, "export", "--in", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestNew_WizardWritesCVFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "cv.yaml")
	answers := strings.Join([]string{
		"Ana García", "ana@email.com", "+34911222333", "Sevilla", "",
		"n", // experience
		"n", // education
		"s", "Go", "avanzado",
		"n", // another skill
	}, "\n") + "\n"

	out, err := executeWithInput(t, answers, "new", "--out", dest, "--no-photo")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved CV to "+dest)

	validateOut, err := executeCommand(t, "validate", dest)
	require.NoError(t, err)
	assert.Contains(t, validateOut, "✅ VALID")

	preview, err := executeCommand(t, "preview", "--in", dest)
	require.NoError(t, err)
	assert.Contains(t, preview, "Ana García")
	assert.Contains(t, preview, "• Go — Nivel: Avanzado")
}

func TestNew_StopsWhenInputEnds(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "cv.json")
	_, err := executeWithInput(t, "Ana García\n", "new", "--out", dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wizard stopped")
	assert.NoFileExists(t, dest)
}
