package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/models"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	t.Run("json output", func(t *testing.T) {
		out, err := runCommand(t,
			"analyze",
			"--objective", "Obter certificação AWS Solutions Architect Associate até junho de 2025 com nota mínima de 720 pontos",
			"--actions", "Estudar documentação oficial AWS 10 horas por semana, completar curso de 80 horas, agendar exame para maio de 2025",
			"--format", "json",
		)
		require.NoError(t, err)

		var result models.OverallResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		require.Equal(t, models.QualityHigh, result.QualityLevel)
		require.Equal(t, models.SkillHard, result.Skill.Type)
	})

	t.Run("text output", func(t *testing.T) {
		out, err := runCommand(t, "analyze", "--objective", "Melhorar habilidades", "--actions", "Estudar mais")
		require.NoError(t, err)
		require.Contains(t, out, "DETALHAMENTO DA AVALIAÇÃO")
		require.Contains(t, out, "Nível de qualidade: Baixa")
		require.Contains(t, out, "SUGESTÕES:")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := runCommand(t, "analyze", "--objective", "Melhorar habilidades", "--format", "xml")
		require.Error(t, err)
	})

	t.Run("objective is required", func(t *testing.T) {
		_, err := runCommand(t, "analyze")
		require.Error(t, err)
	})
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "pdi.csv")
	content := "Objetivo de Desenvolvimento (GAP);Ações a serem realizadas\n" +
		"Obter certificação AWS até junho de 2025;Estudar 10 horas por semana\n" +
		"Melhorar habilidades;Estudar mais\n"
	require.NoError(t, os.WriteFile(inputPath, []byte(content), 0o600))

	outputPath := filepath.Join(dir, "resultados.csv")
	out, err := runCommand(t, "batch", inputPath, "-o", outputPath)
	require.NoError(t, err)
	require.Contains(t, out, "RESUMO DA ANÁLISE")
	require.Contains(t, out, "Registros analisados: 2")

	require.FileExists(t, outputPath)
	require.FileExists(t, filepath.Join(dir, "resultados_resumo.json"))
}

func TestBatchCommand_EmptyInput(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "vazio.csv")
	require.NoError(t, os.WriteFile(inputPath, []byte("Objetivo de Desenvolvimento (GAP)\n"), 0o600))

	_, err := runCommand(t, "batch", inputPath)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestLexiconValidateCommand(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid override", func(t *testing.T) {
		path := filepath.Join(dir, "lexicon.yaml")
		require.NoError(t, os.WriteFile(path, []byte("min_words: 2\n"), 0o600))

		out, err := runCommand(t, "lexicon", "validate", path)
		require.NoError(t, err)
		require.Contains(t, out, "OK")
	})

	t.Run("invalid override", func(t *testing.T) {
		path := filepath.Join(dir, "ruim.yaml")
		require.NoError(t, os.WriteFile(path, []byte("thresholds:\n  medium: 0.9\n  high: 0.1\n"), 0o600))

		_, err := runCommand(t, "lexicon", "validate", path)
		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
	})
}

func TestParseSeparator(t *testing.T) {
	sep, err := parseSeparator(";")
	require.NoError(t, err)
	require.Equal(t, ';', sep)

	_, err = parseSeparator("")
	require.Error(t, err)
	_, err = parseSeparator(";;")
	require.Error(t, err)
}

func TestDefaultOutputPath(t *testing.T) {
	require.Equal(t, "pdi_analisado.csv", defaultOutputPath("pdi.csv"))
	require.Equal(t, filepath.Join("dados", "pdi_analisado.csv"), defaultOutputPath(filepath.Join("dados", "pdi.csv")))
}
