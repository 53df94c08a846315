package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetParseJobFlags() {
	parseInputFile = ""
	parseOutputFile = ""
	parseOntologyFile = ""
}

func TestRunParseJob(t *testing.T) {
	resetParseJobFlags()
	dir := t.TempDir()
	parseInputFile = writeTempFile(t, dir, "job.txt", testJobText)
	parseOutputFile = filepath.Join(dir, "parsed.json")

	require.NoError(t, runParseJob(nil, nil))

	data, err := os.ReadFile(parseOutputFile)
	require.NoError(t, err)

	var parsed parsedJob
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.NotEmpty(t, parsed.Requirements)
	assert.Equal(t, 5, parsed.Signals.YearsRequired)
}

func TestRunParseJob_MissingInput(t *testing.T) {
	resetParseJobFlags()
	err := runParseJob(nil, nil)
	require.Error(t, err)
}

func TestRunParseJob_CustomOntology(t *testing.T) {
	resetParseJobFlags()
	dir := t.TempDir()
	parseInputFile = writeTempFile(t, dir, "job.txt", "Requirements\n- Zig experience\n")
	parseOntologyFile = writeTempFile(t, dir, "ontology.json",
		`{"skills":[{"canonical":"Zig","importance_weight":0.9}]}`)
	parseOutputFile = filepath.Join(dir, "parsed.json")

	require.NoError(t, runParseJob(nil, nil))

	data, err := os.ReadFile(parseOutputFile)
	require.NoError(t, err)

	var parsed parsedJob
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Len(t, parsed.Requirements, 1)
	assert.Equal(t, "Zig", parsed.Requirements[0].CanonicalSkill)
	assert.True(t, parsed.Requirements[0].MustHave)
}
