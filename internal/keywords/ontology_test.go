package keywords

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOntology_RejectsDuplicates(t *testing.T) {
	_, err := NewOntology([]SkillEntry{
		{Canonical: "Go", ImportanceWeight: 0.9},
		{Canonical: "go", ImportanceWeight: 0.8},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNewOntology_RejectsAliasCollision(t *testing.T) {
	_, err := NewOntology([]SkillEntry{
		{Canonical: "Go", Aliases: []string{"golang"}, ImportanceWeight: 0.9},
		{Canonical: "Golang", ImportanceWeight: 0.8},
	})
	require.Error(t, err)
}

func TestNewOntology_RejectsBadWeight(t *testing.T) {
	_, err := NewOntology([]SkillEntry{{Canonical: "Go", ImportanceWeight: 1.5}})
	require.Error(t, err)

	_, err = NewOntology([]SkillEntry{{Canonical: "Go", ImportanceWeight: 0}})
	require.Error(t, err)
}

func TestOntology_Lookup(t *testing.T) {
	ontology := DefaultOntology()

	entry, ok := ontology.Lookup("golang")
	require.True(t, ok)
	assert.Equal(t, "Go", entry.Canonical)

	entry, ok = ontology.Lookup("  K8S ")
	require.True(t, ok)
	assert.Equal(t, "Kubernetes", entry.Canonical)

	_, ok = ontology.Lookup("underwater basket weaving")
	assert.False(t, ok)
}

func TestDefaultOntology_Valid(t *testing.T) {
	ontology := DefaultOntology()
	assert.NotEmpty(t, ontology.Entries())
	for _, entry := range ontology.Entries() {
		assert.Greater(t, entry.ImportanceWeight, 0.0, entry.Canonical)
		assert.LessOrEqual(t, entry.ImportanceWeight, 1.0, entry.Canonical)
	}
}

func TestLoadOntology(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ontology.json")
	content := `{"skills":[{"canonical":"Go","aliases":["golang"],"importance_weight":0.9,"must_have":false}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ontology, err := LoadOntology(path)
	require.NoError(t, err)

	entry, ok := ontology.Lookup("golang")
	require.True(t, ok)
	assert.Equal(t, "Go", entry.Canonical)
}

func TestLoadOntology_MissingFile(t *testing.T) {
	_, err := LoadOntology(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadOntology_RejectsInvalidShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ontology.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"skills":[{"aliases":["x"]}]}`), 0o644))

	_, err := LoadOntology(path)
	require.Error(t, err)
}
