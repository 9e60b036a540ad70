package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
)

func sampleKnowledgeBase() *domain.KnowledgeBase {
	kb := domain.NewKnowledgeBase()
	kb.Documents = append(kb.Documents, domain.Document{
		Filename: "submit_guide.docx",
		Title:    "Submit Guide",
		Content:  "Call POST /api/v1/submit to send data.",
		Format:   domain.FormatWord,
		Category: "General",
		Metadata: domain.FileMetadata{Size: 42, Path: "/docs/submit_guide.docx"},
	})
	kb.Endpoints = append(kb.Endpoints, domain.Endpoint{
		Name:        "General - submit",
		Description: "/api/v1/submit endpoint",
		Method:      "POST",
		URL:         "/api/v1/submit",
		Category:    "General",
		Source:      "submit_guide.docx",
	})
	kb.Rules = append(kb.Rules, domain.Rule{
		Name:        "Geolocation must include at least one point.",
		Description: "Geolocation must include at least one point.",
		Category:    domain.RuleCategory,
		Source:      "submit_guide.docx",
	})
	return kb
}

func TestKnowledgeStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knowledge.json")
	store := NewKnowledgeStore(path)
	ctx := context.Background()

	original := sampleKnowledgeBase()
	require.NoError(t, store.Save(ctx, original))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestKnowledgeStore_SaveIsPrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knowledge.json")
	store := NewKnowledgeStore(path)

	require.NoError(t, store.Save(context.Background(), sampleKnowledgeBase()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "\n  \"documents\""))
}

func TestKnowledgeStore_SaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache", "knowledge.json")
	store := NewKnowledgeStore(path)

	require.NoError(t, store.Save(context.Background(), domain.NewKnowledgeBase()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestKnowledgeStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knowledge.json")
	store := NewKnowledgeStore(path)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleKnowledgeBase()))
	require.NoError(t, store.Save(ctx, domain.NewKnowledgeBase()))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestKnowledgeStore_LoadMissingFile(t *testing.T) {
	store := NewKnowledgeStore(filepath.Join(t.TempDir(), "absent.json"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoCache)
}

func TestKnowledgeStore_LoadMalformedCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knowledge.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewKnowledgeStore(path).Load(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoCache)
}

func TestKnowledgeStore_EmptyKnowledgeBaseKeepsArrays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knowledge.json")
	store := NewKnowledgeStore(path)

	require.NoError(t, store.Save(context.Background(), domain.NewKnowledgeBase()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, key := range []string{"documents", "endpoints", "examples", "rules"} {
		assert.Contains(t, string(data), `"`+key+`": []`)
	}
}
