package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKnowledgeBase(t *testing.T) {
	kb := NewKnowledgeBase()

	require.NotNil(t, kb)
	assert.NotNil(t, kb.Documents)
	assert.NotNil(t, kb.Endpoints)
	assert.NotNil(t, kb.Examples)
	assert.NotNil(t, kb.Rules)
	assert.True(t, kb.IsEmpty())
}

func TestKnowledgeBase_Stats(t *testing.T) {
	kb := NewKnowledgeBase()
	kb.Documents = append(kb.Documents, Document{Filename: "a.docx"}, Document{Filename: "b.xml"})
	kb.Endpoints = append(kb.Endpoints, Endpoint{URL: "/api/v1/submit"})
	kb.Rules = append(kb.Rules, Rule{Name: "r1"}, Rule{Name: "r2"}, Rule{Name: "r3"})

	stats := kb.Stats()

	assert.Equal(t, 2, stats.Documents)
	assert.Equal(t, 1, stats.Endpoints)
	assert.Equal(t, 0, stats.Examples)
	assert.Equal(t, 3, stats.Rules)
	assert.False(t, kb.IsEmpty())
}

func TestKnowledgeBase_EmptySerialisation(t *testing.T) {
	// An empty knowledge base must serialise with all four arrays present,
	// never as nulls. Collaborators depend on the top-level keys existing.
	data, err := json.Marshal(NewKnowledgeBase())
	require.NoError(t, err)

	assert.JSONEq(t, `{"documents":[],"endpoints":[],"examples":[],"rules":[]}`, string(data))
}
