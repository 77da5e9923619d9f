package store

import (
	"errors"
	"testing"

	"github.com/jonathan/cv-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Empty(t *testing.T) {
	s := New()
	snap := s.Snapshot()
	assert.True(t, snap.IsEmpty())
}

func TestUpdatePersonalInfo_ReplacesWholesale(t *testing.T) {
	s := New()
	s.UpdatePersonalInfo(types.PersonalInfo{FullName: "Ana", Email: "a@b.c", ProfileImage: "/tmp/a.jpg"})
	s.UpdatePersonalInfo(types.PersonalInfo{FullName: "Luis"})

	info := s.PersonalInfo()
	assert.Equal(t, "Luis", info.FullName)
	assert.Empty(t, info.Email)
	assert.Empty(t, info.ProfileImage)
}

func TestAddDeleteSkill_RoundTrip(t *testing.T) {
	s := New()
	require.NoError(t, s.AddSkill(types.Skill{ID: "s1", Name: "Go", Level: types.LevelExpert}))
	before := s.Snapshot()

	require.NoError(t, s.AddSkill(types.Skill{ID: "s2", Name: "Rust", Level: types.LevelBasic}))
	s.DeleteSkill("s2")

	assert.Equal(t, before, s.Snapshot())
}

func TestDelete_UnknownIDIsNoop(t *testing.T) {
	s := New()
	require.NoError(t, s.AddExperience(types.Experience{ID: "x1", Company: "Acme"}))
	require.NoError(t, s.AddEducation(types.Education{ID: "e1"}))
	require.NoError(t, s.AddSkill(types.Skill{ID: "s1"}))
	before := s.Snapshot()

	s.DeleteExperience("missing")
	s.DeleteEducation("missing")
	s.DeleteSkill("missing")

	assert.Equal(t, before, s.Snapshot())
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	s := New()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, s.AddExperience(types.Experience{ID: id}))
	}
	s.DeleteExperience("a")

	snap := s.Snapshot()
	require.Len(t, snap.Experiences, 2)
	assert.Equal(t, "c", snap.Experiences[0].ID)
	assert.Equal(t, "b", snap.Experiences[1].ID)
}

func TestAdd_DuplicateIDLeavesStoreUnchanged(t *testing.T) {
	s := New()
	require.NoError(t, s.AddEducation(types.Education{ID: "e1", Degree: "Grado"}))
	before := s.Snapshot()

	err := s.AddEducation(types.Education{ID: "e1", Degree: "Máster"})
	require.Error(t, err)

	var dupErr *DuplicateIDError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, CollectionEducation, dupErr.Collection)
	assert.Equal(t, "e1", dupErr.ID)
	assert.Equal(t, before, s.Snapshot())
}

func TestAdd_EmptyIDRejected(t *testing.T) {
	s := New()
	err := s.AddSkill(types.Skill{Name: "Go"})
	var dupErr *DuplicateIDError
	require.True(t, errors.As(err, &dupErr))
	assert.Contains(t, err.Error(), "empty id")
	assert.Empty(t, s.Snapshot().Skills)
}

func TestSnapshot_IsImmutable(t *testing.T) {
	s := New()
	require.NoError(t, s.AddSkill(types.Skill{ID: "s1", Name: "Go"}))
	require.NoError(t, s.AddSkill(types.Skill{ID: "s2", Name: "SQL"}))
	snap := s.Snapshot()

	s.DeleteSkill("s1")
	s.UpdatePersonalInfo(types.PersonalInfo{FullName: "Otro"})

	require.Len(t, snap.Skills, 2)
	assert.Equal(t, "Go", snap.Skills[0].Name)
	assert.Empty(t, snap.PersonalInfo.FullName)
}

func TestLoad_CopiesDocument(t *testing.T) {
	doc := &types.CVDocument{Skills: []types.Skill{{ID: "s1", Name: "Go"}}}
	s := Load(doc)
	s.DeleteSkill("s1")

	assert.Len(t, doc.Skills, 1)
	assert.Empty(t, s.Snapshot().Skills)
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}
