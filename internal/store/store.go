package store

import (
	"log"

	"github.com/google/uuid"
	"github.com/jonathan/cv-builder/internal/types"
)

// Collection names used in errors and logs.
const (
	CollectionExperiences = "experiences"
	CollectionEducation   = "education"
	CollectionSkills      = "skills"
)

// Store owns the CVDocument of one session. It has a single writer and no locking.
// Validation is the caller's job; the store only enforces id uniqueness.
type Store struct {
	doc types.CVDocument
}

// New creates a store with blank personal info and empty collections.
func New() *Store {
	return &Store{}
}

// Load creates a store seeded with a copy of doc.
func Load(doc *types.CVDocument) *Store {
	return &Store{doc: doc.Clone()}
}

// NewID returns a fresh identifier for a new entry.
func NewID() string {
	return uuid.NewString()
}

// Snapshot returns a deep copy of the document; later mutations do not affect it.
func (s *Store) Snapshot() types.CVDocument {
	return s.doc.Clone()
}

// PersonalInfo returns the current personal info.
func (s *Store) PersonalInfo() types.PersonalInfo {
	return s.doc.PersonalInfo
}

// UpdatePersonalInfo replaces the personal info wholesale.
func (s *Store) UpdatePersonalInfo(info types.PersonalInfo) {
	s.doc.PersonalInfo = info
}

// AddExperience appends exp. The id must be non-empty and unique among experiences.
func (s *Store) AddExperience(exp types.Experience) error {
	if err := checkID(CollectionExperiences, exp.ID, len(s.doc.Experiences), func(i int) string {
		return s.doc.Experiences[i].ID
	}); err != nil {
		return err
	}
	s.doc.Experiences = append(s.doc.Experiences, exp)
	return nil
}

// DeleteExperience removes the experience with id. Unknown ids are ignored.
func (s *Store) DeleteExperience(id string) {
	s.doc.Experiences = deleteByID(s.doc.Experiences, id, func(e types.Experience) string { return e.ID })
}

// AddEducation appends edu. The id must be non-empty and unique among education entries.
func (s *Store) AddEducation(edu types.Education) error {
	if err := checkID(CollectionEducation, edu.ID, len(s.doc.Education), func(i int) string {
		return s.doc.Education[i].ID
	}); err != nil {
		return err
	}
	s.doc.Education = append(s.doc.Education, edu)
	return nil
}

// DeleteEducation removes the education entry with id. Unknown ids are ignored.
func (s *Store) DeleteEducation(id string) {
	s.doc.Education = deleteByID(s.doc.Education, id, func(e types.Education) string { return e.ID })
}

// AddSkill appends skill. The id must be non-empty and unique among skills.
func (s *Store) AddSkill(skill types.Skill) error {
	if err := checkID(CollectionSkills, skill.ID, len(s.doc.Skills), func(i int) string {
		return s.doc.Skills[i].ID
	}); err != nil {
		return err
	}
	s.doc.Skills = append(s.doc.Skills, skill)
	return nil
}

// DeleteSkill removes the skill with id. Unknown ids are ignored.
func (s *Store) DeleteSkill(id string) {
	s.doc.Skills = deleteByID(s.doc.Skills, id, func(sk types.Skill) string { return sk.ID })
}

func checkID(collection, id string, n int, idAt func(int) string) error {
	if id == "" {
		err := &DuplicateIDError{Collection: collection}
		log.Printf("[STORE] rejected add: %v", err)
		return err
	}
	for i := 0; i < n; i++ {
		if idAt(i) == id {
			err := &DuplicateIDError{Collection: collection, ID: id}
			log.Printf("[STORE] rejected add: %v", err)
			return err
		}
	}
	return nil
}

// deleteByID returns entries without the first entry whose id matches.
// The result never aliases entries, so earlier snapshots stay intact.
func deleteByID[T any](entries []T, id string, idOf func(T) string) []T {
	for i, entry := range entries {
		if idOf(entry) == id {
			result := make([]T, 0, len(entries)-1)
			result = append(result, entries[:i]...)
			return append(result, entries[i+1:]...)
		}
	}
	return entries
}
