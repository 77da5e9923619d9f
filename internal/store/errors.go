// Package store holds the CV document of an editing session in memory.
package store

import "fmt"

// DuplicateIDError is returned when an entry is added with an id already present in its list,
// or with an empty id. The store is left unchanged.
type DuplicateIDError struct {
	Collection string
	ID         string
}

func (e *DuplicateIDError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("store error: %s entry has an empty id", e.Collection)
	}
	return fmt.Sprintf("store error: duplicate %s id %q", e.Collection, e.ID)
}
