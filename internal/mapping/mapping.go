package mapping

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrEmptyName indicates that a local or remote attribute name is empty
	ErrEmptyName = errors.New("attribute name is empty")

	// ErrDuplicateRemote indicates that two local attributes map to one remote attribute
	ErrDuplicateRemote = errors.New("remote attribute is mapped more than once")
)

// Mapping is an immutable 1:1 correspondence between local attribute
// names and remote attribute names for one record type.
type Mapping struct {
	toRemote map[string]string
	toLocal  map[string]string
}

// New builds a Mapping from a local name -> remote name table
func New(fields map[string]string) (*Mapping, error) {
	m := &Mapping{
		toRemote: make(map[string]string, len(fields)),
		toLocal:  make(map[string]string, len(fields)),
	}

	for local, remote := range fields {
		if local == "" || remote == "" {
			return nil, fmt.Errorf("%w: %q -> %q", ErrEmptyName, local, remote)
		}
		if other, exists := m.toLocal[remote]; exists {
			return nil, fmt.Errorf("%w: %q (local %q and %q)", ErrDuplicateRemote, remote, other, local)
		}

		m.toRemote[local] = remote
		m.toLocal[remote] = local
	}

	return m, nil
}

// MustNew is like New but panics on an invalid table.
// Intended for mappings declared in code.
func MustNew(fields map[string]string) *Mapping {
	m, err := New(fields)
	if err != nil {
		panic(err)
	}
	return m
}

// LocalNames returns sorted local attribute names
func (m *Mapping) LocalNames() []string {
	return slices.Sorted(maps.Keys(m.toRemote))
}

// RemoteNames returns sorted remote attribute names
func (m *Mapping) RemoteNames() []string {
	return slices.Sorted(maps.Keys(m.toLocal))
}

// Remote returns the remote name for a local attribute
func (m *Mapping) Remote(local string) (string, bool) {
	remote, ok := m.toRemote[local]
	return remote, ok
}

// Local returns the local name for a remote attribute
func (m *Mapping) Local(remote string) (string, bool) {
	local, ok := m.toLocal[remote]
	return local, ok
}

// Len returns the number of mapped attributes
func (m *Mapping) Len() int {
	return len(m.toRemote)
}

// Equal reports whether two mappings declare the same correspondence
func (m *Mapping) Equal(other *Mapping) bool {
	return maps.Equal(m.toRemote, other.toRemote)
}
