// Package store holds the reference data stores authenticate as: the stores
// themselves and the devices installed in them.
package store

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrNotFound       = errors.New("store not found")
	ErrDeviceNotFound = errors.New("device not found")
)

var storeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)

// Store is a retail location. Its ID is what a store session carries.
type Store struct {
	id       string
	name     string
	code     string
	isActive bool
}

func NewStore(id, name, code string, isActive bool) (*Store, error) {
	if !ValidID(id) {
		return nil, fmt.Errorf("invalid store ID: %q", id)
	}
	if name == "" {
		return nil, fmt.Errorf("store name is required")
	}
	if code == "" {
		code = id
	}
	return &Store{id: id, name: name, code: code, isActive: isActive}, nil
}

// ValidID reports whether id is usable as a store identifier.
func ValidID(id string) bool {
	return storeIDPattern.MatchString(id)
}

func (s *Store) ID() string {
	return s.id
}

func (s *Store) Name() string {
	return s.name
}

func (s *Store) Code() string {
	return s.code
}

func (s *Store) IsActive() bool {
	return s.isActive
}

func (s *Store) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("store name is required")
	}
	s.name = name
	return nil
}

func (s *Store) SetActive(active bool) {
	s.isActive = active
}
