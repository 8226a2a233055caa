// Package memory is the zero-dependency record provider used for local
// development and tests. It serves fixed collections, optionally seeded
// from JSON files.
package memory

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"adspaces/internal/core"
	"adspaces/internal/records"
)

type Store struct {
	mu          sync.Mutex
	clients     []core.Client
	landlords   []core.Landlord
	structures  []core.Structure
	adLocations []core.AdLocation
}

var _ records.Provider = (*Store)(nil)

func New(clients []core.Client, landlords []core.Landlord, structures []core.Structure, adLocations []core.AdLocation) *Store {
	return &Store{
		clients:     clients,
		landlords:   landlords,
		structures:  structures,
		adLocations: adLocations,
	}
}

// NewFromFiles seeds the store from JSON files under base. Missing or
// malformed files leave that collection empty rather than failing; a dev
// environment without seed data is still usable.
func NewFromFiles(base string) *Store {
	s := &Store{}
	readSeed(filepath.Join(base, "seed_clients.json"), &s.clients)
	readSeed(filepath.Join(base, "seed_landlords.json"), &s.landlords)
	readSeed(filepath.Join(base, "seed_structures.json"), &s.structures)
	readSeed(filepath.Join(base, "seed_ad_locations.json"), &s.adLocations)
	return s
}

func (s *Store) ListClients(_ context.Context) ([]core.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Client(nil), s.clients...), nil
}

func (s *Store) ListLandlords(_ context.Context) ([]core.Landlord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Landlord(nil), s.landlords...), nil
}

func (s *Store) ListStructures(_ context.Context) ([]core.Structure, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Structure(nil), s.structures...), nil
}

func (s *Store) ListAdLocations(_ context.Context) ([]core.AdLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.AdLocation(nil), s.adLocations...), nil
}

func readSeed[T any](path string, dst *[]T) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return
	}
	*dst = out
}
