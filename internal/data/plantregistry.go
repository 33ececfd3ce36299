package data

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Plant holds a registered plant's physical parameters: heat rate, capacity
// factor, siting latitude, nameplate capacity and commissioning year.
type Plant struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Latitude          float64 `json:"latitude"`
	HeatRateBTUPerKWh float64 `json:"heat_rate_btu_per_kwh"`
	CapacityFactor    float64 `json:"capacity_factor"`
	CapacityMW        float64 `json:"capacity_mw"`
	CommissioningYear int     `json:"commissioning_year"`
}

// Registry is a flat-file JSON-backed plant lookup. It stands in for the
// out-of-scope EIA ingestion boundary: a real deployment would refresh this
// from EIA-860/923 filings, but the optimizer only needs a keyed lookup.
type Registry struct {
	mu     sync.RWMutex
	plants map[string]Plant
}

// LoadRegistry reads a JSON file shaped as {"plants": [...]} and indexes it
// by plant id.
func LoadRegistry(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plant registry: %w", err)
	}

	var doc struct {
		Plants []Plant `json:"plants"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse plant registry: %w", err)
	}

	plants := make(map[string]Plant, len(doc.Plants))
	for _, p := range doc.Plants {
		plants[p.ID] = p
	}
	return &Registry{plants: plants}, nil
}

// NewRegistry builds a registry directly from a slice; the demo uses it, and
// the API server falls back to it when no registry file can be read.
func NewRegistry(plants []Plant) *Registry {
	indexed := make(map[string]Plant, len(plants))
	for _, p := range plants {
		indexed[p.ID] = p
	}
	return &Registry{plants: indexed}
}

// Lookup returns the plant registered under id.
func (r *Registry) Lookup(id string) (Plant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plants[id]
	return p, ok
}

// DefaultRegistryPath returns the registry file path, honoring an override
// via the PLANT_REGISTRY_FILE environment variable.
func DefaultRegistryPath() string {
	if path := os.Getenv("PLANT_REGISTRY_FILE"); path != "" {
		return path
	}
	return "./data/plants.json"
}

// SeedPlants is the built-in fallback registry used when no registry file
// is present on disk, covering a handful of representative gas plant
// archetypes across heat rates and capacity factors.
func SeedPlants() []Plant {
	return []Plant{
		{ID: "ercot-ccgt-01", Name: "Permian Basin CCGT", Latitude: 31.8, HeatRateBTUPerKWh: 6900, CapacityFactor: 0.62, CapacityMW: 550, CommissioningYear: 2016},
		{ID: "pjm-peaker-01", Name: "Chester County Peaker", Latitude: 39.9, HeatRateBTUPerKWh: 9800, CapacityFactor: 0.18, CapacityMW: 180, CommissioningYear: 2008},
		{ID: "caiso-ccgt-01", Name: "Kern County CCGT", Latitude: 35.4, HeatRateBTUPerKWh: 7100, CapacityFactor: 0.55, CapacityMW: 620, CommissioningYear: 2014},
		{ID: "miso-ccgt-01", Name: "Will County CCGT", Latitude: 41.5, HeatRateBTUPerKWh: 7400, CapacityFactor: 0.58, CapacityMW: 480, CommissioningYear: 2012},
	}
}
