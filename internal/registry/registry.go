// Package registry is the read-only client profile lookup. Profiles ship
// built in; a YAML overlay file can add or replace clients without a
// rebuild.
package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/unclebandit/leadsegment-backend/internal/model"
)

type Registry struct {
	profiles map[string]model.ClientProfile
	order    []string
}

// New builds a registry seeded with the built-in client profiles.
func New() *Registry {
	r := &Registry{profiles: make(map[string]model.ClientProfile)}
	for _, p := range builtinProfiles() {
		r.put(normalizeProfile(p))
	}
	return r
}

func (r *Registry) put(p model.ClientProfile) {
	if _, exists := r.profiles[p.ID]; !exists {
		r.order = append(r.order, p.ID)
	}
	r.profiles[p.ID] = p
}

// overlayFile is the YAML overlay document shape.
type overlayFile struct {
	Clients []model.ClientProfile `yaml:"clients"`
}

// LoadOverlay merges profiles from a YAML file. Overlay entries replace
// built-ins with the same id and append after them otherwise, so the
// client list order stays stable across restarts.
func (r *Registry) LoadOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read profile overlay: %w", err)
	}

	var overlay overlayFile
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parse profile overlay: %w", err)
	}

	for _, p := range overlay.Clients {
		if p.ID == "" {
			return fmt.Errorf("profile overlay: client with empty id")
		}
		r.put(normalizeProfile(p))
	}
	return nil
}

// ProfileFor returns the profile for a client id. Unknown ids get an empty
// profile: no groups, nothing to segment. Callers must treat that as a
// no-op run, not as an error.
func (r *Registry) ProfileFor(clientID string) model.ClientProfile {
	if p, ok := r.profiles[clientID]; ok {
		return p
	}
	return model.ClientProfile{ID: clientID, Name: clientID}
}

// ListClientIDs returns the known client ids in stable order.
func (r *Registry) ListClientIDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// normalizeProfile settles configuration shape once at load time: empty
// status values mean match-anything, the "*" sentinel means the same, a
// date filter with no days stays enabled-but-empty (it matches nothing,
// which is a legal configuration), and missing timestamp layouts fall back
// to the defaults.
func normalizeProfile(p model.ClientProfile) model.ClientProfile {
	for i, g := range p.Groups {
		if g.Statuses.Mode == "" {
			g.Statuses.Mode = model.StatusList
		}
		if g.Statuses.Mode == model.StatusList {
			if len(g.Statuses.Values) == 0 || hasWildcard(g.Statuses.Values) {
				g.Statuses = model.StatusFilter{Mode: model.StatusAny}
			}
		}
		p.Groups[i] = g
	}
	if len(p.TimestampLayouts) == 0 {
		p.TimestampLayouts = defaultTimestampLayouts
	}
	return p
}

func hasWildcard(values []string) bool {
	for _, v := range values {
		if v == "*" {
			return true
		}
	}
	return false
}
