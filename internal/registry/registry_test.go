package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/leadsegment-backend/internal/model"
)

func TestListClientIDsStableOrder(t *testing.T) {
	r := New()
	ids := r.ListClientIDs()
	assert.Equal(t, []string{"CREXE", "UNAB", "ULINEA_ANAHUAC", "PK_CBA"}, ids)

	// Stable across calls.
	assert.Equal(t, ids, r.ListClientIDs())
}

func TestProfileForUnknownClientIsEmpty(t *testing.T) {
	r := New()
	p := r.ProfileFor("NOBODY")
	assert.True(t, p.Empty())
	assert.Equal(t, "NOBODY", p.ID)
	assert.Empty(t, p.Groups)
}

func TestBuiltinCrexeGroups(t *testing.T) {
	r := New()
	p := r.ProfileFor("CREXE")
	require.False(t, p.Empty())
	require.Len(t, p.Groups, 5)

	// Single-integer dias_antes normalized to a one-element set.
	first := p.Groups[0]
	assert.Equal(t, "1 día antes", first.Name)
	assert.True(t, first.Dates.Enabled)
	assert.Equal(t, []int{1}, first.Dates.DaysBefore)
	assert.Equal(t, model.StatusList, first.Statuses.Mode)

	// "Sin filtro de fecha" has no date filter at all.
	assert.False(t, p.Groups[3].Dates.Enabled)

	// The specials group carries a two-day window.
	assert.Equal(t, []int{0, 1}, p.Groups[4].Dates.DaysBefore)
}

func TestBuiltinUnabWeekdayMapping(t *testing.T) {
	r := New()
	p := r.ProfileFor("UNAB")
	require.Len(t, p.Groups, 2)

	welcome := p.Groups[0]
	assert.Equal(t, model.StatusAny, welcome.Statuses.Mode)
	assert.Equal(t, []int{0, 1}, welcome.Dates.DaysBefore)

	nurturing := p.Groups[1]
	require.Equal(t, model.StatusWeekday, nurturing.Statuses.Mode)
	set, matchAll := nurturing.Statuses.MatchSet("Martes")
	assert.False(t, matchAll)
	assert.Contains(t, set, "No contesta")

	// Weekday absent from the mapping resolves to an empty set.
	set, matchAll = nurturing.Statuses.MatchSet("Domingo")
	assert.False(t, matchAll)
	assert.Empty(t, set)
}

func TestBuiltinPkCbaHooks(t *testing.T) {
	r := New()
	p := r.ProfileFor("PK_CBA")
	require.False(t, p.Empty())

	assert.Equal(t, "2", p.Hooks.ProgramCodes["Tecnicatura Universitaria en Martillero Público y Corredor"])
	assert.Equal(t, "4", p.Hooks.ProgramCodes["*"])
	assert.Equal(t, "{client}_{group}_{date}.xlsx", p.FilePattern)

	// Output layout keeps the pre-split Apellido column as a raw
	// passthrough.
	var dests []string
	for _, cm := range p.Output {
		dests = append(dests, cm.Dest)
	}
	assert.Equal(t, []string{"Nombre", "Apellido", "Email", "Tel", "Programa", "Cod_Programa"}, dests)
}

func TestLoadOverlayAddsAndReplaces(t *testing.T) {
	overlay := `
clients:
  - id: NUEVO
    name: Cliente Nuevo
    groups:
      - name: Todos
        statuses:
          mode: list
          values: ["*"]
        active: true
    output:
      - source: name
        dest: Nombre
    source_aliases:
      name: ["Nombre"]
  - id: CREXE
    name: CREXE v2
    groups:
      - name: Único
        statuses:
          mode: list
          values: ["No contesta"]
        dates:
          enabled: true
          days_before: [3]
        active: true
`
	path := filepath.Join(t.TempDir(), "clients.yaml")
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o644))

	r := New()
	require.NoError(t, r.LoadOverlay(path))

	// New client appended after built-ins, replaced one keeps its slot.
	assert.Equal(t, []string{"CREXE", "UNAB", "ULINEA_ANAHUAC", "PK_CBA", "NUEVO"}, r.ListClientIDs())

	crexe := r.ProfileFor("CREXE")
	require.Len(t, crexe.Groups, 1)
	assert.Equal(t, []int{3}, crexe.Groups[0].Dates.DaysBefore)

	// The "*" sentinel loads as match-anything.
	nuevo := r.ProfileFor("NUEVO")
	require.Len(t, nuevo.Groups, 1)
	assert.Equal(t, model.StatusAny, nuevo.Groups[0].Statuses.Mode)
	// Missing layouts fall back to the defaults.
	assert.NotEmpty(t, nuevo.TimestampLayouts)
}

func TestLoadOverlayRejectsEmptyID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clients.yaml")
	require.NoError(t, os.WriteFile(path, []byte("clients:\n  - name: sin id\n"), 0o644))

	r := New()
	assert.Error(t, r.LoadOverlay(path))
}
