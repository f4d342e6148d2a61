package game

import (
	"errors"
	"fmt"
	"war/meta"
	"war/utils"
)

var ErrWorldSetup = errors.New("world setup failed")

// Territory is one slot of the board. Name never changes after setup; Owner and
// Troops are only changed by World.Attack.
type Territory struct {
	ID     int     // Stable index, 0..NumTerritories-1
	Name   string  // Display name
	Owner  Faction // Faction currently holding the territory
	Troops int     // Garrison, at least 1 between actions
}

// Region is a named group of territory IDs. It stands in for a continent without
// modelling borders.
type Region struct {
	Name         string
	TerritoryIDs []int
}

// Contains reports whether the territory with the given ID belongs to the region.
func (r Region) Contains(id int) bool {
	return utils.Contains(r.TerritoryIDs, id)
}

// SouthAmerica covers Brasil, Argentina and Peru.
var SouthAmerica = Region{Name: "América do Sul", TerritoryIDs: []int{0, 1, 2}}

// World is the fixed, ordered collection of territories. It is owned by a single
// game loop and is not safe for concurrent use.
type World struct {
	Territories []Territory
}

// CreateWorld builds the board from the static setup table. There is no
// randomness here: every game starts from the same position.
func CreateWorld() (*World, error) {
	return newWorld(initialTerritories)
}

func newWorld(table []setupRow) (*World, error) {
	if len(table) != meta.NumTerritories {
		return nil, fmt.Errorf("%w: expected %d territories, got %d", ErrWorldSetup, meta.NumTerritories, len(table))
	}

	w := &World{Territories: make([]Territory, len(table))}
	for id, row := range table {
		if row.name == "" || row.owner == "" {
			return nil, fmt.Errorf("%w: territory %d has no name or owner", ErrWorldSetup, id)
		}
		if row.troops < 1 {
			return nil, fmt.Errorf("%w: territory %d (%s) starts with %d troops", ErrWorldSetup, id, row.name, row.troops)
		}
		w.Territories[id] = Territory{
			ID:     id,
			Name:   row.name,
			Owner:  row.owner,
			Troops: row.troops,
		}
	}
	return w, nil
}

// Len returns the number of territories on the board.
func (w *World) Len() int {
	return len(w.Territories)
}

// InRange reports whether id addresses a territory.
func (w *World) InRange(id int) bool {
	return id >= 0 && id < len(w.Territories)
}

// Territory returns a copy of the territory at id. id must be in range.
func (w *World) Territory(id int) Territory {
	return w.Territories[id]
}

// Count returns how many territories the faction holds.
func (w *World) Count(faction Faction) int {
	count := 0
	for _, t := range w.Territories {
		if t.Owner == faction {
			count++
		}
	}
	return count
}

type setupRow struct {
	name   string
	owner  Faction
	troops int
}

// Starting position. South America (IDs 0-2) comes first.
var initialTerritories = []setupRow{
	{"Brasil", Blue, 2},
	{"Argentina", Red, 3},
	{"Peru", Blue, 2},
	{"Alaska", Green, 3},
	{"Quebec", Red, 2},
	{"California", Green, 3},
	{"Aral", Blue, 2},
	{"Siberia", Red, 3},
	{"Japao", Green, 2},
	{"Australia", Red, 3},
}
