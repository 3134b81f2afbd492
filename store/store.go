package store

import (
    "github.com/jimmc/rrhh/employees"
)

// The Store interface is used by our classes that need to load
// and save the roster of employees.
type Store interface {
    Load() (*employees.Roster, error)   // Load the whole roster
    Save(*employees.Roster) error       // Replace the persisted roster
    Location() string                   // Where the roster lives, for messages
}
