package store

import (
  "database/sql"
  "fmt"

  "github.com/golang/glog"

  "github.com/jimmc/rrhh/employees"
)

// RosterDB implements the Store interface to load and store the roster in
// an SQL database.
// Data is stored in a table called "employee" with columns
// position, name, salary, and credential_hash,
// where position records the order of the employee in the roster.
type RosterDB struct {
    db *sql.DB
    location string
}

// NewRosterDB wraps an open database. The location is used only in messages.
func NewRosterDB(db *sql.DB, location string) *RosterDB {
  return &RosterDB{
    db: db,
    location: location,
  }
}

func (rdb *RosterDB) Location() string {
  return rdb.location
}

// CreateRosterTable creates the employee table if it is not already there.
func (rdb *RosterDB) CreateRosterTable() error {
  query := `CREATE TABLE IF NOT EXISTS employee(
    position integer,
    name text,
    salary real,
    credential_hash text,
    primary key(position));`
  _, err := rdb.db.Exec(query)
  if err != nil {
    return fmt.Errorf("error creating employee table in %s: %w", rdb.location, err)
  }
  return nil
}

// Load reads all employees in position order. A database without the
// employee table is an empty roster.
func (rdb *RosterDB) Load() (*employees.Roster, error) {
  if err := rdb.CreateRosterTable(); err != nil {
    return nil, err
  }
  query := "SELECT name, salary, credential_hash FROM employee ORDER BY position;"
  rr, err := rdb.db.Query(query)
  if err != nil {
    return nil, fmt.Errorf("error querying employees in %s: %w", rdb.location, err)
  }
  defer rr.Close()
  var rows []employees.Row
  for rr.Next() {
    var row employees.Row
    if err := rr.Scan(&row.Name, &row.Salary, &row.CredentialHash); err != nil {
      return nil, fmt.Errorf("%w: %v", employees.ErrMalformedRow, err)
    }
    rows = append(rows, row)
  }
  if err := rr.Err(); err != nil {
    return nil, fmt.Errorf("error reading employees in %s: %w", rdb.location, err)
  }
  glog.V(2).Infof("Loaded %d employees from %s", len(rows), rdb.location)
  return employees.FromRows(rows), nil
}

// Save replaces the contents of the employee table in one transaction.
func (rdb *RosterDB) Save(roster *employees.Roster) error {
  if err := rdb.CreateRosterTable(); err != nil {
    return err
  }
  tx, err := rdb.db.Begin()
  if err != nil {
    return fmt.Errorf("error starting transaction in %s: %w", rdb.location, err)
  }
  defer tx.Rollback()   // No-op after Commit.

  if _, err := tx.Exec("DELETE FROM employee;"); err != nil {
    return fmt.Errorf("error clearing employees in %s: %w", rdb.location, err)
  }
  iQuery := "INSERT INTO employee(position, name, salary, credential_hash) values(:pos, :name, :salary, :hash);"
  for i, row := range roster.Rows() {
    _, err := tx.Exec(iQuery,
        sql.Named("pos", i),
        sql.Named("name", row.Name),
        sql.Named("salary", row.Salary),
        sql.Named("hash", row.CredentialHash))
    if err != nil {
      return fmt.Errorf("error inserting employee %q in %s: %w", row.Name, rdb.location, err)
    }
  }
  if err := tx.Commit(); err != nil {
    return fmt.Errorf("error committing employees in %s: %w", rdb.location, err)
  }
  glog.V(2).Infof("Saved %d employees to %s", roster.Count(), rdb.location)
  return nil
}
