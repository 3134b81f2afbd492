package store

import (
  "bufio"
  "encoding/csv"
  "errors"
  "fmt"
  "io"
  "os"
  "strings"

  "github.com/golang/glog"

  "github.com/jimmc/rrhh/credential"
  "github.com/jimmc/rrhh/employees"
)

// Allow overriding for unit testing.
var rename = os.Rename

// headerAliases lists other header names accepted on load for each field.
// They are the names used by the older Spanish-language roster files.
var headerAliases = map[string][]string{
  employees.FieldName: {"nombre"},
  employees.FieldSalary: {"salario"},
  employees.FieldCredentialHash: {"contraseña"},
}

// RosterFile implements the Store interface to load and store the roster
// in a CSV file. The first line is a header naming the fields,
//   name,salary,credential_hash
// and each following line has the data for one employee. On load the
// columns are located by header name, and the older header
//   nombre,salario,contraseña
// is also accepted; on save the header above is always written.
type RosterFile struct {
    Filename string     // The CSV file with our data.
}

func NewRosterFile(filename string) *RosterFile {
  return &RosterFile{
    Filename: filename,
  }
}

func (rf *RosterFile) Location() string {
  return rf.Filename
}

// Load reads the roster file. A missing or empty file is an empty roster.
// Any row that can not be parsed fails the whole load.
func (rf *RosterFile) Load() (*employees.Roster, error) {
  f, err := os.Open(rf.Filename)
  if errors.Is(err, os.ErrNotExist) {
    glog.V(2).Infof("No roster file at %s, starting with an empty roster", rf.Filename)
    return employees.Empty(), nil
  }
  if err != nil {
    return nil, fmt.Errorf("error opening roster file %s: %w", rf.Filename, err)
  }
  defer f.Close()

  rows, err := rf.readRows(csv.NewReader(bufio.NewReader(f)))
  if err != nil {
    return nil, fmt.Errorf("error loading roster file %s: %w", rf.Filename, err)
  }
  glog.V(2).Infof("Loaded %d employees from %s", len(rows), rf.Filename)
  return employees.FromRows(rows), nil
}

func (rf *RosterFile) readRows(r *csv.Reader) ([]employees.Row, error) {
  header, err := r.Read()
  if err == io.EOF {
    return nil, nil     // Empty file, not even a header.
  }
  if err != nil {
    return nil, err
  }
  columns, err := columnIndexes(header)
  if err != nil {
    return nil, err
  }

  var rows []employees.Row
  for {
    record, err := r.Read()
    if err == io.EOF {
      return rows, nil
    }
    if errors.Is(err, csv.ErrFieldCount) {
      return nil, fmt.Errorf("%w: %v", employees.ErrMalformedRow, err)
    }
    if err != nil {
      return nil, err
    }
    line, _ := r.FieldPos(0)
    ordered := make([]string, len(columns))
    for i, col := range columns {
      ordered[i] = record[col]
    }
    row, err := employees.ParseRecord(ordered)
    if err != nil {
      return nil, fmt.Errorf("line %d: %w", line, err)
    }
    if !credential.IsWellFormed(row.CredentialHash) {
      // Kept as is; no credential will verify against it.
      glog.Warningf("%s line %d: employee %q has a malformed credential hash", rf.Filename, line, row.Name)
    }
    glog.V(4).Infof("line %d: employee %q", line, row.Name)
    rows = append(rows, row)
  }
}

// columnIndexes returns, for each of employees.Fields in order, the index
// of that field in the header.
func columnIndexes(header []string) ([]int, error) {
  if len(header) > 0 {
    header[0] = strings.TrimPrefix(header[0], "\ufeff")
  }
  columns := make([]int, len(employees.Fields))
  for i, field := range employees.Fields {
    columns[i] = -1
    for j, h := range header {
      if isHeaderFor(strings.TrimSpace(h), field) {
        columns[i] = j
        break
      }
    }
    if columns[i] < 0 {
      return nil, fmt.Errorf("%w: header %q has no %q column", employees.ErrMalformedRow, header, field)
    }
  }
  return columns, nil
}

// isHeaderFor reports whether h is a header name for field.
func isHeaderFor(h, field string) bool {
  if h == field {
    return true
  }
  for _, alias := range headerAliases[field] {
    if h == alias {
      return true
    }
  }
  return false
}

// Save writes the roster to a new file, moves any existing file to a
// backup path ending in "~", then moves the new file into place. If that
// last move fails the backup is moved back.
func (rf *RosterFile) Save(roster *employees.Roster) error {
  newFilePath := rf.Filename + ".new"
  f, err := os.Create(newFilePath)
  if err != nil {
    return fmt.Errorf("error creating new roster file %s: %w", newFilePath, err)
  }
  w := csv.NewWriter(f)
  err = w.WriteAll(roster.Records())    // WriteAll flushes.
  if err != nil {
    f.Close()
    return fmt.Errorf("error writing new roster file %s: %w", newFilePath, err)
  }
  err = f.Close()
  if err != nil {
    return fmt.Errorf("error closing new roster file %s: %w", newFilePath, err)
  }

  backupFilePath := rf.Filename + "~"
  err = rename(rf.Filename, backupFilePath)
  hasBackup := err == nil
  if err != nil && !errors.Is(err, os.ErrNotExist) {
    return fmt.Errorf("error moving old file to backup path %s: %w", backupFilePath, err)
  }
  err = rename(newFilePath, rf.Filename)
  if err != nil {
    if hasBackup {
      if rerr := rename(backupFilePath, rf.Filename); rerr != nil {
        glog.Errorf("Error restoring %s from backup %s: %v", rf.Filename, backupFilePath, rerr)
      }
    }
    return fmt.Errorf("error moving new file %s to become active file: %w", newFilePath, err)
  }
  glog.V(2).Infof("Saved %d employees to %s", roster.Count(), rf.Filename)
  return nil
}
