package employees

import (
  "iter"
  "strings"
)

// Roster is the ordered collection of employees. Order is insertion order,
// or file order for a loaded roster. Names are not required to be unique;
// lookups return the first match.
type Roster struct {
  employees []*Employee
}

func NewRoster(employees []*Employee) *Roster {
  return &Roster{
    employees: employees,
  }
}

func Empty() *Roster {
  return NewRoster(nil)
}

// FromRows builds a roster from persisted rows, keeping their order.
func FromRows(rows []Row) *Roster {
  ee := make([]*Employee, 0, len(rows))
  for _, row := range rows {
    ee = append(ee, FromRow(row))
  }
  return NewRoster(ee)
}

func (r *Roster) Count() int {
  return len(r.employees)
}

// Add hashes the credential and appends a new employee. A name that is
// already present is allowed, but only the first one is found by name.
func (r *Roster) Add(name string, salary float64, cred string) *Employee {
  e := NewEmployee(name, salary, cred)
  r.employees = append(r.employees, e)
  return e
}

// FindByName returns the first employee whose name matches, ignoring case,
// or nil if there is none.
func (r *Roster) FindByName(name string) *Employee {
  i := r.indexOf(name)
  if i < 0 {
    return nil
  }
  return r.employees[i]
}

// Remove removes the first employee whose name matches, ignoring case.
// It returns false if there is no such employee.
func (r *Roster) Remove(name string) bool {
  i := r.indexOf(name)
  if i < 0 {
    return false
  }
  r.employees = append(r.employees[:i], r.employees[i+1:]...)
  return true
}

// Descriptions yields Describe for each employee in order. The sequence
// may be iterated more than once; each pass sees the current roster.
func (r *Roster) Descriptions() iter.Seq[string] {
  return func(yield func(string) bool) {
    for _, e := range r.employees {
      if !yield(e.Describe()) {
        return
      }
    }
  }
}

// Rows returns the persistable rows in order.
func (r *Roster) Rows() []Row {
  rows := make([]Row, len(r.employees))
  for i, e := range r.employees {
    rows[i] = e.Row()
  }
  return rows
}

// Records returns Fields followed by one record per employee, ready to be
// written as CSV.
func (r *Roster) Records() [][]string {
  records := make([][]string, 0, len(r.employees)+1)
  records = append(records, Fields)
  for _, e := range r.employees {
    records = append(records, e.Record())
  }
  return records
}

func (r *Roster) indexOf(name string) int {
  for i, e := range r.employees {
    if strings.EqualFold(e.name, name) {
      return i
    }
  }
  return -1
}
