// The personnel package keeps the roster of employees for a single
// process. The roster is read from its Store when the Manager is
// created and written back only when Save is called; changes made in
// between are lost if the process ends without saving.
// Changes to an employee's salary or credential require that employee's
// current credential. A wrong credential is reported as
// employees.ErrNotAuthorized and leaves the employee unchanged.

package personnel

import (
  "errors"
  "fmt"
  "iter"

  "github.com/golang/glog"

  "github.com/jimmc/rrhh/employees"
  "github.com/jimmc/rrhh/store"
)

var (
  ErrNotFound = errors.New("employee not found")
  ErrEmptyRoster = errors.New("no employees registered")
)

type Config struct {
  Store store.Store             // The storage module to load and save our data.
}

type Manager struct {
  config *Config
  roster *employees.Roster
}

// NewManager loads the roster from the configured Store. It fails if
// there is no Store or the roster can not be loaded.
func NewManager(c *Config) (*Manager, error) {
  if c == nil || c.Store == nil {
    return nil, fmt.Errorf("no Store provided")
  }
  m := &Manager{config: c}
  if err := m.load(); err != nil {
    return nil, err
  }
  return m, nil
}

func (m *Manager) load() error {
  roster, err := m.config.Store.Load()
  if err != nil {
    return err
  }
  m.roster = roster
  glog.Infof("%d employees loaded from %s", roster.Count(), m.Location())
  return nil
}

// Save writes the whole roster to the Store, replacing what was there.
func (m *Manager) Save() error {
  if err := m.config.Store.Save(m.roster); err != nil {
    glog.Errorf("Error saving roster: %v", err)
    return err
  }
  glog.Infof("%d employees saved to %s", m.roster.Count(), m.Location())
  return nil
}

func (m *Manager) Location() string {
  return m.config.Store.Location()
}

func (m *Manager) Count() int {
  return m.roster.Count()
}

// Add appends a new employee. Names need not be unique, but only the first
// employee with a given name can be reached by name.
func (m *Manager) Add(name string, salary float64, credential string) {
  if m.roster.FindByName(name) != nil {
    glog.Warningf("Adding employee %q, which is already in the roster", name)
  }
  m.roster.Add(name, salary, credential)
}

// Find returns the first employee with the given name, ignoring case.
func (m *Manager) Find(name string) (*employees.Employee, error) {
  e := m.roster.FindByName(name)
  if e == nil {
    return nil, ErrNotFound
  }
  return e, nil
}

func (m *Manager) UpdateSalary(name string, salary float64, credential string) error {
  e, err := m.Find(name)
  if err != nil {
    return err
  }
  err = e.UpdateSalary(salary, credential)
  if err != nil {
    glog.V(2).Infof("Salary update refused for %q: %v", name, err)
  }
  return err
}

func (m *Manager) ChangeCredential(name, current, newCredential string) error {
  e, err := m.Find(name)
  if err != nil {
    return err
  }
  err = e.ChangeCredential(current, newCredential)
  if err != nil {
    glog.V(2).Infof("Credential change refused for %q: %v", name, err)
  }
  return err
}

// Remove removes the first employee with the given name.
func (m *Manager) Remove(name string) error {
  if !m.roster.Remove(name) {
    return ErrNotFound
  }
  return nil
}

// List returns the description of each employee in roster order,
// or ErrEmptyRoster if there are none.
func (m *Manager) List() (iter.Seq[string], error) {
  if m.roster.Count() == 0 {
    return nil, ErrEmptyRoster
  }
  return m.roster.Descriptions(), nil
}
