package main

/* rrhh is an interactive manager for a small roster of employees.
 * With no arguments it keeps the roster in empleados.csv in the
 * current directory.
 */

import (
  "database/sql"
  "flag"
  "fmt"
  "os"

  "github.com/golang/glog"
  _ "github.com/mattn/go-sqlite3"

  "github.com/jimmc/rrhh/personnel"
  "github.com/jimmc/rrhh/shell"
  "github.com/jimmc/rrhh/store"
)

const (
  defaultRosterFile = "empleados.csv"  // Relative to the current directory.
)

func main() {
  os.Exit(doMain())
}

// doMain return 0 if the program is exiting with no errors.
func doMain() int {
  fileP := flag.String("file", defaultRosterFile, "CSV file holding the roster")
  dbP := flag.String("db", "", "sqlite database holding the roster, used instead of -file")

  flag.Parse()
  defer glog.Flush()

  rosterStore, closeStore, err := openStore(*fileP, *dbP)
  if err != nil {
    fmt.Printf("Error opening roster store: %v\n", err)
    return 1
  }
  defer closeStore()

  manager, err := personnel.NewManager(&personnel.Config{
    Store: rosterStore,
  })
  if err != nil {
    fmt.Printf("Error loading roster: %v\n", err)
    return 1
  }
  fmt.Printf("%d employees loaded from %s.\n", manager.Count(), manager.Location())

  sh := shell.New(manager, os.Stdin, os.Stdout)
  sh.UseTerminal(int(os.Stdin.Fd()))
  if err := sh.Run(); err != nil {
    glog.Errorf("Exiting: %v", err)
    return 1
  }
  return 0
}

// openStore returns the store to use and a function to release it.
func openStore(filename, dbloc string) (store.Store, func(), error) {
  if dbloc == "" {
    return store.NewRosterFile(filename), func() {}, nil
  }
  db, err := sql.Open("sqlite3", dbloc)
  if err != nil {
    return nil, nil, fmt.Errorf("error opening sql database %s: %w", dbloc, err)
  }
  closeDB := func() {
    if err := db.Close(); err != nil {
      glog.Errorf("Error closing database %s: %v", dbloc, err)
    }
  }
  return store.NewRosterDB(db, dbloc), closeDB, nil
}
