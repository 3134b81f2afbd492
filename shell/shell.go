package shell

import (
  "bufio"
  "errors"
  "fmt"
  "io"
  "strings"

  "github.com/golang/glog"

  "github.com/jimmc/rrhh/credential"
  "github.com/jimmc/rrhh/employees"
  "github.com/jimmc/rrhh/personnel"
)

// ErrInputClosed is returned by Run when input ends before the user
// chooses to save and exit. Nothing has been saved in that case.
var ErrInputClosed = errors.New("input closed before saving")

// Shell is the interactive menu in front of a personnel.Manager. It does
// all the prompting and validation; the Manager never sees raw input.
type Shell struct {
  manager *personnel.Manager
  in *bufio.Reader
  out io.Writer
  terminalFd int        // -1 when credentials are read as plain lines.
}

func New(m *personnel.Manager, in io.Reader, out io.Writer) *Shell {
  return &Shell{
    manager: m,
    in: bufio.NewReader(in),
    out: out,
    terminalFd: -1,
  }
}

// UseTerminal makes the shell read credentials from the terminal at fd
// without echo. It does nothing if fd is not a terminal.
func (s *Shell) UseTerminal(fd int) {
  if credential.IsTerminal(fd) {
    s.terminalFd = fd
  }
}

// Run shows the menu until the user saves and exits. It returns the
// save error, if any, or ErrInputClosed if input runs out first.
func (s *Shell) Run() error {
  for {
    s.printMenu()
    option, err := s.readLine("Select an option (1-6): ")
    if err != nil {
      return s.inputError(err)
    }
    switch option {
    case "1":
      err = s.add()
    case "2":
      s.list()
    case "3":
      err = s.updateSalary()
    case "4":
      err = s.changeCredential()
    case "5":
      err = s.remove()
    case "6":
      return s.saveAndExit()
    default:
      s.println("Invalid option.")
    }
    if err != nil {
      return s.inputError(err)
    }
  }
}

func (s *Shell) printMenu() {
  s.println("")
  s.println("=== HR SYSTEM ===")
  s.println("1. Add employee")
  s.println("2. List employees")
  s.println("3. Update salary")
  s.println("4. Change credential")
  s.println("5. Remove employee")
  s.println("6. Save and exit")
}

func (s *Shell) add() error {
  var name string
  for {
    var err error
    name, err = s.readLine("Name: ")
    if err != nil {
      return err
    }
    if name != "" {
      break
    }
    s.println("Error: the name can not be empty.")
  }
  salary, err := s.readSalary("Initial salary: ")
  if err != nil {
    return err
  }
  cred, err := s.readNewCredential("Set credential: ")
  if errors.Is(err, credential.ErrMismatch) {
    s.println("Credentials did not match, employee not added.")
    return nil
  }
  if err != nil {
    return err
  }
  s.manager.Add(name, salary, cred)
  s.printf("Employee %s added.\n", name)
  return nil
}

func (s *Shell) list() {
  descriptions, err := s.manager.List()
  if errors.Is(err, personnel.ErrEmptyRoster) {
    s.println("No employees registered.")
    return
  }
  s.println("")
  s.println("Employees:")
  for d := range descriptions {
    s.println(d)
  }
}

func (s *Shell) updateSalary() error {
  name, err := s.readLine("Employee name: ")
  if err != nil {
    return err
  }
  if _, err := s.manager.Find(name); err != nil {
    s.println(resultText(err, ""))
    return nil
  }
  cred, err := s.readCredential("Credential: ")
  if err != nil {
    return err
  }
  salary, err := s.readSalary("New salary: ")
  if err != nil {
    return err
  }
  err = s.manager.UpdateSalary(name, salary, cred)
  s.println(resultText(err, fmt.Sprintf("Salary updated to %s.", employees.FormatSalary(salary))))
  return nil
}

func (s *Shell) changeCredential() error {
  name, err := s.readLine("Employee name: ")
  if err != nil {
    return err
  }
  if _, err := s.manager.Find(name); err != nil {
    s.println(resultText(err, ""))
    return nil
  }
  current, err := s.readCredential("Current credential: ")
  if err != nil {
    return err
  }
  newCredential, err := s.readNewCredential("New credential: ")
  if errors.Is(err, credential.ErrMismatch) {
    s.println("Credentials did not match, credential not changed.")
    return nil
  }
  if err != nil {
    return err
  }
  err = s.manager.ChangeCredential(name, current, newCredential)
  s.println(resultText(err, "Credential updated."))
  return nil
}

func (s *Shell) remove() error {
  name, err := s.readLine("Name of the employee to remove: ")
  if err != nil {
    return err
  }
  err = s.manager.Remove(name)
  s.println(resultText(err, fmt.Sprintf("Employee %s removed.", name)))
  return nil
}

func (s *Shell) saveAndExit() error {
  if err := s.manager.Save(); err != nil {
    s.printf("Error saving data: %v\n", err)
    return err
  }
  s.printf("Data saved to %s\n", s.manager.Location())
  s.println("Exiting...")
  return nil
}

// resultText renders the outcome of a core operation.
func resultText(err error, success string) string {
  switch {
  case err == nil:
    return success
  case errors.Is(err, personnel.ErrNotFound):
    return "Employee not found."
  case errors.Is(err, employees.ErrNotAuthorized):
    return "Incorrect credential."
  default:
    return fmt.Sprintf("Error: %v", err)
  }
}

func (s *Shell) inputError(err error) error {
  if errors.Is(err, io.EOF) {
    s.println("")
    s.println("Input closed, exiting without saving.")
    return ErrInputClosed
  }
  return err
}

// readLine prompts and returns one line with surrounding space trimmed.
func (s *Shell) readLine(prompt string) (string, error) {
  line, err := s.readRawLine(prompt)
  return strings.TrimSpace(line), err
}

// readRawLine prompts and returns one line without its line ending.
// A final line without a newline is still returned; io.EOF is returned
// only when there is nothing left.
func (s *Shell) readRawLine(prompt string) (string, error) {
  s.printf("%s", prompt)
  line, err := s.in.ReadString('\n')
  if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
    return "", err
  }
  return strings.TrimRight(line, "\r\n"), nil
}

// readSalary prompts until the answer parses as a salary.
func (s *Shell) readSalary(prompt string) (float64, error) {
  for {
    text, err := s.readLine(prompt)
    if err != nil {
      return 0, err
    }
    salary, err := employees.ParseSalary(text)
    if err == nil {
      return salary, nil
    }
    glog.V(4).Infof("rejected salary input: %v", err)
    s.println("Error: enter a valid number for the salary.")
  }
}

// hiddenInput reports whether the next credential should be read from the
// terminal. Input already buffered, as when a block of lines is pasted,
// is read as plain lines so it stays in order.
func (s *Shell) hiddenInput() bool {
  return s.terminalFd >= 0 && s.in.Buffered() == 0
}

func (s *Shell) readCredential(prompt string) (string, error) {
  if s.hiddenInput() {
    return credential.ReadHidden(s.terminalFd, s.out, prompt)
  }
  return s.readRawLine(prompt)
}

// readNewCredential asks twice when on a terminal, since the user can not
// see what was typed.
func (s *Shell) readNewCredential(prompt string) (string, error) {
  if s.hiddenInput() {
    return credential.ReadNewHidden(s.terminalFd, s.out, prompt)
  }
  return s.readRawLine(prompt)
}

func (s *Shell) println(line string) {
  fmt.Fprintln(s.out, line)
}

func (s *Shell) printf(format string, args ...any) {
  fmt.Fprintf(s.out, format, args...)
}
