package employees

import (
  "errors"
  "fmt"
  "math"
  "strconv"
  "strings"

  "github.com/jimmc/rrhh/credential"
)

var (
  // ErrNotAuthorized is returned when the supplied credential does not
  // match the one stored for the employee.
  ErrNotAuthorized = errors.New("incorrect credential")
  // ErrMalformedRow is returned when a persisted row can not be turned
  // back into an Employee.
  ErrMalformedRow = errors.New("malformed employee row")
)

// Field names, in the order they are persisted.
const (
  FieldName = "name"
  FieldSalary = "salary"
  FieldCredentialHash = "credential_hash"
)

// Fields is the header row of a persisted roster.
var Fields = []string{FieldName, FieldSalary, FieldCredentialHash}

type Employee struct {
  name string
  salary float64
  credentialHash string       // Never the plaintext.
}

// Row is the persistable form of an Employee.
type Row struct {
  Name string
  Salary float64
  CredentialHash string
}

// NewEmployee creates an employee from a plaintext credential, which is
// hashed immediately and not retained.
func NewEmployee(name string, salary float64, cred string) *Employee {
  return &Employee{
    name: name,
    salary: salary,
    credentialHash: credential.Hash(cred),
  }
}

// FromRow creates an employee from a persisted row. The hash is taken verbatim.
func FromRow(row Row) *Employee {
  return &Employee{
    name: row.Name,
    salary: row.Salary,
    credentialHash: row.CredentialHash,
  }
}

func (e *Employee) Name() string {
  return e.name
}

func (e *Employee) Salary() float64 {
  return e.salary
}

// Describe returns the name and current salary for display.
func (e *Employee) Describe() string {
  return fmt.Sprintf("%s | Salary: %s", e.name, FormatSalary(e.salary))
}

func (e *Employee) VerifyCredential(candidate string) bool {
  return credential.Matches(e.credentialHash, candidate)
}

// UpdateSalary sets the salary if cred is the employee's credential,
// otherwise it returns ErrNotAuthorized and changes nothing.
func (e *Employee) UpdateSalary(newSalary float64, cred string) error {
  if !e.VerifyCredential(cred) {
    return ErrNotAuthorized
  }
  e.salary = newSalary
  return nil
}

// ChangeCredential replaces the credential if current is the employee's
// credential, otherwise it returns ErrNotAuthorized and changes nothing.
func (e *Employee) ChangeCredential(current, newCredential string) error {
  if !e.VerifyCredential(current) {
    return ErrNotAuthorized
  }
  e.credentialHash = credential.Hash(newCredential)
  return nil
}

func (e *Employee) Row() Row {
  return Row{
    Name: e.name,
    Salary: e.salary,
    CredentialHash: e.credentialHash,
  }
}

// Record returns the row as text fields in the order given by Fields.
func (e *Employee) Record() []string {
  return e.Row().Record()
}

func (r Row) Record() []string {
  return []string{r.Name, FormatSalary(r.Salary), r.CredentialHash}
}

// ParseRecord is the inverse of Row.Record.
func ParseRecord(record []string) (Row, error) {
  if len(record) != len(Fields) {
    return Row{}, fmt.Errorf("%w: got %d fields, want %d", ErrMalformedRow, len(record), len(Fields))
  }
  salary, err := ParseSalary(record[1])
  if err != nil {
    return Row{}, fmt.Errorf("%w: %v", ErrMalformedRow, err)
  }
  return Row{
    Name: record[0],
    Salary: salary,
    CredentialHash: record[2],
  }, nil
}

// FormatSalary renders a salary as the shortest decimal text that
// parses back to the same value.
func FormatSalary(salary float64) string {
  return strconv.FormatFloat(salary, 'f', -1, 64)
}

// ParseSalary parses decimal salary text. NaN and infinities are rejected.
func ParseSalary(s string) (float64, error) {
  salary, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
  if err != nil || math.IsNaN(salary) || math.IsInf(salary, 0) {
    return 0, fmt.Errorf("salary %q is not a number", s)
  }
  return salary, nil
}
