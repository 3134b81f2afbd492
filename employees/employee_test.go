package employees

import (
  "errors"
  "strings"
  "testing"

  "github.com/jimmc/rrhh/credential"
)

func TestEmployeeData(t *testing.T) {
  e := NewEmployee("Ana", 1000.0, "secret")
  if got, want := e.Name(), "Ana"; got != want {
    t.Errorf("name: got %q, want %q", got, want)
  }
  if got, want := e.Salary(), 1000.0; got != want {
    t.Errorf("salary: got %v, want %v", got, want)
  }
  if got, want := e.Describe(), "Ana | Salary: 1000"; got != want {
    t.Errorf("describe: got %q, want %q", got, want)
  }
  if got, want := e.Row().CredentialHash, credential.Hash("secret"); got != want {
    t.Errorf("credential hash: got %s, want %s", got, want)
  }
  if strings.Contains(e.Describe(), e.Row().CredentialHash) {
    t.Errorf("describe should not show the credential hash")
  }
}

func TestVerifyCredential(t *testing.T) {
  e := NewEmployee("Ana", 1000.0, "secret")
  if !e.VerifyCredential("secret") {
    t.Errorf("credential set at creation should verify")
  }
  if e.VerifyCredential("wrong") {
    t.Errorf("wrong credential should not verify")
  }
  if e.VerifyCredential("Secret") {
    t.Errorf("credential check should be case sensitive")
  }
}

func TestUpdateSalary(t *testing.T) {
  e := NewEmployee("Ana", 1000.0, "secret")
  err := e.UpdateSalary(1200.0, "wrong")
  if !errors.Is(err, ErrNotAuthorized) {
    t.Errorf("update with wrong credential: got %v, want %v", err, ErrNotAuthorized)
  }
  if got, want := e.Salary(), 1000.0; got != want {
    t.Errorf("salary after failed update: got %v, want %v", got, want)
  }
  if err := e.UpdateSalary(1200.5, "secret"); err != nil {
    t.Errorf("update with right credential: %v", err)
  }
  if got, want := e.Salary(), 1200.5; got != want {
    t.Errorf("salary after update: got %v, want %v", got, want)
  }
}

func TestChangeCredential(t *testing.T) {
  e := NewEmployee("Ana", 1000.0, "secret")
  if err := e.ChangeCredential("wrong", "newpass"); !errors.Is(err, ErrNotAuthorized) {
    t.Errorf("change with wrong credential: got %v, want %v", err, ErrNotAuthorized)
  }
  if !e.VerifyCredential("secret") {
    t.Errorf("failed change should keep the old credential")
  }
  if err := e.ChangeCredential("secret", "newpass"); err != nil {
    t.Fatalf("change with right credential: %v", err)
  }
  if err := e.UpdateSalary(1200.0, "secret"); !errors.Is(err, ErrNotAuthorized) {
    t.Errorf("update with old credential: got %v, want %v", err, ErrNotAuthorized)
  }
  if err := e.UpdateSalary(1200.0, "newpass"); err != nil {
    t.Errorf("update with new credential: %v", err)
  }
  if got, want := e.Salary(), 1200.0; got != want {
    t.Errorf("salary after update: got %v, want %v", got, want)
  }
}

func TestFromRowKeepsHashVerbatim(t *testing.T) {
  row := Row{Name: "Luis", Salary: 2500.75, CredentialHash: credential.Hash("pw1")}
  e := FromRow(row)
  if got, want := e.Row(), row; got != want {
    t.Errorf("row round trip: got %+v, want %+v", got, want)
  }
  if !e.VerifyCredential("pw1") {
    t.Errorf("loaded employee should verify its credential")
  }
}

func TestParseRecord(t *testing.T) {
  e := NewEmployee("Ana, Jr.", 0.1, "secret")
  row, err := ParseRecord(e.Record())
  if err != nil {
    t.Fatalf("ParseRecord of our own record: %v", err)
  }
  if got, want := row, e.Row(); got != want {
    t.Errorf("record round trip: got %+v, want %+v", got, want)
  }

  if _, err := ParseRecord([]string{"Ana", "mil", "x"}); !errors.Is(err, ErrMalformedRow) {
    t.Errorf("non-numeric salary: got %v, want %v", err, ErrMalformedRow)
  }
  if _, err := ParseRecord([]string{"Ana", "NaN", "x"}); !errors.Is(err, ErrMalformedRow) {
    t.Errorf("NaN salary: got %v, want %v", err, ErrMalformedRow)
  }
  if _, err := ParseRecord([]string{"Ana", "1000"}); !errors.Is(err, ErrMalformedRow) {
    t.Errorf("short record: got %v, want %v", err, ErrMalformedRow)
  }
}

func TestFormatSalary(t *testing.T) {
  tests := []struct {
    salary float64
    want string
  }{
    {1000, "1000"},
    {1000.5, "1000.5"},
    {0.1, "0.1"},
    {-3, "-3"},
  }
  for _, tc := range tests {
    got := FormatSalary(tc.salary)
    if got != tc.want {
      t.Errorf("FormatSalary(%v): got %q, want %q", tc.salary, got, tc.want)
    }
    back, err := ParseSalary(got)
    if err != nil || back != tc.salary {
      t.Errorf("ParseSalary(%q): got %v, %v; want %v", got, back, err, tc.salary)
    }
  }
}
