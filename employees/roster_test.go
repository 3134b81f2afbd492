package employees

import (
  "slices"
  "strings"
  "testing"
)

func TestEmpty(t *testing.T) {
  r := Empty()
  if got, want := r.Count(), 0; got != want {
    t.Errorf("employee count for initial Empty: got %d, want %d", got, want)
  }
  if got := slices.Collect(r.Descriptions()); len(got) != 0 {
    t.Errorf("descriptions of empty roster: got %v, want none", got)
  }
  if got, want := len(r.Records()), 1; got != want {
    t.Errorf("records of empty roster should be just the header: got %d, want %d", got, want)
  }
  r.Add("Ana", 1000, "secret")
  if got, want := r.Count(), 1; got != want {
    t.Errorf("employee count after adding: got %d, want %d", got, want)
  }
}

func TestAddFind(t *testing.T) {
  r := Empty()
  r.Add("Ana", 1000, "secret")
  r.Add("Luis", 2000.25, "pw1")

  e := r.FindByName("Luis")
  if e == nil {
    t.Fatalf("expected Luis, got nil")
  }
  if !strings.Contains(e.Describe(), "Luis") || !strings.Contains(e.Describe(), "2000.25") {
    t.Errorf("describe of found employee: got %q", e.Describe())
  }
  if got, want := r.FindByName("ana"), r.FindByName("Ana"); got != want || got == nil {
    t.Errorf("case-insensitive lookup: got %v, want %v", got, want)
  }
  if got, want := r.FindByName("ANA"), r.FindByName("Ana"); got != want {
    t.Errorf("upper-case lookup: got %v, want %v", got, want)
  }
  var nilEmployee *Employee
  if got, want := r.FindByName("Pedro"), nilEmployee; got != want {
    t.Errorf("unknown name: got %v, want %v", got, want)
  }
  if got, want := r.FindByName("An"), nilEmployee; got != want {
    t.Errorf("prefix should not match: got %v, want %v", got, want)
  }
}

func TestDuplicateNames(t *testing.T) {
  r := Empty()
  first := r.Add("Ana", 1000, "secret")
  second := r.Add("ana", 3000, "other")
  if got, want := r.Count(), 2; got != want {
    t.Errorf("duplicate names should both be kept: got %d, want %d", got, want)
  }
  if got, want := r.FindByName("Ana"), first; got != want {
    t.Errorf("lookup of duplicate name should return the first: got %v, want %v", got, want)
  }
  if !r.Remove("Ana") {
    t.Fatalf("remove of existing name reported not found")
  }
  if got, want := r.Count(), 1; got != want {
    t.Errorf("count after removing one duplicate: got %d, want %d", got, want)
  }
  if got, want := r.FindByName("Ana"), second; got != want {
    t.Errorf("after removing the first, lookup should return the second: got %v, want %v", got, want)
  }
}

func TestRemove(t *testing.T) {
  r := Empty()
  r.Add("Ana", 1000, "secret")
  r.Add("Luis", 2000, "pw1")
  r.Add("Marta", 3000, "pw2")
  if r.Remove("Pedro") {
    t.Errorf("remove of unknown name should report not found")
  }
  if got, want := r.Count(), 3; got != want {
    t.Errorf("count after failed remove: got %d, want %d", got, want)
  }
  if !r.Remove("LUIS") {
    t.Errorf("remove of Luis should succeed")
  }
  got := slices.Collect(r.Descriptions())
  want := []string{"Ana | Salary: 1000", "Marta | Salary: 3000"}
  if !slices.Equal(got, want) {
    t.Errorf("descriptions after remove: got %v, want %v", got, want)
  }
}

func TestDescriptionsRestartable(t *testing.T) {
  r := Empty()
  r.Add("Ana", 1000, "secret")
  r.Add("Luis", 2000, "pw1")
  seq := r.Descriptions()
  first := slices.Collect(seq)
  second := slices.Collect(seq)
  if !slices.Equal(first, second) {
    t.Errorf("second pass: got %v, want %v", second, first)
  }
  n := 0
  for range seq {
    n++
    break
  }
  if got, want := n, 1; got != want {
    t.Errorf("early break: got %d items, want %d", got, want)
  }
}

func TestRowsRoundTrip(t *testing.T) {
  r := Empty()
  r.Add("Ana", 1000, "secret")
  r.Add("Luis", 2000.5, "pw1")
  r2 := FromRows(r.Rows())
  if got, want := r2.Rows(), r.Rows(); !slices.Equal(got, want) {
    t.Errorf("rows round trip: got %v, want %v", got, want)
  }
  records := r.Records()
  if got, want := records[0], Fields; !slices.Equal(got, want) {
    t.Errorf("header record: got %v, want %v", got, want)
  }
  if got, want := records[2][1], "2000.5"; got != want {
    t.Errorf("salary text for Luis: got %q, want %q", got, want)
  }
}
