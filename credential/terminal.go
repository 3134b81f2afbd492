package credential

import (
  "errors"
  "fmt"
  "io"

  "golang.org/x/crypto/ssh/terminal"
)

// ErrMismatch is returned by ReadNewHidden when the two entries differ.
var ErrMismatch = errors.New("credentials did not match")

// Allow overriding for unit testing.
var (
  isTerminal = terminal.IsTerminal
  readPassword = terminal.ReadPassword
)

// IsTerminal reports whether fd is connected to a terminal, in which case
// ReadHidden can be used on it.
func IsTerminal(fd int) bool {
  return isTerminal(fd)
}

// ReadHidden prints the prompt to w and reads one secret from the terminal
// at fd without echoing it.
func ReadHidden(fd int, w io.Writer, prompt string) (string, error) {
  if !isTerminal(fd) {
    return "", fmt.Errorf("reading a hidden credential requires a terminal")
  }
  fmt.Fprint(w, prompt)
  pw, err := readPassword(fd)
  fmt.Fprint(w, "\n")
  if err != nil {
    return "", fmt.Errorf("error reading credential: %w", err)
  }
  return string(pw), nil
}

// ReadNewHidden reads a new secret twice and fails if the two entries differ.
func ReadNewHidden(fd int, w io.Writer, prompt string) (string, error) {
  pw, err := ReadHidden(fd, w, prompt)
  if err != nil {
    return "", err
  }
  pw2, err := ReadHidden(fd, w, "Repeat: ")
  if err != nil {
    return "", err
  }
  if pw2 != pw {
    return "", ErrMismatch
  }
  return pw, nil
}
