package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrPasswordNotSet is returned when no password was entered
var ErrPasswordNotSet = errors.New("password not set: run the app interactively to enter it")

// PromptForPassword prompts the user for a password in the terminal.
// The password is read without echoing (hidden input).
// Caller must zero the returned slice after use.
func PromptForPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}
	return raw, nil
}

// PasswordStore keeps the wallet password in memory after it was entered at startup
type PasswordStore struct {
	mu       sync.Mutex
	password []byte
}

// Set stores a copy of password
func (s *PasswordStore) Set(password []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.password)
	s.password = append([]byte(nil), password...)
}

// Clear forgets the stored password
func (s *PasswordStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.password)
	s.password = nil
}

// Password returns a copy of the stored password.
// Caller must zero the returned slice after use.
func (s *PasswordStore) Password(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.password) == 0 {
		return nil, ErrPasswordNotSet
	}
	out := make([]byte, len(s.password))
	copy(out, s.password)
	return out, nil
}
