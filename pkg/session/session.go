package session

import (
	"encoding/json"
	"errors"
	"strings"
)

const (
	keyCurrentUser = "currentUser"
	keyAccounts    = "accounts"
)

// ErrInvalidCredentials covers both unknown identity and wrong password so
// callers cannot tell which case applied.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrNotLoggedIn is returned by operations that need an active session.
var ErrNotLoggedIn = errors.New("not logged in")

// Backend is the minimal key/value surface the manager needs. Both session
// keys are process-wide, never namespaced.
type Backend interface {
	Read(key string) ([]byte, bool)
	Write(key string, data []byte) error
	Erase(key string) error
}

// Manager owns the account registry and the active session identity.
// Passwords are stored in plain text; this is a namespacing convenience,
// not a security boundary.
type Manager struct {
	Backend Backend
}

// Current returns the active session identity, or "" when logged out.
func (m *Manager) Current() string {
	data, ok := m.Backend.Read(keyCurrentUser)
	if !ok {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Signup registers a new identity. An existing identity is rejected.
func (m *Manager) Signup(email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email required")
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	accounts := m.accounts()
	if _, exists := accounts[email]; exists {
		return errors.New("an account with this email already exists")
	}
	accounts[email] = password
	if err := m.saveAccounts(accounts); err != nil {
		return err
	}
	return m.setCurrent(email)
}

// Login verifies credentials and activates the identity.
func (m *Manager) Login(email, password string) error {
	email = strings.TrimSpace(email)
	accounts := m.accounts()
	if accounts[email] != password || password == "" {
		return ErrInvalidCredentials
	}
	return m.setCurrent(email)
}

// Logout clears the active identity. Per-identity data is retained.
func (m *Manager) Logout() error {
	return m.Backend.Erase(keyCurrentUser)
}

func (m *Manager) setCurrent(email string) error {
	return m.Backend.Write(keyCurrentUser, []byte(email))
}

func (m *Manager) accounts() map[string]string {
	accounts := make(map[string]string)
	data, ok := m.Backend.Read(keyAccounts)
	if !ok {
		return accounts
	}
	// Malformed registry reads as empty rather than failing.
	_ = json.Unmarshal(data, &accounts)
	return accounts
}

func (m *Manager) saveAccounts(accounts map[string]string) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return m.Backend.Write(keyAccounts, data)
}
