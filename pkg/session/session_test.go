package session

import (
	"errors"
	"testing"
)

type memBackend struct {
	data map[string][]byte
}

func newMemBackend() *memBackend {
	return &memBackend{data: make(map[string][]byte)}
}

func (m *memBackend) Read(key string) ([]byte, bool) {
	data, ok := m.data[key]
	return data, ok
}

func (m *memBackend) Write(key string, data []byte) error {
	m.data[key] = data
	return nil
}

func (m *memBackend) Erase(key string) error {
	delete(m.data, key)
	return nil
}

func TestKeyNamespacing(t *testing.T) {
	if got := Key("tasks", ""); got != "tasks" {
		t.Fatalf("empty identity should not change the key, got %q", got)
	}
	a := Key("tasks", "a@x.com")
	b := Key("tasks", "b@x.com")
	if a == b {
		t.Fatalf("identities must not share keys, both resolved to %q", a)
	}
	if a == "tasks" || b == "tasks" {
		t.Fatal("identity keys must not collide with the shared namespace")
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		pwd string
		ok  bool
	}{
		{"study1!", true},
		{"abcde1!", true},
		{"short1!", true},
		{"ab1!", false},       // too few letters
		{"abcdefg!", false},   // no digit
		{"abcdefg1", false},   // no special
		{"abcd1!", false},     // under seven characters
		{"", false},
	}
	for _, tt := range tests {
		err := ValidatePassword(tt.pwd)
		if tt.ok && err != nil {
			t.Errorf("ValidatePassword(%q) = %v, want nil", tt.pwd, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("ValidatePassword(%q) = nil, want error", tt.pwd)
		}
	}
}

func TestSignupLoginLogout(t *testing.T) {
	m := &Manager{Backend: newMemBackend()}

	if got := m.Current(); got != "" {
		t.Fatalf("fresh backend should be logged out, got %q", got)
	}

	if err := m.Signup("a@x.com", "study1!"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if got := m.Current(); got != "a@x.com" {
		t.Fatalf("signup should log in, current = %q", got)
	}

	if err := m.Signup("a@x.com", "study1!"); err == nil {
		t.Fatal("duplicate signup should fail")
	}

	if err := m.Logout(); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if got := m.Current(); got != "" {
		t.Fatalf("logout should clear the session, current = %q", got)
	}

	if err := m.Login("a@x.com", "study1!"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if got := m.Current(); got != "a@x.com" {
		t.Fatalf("login did not activate identity, current = %q", got)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	m := &Manager{Backend: newMemBackend()}
	if err := m.Signup("a@x.com", "study1!"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	wrongPwd := m.Login("a@x.com", "wrong1!")
	unknownUser := m.Login("nobody@x.com", "study1!")

	if !errors.Is(wrongPwd, ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v, want ErrInvalidCredentials", wrongPwd)
	}
	if !errors.Is(unknownUser, ErrInvalidCredentials) {
		t.Fatalf("unknown identity: got %v, want ErrInvalidCredentials", unknownUser)
	}
	if wrongPwd.Error() != unknownUser.Error() {
		t.Fatal("both failure modes must produce the same message")
	}
}

func TestMalformedRegistryReadsEmpty(t *testing.T) {
	b := newMemBackend()
	b.data["accounts"] = []byte("{not json")
	m := &Manager{Backend: b}

	if err := m.Login("a@x.com", "study1!"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("login against a corrupt registry: got %v, want ErrInvalidCredentials", err)
	}
	if err := m.Signup("a@x.com", "study1!"); err != nil {
		t.Fatalf("signup should recover from a corrupt registry: %v", err)
	}
}
