package secret

import (
	"fmt"
	"testing"
)

// mockKeyring 是内存 keyring，模拟 OS secret store
type mockKeyring struct {
	data map[string]map[string]string
}

func newMockKeyring() *mockKeyring {
	return &mockKeyring{data: make(map[string]map[string]string)}
}

func (m *mockKeyring) Get(service, account string) (string, error) {
	if svc, ok := m.data[service]; ok {
		if v, ok := svc[account]; ok {
			return v, nil
		}
	}
	return "", fmt.Errorf("not found: %s/%s", service, account)
}

func (m *mockKeyring) Set(service, account, value string) error {
	if m.data[service] == nil {
		m.data[service] = make(map[string]string)
	}
	m.data[service][account] = value
	return nil
}

func (m *mockKeyring) Delete(service, account string) error {
	if svc, ok := m.data[service]; ok {
		delete(svc, account)
	}
	return nil
}

func TestKeyringAPI_Interface(t *testing.T) {
	var _ KeyringAPI = (*mockKeyring)(nil)
	var _ KeyringAPI = (*osKeyring)(nil)
}

func TestStore_PasswordMissing(t *testing.T) {
	s := NewStore(newMockKeyring())
	if got := s.Password("jdoe"); got != "" {
		t.Errorf("Password = %q, want empty for missing entry", got)
	}
}

func TestStore_SetAndGet(t *testing.T) {
	kr := newMockKeyring()
	s := NewStore(kr)

	if xe := s.SetPassword("jdoe", "secret123"); xe != nil {
		t.Fatalf("unexpected error: %v", xe)
	}
	if got := s.Password("jdoe"); got != "secret123" {
		t.Errorf("Password = %q, want secret123", got)
	}

	// 必须存在固定 service 名下
	if _, err := kr.Get(ServiceName, "jdoe"); err != nil {
		t.Errorf("entry not stored under service %q: %v", ServiceName, err)
	}
}

func TestStore_Clear(t *testing.T) {
	kr := newMockKeyring()
	s := NewStore(kr)

	if xe := s.SetPassword("jdoe", "wrong-password"); xe != nil {
		t.Fatal(xe)
	}
	if xe := s.Clear("jdoe"); xe != nil {
		t.Fatalf("unexpected error: %v", xe)
	}

	// Clear 置空而不删除：条目仍在，值为空串
	val, err := kr.Get(ServiceName, "jdoe")
	if err != nil {
		t.Fatalf("entry should still exist after Clear: %v", err)
	}
	if val != "" {
		t.Errorf("value = %q, want empty after Clear", val)
	}
	if got := s.Password("jdoe"); got != "" {
		t.Errorf("Password = %q, want empty after Clear", got)
	}
}
