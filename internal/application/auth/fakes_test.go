package auth

import (
	"context"
	"errors"
	"strconv"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

type memStore struct {
	sessions map[string]entity.Session
	err      error
	next     int
}

func newMemStore() *memStore {
	return &memStore{sessions: map[string]entity.Session{}}
}

func (m *memStore) Create(_ context.Context, s entity.Session) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.next++
	tok := "tok-" + strconv.Itoa(m.next)
	m.sessions[tok] = s
	return tok, nil
}

func (m *memStore) Get(_ context.Context, token string) (*entity.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.sessions[token]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memStore) Destroy(_ context.Context, token string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.sessions, token)
	return nil
}

var errStore = errors.New("redis caído")

type stubEmployees struct {
	byUsuario map[string]*entity.Employee
	err       error
}

func (s *stubEmployees) Create(context.Context, *entity.Employee) (int64, error) { return 0, nil }

func (s *stubEmployees) GetByUsuario(_ context.Context, u string) (*entity.Employee, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byUsuario[u], nil
}

func (s *stubEmployees) UsuarioTaken(_ context.Context, u string) (bool, error) {
	return s.byUsuario[u] != nil, nil
}

type stubClients struct {
	byUsuario map[string]*entity.Client
}

func (s *stubClients) Create(context.Context, *entity.Client) (int64, error) { return 0, nil }
func (s *stubClients) Exists(context.Context, int64) (bool, error)           { return false, nil }

func (s *stubClients) GetByUsuario(_ context.Context, u string) (*entity.Client, error) {
	return s.byUsuario[u], nil
}

func (s *stubClients) UsuarioTaken(_ context.Context, u string) (bool, error) {
	return s.byUsuario[u] != nil, nil
}

func (s *stubClients) Purchases(context.Context, int64) ([]entity.Purchase, error) { return nil, nil }
