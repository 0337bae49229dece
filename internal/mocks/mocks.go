// Package mocks provides hand-written test doubles for the ports. Each mock
// delegates to a function field so tests can script behavior per call.
package mocks

import (
	"context"
	"sync"

	"github.com/AbdelhakNemri/sports-arena-client/internal/domain/model"
	"github.com/AbdelhakNemri/sports-arena-client/internal/ports"
)

// CredentialExchanger mocks ports.CredentialExchanger.
type CredentialExchanger struct {
	ExchangeFunc func(ctx context.Context, username, password string) (string, error)
}

func (m *CredentialExchanger) Exchange(ctx context.Context, username, password string) (string, error) {
	return m.ExchangeFunc(ctx, username, password)
}

// NotificationAPI mocks ports.NotificationAPI. Unset fields return zero
// values so tests only script what they assert on.
type NotificationAPI struct {
	ListFunc        func(ctx context.Context) ([]model.Notification, error)
	UnreadCountFunc func(ctx context.Context) (int, error)
	MarkReadFunc    func(ctx context.Context, id int64) error
	MarkAllReadFunc func(ctx context.Context) error
	DeleteFunc      func(ctx context.Context, id int64) error
}

func (m *NotificationAPI) List(ctx context.Context) ([]model.Notification, error) {
	if m.ListFunc == nil {
		return nil, nil
	}
	return m.ListFunc(ctx)
}

func (m *NotificationAPI) UnreadCount(ctx context.Context) (int, error) {
	if m.UnreadCountFunc == nil {
		return 0, nil
	}
	return m.UnreadCountFunc(ctx)
}

func (m *NotificationAPI) MarkRead(ctx context.Context, id int64) error {
	if m.MarkReadFunc == nil {
		return nil
	}
	return m.MarkReadFunc(ctx, id)
}

func (m *NotificationAPI) MarkAllRead(ctx context.Context) error {
	if m.MarkAllReadFunc == nil {
		return nil
	}
	return m.MarkAllReadFunc(ctx)
}

func (m *NotificationAPI) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc == nil {
		return nil
	}
	return m.DeleteFunc(ctx, id)
}

// TokenStore mocks ports.TokenStore with an in-memory token plus optional
// error injection per operation.
type TokenStore struct {
	mu    sync.Mutex
	token string
	has   bool

	SaveErr   error
	GetErr    error
	RemoveErr error
}

func (m *TokenStore) Save(_ context.Context, token string) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.has = true
	return nil
}

func (m *TokenStore) Get(_ context.Context) (string, error) {
	if m.GetErr != nil {
		return "", m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.has {
		return "", ports.ErrNoToken
	}
	return m.token, nil
}

func (m *TokenStore) Remove(_ context.Context) error {
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.has = false
	return nil
}

func (m *TokenStore) Has(_ context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.has
}
