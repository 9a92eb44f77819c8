package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/ykohira/worktime/internal/domain"
	"github.com/ykohira/worktime/internal/store"
)

type accountService struct {
	sync *store.Syncer

	mu        sync.Mutex
	currentID string
}

// NewAccountService creates the account registry over the given store
// tiers. Selection of the current account is session state; after a
// restart it falls back to the first account in registry order.
func NewAccountService(syncer *store.Syncer) AccountService {
	return &accountService{sync: syncer}
}

func (s *accountService) List(ctx context.Context) ([]domain.Account, error) {
	return s.load(ctx)
}

func (s *accountService) Get(ctx context.Context, id string) (*domain.Account, error) {
	accounts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, fmt.Errorf("account %q: %w", id, ErrNotFound)
}

func (s *accountService) Create(ctx context.Context, name string) (*domain.Account, error) {
	account := domain.Account{ID: uuid.New().String(), Name: name}
	if err := account.Validate(); err != nil {
		return nil, err
	}

	accounts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	accounts = append(accounts, account)
	if err := s.sync.SaveJSON(ctx, store.AccountsResource(), accounts); err != nil {
		return nil, err
	}

	// A new account becomes the current one.
	s.mu.Lock()
	s.currentID = account.ID
	s.mu.Unlock()
	return &account, nil
}

func (s *accountService) Delete(ctx context.Context, id string) error {
	accounts, err := s.load(ctx)
	if err != nil {
		return err
	}

	remaining := make([]domain.Account, 0, len(accounts))
	found := false
	for _, a := range accounts {
		if a.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, a)
	}
	if !found {
		return nil // idempotent
	}
	if len(remaining) == 0 {
		return ErrLastAccount
	}

	if err := s.sync.SaveJSON(ctx, store.AccountsResource(), remaining); err != nil {
		return err
	}

	s.mu.Lock()
	if s.currentID == id {
		s.currentID = remaining[0].ID
	}
	s.mu.Unlock()
	return nil
}

func (s *accountService) Current(ctx context.Context) (*domain.Account, error) {
	accounts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	id := s.currentID
	s.mu.Unlock()

	if id != "" {
		for _, a := range accounts {
			if a.ID == id {
				return &a, nil
			}
		}
	}
	return &accounts[0], nil
}

func (s *accountService) Switch(ctx context.Context, id string) (*domain.Account, error) {
	account, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.currentID = account.ID
	s.mu.Unlock()
	return account, nil
}

// load reads the registry, seeding and persisting the default account on
// first run so a current account is always selectable.
func (s *accountService) load(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if _, err := s.sync.LoadJSON(ctx, store.AccountsResource(), &accounts); err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		accounts = []domain.Account{{ID: "default", Name: "メイン案件"}}
		if err := s.sync.SaveJSON(ctx, store.AccountsResource(), accounts); err != nil {
			return nil, err
		}
	}
	return accounts, nil
}
