package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bankist/logger"
	"bankist/model"
	"bankist/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// loanCoverRatio is the share of a requested loan that one existing movement
// must reach for the loan to be granted.
var loanCoverRatio = decimal.NewFromFloat(0.1)

// validAmount accepts positive amounts with at most two decimals, the
// precision the stores keep.
func validAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Equal(amount.Round(2))
}

// ActionObserver is told the outcome of every session action.
type ActionObserver interface {
	ObserveAction(action, outcome string)
}

type noopObserver struct{}

func (noopObserver) ObserveAction(string, string) {}

// Session is the session controller: it is either logged out or logged in to
// one account, and dispatches the user actions against the store. Each
// action is a single check-then-act; a rejected action changes nothing.
type Session struct {
	mu       sync.Mutex
	repo     repository.IAccountRepository
	auth     *AuthService
	clock    func() time.Time
	observer ActionObserver

	username string
	sorted   bool
}

type SessionOption func(*Session)

func WithClock(clock func() time.Time) SessionOption {
	return func(s *Session) { s.clock = clock }
}

func WithObserver(o ActionObserver) SessionOption {
	return func(s *Session) { s.observer = o }
}

func NewSession(repo repository.IAccountRepository, auth *AuthService, opts ...SessionOption) *Session {
	s := &Session{
		repo:     repo,
		auth:     auth,
		clock:    time.Now,
		observer: noopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Username returns the logged-in username, or "" when logged out.
func (s *Session) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username
}

func (s *Session) LoggedIn() bool {
	return s.Username() != ""
}

func (s *Session) done(action string, err error) {
	s.observer.ObserveAction(action, Reason(err))
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"action":   action,
			"username": s.username,
			"reason":   Reason(err),
		}).Info("Action rejected")
	}
}

// current loads the logged-in account. An account that disappeared from the
// store ends the session.
func (s *Session) current(ctx context.Context) (*model.Account, error) {
	if s.username == "" {
		return nil, ErrNotLoggedIn
	}
	acc, err := s.repo.GetAccountByUsername(ctx, s.username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			s.username, s.sorted = "", false
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}
	return acc, nil
}

func (s *Session) render(acc *model.Account) (*model.AccountView, error) {
	f, err := NewFormatter(acc.Locale, acc.Currency)
	if err != nil {
		return nil, fmt.Errorf("could not build formatter for %s: %w", acc.Username, err)
	}
	return RenderView(acc, s.clock(), s.sorted, f), nil
}

// Login switches the session to username when pin matches. A failed login
// keeps whatever state the session had before. Sorting is reset.
func (s *Session) Login(ctx context.Context, username string, pin int) (view *model.AccountView, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.done("login", err) }()

	acc, err := s.repo.GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.auth.CheckPIN(pin, acc.PinHash) {
		return nil, ErrInvalidCredentials
	}

	s.username, s.sorted = acc.Username, false
	logger.Log.WithField("username", acc.Username).Info("Session logged in")
	return s.render(acc)
}

func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username, s.sorted = "", false
}

// View re-renders the logged-in account without changing anything.
func (s *Session) View(ctx context.Context) (*model.AccountView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return s.render(acc)
}

// Transfer moves amount to the account named to. The receiver must exist
// and differ from the sender, and the sender's balance must cover amount.
func (s *Session) Transfer(ctx context.Context, to string, amount decimal.Decimal) (view *model.AccountView, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.done("transfer", err) }()

	acc, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	if !validAmount(amount) {
		return nil, ErrInvalidAmount
	}
	if to == acc.Username {
		return nil, ErrInvalidReceiver
	}
	if _, err := s.repo.GetAccountByUsername(ctx, to); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrInvalidReceiver
		}
		return nil, err
	}
	if Balance(acc.Amounts()).LessThan(amount) {
		return nil, ErrInsufficientFunds
	}

	if err := s.repo.Transfer(ctx, acc.Username, to, amount, s.clock()); err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientFunds):
			return nil, ErrInsufficientFunds
		case errors.Is(err, repository.ErrAccountNotFound):
			return nil, ErrInvalidReceiver
		default:
			return nil, err
		}
	}

	acc, err = s.current(ctx)
	if err != nil {
		return nil, err
	}
	return s.render(acc)
}

// RequestLoan credits amount when at least one existing movement is worth
// 10% of it or more.
func (s *Session) RequestLoan(ctx context.Context, amount decimal.Decimal) (view *model.AccountView, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.done("loan", err) }()

	acc, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	if !validAmount(amount) {
		return nil, ErrInvalidAmount
	}

	threshold := amount.Mul(loanCoverRatio)
	covered := false
	for _, m := range acc.Movements {
		if m.Amount.GreaterThanOrEqual(threshold) {
			covered = true
			break
		}
	}
	if !covered {
		return nil, ErrLoanDenied
	}

	movement := model.Movement{Amount: amount, Date: s.clock()}
	if err := s.repo.AppendMovement(ctx, acc.Username, movement); err != nil {
		return nil, err
	}
	acc.Movements = append(acc.Movements, movement)
	return s.render(acc)
}

// Close deletes the logged-in account when username and pin both match it,
// then logs out.
func (s *Session) Close(ctx context.Context, username string, pin int) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.done("close", err) }()

	acc, err := s.current(ctx)
	if err != nil {
		return err
	}
	if username != acc.Username || !s.auth.CheckPIN(pin, acc.PinHash) {
		return ErrCloseMismatch
	}

	if err := s.repo.DeleteAccount(ctx, acc.Username); err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
		return err
	}
	logger.Log.WithField("username", acc.Username).Info("Account closed")
	s.username, s.sorted = "", false
	return nil
}

// ToggleSort flips between ascending-amount and insertion order.
func (s *Session) ToggleSort(ctx context.Context) (view *model.AccountView, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.done("sort", err) }()

	acc, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	s.sorted = !s.sorted
	return s.render(acc)
}
