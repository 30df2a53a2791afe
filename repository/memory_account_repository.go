package repository

import (
	"context"
	"sync"
	"time"

	"bankist/logger"
	"bankist/model"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// MemoryAccountRepository keeps accounts in an ordered slice. Nothing
// survives a restart.
type MemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts []*model.Account
}

func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{}
}

func (r *MemoryAccountRepository) indexOf(username string) int {
	for i, acc := range r.accounts {
		if acc.Username == username {
			return i
		}
	}
	return -1
}

// CreateAccount appends a copy of account to the store.
func (r *MemoryAccountRepository) CreateAccount(_ context.Context, account *model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"username": account.Username,
		"currency": account.Currency,
	})
	log.Info("Creating account in memory store")

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(account.Username) >= 0 {
		log.Warn("Username already taken")
		return ErrDuplicateUsername
	}
	r.accounts = append(r.accounts, account.Clone())
	return nil
}

func (r *MemoryAccountRepository) GetAccountByUsername(_ context.Context, username string) (*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(username)
	if i < 0 {
		return nil, ErrAccountNotFound
	}
	return r.accounts[i].Clone(), nil
}

func (r *MemoryAccountRepository) GetAllAccounts(_ context.Context) ([]*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Account, 0, len(r.accounts))
	for _, acc := range r.accounts {
		out = append(out, acc.Clone())
	}
	return out, nil
}

func (r *MemoryAccountRepository) AppendMovement(_ context.Context, username string, movement model.Movement) error {
	log := logger.Log.WithFields(logrus.Fields{
		"username": username,
		"amount":   movement.Amount.String(),
	})
	log.Info("Appending movement")

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(username)
	if i < 0 {
		log.Warn("Account not found for movement")
		return ErrAccountNotFound
	}
	r.accounts[i].Movements = append(r.accounts[i].Movements, movement)
	return nil
}

func (r *MemoryAccountRepository) Transfer(_ context.Context, from, to string, amount decimal.Decimal, at time.Time) error {
	log := logger.Log.WithFields(logrus.Fields{
		"from":   from,
		"to":     to,
		"amount": amount.String(),
	})
	log.Info("Executing transfer in memory store")

	r.mu.Lock()
	defer r.mu.Unlock()

	fi, ti := r.indexOf(from), r.indexOf(to)
	if fi < 0 || ti < 0 {
		return ErrAccountNotFound
	}
	sender, receiver := r.accounts[fi], r.accounts[ti]

	balance := decimal.Zero
	for _, m := range sender.Movements {
		balance = balance.Add(m.Amount)
	}
	if balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	sender.Movements = append(sender.Movements, model.Movement{Amount: amount.Neg(), Date: at})
	receiver.Movements = append(receiver.Movements, model.Movement{Amount: amount, Date: at})
	return nil
}

func (r *MemoryAccountRepository) DeleteAccount(_ context.Context, username string) error {
	logger.Log.WithField("username", username).Info("Deleting account from memory store")

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(username)
	if i < 0 {
		return ErrAccountNotFound
	}
	r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
	return nil
}
