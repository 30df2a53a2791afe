package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bankist/logger"
	"bankist/model"
	"bankist/repository"

	"github.com/shopspring/decimal"
)

// SeedAccount describes one starting account. DaysAgo gives, per movement,
// how many days before the seeding time it happened.
type SeedAccount struct {
	Owner        string
	Pin          int
	InterestRate string
	Currency     string
	Locale       string
	Movements    []int64
	DaysAgo      []int
}

// DefaultSeed is the fixed Bankist account list.
var DefaultSeed = []SeedAccount{
	{
		Owner:        "Jonas Schmedtmann",
		Pin:          1111,
		InterestRate: "1.2",
		Currency:     "EUR",
		Locale:       "pt-PT",
		Movements:    []int64{200, 450, -400, 3000, -650, -130, 70, 1300},
		DaysAgo:      []int{410, 300, 210, 120, 45, 6, 1, 0},
	},
	{
		Owner:        "Jessica Davis",
		Pin:          2222,
		InterestRate: "1.5",
		Currency:     "USD",
		Locale:       "en-US",
		Movements:    []int64{5000, 3400, -150, -790, -3210, -1000, 8500, -30},
		DaysAgo:      []int{380, 260, 190, 100, 30, 12, 3, 0},
	},
	{
		Owner:        "Steven Thomas Williams",
		Pin:          3333,
		InterestRate: "0.7",
		Currency:     "EUR",
		Locale:       "de-DE",
		Movements:    []int64{200, -200, 340, -300, -20, 50, 400, -460},
		DaysAgo:      []int{500, 400, 330, 200, 90, 20, 5, 2},
	},
	{
		Owner:        "Sarah Smith",
		Pin:          4444,
		InterestRate: "1",
		Currency:     "GBP",
		Locale:       "en-GB",
		Movements:    []int64{430, 1000, 700, 50, 90},
		DaysAgo:      []int{365, 180, 60, 7, 1},
	},
}

// BuildAccount turns a seed entry into an account with a derived username
// and hashed PIN.
func BuildAccount(seed SeedAccount, auth *AuthService, now time.Time) (*model.Account, error) {
	if len(seed.Movements) != len(seed.DaysAgo) {
		return nil, fmt.Errorf("seed %q: %d movements but %d dates", seed.Owner, len(seed.Movements), len(seed.DaysAgo))
	}
	rate, err := decimal.NewFromString(seed.InterestRate)
	if err != nil {
		return nil, fmt.Errorf("seed %q: invalid interest rate: %w", seed.Owner, err)
	}
	if _, err := NewFormatter(seed.Locale, seed.Currency); err != nil {
		return nil, fmt.Errorf("seed %q: %w", seed.Owner, err)
	}
	hash, err := auth.HashPIN(seed.Pin)
	if err != nil {
		return nil, err
	}

	acc := &model.Account{
		Owner:        seed.Owner,
		Username:     DeriveUsername(seed.Owner),
		PinHash:      hash,
		InterestRate: rate,
		Currency:     seed.Currency,
		Locale:       seed.Locale,
	}
	for i, amount := range seed.Movements {
		acc.Movements = append(acc.Movements, model.Movement{
			Amount: decimal.NewFromInt(amount),
			Date:   now.AddDate(0, 0, -seed.DaysAgo[i]),
		})
	}
	return acc, nil
}

// SeedAccounts loads seeds into repo. Accounts that already exist are left
// as they are, so seeding a persistent store twice is harmless.
func SeedAccounts(ctx context.Context, repo repository.IAccountRepository, auth *AuthService, now time.Time, seeds []SeedAccount) error {
	for _, seed := range seeds {
		acc, err := BuildAccount(seed, auth, now)
		if err != nil {
			return err
		}
		if err := repo.CreateAccount(ctx, acc); err != nil {
			if errors.Is(err, repository.ErrDuplicateUsername) {
				logger.Log.WithField("username", acc.Username).Info("Seed account already present")
				continue
			}
			return fmt.Errorf("could not seed %q: %w", acc.Username, err)
		}
	}
	logger.Log.WithField("accounts", len(seeds)).Info("Account store seeded")
	return nil
}
