package repository

import (
	"context"
	"time"

	"bankist/model"

	"github.com/shopspring/decimal"
)

// IAccountRepository is the Account Store. Accounts are kept in creation
// order and usernames are unique. Returned accounts are copies.
type IAccountRepository interface {
	CreateAccount(ctx context.Context, account *model.Account) error
	GetAccountByUsername(ctx context.Context, username string) (*model.Account, error)
	GetAllAccounts(ctx context.Context) ([]*model.Account, error)
	AppendMovement(ctx context.Context, username string, movement model.Movement) error
	// Transfer appends -amount to from and +amount to to, both stamped with at,
	// or neither. It fails with ErrInsufficientFunds when from's balance is
	// below amount at the time of the write.
	Transfer(ctx context.Context, from, to string, amount decimal.Decimal, at time.Time) error
	DeleteAccount(ctx context.Context, username string) error
}
