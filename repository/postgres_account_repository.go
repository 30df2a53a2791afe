package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bankist/logger"
	"bankist/model"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// AccountRepository stores accounts and their movements in PostgreSQL.
// Schema lives in db/migrations.
type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// CreateAccount inserts the account row and its seed movements in one transaction.
func (r *AccountRepository) CreateAccount(ctx context.Context, account *model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"username":  account.Username,
		"currency":  account.Currency,
		"movements": len(account.Movements),
	})
	log.Info("Executing query to create a new account")

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO accounts (username, owner, pin_hash, interest_rate, currency, locale) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.ExecContext(ctx, query, account.Username, account.Owner, account.PinHash, account.InterestRate, account.Currency, account.Locale)
	if err != nil {
		if pqCode(err) == pqUniqueViolation {
			return ErrDuplicateUsername
		}
		log.WithError(err).Error("Failed to execute create account query")
		return err
	}

	for _, m := range account.Movements {
		if err := insertMovement(ctx, tx, account.Username, m.Amount, m.Date); err != nil {
			log.WithError(err).Error("Failed to insert seed movement")
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

func insertMovement(ctx context.Context, tx *sql.Tx, username string, amount decimal.Decimal, at time.Time) error {
	query := `INSERT INTO movements (username, amount, occurred_at) VALUES ($1, $2, $3)`
	_, err := tx.ExecContext(ctx, query, username, amount, at)
	return err
}

func (r *AccountRepository) loadMovements(ctx context.Context, username string) ([]model.Movement, error) {
	query := `SELECT amount, occurred_at FROM movements WHERE username = $1 ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []model.Movement
	for rows.Next() {
		var m model.Movement
		if err := rows.Scan(&m.Amount, &m.Date); err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

// GetAccountByUsername retrieves one account with its full movement history.
func (r *AccountRepository) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	log := logger.Log.WithField("username", username)
	log.Info("Executing query to get account by username")

	acc := &model.Account{}
	query := `SELECT username, owner, pin_hash, interest_rate, currency, locale FROM accounts WHERE username = $1`
	err := r.DB.QueryRowContext(ctx, query, username).Scan(&acc.Username, &acc.Owner, &acc.PinHash, &acc.InterestRate, &acc.Currency, &acc.Locale)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		log.WithError(err).Error("Failed to execute get account query")
		return nil, err
	}

	acc.Movements, err = r.loadMovements(ctx, username)
	if err != nil {
		log.WithError(err).Error("Failed to load movements")
		return nil, err
	}
	return acc, nil
}

// GetAllAccounts retrieves every account in creation order.
func (r *AccountRepository) GetAllAccounts(ctx context.Context) ([]*model.Account, error) {
	log := logger.Log
	log.Info("Executing query to get all accounts")

	query := `SELECT username, owner, pin_hash, interest_rate, currency, locale FROM accounts ORDER BY position`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for all accounts")
		return nil, err
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		var acc model.Account
		if err := rows.Scan(&acc.Username, &acc.Owner, &acc.PinHash, &acc.InterestRate, &acc.Currency, &acc.Locale); err != nil {
			log.WithError(err).Error("Failed to scan account row")
			return nil, err
		}
		accounts = append(accounts, &acc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for _, acc := range accounts {
		if acc.Movements, err = r.loadMovements(ctx, acc.Username); err != nil {
			log.WithError(err).Error("Failed to load movements")
			return nil, err
		}
	}
	return accounts, nil
}

func (r *AccountRepository) AppendMovement(ctx context.Context, username string, movement model.Movement) error {
	log := logger.Log.WithFields(logrus.Fields{
		"username": username,
		"amount":   movement.Amount.String(),
	})
	log.Info("Executing query to append a movement")

	query := `INSERT INTO movements (username, amount, occurred_at) VALUES ($1, $2, $3)`
	_, err := r.DB.ExecContext(ctx, query, username, movement.Amount, movement.Date)
	if err != nil {
		if pqCode(err) == pqForeignKeyViolation {
			return ErrAccountNotFound
		}
		log.WithError(err).Error("Failed to execute append movement query")
		return err
	}
	return nil
}

// Transfer locks both account rows in username order, re-checks the sender
// balance and writes both legs in one transaction.
func (r *AccountRepository) Transfer(ctx context.Context, from, to string, amount decimal.Decimal, at time.Time) error {
	log := logger.Log.WithFields(logrus.Fields{
		"from":   from,
		"to":     to,
		"amount": amount.String(),
	})
	log.Info("Starting transfer transaction")

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	first, second := from, to
	if second < first {
		first, second = second, first
	}
	for _, username := range []string{first, second} {
		var locked string
		err := tx.QueryRowContext(ctx, `SELECT username FROM accounts WHERE username = $1 FOR UPDATE`, username).Scan(&locked)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrAccountNotFound
			}
			return err
		}
	}

	var balance decimal.Decimal
	err = tx.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0) FROM movements WHERE username = $1`, from).Scan(&balance)
	if err != nil {
		return err
	}
	if balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	if err := insertMovement(ctx, tx, from, amount.Neg(), at); err != nil {
		return fmt.Errorf("could not debit sender: %w", err)
	}
	if err := insertMovement(ctx, tx, to, amount, at); err != nil {
		return fmt.Errorf("could not credit receiver: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	log.Info("Transfer committed")
	return nil
}

// DeleteAccount removes the account; movements go with it (ON DELETE CASCADE).
func (r *AccountRepository) DeleteAccount(ctx context.Context, username string) error {
	log := logger.Log.WithField("username", username)
	log.Info("Executing query to delete account")

	res, err := r.DB.ExecContext(ctx, `DELETE FROM accounts WHERE username = $1`, username)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete account query")
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAccountNotFound
	}
	return nil
}
