package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bankist/logger"
	"bankist/model"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// cachedAccount mirrors model.Account including the PIN hash, which the
// public JSON form omits.
type cachedAccount struct {
	Owner        string           `json:"owner"`
	Username     string           `json:"username"`
	PinHash      string           `json:"pin_hash"`
	Movements    []model.Movement `json:"movements"`
	InterestRate decimal.Decimal  `json:"interest_rate"`
	Currency     string           `json:"currency"`
	Locale       string           `json:"locale"`
}

// CachedAccountRepository puts a cache-aside layer in front of another
// repository. Single-account reads are cached; every write drops the keys of
// the accounts it touched.
type CachedAccountRepository struct {
	next  IAccountRepository
	cache ICacheClient
	ttl   time.Duration
}

func NewCachedAccountRepository(next IAccountRepository, cache ICacheClient, ttl time.Duration) *CachedAccountRepository {
	return &CachedAccountRepository{next: next, cache: cache, ttl: ttl}
}

func accountCacheKey(username string) string {
	return fmt.Sprintf("account:%s", username)
}

func (r *CachedAccountRepository) invalidate(ctx context.Context, usernames ...string) {
	keys := make([]string, len(usernames))
	for i, u := range usernames {
		keys[i] = accountCacheKey(u)
	}
	if err := r.cache.Del(ctx, keys...).Err(); err != nil {
		logger.Log.WithError(err).WithField("keys", keys).Warn("Failed to invalidate account cache")
	}
}

func (r *CachedAccountRepository) CreateAccount(ctx context.Context, account *model.Account) error {
	if err := r.next.CreateAccount(ctx, account); err != nil {
		return err
	}
	r.invalidate(ctx, account.Username)
	return nil
}

func (r *CachedAccountRepository) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	key := accountCacheKey(username)

	raw, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var c cachedAccount
		if err := json.Unmarshal([]byte(raw), &c); err == nil {
			return &model.Account{
				Owner:        c.Owner,
				Username:     c.Username,
				PinHash:      c.PinHash,
				Movements:    c.Movements,
				InterestRate: c.InterestRate,
				Currency:     c.Currency,
				Locale:       c.Locale,
			}, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		logger.Log.WithError(err).WithField("key", key).Warn("Account cache read failed")
	}

	acc, err := r.next.GetAccountByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(cachedAccount{
		Owner:        acc.Owner,
		Username:     acc.Username,
		PinHash:      acc.PinHash,
		Movements:    acc.Movements,
		InterestRate: acc.InterestRate,
		Currency:     acc.Currency,
		Locale:       acc.Locale,
	})
	if err == nil {
		if err := r.cache.Set(ctx, key, data, r.ttl).Err(); err != nil {
			logger.Log.WithError(err).WithField("key", key).Warn("Account cache write failed")
		}
	}
	return acc, nil
}

// GetAllAccounts is not cached.
func (r *CachedAccountRepository) GetAllAccounts(ctx context.Context) ([]*model.Account, error) {
	return r.next.GetAllAccounts(ctx)
}

func (r *CachedAccountRepository) AppendMovement(ctx context.Context, username string, movement model.Movement) error {
	if err := r.next.AppendMovement(ctx, username, movement); err != nil {
		return err
	}
	r.invalidate(ctx, username)
	return nil
}

func (r *CachedAccountRepository) Transfer(ctx context.Context, from, to string, amount decimal.Decimal, at time.Time) error {
	if err := r.next.Transfer(ctx, from, to, amount, at); err != nil {
		return err
	}
	r.invalidate(ctx, from, to)
	return nil
}

func (r *CachedAccountRepository) DeleteAccount(ctx context.Context, username string) error {
	if err := r.next.DeleteAccount(ctx, username); err != nil {
		return err
	}
	r.invalidate(ctx, username)
	return nil
}
