package repository

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/Lewis310/MyPortfolio/internal/apperrors"
)

// Settings keys.
const (
	settingAPIKey       = "market_api_key"
	settingAPICallCount = "api_call_count"
	settingAPILastCall  = "api_last_call"
)

// SettingsRepository provides data access methods for the settings table:
// the market-data API key (encrypted at rest) and the provider's persisted
// call counters. It implements marketdata.LimiterStore.
type SettingsRepository struct {
	db        *sql.DB
	fernetKey *fernet.Key
}

// NewSettingsRepository creates a new SettingsRepository. The fernet key is
// used to encrypt the API key at rest; it may be nil when no secret storage
// is needed (tests, demo mode), in which case API-key operations fail.
func NewSettingsRepository(db *sql.DB, fernetKey *fernet.Key) *SettingsRepository {
	return &SettingsRepository{db: db, fernetKey: fernetKey}
}

// Get retrieves a raw settings value.
func (r *SettingsRepository) Get(key string) (string, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", apperrors.ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query settings table: %w", err)
	}
	return value, nil
}

// Set stores a raw settings value, replacing any existing one.
func (r *SettingsRepository) Set(key, value string) error {
	query := `
          INSERT INTO settings (key, value) VALUES (?, ?)
          ON CONFLICT (key) DO UPDATE SET value = excluded.value
      `
	if _, err := r.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to store setting %s: %w", key, err)
	}
	return nil
}

// SetAPIKey encrypts and stores the market-data API key.
func (r *SettingsRepository) SetAPIKey(apiKey string) error {
	if r.fernetKey == nil {
		return fmt.Errorf("cannot store API key: no encryption key configured")
	}

	token, err := fernet.EncryptAndSign([]byte(apiKey), r.fernetKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt API key: %w", err)
	}
	return r.Set(settingAPIKey, string(token))
}

// GetAPIKey retrieves and decrypts the market-data API key.
// Returns ErrAPIKeyNotConfigured when no key has been stored or the stored
// token cannot be verified.
func (r *SettingsRepository) GetAPIKey() (string, error) {
	if r.fernetKey == nil {
		return "", apperrors.ErrAPIKeyNotConfigured
	}

	token, err := r.Get(settingAPIKey)
	if err == apperrors.ErrSettingNotFound {
		return "", apperrors.ErrAPIKeyNotConfigured
	}
	if err != nil {
		return "", err
	}

	// TTL 0 disables token expiry; the stored key has no natural lifetime.
	plain := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{r.fernetKey})
	if plain == nil {
		return "", apperrors.ErrAPIKeyNotConfigured
	}
	return string(plain), nil
}

// LoadCallState retrieves the persisted API call counter and last-call
// timestamp. Missing values load as zero state.
func (r *SettingsRepository) LoadCallState() (int, time.Time, error) {
	countStr, err := r.Get(settingAPICallCount)
	if err == apperrors.ErrSettingNotFound {
		return 0, time.Time{}, nil
	}
	if err != nil {
		return 0, time.Time{}, err
	}

	count, err := strconv.Atoi(countStr)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to parse call count: %w", err)
	}

	lastStr, err := r.Get(settingAPILastCall)
	if err == apperrors.ErrSettingNotFound {
		return count, time.Time{}, nil
	}
	if err != nil {
		return 0, time.Time{}, err
	}

	last, err := ParseTime(lastStr)
	if err != nil {
		return 0, time.Time{}, err
	}

	return count, last, nil
}

// SaveCallState persists the API call counter and last-call timestamp.
func (r *SettingsRepository) SaveCallState(calls int, last time.Time) error {
	if err := r.Set(settingAPICallCount, strconv.Itoa(calls)); err != nil {
		return err
	}
	return r.Set(settingAPILastCall, last.UTC().Format(time.RFC3339))
}
