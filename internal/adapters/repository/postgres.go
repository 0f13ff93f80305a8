package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/starchart/starchart/internal/core/domain"
)

// PostgresRepository implements ports.UserRepository and ports.RecordRepository using PostgreSQL.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates and returns a new PostgresRepository instance.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetUser(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT username, display_name, email, role, created_at FROM users WHERE username = $1`
	var u domain.User
	errRow := r.db.QueryRowContext(ctx, query, username).Scan(&u.Username, &u.DisplayName, &u.Email, &u.Role, &u.CreatedAt)
	if errors.Is(errRow, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if errRow != nil {
		return nil, errRow
	}
	return &u, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (username, display_name, email, role, created_at) VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (username) DO UPDATE SET display_name = EXCLUDED.display_name, email = EXCLUDED.email, role = EXCLUDED.role`
	_, err := r.db.ExecContext(ctx, query, user.Username, user.DisplayName, user.Email, string(user.Role), user.CreatedAt)
	return err
}

func (r *PostgresRepository) GetAPIKeyByHash(ctx context.Context, keyHash string) (*domain.APIKey, error) {
	query := `SELECT id, username, name, key_hash, key_prefix, role, active, created_at, expires_at FROM api_keys WHERE key_hash = $1`
	var k domain.APIKey
	var expires sql.NullTime
	errRow := r.db.QueryRowContext(ctx, query, keyHash).Scan(&k.ID, &k.Username, &k.Name, &k.KeyHash, &k.KeyPrefix, &k.Role, &k.Active, &k.CreatedAt, &expires)
	if errors.Is(errRow, sql.ErrNoRows) {
		return nil, nil
	}
	if errRow != nil {
		return nil, errRow
	}
	if expires.Valid {
		t := expires.Time
		k.ExpiresAt = &t
	}
	return &k, nil
}

func (r *PostgresRepository) CreateAPIKey(ctx context.Context, key *domain.APIKey) error {
	query := `INSERT INTO api_keys (id, username, name, key_hash, key_prefix, role, active, created_at, expires_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query, key.ID, key.Username, key.Name, key.KeyHash, key.KeyPrefix, string(key.Role), key.Active, key.CreatedAt, key.ExpiresAt)
	return err
}

func (r *PostgresRepository) ListAPIKeys(ctx context.Context, username string) ([]domain.APIKey, error) {
	query := `SELECT id, username, name, key_prefix, role, active, created_at, expires_at FROM api_keys WHERE username = $1 ORDER BY created_at`
	rows, errQuery := r.db.QueryContext(ctx, query, username)
	if errQuery != nil {
		return nil, errQuery
	}
	defer func() { if errClose := rows.Close(); errClose != nil { log.Printf("failed to close rows: %v", errClose) } }()

	var keys []domain.APIKey
	for rows.Next() {
		var k domain.APIKey
		var expires sql.NullTime
		if errScan := rows.Scan(&k.ID, &k.Username, &k.Name, &k.KeyPrefix, &k.Role, &k.Active, &k.CreatedAt, &expires); errScan != nil {
			return nil, errScan
		}
		if expires.Valid {
			t := expires.Time
			k.ExpiresAt = &t
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (r *PostgresRepository) RevokeAPIKey(ctx context.Context, id string) error {
	query := `UPDATE api_keys SET active = FALSE WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *PostgresRepository) CreateRecord(ctx context.Context, record *domain.Record) error {
	query := `INSERT INTO dns_records (id, username, name, fqdn, type, value, ttl, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query, record.ID, record.Username, record.Name, record.FQDN, string(record.Type), record.Value, record.TTL, record.CreatedAt, record.UpdatedAt)
	return err
}

func (r *PostgresRepository) ListRecords(ctx context.Context, username string) ([]domain.Record, error) {
	query := `SELECT id, username, name, fqdn, type, value, ttl, created_at, updated_at FROM dns_records
	          WHERE username = $1 ORDER BY fqdn, type`
	rows, errQuery := r.db.QueryContext(ctx, query, username)
	if errQuery != nil {
		return nil, errQuery
	}
	defer func() { if errClose := rows.Close(); errClose != nil { log.Printf("failed to close rows: %v", errClose) } }()

	var records []domain.Record
	for rows.Next() {
		var rec domain.Record
		if errScan := rows.Scan(&rec.ID, &rec.Username, &rec.Name, &rec.FQDN, &rec.Type, &rec.Value, &rec.TTL, &rec.CreatedAt, &rec.UpdatedAt); errScan != nil {
			return nil, errScan
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteRecord removes a record only when it is owned by username.
func (r *PostgresRepository) DeleteRecord(ctx context.Context, id string, username string) error {
	query := `DELETE FROM dns_records WHERE id = $1 AND username = $2`
	res, err := r.db.ExecContext(ctx, query, id, username)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
