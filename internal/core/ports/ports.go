package ports

import (
	"context"
	"encoding/json"

	"github.com/starchart/starchart/internal/core/domain"
)

type UserRepository interface {
	GetUser(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error
	GetAPIKeyByHash(ctx context.Context, keyHash string) (*domain.APIKey, error)
	CreateAPIKey(ctx context.Context, key *domain.APIKey) error
	ListAPIKeys(ctx context.Context, username string) ([]domain.APIKey, error)
	RevokeAPIKey(ctx context.Context, id string) error
}

type RecordRepository interface {
	CreateRecord(ctx context.Context, record *domain.Record) error
	ListRecords(ctx context.Context, username string) ([]domain.Record, error)
	DeleteRecord(ctx context.Context, id string, username string) error
	Ping(ctx context.Context) error
}

// JobResultStore reads completed child results from the background-job runtime.
type JobResultStore interface {
	ChildValues(ctx context.Context, queue, jobID string) (map[string]json.RawMessage, error)
	Ping(ctx context.Context) error
}

type DomainService interface {
	BaseDomain(username string) string
	CreateRecord(ctx context.Context, username string, record *domain.Record) error
	ListRecords(ctx context.Context, username string) ([]domain.Record, error)
	DeleteRecord(ctx context.Context, username string, id string) error
	Describe(ctx context.Context, username string, fqdn string) (*domain.DomainInfo, error)
	ChildResults(ctx context.Context, queue, jobID, queueFilter string) (map[string]json.RawMessage, error)
	HealthCheck(ctx context.Context) map[string]error
}
