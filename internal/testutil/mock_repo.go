package testutil

import (
	"context"
	"encoding/json"

	"github.com/starchart/starchart/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetUser(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) GetAPIKeyByHash(ctx context.Context, keyHash string) (*domain.APIKey, error) {
	args := m.Called(keyHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.APIKey), args.Error(1)
}

func (m *MockUserRepo) CreateAPIKey(ctx context.Context, key *domain.APIKey) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockUserRepo) ListAPIKeys(ctx context.Context, username string) ([]domain.APIKey, error) {
	args := m.Called(username)
	return args.Get(0).([]domain.APIKey), args.Error(1)
}

func (m *MockUserRepo) RevokeAPIKey(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockDomainService struct {
	mock.Mock
}

func (m *MockDomainService) BaseDomain(username string) string {
	args := m.Called(username)
	return args.String(0)
}

func (m *MockDomainService) CreateRecord(ctx context.Context, username string, record *domain.Record) error {
	args := m.Called(username, record)
	return args.Error(0)
}

func (m *MockDomainService) ListRecords(ctx context.Context, username string) ([]domain.Record, error) {
	args := m.Called(username)
	return args.Get(0).([]domain.Record), args.Error(1)
}

func (m *MockDomainService) DeleteRecord(ctx context.Context, username string, id string) error {
	args := m.Called(username, id)
	return args.Error(0)
}

func (m *MockDomainService) Describe(ctx context.Context, username string, fqdn string) (*domain.DomainInfo, error) {
	args := m.Called(username, fqdn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DomainInfo), args.Error(1)
}

func (m *MockDomainService) ChildResults(ctx context.Context, queue, jobID, queueFilter string) (map[string]json.RawMessage, error) {
	args := m.Called(queue, jobID, queueFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]json.RawMessage), args.Error(1)
}

func (m *MockDomainService) HealthCheck(ctx context.Context) map[string]error {
	args := m.Called()
	return args.Get(0).(map[string]error)
}
