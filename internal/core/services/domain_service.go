package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/starchart/starchart/internal/core/domain"
	"github.com/starchart/starchart/internal/core/ports"
	"github.com/starchart/starchart/internal/infrastructure/metrics"
)

const (
	minTTL        = 60
	maxFQDNLength = 253
)

type domainService struct {
	namer   *domain.Namer
	records ports.RecordRepository
	jobs    ports.JobResultStore
}

// NewDomainService wires the deriver to storage. jobs may be nil when no
// job runtime is configured.
func NewDomainService(namer *domain.Namer, records ports.RecordRepository, jobs ports.JobResultStore) ports.DomainService {
	return &domainService{namer: namer, records: records, jobs: jobs}
}

func (s *domainService) BaseDomain(username string) string {
	return s.namer.BuildBaseDomain(username)
}

func (s *domainService) CreateRecord(ctx context.Context, username string, record *domain.Record) error {
	if err := domain.ValidateRecord(record); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	fqdn := s.namer.BuildDomain(username, record.Name)
	if len(fqdn) > maxFQDNLength {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrInvalidRecord, fqdn, maxFQDNLength)
	}

	now := time.Now()
	record.ID = uuid.New().String()
	record.Username = username
	record.FQDN = fqdn
	record.CreatedAt = now
	record.UpdatedAt = now

	if record.TTL < minTTL {
		record.TTL = minTTL
	}

	if err := s.records.CreateRecord(ctx, record); err != nil {
		return err
	}
	metrics.RecordOperations.WithLabelValues("create", string(record.Type)).Inc()
	return nil
}

func (s *domainService) ListRecords(ctx context.Context, username string) ([]domain.Record, error) {
	return s.records.ListRecords(ctx, username)
}

func (s *domainService) DeleteRecord(ctx context.Context, username string, id string) error {
	if err := s.records.DeleteRecord(ctx, id, username); err != nil {
		return err
	}
	metrics.RecordOperations.WithLabelValues("delete", "").Inc()
	return nil
}

func (s *domainService) Describe(_ context.Context, username string, fqdn string) (*domain.DomainInfo, error) {
	sub, err := s.namer.SubdomainFromFQDN(username, fqdn)
	if err != nil {
		metrics.InvalidDomains.Inc()
		return nil, err
	}
	return &domain.DomainInfo{
		Username:   username,
		BaseDomain: s.namer.BuildBaseDomain(username),
		FQDN:       fqdn,
		Subdomain:  sub,
	}, nil
}

func (s *domainService) ChildResults(ctx context.Context, queue, jobID, queueFilter string) (map[string]json.RawMessage, error) {
	if s.jobs == nil {
		return nil, ErrJobsUnavailable
	}
	values, err := s.jobs.ChildValues(ctx, queue, jobID)
	if err != nil {
		return nil, fmt.Errorf("read children of %s/%s: %w", queue, jobID, err)
	}
	return domain.FilterChildValues(values, queueFilter), nil
}

func (s *domainService) HealthCheck(ctx context.Context) map[string]error {
	checks := map[string]error{
		"postgres": s.records.Ping(ctx),
	}
	if s.jobs != nil {
		checks["redis"] = s.jobs.Ping(ctx)
	}
	return checks
}

var (
	// ErrInvalidRecord wraps record validation failures.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrJobsUnavailable is returned when no job result store is configured.
	ErrJobsUnavailable = errors.New("job result store not configured")
)
