package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/recordsync/internal/crdt"
	"github.com/iudanet/recordsync/internal/crypto"
	"github.com/iudanet/recordsync/internal/mapping"
	"github.com/iudanet/recordsync/internal/models"
	"github.com/iudanet/recordsync/internal/remote"
	"github.com/iudanet/recordsync/internal/storage"
)

// Service определяет интерфейс для sync.Service
type Service interface {
	// Sync выполняет один проход синхронизации по всем Binding
	Sync(ctx context.Context) (*models.SyncResult, error)

	// Pending возвращает количество локальных записей, ожидающих синхронизации,
	// по имени Binding
	Pending(ctx context.Context) (map[string]int, error)
}

// Binding связывает локальную модель с типом удаленных объектов
type Binding struct {
	Adapter    *mapping.Adapter[*models.LocalRecord]
	Name       string
	ObjectType string
	RemoteType string
}

// NewBinding создает Binding, читающий атрибуты локальных записей по Mapping
func NewBinding(name, objectType, remoteType string, m *mapping.Mapping) *Binding {
	return &Binding{
		Adapter:    mapping.NewAdapter[*models.LocalRecord](m, mapping.ReaderFunc[*models.LocalRecord](readLocalAttribute)),
		Name:       name,
		ObjectType: objectType,
		RemoteType: remoteType,
	}
}

// readLocalAttribute читает атрибут из сохраненного набора локальной записи
func readLocalAttribute(record *models.LocalRecord, name string) (any, bool) {
	value, ok := record.Attributes[name]
	return value, ok
}

// service handles reconciliation between local storage and the remote system
type service struct {
	records  storage.RecordStorage
	metadata storage.MetadataStorage
	remote   remote.Client
	clock    *crdt.Clock
	logger   *slog.Logger
	bindings []*Binding
	workers  int
}

// Options contains dependencies of the sync service
type Options struct {
	Records  storage.RecordStorage
	Metadata storage.MetadataStorage
	Remote   remote.Client
	Clock    *crdt.Clock
	Logger   *slog.Logger
	Bindings []*Binding
	Workers  int
}

// NewService creates a new sync service
func NewService(opts Options) Service {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	clock := opts.Clock
	if clock == nil {
		clock = crdt.NewClock()
	}

	return &service{
		records:  opts.Records,
		metadata: opts.Metadata,
		remote:   opts.Remote,
		clock:    clock,
		logger:   opts.Logger,
		bindings: opts.Bindings,
		workers:  workers,
	}
}

// pair - локальная и удаленная стороны одной логической записи.
// Любая из сторон может отсутствовать до загрузки.
type pair struct {
	local    *models.LocalRecord
	remote   *models.RemoteRecord
	remoteID string
}

// Sync performs one reconciliation pass
// 1. Collects local and remote changes since the last pass of each binding
// 2. Merges both sides of every record through an Accumulator
// 3. Writes the merged view back to whichever side is behind
func (s *service) Sync(ctx context.Context) (*models.SyncResult, error) {
	logger := s.logger.With("run_id", uuid.New().String(), "node_id", s.clock.NodeID())
	logger.Info("Starting synchronization", "bindings", len(s.bindings))

	total := &models.SyncResult{}
	for _, binding := range s.bindings {
		result, err := s.syncBinding(ctx, logger.With("binding", binding.Name), binding)
		if err != nil {
			return total, fmt.Errorf("binding %q: %w", binding.Name, err)
		}
		total.Add(result)
	}

	logger.Info("Synchronization completed",
		"local_updated", total.LocalUpdated,
		"remote_updated", total.RemoteUpdated,
		"local_created", total.LocalCreated,
		"remote_created", total.RemoteCreated,
		"up_to_date", total.UpToDate,
		"skipped", total.SkippedRecords)

	return total, nil
}

// syncBinding выполняет проход для одного Binding
func (s *service) syncBinding(ctx context.Context, logger *slog.Logger, b *Binding) (*models.SyncResult, error) {
	startedAt := s.clock.Now()

	since, err := s.metadata.GetLastSyncTime(ctx, b.Name)
	if err != nil {
		logger.Warn("Failed to get last sync time, running full sync", "error", err)
		since = time.Time{}
	}

	locals, err := s.records.GetRecordsUpdatedSince(ctx, b.ObjectType, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get local records: %w", err)
	}

	remotes, err := s.remote.FetchSince(ctx, b.RemoteType, since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch remote records: %w", err)
	}

	logger.Info("Collected changes", "since", since, "local", len(locals), "remote", len(remotes))

	pairs, unlinked := pairRecords(locals, remotes)

	// Каждая задача владеет своим Accumulator; результаты пишутся по индексу
	results := make([]*models.SyncResult, len(pairs)+len(unlinked))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, p := range pairs {
		g.Go(func() error {
			results[i] = s.runTask(gctx, logger, "remote_id", p.remoteID, func() (*models.SyncResult, error) {
				return s.reconcile(gctx, logger, b, p)
			})
			return gctx.Err()
		})
	}

	for i, local := range unlinked {
		g.Go(func() error {
			results[len(pairs)+i] = s.runTask(gctx, logger, "local_id", local.ID, func() (*models.SyncResult, error) {
				return s.createRemote(gctx, b, local)
			})
			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &models.SyncResult{
		LocalRecords:  len(locals),
		RemoteRecords: len(remotes),
	}
	for _, r := range results {
		result.Add(r)
	}

	// Метка не сдвигается, пока хоть одна запись не синхронизирована:
	// иначе следующий проход ее не соберет
	if result.SkippedRecords > 0 {
		logger.Warn("Keeping last sync time, some records failed",
			"since", since, "skipped", result.SkippedRecords)
		return result, nil
	}

	if err := s.metadata.SaveLastSyncTime(ctx, b.Name, startedAt); err != nil {
		// Следующий проход повторит уже обработанные изменения - это безопасно
		logger.Warn("Failed to save last sync time", "error", err)
	}

	return result, nil
}

// runTask выполняет обработку одной записи; ошибка записи не прерывает проход
func (s *service) runTask(ctx context.Context, logger *slog.Logger, idKey, id string, task func() (*models.SyncResult, error)) *models.SyncResult {
	if ctx.Err() != nil {
		return &models.SyncResult{}
	}

	result, err := task()
	if err != nil {
		logger.Warn("Failed to sync record", idKey, id, "error", err)
		return &models.SyncResult{SkippedRecords: 1}
	}

	return result
}

// pairRecords группирует записи по идентификатору удаленной записи.
// Несвязанные локальные записи возвращаются отдельно.
func pairRecords(locals []*models.LocalRecord, remotes []*models.RemoteRecord) ([]*pair, []*models.LocalRecord) {
	index := make(map[string]*pair)
	pairs := make([]*pair, 0, len(locals)+len(remotes))
	unlinked := make([]*models.LocalRecord, 0)

	get := func(remoteID string) *pair {
		p, exists := index[remoteID]
		if !exists {
			p = &pair{remoteID: remoteID}
			index[remoteID] = p
			pairs = append(pairs, p)
		}
		return p
	}

	for _, local := range locals {
		if !local.IsLinked() {
			unlinked = append(unlinked, local)
			continue
		}
		get(local.RemoteID).local = local
	}

	for _, r := range remotes {
		get(r.ID).remote = r
	}

	return pairs, unlinked
}

// reconcile сливает обе стороны записи и обновляет отстающую
func (s *service) reconcile(ctx context.Context, logger *slog.Logger, b *Binding, p *pair) (*models.SyncResult, error) {
	if p.remote == nil {
		r, err := s.remote.Get(ctx, b.RemoteType, p.remoteID)
		if err != nil {
			return nil, fmt.Errorf("failed to get remote record: %w", err)
		}
		p.remote = r
	}
	s.clock.Observe(p.remote.ModifiedAt)

	if p.local == nil {
		local, err := s.records.GetRecordByRemoteID(ctx, b.ObjectType, p.remoteID)
		if errors.Is(err, storage.ErrRecordNotFound) {
			return s.createLocal(ctx, b, p.remote)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get local record: %w", err)
		}
		p.local = local
	}

	localView := b.Adapter.Attributes(p.local)
	remoteView := b.Adapter.AttributesFrom(p.remote.Attributes)

	// Изменение удаленной записи, не затронувшее отображаемые атрибуты,
	// не должно перекрывать более ранние локальные изменения
	remoteAt := p.remote.ModifiedAt
	if !p.local.SyncedAt.IsZero() {
		stored, err := s.metadata.GetFingerprint(ctx, b.Name, p.remoteID)
		if err != nil {
			logger.Warn("Failed to get fingerprint", "remote_id", p.remoteID, "error", err)
		} else if crypto.MatchFingerprint(remoteView, stored) && remoteAt.After(p.local.SyncedAt) {
			remoteAt = p.local.SyncedAt
		}
	}

	acc := crdt.NewAccumulator()
	acc.Store(p.local.UpdatedAt, localView)
	acc.Store(remoteAt, remoteView)

	if !p.local.SyncedAt.IsZero() && acc.UpToDateFor(p.local.SyncedAt) {
		logger.Debug("Record is up to date", "local_id", p.local.ID, "remote_id", p.remoteID)
		return &models.SyncResult{UpToDate: 1}, nil
	}

	result := &models.SyncResult{}

	if acc.Changed(localView) {
		changes := acc.Current(localView)
		if err := s.records.UpdateAttributes(ctx, p.local.ID, changes, s.clock.Now()); err != nil {
			return nil, fmt.Errorf("failed to update local record: %w", err)
		}
		logger.Debug("Updated local record", "local_id", p.local.ID, "attributes", changes.Keys())
		result.LocalUpdated++
	}

	if acc.Changed(remoteView) {
		changes := b.Adapter.ToRemote(acc.Current(remoteView))
		updated, err := s.remote.Update(ctx, b.RemoteType, p.remoteID, changes)
		if err != nil {
			return nil, fmt.Errorf("failed to update remote record: %w", err)
		}
		s.clock.Observe(updated.ModifiedAt)
		logger.Debug("Updated remote record", "remote_id", p.remoteID, "attributes", changes.Keys())
		result.RemoteUpdated++
	}

	if err := s.markSynced(ctx, b, p.local.ID, p.remoteID, acc.Attributes()); err != nil {
		return nil, err
	}

	return result, nil
}

// createRemote создает удаленную запись для несвязанной локальной
func (s *service) createRemote(ctx context.Context, b *Binding, local *models.LocalRecord) (*models.SyncResult, error) {
	view := b.Adapter.Attributes(local)

	created, err := s.remote.Create(ctx, b.RemoteType, b.Adapter.ToRemote(view))
	if err != nil {
		return nil, fmt.Errorf("failed to create remote record: %w", err)
	}
	s.clock.Observe(created.ModifiedAt)

	if err := s.markSynced(ctx, b, local.ID, created.ID, view); err != nil {
		return nil, err
	}

	return &models.SyncResult{RemoteCreated: 1}, nil
}

// createLocal создает локальную запись для удаленной записи без пары
func (s *service) createLocal(ctx context.Context, b *Binding, r *models.RemoteRecord) (*models.SyncResult, error) {
	view := b.Adapter.AttributesFrom(r.Attributes)

	local := &models.LocalRecord{
		ID:         uuid.New().String(),
		ObjectType: b.ObjectType,
		RemoteID:   r.ID,
		Attributes: view,
		UpdatedAt:  r.ModifiedAt,
		SyncedAt:   s.clock.Now(),
	}

	if err := s.records.SaveRecord(ctx, local); err != nil {
		return nil, fmt.Errorf("failed to create local record: %w", err)
	}

	if err := s.saveFingerprint(ctx, b, r.ID, view); err != nil {
		return nil, err
	}

	return &models.SyncResult{LocalCreated: 1}, nil
}

// markSynced связывает записи и запоминает слитое представление
func (s *service) markSynced(ctx context.Context, b *Binding, localID, remoteID string, merged models.Attributes) error {
	if err := s.records.MarkSynced(ctx, localID, remoteID, s.clock.Now()); err != nil {
		return fmt.Errorf("failed to mark record synced: %w", err)
	}

	return s.saveFingerprint(ctx, b, remoteID, merged)
}

func (s *service) saveFingerprint(ctx context.Context, b *Binding, remoteID string, view models.Attributes) error {
	fingerprint, err := crypto.Fingerprint(view)
	if err != nil {
		return err
	}

	if err := s.metadata.SaveFingerprint(ctx, b.Name, remoteID, fingerprint); err != nil {
		return fmt.Errorf("failed to save fingerprint: %w", err)
	}

	return nil
}

// Pending возвращает количество записей, ожидающих синхронизации
func (s *service) Pending(ctx context.Context) (map[string]int, error) {
	pending := make(map[string]int, len(s.bindings))

	for _, b := range s.bindings {
		count, err := s.records.CountPending(ctx, b.ObjectType)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", b.Name, err)
		}
		pending[b.Name] = count
	}

	return pending, nil
}
