package maintenance

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/infrastructure/storage"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

var (
	ErrEntryNotFound = errors.New("maintenance entry not found")
	ErrEmptyChain    = errors.New("chain has no racks to cover")
)

//go:generate moq -rm -out maintenanceservice_mock.go . MaintenanceService
type MaintenanceService interface {
	IsSuppressed(rackID string) bool
	Refresh(ctx context.Context) error

	StartRack(ctx context.Context, reading types.Reading, site, reason, startedBy string) (types.MaintenanceEntry, error)
	StartChain(ctx context.Context, chain, dc, site, reason, startedBy string) (types.MaintenanceEntry, error)
	RemoveRack(ctx context.Context, entryID, rackID, endedBy string) error
	End(ctx context.Context, entryID, endedBy string) error
	EndAll(ctx context.Context, endedBy string) error

	Query(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.MaintenanceEntry], error)
	History(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.MaintenanceHistoryRecord], error)
}

//go:generate moq -rm -out maintenancerepository_mock.go . MaintenanceRepository
type MaintenanceRepository interface {
	AddMaintenanceEntry(ctx context.Context, entry types.MaintenanceEntry) error
	GetMaintenanceEntry(ctx context.Context, entryID string) (types.MaintenanceEntry, error)
	QueryMaintenanceEntries(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.MaintenanceEntry], error)
	RemoveRackDetail(ctx context.Context, entryID, rackID, endedBy string, endedAt time.Time) error
	EndMaintenanceEntry(ctx context.Context, entryID, endedBy string, endedAt time.Time) error
	ListSuppressedRacks(ctx context.Context) ([]string, error)
	QueryMaintenanceHistory(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.MaintenanceHistoryRecord], error)
}

// RackLister exposes the latest known racks, used to expand a chain entry
// into the racks it covers.
type RackLister interface {
	List() []types.RackState
}

type maintenanceSvc struct {
	storage   MaintenanceRepository
	messenger messaging.MsgContext
	racks     RackLister

	mu         sync.RWMutex
	suppressed map[string]struct{}
}

func New(s MaintenanceRepository, m messaging.MsgContext, racks RackLister) MaintenanceService {
	return &maintenanceSvc{
		storage:    s,
		messenger:  m,
		racks:      racks,
		suppressed: map[string]struct{}{},
	}
}

// IsSuppressed answers from the in-memory snapshot. The snapshot map is
// replaced wholesale under the write lock, so readers always see either the
// previous or the next complete view, never a partial one.
func (svc *maintenanceSvc) IsSuppressed(rackID string) bool {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	_, ok := svc.suppressed[rackID]
	return ok
}

// Refresh rebuilds the suppression snapshot from storage. It is called once
// at startup and after every entry or rack-detail mutation, not per query.
func (svc *maintenanceSvc) Refresh(ctx context.Context) error {
	racks, err := svc.storage.ListSuppressedRacks(ctx)
	if err != nil {
		return fmt.Errorf("could not list suppressed racks: %w", err)
	}

	snapshot := make(map[string]struct{}, len(racks))
	for _, r := range racks {
		snapshot[r] = struct{}{}
	}

	svc.mu.Lock()
	svc.suppressed = snapshot
	svc.mu.Unlock()

	return nil
}

func (svc *maintenanceSvc) StartRack(ctx context.Context, reading types.Reading, site, reason, startedBy string) (types.MaintenanceEntry, error) {
	now := time.Now().UTC()

	entry := types.MaintenanceEntry{
		ID:        uuid.NewString(),
		Type:      types.MaintenanceIndividualRack,
		RackID:    reading.RackID,
		Chain:     reading.Chain,
		DC:        reading.DC,
		Site:      site,
		Reason:    reason,
		StartedBy: startedBy,
		StartedAt: now,
		Racks: []types.RackDetail{
			{RackID: reading.RackID, PduID: reading.PduID, AddedAt: now},
		},
	}

	if entry.Site == "" {
		entry.Site = reading.Site
	}

	err := svc.storage.AddMaintenanceEntry(ctx, entry)
	if err != nil {
		return types.MaintenanceEntry{}, err
	}

	err = svc.Refresh(ctx)
	if err != nil {
		return types.MaintenanceEntry{}, err
	}

	svc.publishStarted(ctx, entry)

	return entry, nil
}

// StartChain covers every rack currently known to belong to the chain
// within the given dc.
func (svc *maintenanceSvc) StartChain(ctx context.Context, chain, dc, site, reason, startedBy string) (types.MaintenanceEntry, error) {
	now := time.Now().UTC()

	entry := types.MaintenanceEntry{
		ID:        uuid.NewString(),
		Type:      types.MaintenanceChain,
		Chain:     chain,
		DC:        dc,
		Site:      site,
		Reason:    reason,
		StartedBy: startedBy,
		StartedAt: now,
	}

	seen := map[string]struct{}{}

	for _, rs := range svc.racks.List() {
		r := rs.Reading
		if r.Chain != chain || r.DC != dc {
			continue
		}
		if _, dup := seen[r.RackID]; dup {
			continue
		}
		seen[r.RackID] = struct{}{}

		if entry.Site == "" {
			entry.Site = r.Site
		}

		entry.Racks = append(entry.Racks, types.RackDetail{RackID: r.RackID, PduID: r.PduID, AddedAt: now})
	}

	if len(entry.Racks) == 0 {
		return types.MaintenanceEntry{}, ErrEmptyChain
	}

	err := svc.storage.AddMaintenanceEntry(ctx, entry)
	if err != nil {
		return types.MaintenanceEntry{}, err
	}

	err = svc.Refresh(ctx)
	if err != nil {
		return types.MaintenanceEntry{}, err
	}

	svc.publishStarted(ctx, entry)

	return entry, nil
}

// RemoveRack ends suppression for one rack only; a chain entry stays open
// for the rest. Removing a rack that is already out is an idempotent no-op.
func (svc *maintenanceSvc) RemoveRack(ctx context.Context, entryID, rackID, endedBy string) error {
	err := svc.storage.RemoveRackDetail(ctx, entryID, rackID, endedBy, time.Now().UTC())
	if err != nil {
		return err
	}

	err = svc.Refresh(ctx)
	if err != nil {
		return err
	}

	svc.publishEnded(ctx, entryID, rackID)

	return nil
}

func (svc *maintenanceSvc) End(ctx context.Context, entryID, endedBy string) error {
	err := svc.storage.EndMaintenanceEntry(ctx, entryID, endedBy, time.Now().UTC())
	if err != nil {
		return err
	}

	err = svc.Refresh(ctx)
	if err != nil {
		return err
	}

	svc.publishEnded(ctx, entryID, "")

	return nil
}

func (svc *maintenanceSvc) EndAll(ctx context.Context, endedBy string) error {
	entries, err := svc.storage.QueryMaintenanceEntries(ctx)
	if err != nil {
		return err
	}

	for _, entry := range entries.Data {
		err = svc.End(ctx, entry.ID, endedBy)
		if err != nil {
			return err
		}
	}

	return nil
}

func (svc *maintenanceSvc) Query(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.MaintenanceEntry], error) {
	return svc.storage.QueryMaintenanceEntries(ctx, conditions...)
}

func (svc *maintenanceSvc) History(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.MaintenanceHistoryRecord], error) {
	return svc.storage.QueryMaintenanceHistory(ctx, conditions...)
}

func (svc *maintenanceSvc) publishStarted(ctx context.Context, entry types.MaintenanceEntry) {
	err := svc.messenger.PublishOnTopic(ctx, &MaintenanceStarted{
		Entry:     entry,
		Timestamp: entry.StartedAt,
	})
	if err != nil {
		logging.GetFromContext(ctx).Error("failed to publish maintenance started", "entry_id", entry.ID, "err", err.Error())
	}
}

func (svc *maintenanceSvc) publishEnded(ctx context.Context, entryID, rackID string) {
	err := svc.messenger.PublishOnTopic(ctx, &MaintenanceEnded{
		EntryID:   entryID,
		RackID:    rackID,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		logging.GetFromContext(ctx).Error("failed to publish maintenance ended", "entry_id", entryID, "err", err.Error())
	}
}
