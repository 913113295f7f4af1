package maintenance

import (
	"context"
	"testing"
	"time"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/infrastructure/storage"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

type rackListerFunc func() []types.RackState

func (f rackListerFunc) List() []types.RackState { return f() }

func chainRacks() []types.RackState {
	mk := func(rack, pdu, chain, dc string) types.RackState {
		return types.RackState{
			Reading: types.Reading{RackID: rack, PduID: pdu, Chain: chain, DC: dc, Site: "MAD"},
		}
	}

	return []types.RackState{
		mk("rack-A01", "pdu-001", "A", "DC1"),
		mk("rack-A02", "pdu-002", "A", "DC1"),
		mk("rack-A03", "pdu-003", "A", "DC1"),
		mk("rack-B01", "pdu-004", "B", "DC1"),
		mk("rack-A90", "pdu-005", "A", "DC2"),
	}
}

func testMessenger() *messaging.MsgContextMock {
	return &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}
}

func TestStartChainCoversChainRacksOnly(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	suppressed := []string{}

	s := &MaintenanceRepositoryMock{
		AddMaintenanceEntryFunc: func(ctx context.Context, entry types.MaintenanceEntry) error {
			for _, r := range entry.Racks {
				suppressed = append(suppressed, r.RackID)
			}
			return nil
		},
		ListSuppressedRacksFunc: func(ctx context.Context) ([]string, error) {
			return suppressed, nil
		},
	}

	svc := New(s, testMessenger(), rackListerFunc(chainRacks))

	entry, err := svc.StartChain(ctx, "A", "DC1", "", "scheduled work", "operator")
	is.NoErr(err)

	// chain A in DC1 has three racks; B and the other dc stay out
	is.Equal(3, len(entry.Racks))
	is.Equal(types.MaintenanceChain, entry.Type)
	is.Equal("MAD", entry.Site)

	is.True(svc.IsSuppressed("rack-A01"))
	is.True(svc.IsSuppressed("rack-A02"))
	is.True(svc.IsSuppressed("rack-A03"))
	is.True(!svc.IsSuppressed("rack-B01"))
	is.True(!svc.IsSuppressed("rack-A90"))
}

func TestStartChainWithNoKnownRacks(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &MaintenanceRepositoryMock{}
	svc := New(s, testMessenger(), rackListerFunc(chainRacks))

	_, err := svc.StartChain(ctx, "Z", "DC1", "", "", "operator")
	is.True(err == ErrEmptyChain)
	is.Equal(0, len(s.AddMaintenanceEntryCalls()))
}

func TestStartRackSuppressesOneRack(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &MaintenanceRepositoryMock{
		AddMaintenanceEntryFunc: func(ctx context.Context, entry types.MaintenanceEntry) error {
			return nil
		},
		ListSuppressedRacksFunc: func(ctx context.Context) ([]string, error) {
			return []string{"rack-A01"}, nil
		},
	}

	svc := New(s, testMessenger(), rackListerFunc(chainRacks))

	entry, err := svc.StartRack(ctx, types.Reading{RackID: "rack-A01", PduID: "pdu-001", Chain: "A", DC: "DC1", Site: "MAD"}, "", "psu swap", "operator")
	is.NoErr(err)

	is.Equal(types.MaintenanceIndividualRack, entry.Type)
	is.Equal(1, len(entry.Racks))
	is.Equal("rack-A01", entry.Racks[0].RackID)

	is.True(svc.IsSuppressed("rack-A01"))
	is.True(!svc.IsSuppressed("rack-A02"))
}

func TestRemoveRackReleasesOnlyThatRack(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	suppressed := []string{"rack-A01", "rack-A02", "rack-A03"}

	s := &MaintenanceRepositoryMock{
		RemoveRackDetailFunc: func(ctx context.Context, entryID, rackID, endedBy string, endedAt time.Time) error {
			kept := suppressed[:0]
			for _, r := range suppressed {
				if r != rackID {
					kept = append(kept, r)
				}
			}
			suppressed = kept
			return nil
		},
		ListSuppressedRacksFunc: func(ctx context.Context) ([]string, error) {
			return suppressed, nil
		},
	}

	svc := New(s, testMessenger(), rackListerFunc(chainRacks))
	is.NoErr(svc.Refresh(ctx))

	err := svc.RemoveRack(ctx, "entry-1", "rack-A02", "operator")
	is.NoErr(err)

	is.True(svc.IsSuppressed("rack-A01"))
	is.True(!svc.IsSuppressed("rack-A02"))
	is.True(svc.IsSuppressed("rack-A03"))
}

func TestRemoveRackIsIdempotent(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &MaintenanceRepositoryMock{
		RemoveRackDetailFunc: func(ctx context.Context, entryID, rackID, endedBy string, endedAt time.Time) error {
			return nil
		},
		ListSuppressedRacksFunc: func(ctx context.Context) ([]string, error) {
			return []string{}, nil
		},
	}

	svc := New(s, testMessenger(), rackListerFunc(chainRacks))

	is.NoErr(svc.RemoveRack(ctx, "entry-1", "rack-gone", "operator"))
	is.NoErr(svc.RemoveRack(ctx, "entry-1", "rack-gone", "operator"))

	is.Equal(2, len(s.RemoveRackDetailCalls()))
}

func TestEndAllEndsEveryEntry(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &MaintenanceRepositoryMock{
		QueryMaintenanceEntriesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.MaintenanceEntry], error) {
			return types.Collection[types.MaintenanceEntry]{
				Data:  []types.MaintenanceEntry{{ID: "entry-1"}, {ID: "entry-2"}},
				Count: 2,
			}, nil
		},
		EndMaintenanceEntryFunc: func(ctx context.Context, entryID, endedBy string, endedAt time.Time) error {
			return nil
		},
		ListSuppressedRacksFunc: func(ctx context.Context) ([]string, error) {
			return []string{}, nil
		},
	}

	svc := New(s, testMessenger(), rackListerFunc(chainRacks))

	err := svc.EndAll(ctx, "operator")
	is.NoErr(err)

	is.Equal(2, len(s.EndMaintenanceEntryCalls()))
	is.Equal("operator", s.EndMaintenanceEntryCalls()[0].EndedBy)
}

func TestRefreshSwapsSnapshotWholesale(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	suppressed := []string{"rack-A01"}

	s := &MaintenanceRepositoryMock{
		ListSuppressedRacksFunc: func(ctx context.Context) ([]string, error) {
			return suppressed, nil
		},
	}

	svc := New(s, testMessenger(), rackListerFunc(chainRacks))

	is.NoErr(svc.Refresh(ctx))
	is.True(svc.IsSuppressed("rack-A01"))

	suppressed = []string{"rack-B01"}
	is.NoErr(svc.Refresh(ctx))

	is.True(!svc.IsSuppressed("rack-A01"))
	is.True(svc.IsSuppressed("rack-B01"))
}
