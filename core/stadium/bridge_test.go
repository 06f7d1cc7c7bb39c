package stadium_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	. "github.com/jyvarssudha/Smartamenitiescampusapp/core/stadium"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/user"
	membucket "github.com/jyvarssudha/Smartamenitiescampusapp/storage/bucket/memory"
	"github.com/jyvarssudha/Smartamenitiescampusapp/tests"
)

type publishMetrics struct {
	core.NopMetrics
	published map[string]int
}

func (m *publishMetrics) RecordPublished(bucket, op string) { m.published[bucket+":"+op]++ }

func newBridge(t *testing.T) (*Bridge, *membucket.Store, *publishMetrics) {
	t.Helper()
	store := membucket.NewStore()
	metrics := &publishMetrics{published: make(map[string]int)}
	return NewBridge(store, testutil.NewLogger(), metrics), store, metrics
}

var pt = user.User{ID: "PT01", Name: "Coach Prakash", Role: user.RoleNonTeachingStaff}

func TestBridge_Publish(t *testing.T) {
	bridge, store, metrics := newBridge(t)
	ctx := context.Background()

	a := Tournament{ID: "a", Name: "Chess Open", Sport: "Chess", Date: "2025-12-16", Time: "9:00 AM"}
	b := Tournament{ID: "b", Name: "Carrom Cup", Sport: "Carrom", Date: "2025-12-17", Time: "2:00 PM", Venue: "Hall C"}
	require.NoError(t, bridge.Publish(ctx, KindTournaments, a))
	require.NoError(t, bridge.Publish(ctx, KindTournaments, b))

	// last write wins per record, the others are untouched
	a.Name = "Chess Open 2025"
	require.NoError(t, bridge.Publish(ctx, KindTournaments, a))

	got, err := bridge.Tournaments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Tournament{a, b}, got)
	assert.Equal(t, 3, metrics.published["tournaments:upsert"])

	payloads, err := store.List(ctx, "tournaments")
	require.NoError(t, err)
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(payloads[1], &raw))
	assert.Equal(t, "Hall C", raw["venue"])

	// validation
	err = bridge.Publish(ctx, "scores", a)
	assert.True(t, core.IsValidationError(err))
	err = bridge.Publish(ctx, KindBulletin, a)
	assert.True(t, core.IsValidationError(err), "record does not match kind")
	err = bridge.Publish(ctx, KindTournaments, Tournament{Name: "no id"})
	assert.True(t, core.IsValidationError(err))

	require.NoError(t, bridge.Unpublish(ctx, KindTournaments, "a"))
	assert.True(t, core.IsNotFound(bridge.Unpublish(ctx, KindTournaments, "a")))
	assert.Equal(t, 1, metrics.published["tournaments:delete"])

	got, err = bridge.Tournaments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Tournament{b}, got)
}

func TestBridge_StudentTournaments(t *testing.T) {
	bridge, _, _ := newBridge(t)
	ctx := context.Background()

	got, err := bridge.StudentTournaments(ctx)
	require.NoError(t, err)
	require.Len(t, got, 5, "built-in tournaments only")

	require.NoError(t, bridge.Publish(ctx, KindTournaments, Tournament{
		ID: "t1", Name: "Inter-Hostel Table Tennis", Sport: "Table Tennis", Date: "2025-12-28", Time: "10:00 AM",
	}))

	// every read goes back to the store
	got, err = bridge.StudentTournaments(ctx)
	require.NoError(t, err)
	require.Len(t, got, 6)
	assert.Equal(t, StudentTournament{
		ID: "t1", Name: "Inter-Hostel Table Tennis", Sport: "Table Tennis", Date: "2025-12-28", Time: "10:00 AM",
		Venue: "Indoor Stadium", RegistrationDeadline: "2025-12-28", MaxTeams: 20, CurrentTeams: 12,
	}, got[0])
	assert.Equal(t, "Inter-Department Chess Championship", got[1].Name)
}

func TestBridge_StudentBulletin(t *testing.T) {
	bridge, _, _ := newBridge(t)
	ctx := context.Background()

	require.NoError(t, bridge.Publish(ctx, KindBulletin, BulletinEntry{
		ID: "1", Type: EntryWinner, Title: "Chess Championship", Content: "CSE wins", Date: "2025-12-09T10:00:00Z",
	}))
	require.NoError(t, bridge.Publish(ctx, KindBulletin, BulletinEntry{
		ID: "2", Type: EntryNews, Title: "Court closed", Content: "Main court closed for maintenance", Date: "2025-12-10T10:00:00Z",
	}))

	got, err := bridge.StudentBulletin(ctx)
	require.NoError(t, err)
	require.Len(t, got, 6)
	assert.Equal(t, BulletinItem{ID: "2", Type: EntryNews, Content: "Main court closed for maintenance", Date: "2025-12-10T10:00:00Z"}, got[0])
	assert.Equal(t, BulletinItem{ID: "1", Type: EntryNews, Content: "Chess Championship: CSE wins", Date: "2025-12-09T10:00:00Z"}, got[1])
	for _, item := range got {
		assert.Equal(t, EntryNews, item.Type)
	}

	staff, err := bridge.ReadStaff(ctx, KindBulletin)
	require.NoError(t, err)
	entries := staff.([]BulletinEntry)
	require.Len(t, entries, 2)
	assert.Equal(t, EntryWinner, entries[1].Type, "staff view keeps the entry type")
}

func TestBridge_Equipment(t *testing.T) {
	bridge, _, _ := newBridge(t)
	ctx := context.Background()

	got, err := bridge.ReadForStudentView(ctx, KindEquipment)
	require.NoError(t, err)
	assert.Equal(t, DefaultEquipment(), got)

	best, ok, err := bridge.MostAvailableEquipment(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Carrom", best.Sport)

	// a non-empty bucket replaces the default table
	require.NoError(t, bridge.Publish(ctx, KindEquipment, EquipmentStat{Sport: "Chess", Usage: 10, Available: false}))
	got, err = bridge.ReadForStudentView(ctx, KindEquipment)
	require.NoError(t, err)
	assert.Equal(t, []EquipmentUsage{{Sport: "Chess", Usage: 10}}, got)

	_, ok, err = bridge.MostAvailableEquipment(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = bridge.ReadForStudentView(ctx, "scores")
	assert.True(t, core.IsValidationError(err))
}

func TestService(t *testing.T) {
	restore := testutil.FreezeTime(time.Date(2025, 12, 10, 8, 30, 0, 0, time.UTC))
	defer restore()

	bridge, _, _ := newBridge(t)
	svc := NewService(bridge)
	ctx := context.Background()

	tr, err := svc.AddTournament(ctx, NewTournament{Name: "Badminton Doubles", Sport: "Badminton", Date: "2025-12-20", Time: "8:00 AM"}, pt)
	require.NoError(t, err)
	assert.NotEmpty(t, tr.ID)
	assert.Equal(t, "Coach Prakash", tr.AddedBy)
	assert.Equal(t, "2025-12-10T08:30:00Z", tr.AddedDate)

	entry, err := svc.AddBulletinEntry(ctx, NewBulletinEntry{Type: EntryWinner, Title: "Carrom", Content: "ECE wins"}, pt)
	require.NoError(t, err)
	assert.Equal(t, "2025-12-10T08:30:00Z", entry.Date)

	students, err := bridge.StudentTournaments(ctx)
	require.NoError(t, err)
	assert.Equal(t, tr.ID, students[0].ID)

	require.NoError(t, svc.DeleteTournament(ctx, tr.ID))
	require.NoError(t, svc.DeleteBulletinEntry(ctx, entry.ID))
	assert.True(t, core.IsNotFound(svc.DeleteBulletinEntry(ctx, entry.ID)))

	ts, err := bridge.Tournaments(ctx)
	require.NoError(t, err)
	assert.Empty(t, ts)
}

func TestService_UpdateEquipment(t *testing.T) {
	restore := testutil.FreezeTime(time.Date(2025, 12, 10, 8, 30, 0, 0, time.UTC))
	defer restore()

	bridge, _, _ := newBridge(t)
	svc := NewService(bridge)
	ctx := context.Background()

	usage := 20
	stat, err := svc.UpdateEquipment(ctx, "Badminton", EquipmentUpdate{Usage: &usage})
	require.NoError(t, err)
	assert.Equal(t, EquipmentStat{
		Sport: "Badminton", Usage: 20, Available: false, PeakHours: "6:00 PM - 8:00 PM", LastUpdated: "2025-12-10T08:30:00Z",
	}, stat)

	// the first update publishes the whole table, in order
	all, err := bridge.Equipment(ctx)
	require.NoError(t, err)
	require.Len(t, all, 8)
	assert.Equal(t, "Chess", all[0].Sport)
	assert.Equal(t, stat, all[2])

	// availability is set independently of usage
	available := true
	stat, err = svc.UpdateEquipment(ctx, " Badminton ", EquipmentUpdate{Available: &available})
	require.NoError(t, err)
	assert.Equal(t, 20, stat.Usage)
	assert.True(t, stat.Available)

	best, ok, err := bridge.MostAvailableEquipment(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Badminton", best.Sport)

	_, err = svc.UpdateEquipment(ctx, "Polo", EquipmentUpdate{Usage: &usage})
	assert.True(t, core.IsNotFound(err))
}

func TestValidateInputs(t *testing.T) {
	validate, _ := testutil.NewValidator()

	nt := NewTournament{Name: " Chess ", Sport: "Chess", Date: "2025-12-16", Time: "9:00 AM"}
	require.NoError(t, nt.Validate(validate))
	assert.Equal(t, "Chess", nt.Name)
	nt.Date = "16/12/2025"
	assert.Error(t, nt.Validate(validate))

	nb := NewBulletinEntry{Type: "Winner", Title: "t", Content: "c"}
	require.NoError(t, nb.Validate(validate))
	assert.Equal(t, EntryWinner, nb.Type)
	nb.Type = "motivational"
	assert.Error(t, nb.Validate(validate))

	usage := 101
	eu := EquipmentUpdate{Usage: &usage}
	assert.Error(t, eu.Validate(validate))
	usage = 0
	assert.NoError(t, eu.Validate(validate))
}

func TestQuoteOf(t *testing.T) {
	day := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, QuoteOf(day), QuoteOf(day.Add(5*time.Hour)))
	assert.NotEqual(t, QuoteOf(day), QuoteOf(day.AddDate(0, 0, 1)))
}

func TestService_UpdateEquipment_Concurrent(t *testing.T) {
	ctx := context.Background()
	usage := 7

	for round := 0; round < 50; round++ {
		bridge := NewBridge(membucket.NewStore(), testutil.NewLogger(), &core.NopMetrics{})
		svc := NewService(bridge)

		var wg sync.WaitGroup
		for _, stat := range DefaultEquipment() {
			wg.Add(1)
			go func(sport string) {
				defer wg.Done()
				_, err := svc.UpdateEquipment(ctx, sport, EquipmentUpdate{Usage: &usage})
				assert.NoError(t, err)
			}(stat.Sport)
		}
		wg.Wait()

		all, err := bridge.Equipment(ctx)
		require.NoError(t, err)
		require.Len(t, all, len(DefaultEquipment()))
		for _, stat := range all {
			assert.Equal(t, usage, stat.Usage, "round %d: update of %s lost", round, stat.Sport)
		}
	}
}
