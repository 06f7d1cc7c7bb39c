// Package stadium carries the indoor stadium content the PT staff publish to the students.
package stadium

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/kat-co/vala"
	"github.com/pkg/errors"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
)

// BucketStore is the durable layer shared by the staff and the student views.
// List returns the payloads of a bucket in first-insert order; an upsert of an existing key keeps its position.
type BucketStore interface {
	Upsert(ctx context.Context, bucket, key string, payload []byte) error
	// Delete returns a core.NotFoundError when key is not in bucket.
	Delete(ctx context.Context, bucket, key string) error
	List(ctx context.Context, bucket string) ([][]byte, error)
}

// Bridge publishes staff records and translates them for the students.
// Student reads always go back to the store.
type Bridge struct {
	store   BucketStore
	logger  core.Logger
	metrics core.Metrics
}

func NewBridge(store BucketStore, logger core.Logger, metrics core.Metrics) *Bridge {
	vala.BeginValidation().Validate(
		vala.IsNotNil(store, "store"),
		vala.IsNotNil(logger, "logger"),
		vala.IsNotNil(metrics, "metrics"),
	).CheckAndPanic()

	return &Bridge{store: store, logger: logger, metrics: metrics}
}

func recordKey(kind Kind, record interface{}) (string, error) {
	switch r := record.(type) {
	case Tournament:
		if kind == KindTournaments {
			return r.ID, nil
		}
	case BulletinEntry:
		if kind == KindBulletin {
			return r.ID, nil
		}
	case EquipmentStat:
		if kind == KindEquipment {
			return r.Sport, nil
		}
	}
	return "", core.NewValidationError(fmt.Errorf("cannot publish %T as %s", record, kind))
}

// Publish upserts record into the bucket of kind, keyed by its id (sport for equipment).
func (b *Bridge) Publish(ctx context.Context, kind Kind, record interface{}) error {
	if _, err := ParseKind(string(kind)); err != nil {
		return err
	}
	key, err := recordKey(kind, record)
	if err != nil {
		return err
	}
	if key == "" {
		return core.NewValidationError(fmt.Errorf("publishing %s: empty key", kind))
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return errors.Wrapf(err, "encoding %s record", kind)
	}
	if err = b.store.Upsert(ctx, string(kind), key, payload); err != nil {
		return errors.Wrapf(err, "publishing %s %q", kind, key)
	}
	b.metrics.RecordPublished(string(kind), "upsert")
	return nil
}

func (b *Bridge) Unpublish(ctx context.Context, kind Kind, key string) error {
	if _, err := ParseKind(string(kind)); err != nil {
		return err
	}
	if err := b.store.Delete(ctx, string(kind), key); err != nil {
		return errors.Wrapf(err, "unpublishing %s %q", kind, key)
	}
	b.metrics.RecordPublished(string(kind), "delete")
	return nil
}

// decode reads the records of a bucket. Undecodable payloads are logged and skipped.
func decode[T any](ctx context.Context, b *Bridge, kind Kind) ([]T, error) {
	payloads, err := b.store.List(ctx, string(kind))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", kind)
	}
	recs := make([]T, 0, len(payloads))
	for _, p := range payloads {
		var rec T
		if err = json.Unmarshal(p, &rec); err != nil {
			b.logger.Error(fmt.Sprintf("decoding %s record: %v", kind, err), err)
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (b *Bridge) Tournaments(ctx context.Context) ([]Tournament, error) {
	return decode[Tournament](ctx, b, KindTournaments)
}

// Bulletin returns the staff entries, newest first.
func (b *Bridge) Bulletin(ctx context.Context) ([]BulletinEntry, error) {
	entries, err := decode[BulletinEntry](ctx, b, KindBulletin)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Equipment returns the published equipment table, or the default one when nothing is published yet.
func (b *Bridge) Equipment(ctx context.Context) ([]EquipmentStat, error) {
	stats, err := decode[EquipmentStat](ctx, b, KindEquipment)
	if err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		return DefaultEquipment(), nil
	}
	return stats, nil
}

// ReadStaff returns the staff-schema records of kind.
func (b *Bridge) ReadStaff(ctx context.Context, kind Kind) (interface{}, error) {
	switch kind {
	case KindTournaments:
		return b.Tournaments(ctx)
	case KindBulletin:
		return b.Bulletin(ctx)
	case KindEquipment:
		return b.Equipment(ctx)
	}
	_, err := ParseKind(string(kind))
	return nil, err
}

// StudentTournaments translates the published tournaments, followed by the built-in ones.
func (b *Bridge) StudentTournaments(ctx context.Context) ([]StudentTournament, error) {
	ts, err := b.Tournaments(ctx)
	if err != nil {
		return nil, err
	}
	samples := sampleTournaments()
	out := make([]StudentTournament, 0, len(ts)+len(samples))
	for _, t := range ts {
		out = append(out, translateTournament(t))
	}
	return append(out, samples...), nil
}

func translateTournament(t Tournament) StudentTournament {
	venue := t.Venue
	if venue == "" {
		venue = defaultVenue
	}
	return StudentTournament{
		ID:                   t.ID,
		Name:                 t.Name,
		Sport:                t.Sport,
		Date:                 t.Date,
		Time:                 t.Time,
		Venue:                venue,
		RegistrationDeadline: t.Date,
		MaxTeams:             defaultMaxTeams,
		CurrentTeams:         defaultCurrentTeams,
	}
}

// StudentBulletin translates the published entries (newest first), followed by the built-in news.
// Winner entries are flattened into news items.
func (b *Bridge) StudentBulletin(ctx context.Context) ([]BulletinItem, error) {
	entries, err := b.Bulletin(ctx)
	if err != nil {
		return nil, err
	}
	samples := sampleBulletin()
	out := make([]BulletinItem, 0, len(entries)+len(samples))
	for _, e := range entries {
		out = append(out, translateEntry(e))
	}
	return append(out, samples...), nil
}

func translateEntry(e BulletinEntry) BulletinItem {
	content := e.Content
	if e.Type == EntryWinner {
		content = e.Title + ": " + e.Content
	}
	return BulletinItem{ID: e.ID, Type: EntryNews, Content: content, Date: e.Date}
}

func (b *Bridge) StudentEquipment(ctx context.Context) ([]EquipmentUsage, error) {
	return b.Equipment(ctx)
}

// ReadForStudentView returns the student-schema records of kind, re-read from the store.
func (b *Bridge) ReadForStudentView(ctx context.Context, kind Kind) (interface{}, error) {
	switch kind {
	case KindTournaments:
		return b.StudentTournaments(ctx)
	case KindBulletin:
		return b.StudentBulletin(ctx)
	case KindEquipment:
		return b.StudentEquipment(ctx)
	}
	_, err := ParseKind(string(kind))
	return nil, err
}

// MostAvailableEquipment returns the available equipment with the lowest usage. ok is false when none is available.
func (b *Bridge) MostAvailableEquipment(ctx context.Context) (stat EquipmentUsage, ok bool, err error) {
	stats, err := b.StudentEquipment(ctx)
	if err != nil {
		return EquipmentUsage{}, false, err
	}
	available := make([]EquipmentUsage, 0, len(stats))
	for _, s := range stats {
		if s.Available {
			available = append(available, s)
		}
	}
	if len(available) == 0 {
		return EquipmentUsage{}, false, nil
	}
	sort.SliceStable(available, func(i, j int) bool { return available[i].Usage < available[j].Usage })
	return available[0], true, nil
}
