package stadium

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kat-co/vala"
	"github.com/pkg/errors"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/user"
)

// Service runs the PT staff dashboard. Every mutation is published through the Bridge.
type Service struct {
	bridge *Bridge

	// guards the read-modify-publish of the equipment table
	equipmentMu sync.Mutex
}

func NewService(bridge *Bridge) *Service {
	vala.BeginValidation().Validate(vala.IsNotNil(bridge, "bridge")).CheckAndPanic()
	return &Service{bridge: bridge}
}

func (svc *Service) Bridge() *Bridge { return svc.bridge }

func now() string {
	return core.NowFunc().UTC().Format(time.RFC3339)
}

// AddTournament publishes a tournament added by usr. nt must be validated.
func (svc *Service) AddTournament(ctx context.Context, nt NewTournament, usr user.User) (Tournament, error) {
	t := Tournament{
		ID:        uuid.New().String(),
		Name:      nt.Name,
		Sport:     nt.Sport,
		Date:      nt.Date,
		Time:      nt.Time,
		Venue:     nt.Venue,
		AddedBy:   usr.Name,
		AddedDate: now(),
	}
	if err := svc.bridge.Publish(ctx, KindTournaments, t); err != nil {
		return Tournament{}, err
	}
	return t, nil
}

func (svc *Service) DeleteTournament(ctx context.Context, id string) error {
	return svc.bridge.Unpublish(ctx, KindTournaments, id)
}

// AddBulletinEntry publishes a bulletin entry added by usr. nb must be validated.
func (svc *Service) AddBulletinEntry(ctx context.Context, nb NewBulletinEntry, usr user.User) (BulletinEntry, error) {
	e := BulletinEntry{
		ID:      uuid.New().String(),
		Type:    nb.Type,
		Title:   nb.Title,
		Content: nb.Content,
		Date:    now(),
		AddedBy: usr.Name,
	}
	if err := svc.bridge.Publish(ctx, KindBulletin, e); err != nil {
		return BulletinEntry{}, err
	}
	return e, nil
}

func (svc *Service) DeleteBulletinEntry(ctx context.Context, id string) error {
	return svc.bridge.Unpublish(ctx, KindBulletin, id)
}

// UpdateEquipment applies eu to the stat of sport and stamps LastUpdated.
// The first update publishes the whole default table so that the other sports stay listed.
func (svc *Service) UpdateEquipment(ctx context.Context, sport string, eu EquipmentUpdate) (EquipmentStat, error) {
	sport = core.CleanString(sport)

	svc.equipmentMu.Lock()
	defer svc.equipmentMu.Unlock()

	published, err := decode[EquipmentStat](ctx, svc.bridge, KindEquipment)
	if err != nil {
		return EquipmentStat{}, err
	}
	stats := published
	if len(stats) == 0 {
		stats = DefaultEquipment()
	}

	idx := -1
	for i, s := range stats {
		if s.Sport == sport {
			idx = i
			break
		}
	}
	if idx < 0 {
		return EquipmentStat{}, core.NewNotFoundError("equipment", sport)
	}

	stat := stats[idx]
	if eu.Usage != nil {
		stat.Usage = *eu.Usage
	}
	if eu.Available != nil {
		stat.Available = *eu.Available
	}
	if eu.PeakHours != nil {
		stat.PeakHours = *eu.PeakHours
	}
	stat.LastUpdated = now()

	if len(published) > 0 {
		if err = svc.bridge.Publish(ctx, KindEquipment, stat); err != nil {
			return EquipmentStat{}, err
		}
		return stat, nil
	}
	for i, s := range stats {
		if i == idx {
			s = stat
		} else {
			s.LastUpdated = stat.LastUpdated
		}
		if err = svc.bridge.Publish(ctx, KindEquipment, s); err != nil {
			return EquipmentStat{}, errors.Wrap(err, "publishing default equipment")
		}
	}
	return stat, nil
}
