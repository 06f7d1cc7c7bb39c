package stadium

import (
	"github.com/go-playground/validator/v10"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
)

// Kind names a bucket of the publication layer.
type Kind string

const (
	KindTournaments Kind = "tournaments"
	KindBulletin    Kind = "bulletin"
	KindEquipment   Kind = "equipment"
)

var Kinds = []Kind{KindTournaments, KindBulletin, KindEquipment}

func ParseKind(s string) (Kind, error) {
	k := Kind(core.CleanString(s, true /* lower */))
	for _, kind := range Kinds {
		if k == kind {
			return k, nil
		}
	}
	return "", core.NewValidationError(nil, core.FieldError{Field: "kind", Error: "unknown publication kind " + s})
}

// Bulletin entry types
const (
	EntryWinner = "winner"
	EntryNews   = "news"
)

// staff schema

type Tournament struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Sport     string `json:"sport"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Venue     string `json:"venue"`
	AddedBy   string `json:"added_by"`
	AddedDate string `json:"added_date"` // RFC 3339
}

type BulletinEntry struct {
	ID      string `json:"id"`
	Type    string `json:"type"` // winner | news
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"` // RFC 3339
	AddedBy string `json:"added_by"`
}

type EquipmentStat struct {
	Sport       string `json:"sport"`
	Usage       int    `json:"usage"` // percentage
	Available   bool   `json:"available"`
	PeakHours   string `json:"peak_hours"`
	LastUpdated string `json:"last_updated,omitempty"`
}

// student schema

type StudentTournament struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Sport                string `json:"sport"`
	Date                 string `json:"date"`
	Time                 string `json:"time"`
	Venue                string `json:"venue"`
	RegistrationDeadline string `json:"registration_deadline"`
	MaxTeams             int    `json:"max_teams"`
	CurrentTeams         int    `json:"current_teams"`
}

type BulletinItem struct {
	ID      string `json:"id"`
	Type    string `json:"type"` // always news
	Content string `json:"content"`
	Author  string `json:"author,omitempty"`
	Date    string `json:"date"`
}

// EquipmentUsage is the student view of an EquipmentStat, which it mirrors.
type EquipmentUsage = EquipmentStat

// inputs

type NewTournament struct {
	Name  string `json:"name" validate:"required,notblank"`
	Sport string `json:"sport" validate:"required,notblank"`
	Date  string `json:"date" validate:"required,isodate"`
	Time  string `json:"time" validate:"required,notblank"`
	Venue string `json:"venue"`
}

func (nt *NewTournament) Validate(validate *validator.Validate) error {
	nt.Name = core.CleanString(nt.Name)
	nt.Sport = core.CleanString(nt.Sport)
	nt.Date = core.CleanString(nt.Date)
	nt.Time = core.CleanString(nt.Time)
	nt.Venue = core.CleanString(nt.Venue)
	return validate.Struct(nt)
}

type NewBulletinEntry struct {
	Type    string `json:"type" validate:"required,oneof=winner news"`
	Title   string `json:"title" validate:"required,notblank"`
	Content string `json:"content" validate:"required,notblank"`
}

func (nb *NewBulletinEntry) Validate(validate *validator.Validate) error {
	nb.Type = core.CleanString(nb.Type, true /* lower */)
	nb.Title = core.CleanString(nb.Title)
	nb.Content = core.CleanString(nb.Content)
	return validate.Struct(nb)
}

// EquipmentUpdate changes the provided fields of an EquipmentStat.
type EquipmentUpdate struct {
	Usage     *int    `json:"usage" validate:"omitempty,min=0,max=100"`
	Available *bool   `json:"available"`
	PeakHours *string `json:"peak_hours"`
}

func (eu *EquipmentUpdate) Validate(validate *validator.Validate) error {
	if eu.PeakHours != nil {
		ph := core.CleanString(*eu.PeakHours)
		eu.PeakHours = &ph
	}
	return validate.Struct(eu)
}
