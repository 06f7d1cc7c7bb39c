package stadium

import "time"

// Placeholders of translated tournaments.
const (
	defaultVenue        = "Indoor Stadium"
	defaultMaxTeams     = 20
	defaultCurrentTeams = 12
)

// DefaultEquipment is the equipment table served until the staff publish their own.
func DefaultEquipment() []EquipmentStat {
	return []EquipmentStat{
		{Sport: "Chess", Usage: 45, Available: true, PeakHours: "4:00 PM - 6:00 PM"},
		{Sport: "Table Tennis", Usage: 78, Available: true, PeakHours: "5:00 PM - 7:00 PM"},
		{Sport: "Badminton", Usage: 92, Available: false, PeakHours: "6:00 PM - 8:00 PM"},
		{Sport: "Carrom", Usage: 38, Available: true, PeakHours: "3:00 PM - 5:00 PM"},
		{Sport: "Football", Usage: 65, Available: true, PeakHours: "5:00 PM - 7:00 PM"},
		{Sport: "Basketball", Usage: 70, Available: true, PeakHours: "4:00 PM - 6:00 PM"},
		{Sport: "Cricket", Usage: 55, Available: true, PeakHours: "5:00 PM - 7:00 PM"},
		{Sport: "Volleyball", Usage: 48, Available: true, PeakHours: "4:00 PM - 6:00 PM"},
	}
}

func sampleBulletin() []BulletinItem {
	return []BulletinItem{
		{ID: "1", Type: EntryNews, Content: "India wins bronze medal in badminton mixed team event at Asian Games 2025", Date: "2025-12-08"},
		{ID: "2", Type: EntryNews, Content: "Virat Kohli becomes first cricketer to score 27,000 international runs", Date: "2025-12-07"},
		{ID: "3", Type: EntryNews, Content: "PV Sindhu advances to semifinals of Indonesia Masters badminton tournament", Date: "2025-12-06"},
		{ID: "4", Type: EntryNews, Content: "Indian football team qualifies for AFC Asian Cup 2027", Date: "2025-12-05"},
	}
}

func sampleTournaments() []StudentTournament {
	return []StudentTournament{
		{
			ID: "1", Name: "Inter-Department Chess Championship", Sport: "Chess",
			Date: "2025-12-16", Time: "9:00 AM - 5:00 PM", Venue: "Indoor Stadium - Hall A",
			RegistrationDeadline: "2025-12-12", MaxTeams: 16, CurrentTeams: 12,
		},
		{
			ID: "2", Name: "Table Tennis Tournament 2025", Sport: "Table Tennis",
			Date: "2025-12-18", Time: "10:00 AM - 6:00 PM", Venue: "Indoor Stadium - Hall B",
			RegistrationDeadline: "2025-12-14", MaxTeams: 24, CurrentTeams: 18,
		},
		{
			ID: "3", Name: "Badminton Doubles Championship", Sport: "Badminton",
			Date: "2025-12-20", Time: "8:00 AM - 4:00 PM", Venue: "Indoor Stadium - Main Court",
			RegistrationDeadline: "2025-12-16", MaxTeams: 20, CurrentTeams: 15,
		},
		{
			ID: "4", Name: "Carrom Singles Tournament", Sport: "Carrom",
			Date: "2025-12-22", Time: "2:00 PM - 8:00 PM", Venue: "Indoor Stadium - Hall C",
			RegistrationDeadline: "2025-12-18", MaxTeams: 32, CurrentTeams: 28,
		},
		{
			ID: "5", Name: "Basketball 3v3 Championship", Sport: "Basketball",
			Date: "2025-12-25", Time: "9:00 AM - 5:00 PM", Venue: "Outdoor Basketball Court",
			RegistrationDeadline: "2025-12-20", MaxTeams: 12, CurrentTeams: 9,
		},
	}
}

var quotes = []string{
	"The only way to prove that you're a good sport is to lose.",
	"Champions keep playing until they get it right.",
	"Hard work beats talent when talent doesn't work hard.",
	"Success is where preparation and opportunity meet.",
	"It's not whether you get knocked down, it's whether you get up.",
}

// QuoteOf returns the motivational quote of day t.
func QuoteOf(t time.Time) string {
	return quotes[t.YearDay()%len(quotes)]
}
