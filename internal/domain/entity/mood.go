package entity

import "time"

// MoodType is one of the five canonical mood labels.
type MoodType string

const (
	MoodSad       MoodType = "Triste"
	MoodAnxious   MoodType = "Ansioso"
	MoodNeutral   MoodType = "Neutro"
	MoodHappy     MoodType = "Feliz"
	MoodMotivated MoodType = "Motivado"
)

// Trend classifies how the recent mood window compares to the previous one.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// Mood level bounds.
const (
	MinMoodLevel = 1
	MaxMoodLevel = 5
)

// MoodTypeInfo describes a canonical mood label as shown by the app.
type MoodTypeInfo struct {
	Level int
	Name  MoodType
	Icon  string
	Color string
}

// moodTypes is ordered by level, saddest first.
var moodTypes = []MoodTypeInfo{
	{Level: 1, Name: MoodSad, Icon: "emoticon-sad-outline", Color: "#E74C3C"},
	{Level: 2, Name: MoodAnxious, Icon: "emoticon-confused-outline", Color: "#F39C12"},
	{Level: 3, Name: MoodNeutral, Icon: "emoticon-neutral-outline", Color: "#F1C40F"},
	{Level: 4, Name: MoodHappy, Icon: "emoticon-happy-outline", Color: "#2ECC71"},
	{Level: 5, Name: MoodMotivated, Icon: "emoticon-excited-outline", Color: "#9B59B6"},
}

// MoodTypes returns a copy of the canonical table ordered by level.
func MoodTypes() []MoodTypeInfo {
	out := make([]MoodTypeInfo, len(moodTypes))
	copy(out, moodTypes)

	return out
}

// LookupMoodType finds the canonical entry for a label. Matching is exact.
func LookupMoodType(name string) (MoodTypeInfo, bool) {
	for _, info := range moodTypes {
		if string(info.Name) == name {
			return info, true
		}
	}

	return MoodTypeInfo{}, false
}

// LookupMoodLevel finds the canonical entry for a level.
func LookupMoodLevel(level int) (MoodTypeInfo, bool) {
	if level < MinMoodLevel || level > MaxMoodLevel {
		return MoodTypeInfo{}, false
	}

	return moodTypes[level-1], true
}

// MoodEntry is a single mood registration by a user.
type MoodEntry struct {
	ID               string     // Opaque identifier assigned by the repository on Create.
	UserID           string     // Owner; entries are never shared between users.
	MoodType         MoodType   // Canonical label.
	Level            int        // Canonical level of MoodType, 1..5.
	ShortDescription string     // Optional note, at most 500 characters.
	RegistrationDate time.Time  // When the mood was felt.
	CreatedAt        time.Time  // When the row was written.
	UpdatedAt        *time.Time // Last mutation; nil until the entry is updated.
}

// OwnedBy reports whether the entry belongs to the given user.
func (e *MoodEntry) OwnedBy(userID string) bool {
	return e.UserID == userID
}

// MoodStats aggregates a user's entries over an optional date range.
type MoodStats struct {
	TotalEntries     int
	AverageMood      float64
	MoodDistribution map[MoodType]int // All five labels present, zero-filled.
	LastEntry        *MoodEntry       // Entry with the latest RegistrationDate; nil when empty.
	Trend            Trend
}
