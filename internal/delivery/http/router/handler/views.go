package handler

import (
	"time"

	"wellness/internal/domain/entity"
	"wellness/internal/usecase"
	"wellness/internal/util"
)

// userView is the public shape of a user. The password hash never leaves the service.
type userView struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	LoginProvider    string  `json:"loginProvider"`
	RegistrationDate string  `json:"registrationDate"`
	UpdatedAt        *string `json:"updatedAt"`
}

type authView struct {
	Message   string   `json:"message"`
	User      userView `json:"user"`
	Token     string   `json:"token"`
	ExpiresAt string   `json:"expiresAt"`
}

type userBody struct {
	Message string   `json:"message,omitempty"`
	User    userView `json:"user"`
}

type moodEntryBody struct {
	Message   string        `json:"message"`
	MoodEntry moodEntryView `json:"moodEntry"`
}

type moodEntryView struct {
	ID               string  `json:"id"`
	UserID           string  `json:"userId"`
	MoodType         string  `json:"moodType"`
	Level            int     `json:"level"`
	ShortDescription string  `json:"shortDescription"`
	RegistrationDate string  `json:"registrationDate"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        *string `json:"updatedAt"`
}

type moodListView struct {
	MoodEntries []moodEntryView `json:"moodEntries"`
	Total       int             `json:"total"`
}

type moodStatsView struct {
	TotalEntries     int            `json:"totalEntries"`
	AverageMood      float64        `json:"averageMood"`
	MoodDistribution map[string]int `json:"moodDistribution"`
	LastEntry        *moodEntryView `json:"lastEntry"`
	Trend            string         `json:"trend"`
}

type moodTypeView struct {
	Level int    `json:"level"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := util.FormatTimestamp(*t)

	return &s
}

func toUserView(u *entity.User) userView {
	return userView{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		LoginProvider:    string(u.LoginProvider),
		RegistrationDate: util.FormatTimestamp(u.RegistrationDate),
		UpdatedAt:        formatOptional(u.UpdatedAt),
	}
}

func toAuthView(out *usecase.AuthOutput, message string) authView {
	return authView{
		Message:   message,
		User:      toUserView(out.User),
		Token:     out.Token,
		ExpiresAt: util.FormatTimestamp(out.ExpiresAt),
	}
}

func toMoodEntryView(e *entity.MoodEntry) moodEntryView {
	return moodEntryView{
		ID:               e.ID,
		UserID:           e.UserID,
		MoodType:         string(e.MoodType),
		Level:            e.Level,
		ShortDescription: e.ShortDescription,
		RegistrationDate: util.FormatTimestamp(e.RegistrationDate),
		CreatedAt:        util.FormatTimestamp(e.CreatedAt),
		UpdatedAt:        formatOptional(e.UpdatedAt),
	}
}

func toMoodListView(entries []*entity.MoodEntry) moodListView {
	views := make([]moodEntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, toMoodEntryView(e))
	}

	return moodListView{MoodEntries: views, Total: len(views)}
}

func toMoodStatsView(s *entity.MoodStats) moodStatsView {
	distribution := make(map[string]int, len(s.MoodDistribution))
	for moodType, count := range s.MoodDistribution {
		distribution[string(moodType)] = count
	}

	view := moodStatsView{
		TotalEntries:     s.TotalEntries,
		AverageMood:      s.AverageMood,
		MoodDistribution: distribution,
		Trend:            string(s.Trend),
	}
	if s.LastEntry != nil {
		last := toMoodEntryView(s.LastEntry)
		view.LastEntry = &last
	}

	return view
}

func toMoodTypeViews(types []entity.MoodTypeInfo) []moodTypeView {
	views := make([]moodTypeView, 0, len(types))
	for _, t := range types {
		views = append(views, moodTypeView{Level: t.Level, Name: string(t.Name), Icon: t.Icon, Color: t.Color})
	}

	return views
}
