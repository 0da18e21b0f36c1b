package entity

import (
	"slices"
	"time"
)

const (
	PromiseKeptYes     = "yes"
	PromiseKeptPartial = "partial"
	PromiseKeptNo      = "no"
)

// DateLayout is the zero-padded ISO day format used by every date field.
// Lexicographic comparison of such strings matches chronological order.
const DateLayout = "2006-01-02"

type Task struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description *string   `json:"description"`
	IsCompleted bool      `json:"isCompleted" gorm:"not null;default:false"`
	IsActive    bool      `json:"isActive" gorm:"not null;default:true"`
	WeekStart   string    `json:"weekStart" gorm:"not null;index"`
	CreatedAt   time.Time `json:"createdAt" gorm:"not null"`
}

type DailyEntry struct {
	ID                string    `json:"id" gorm:"primaryKey"`
	Date              string    `json:"date" gorm:"not null;index"`
	MorningIntention  *string   `json:"morningIntention"`
	EnergyLevel       *int      `json:"energyLevel"`
	SuggestedTaskID   *string   `json:"suggestedTaskId"`
	TenMinuteActivity *string   `json:"tenMinuteActivity"`
	ActivityCompleted bool      `json:"activityCompleted" gorm:"not null;default:false"`
	EveningReflection *string   `json:"eveningReflection"`
	PromiseKept       *string   `json:"promiseKept"`
	FollowUpResponse  *string   `json:"followUpResponse"`
	Photos            []string  `json:"photos" gorm:"serializer:json"`
	VoiceNotes        []string  `json:"voiceNotes" gorm:"serializer:json"`
	CreatedAt         time.Time `json:"createdAt" gorm:"not null"`
}

// Substantive reports whether the entry carries any of the fields that make
// a day count toward weekly promise totals.
func (e *DailyEntry) Substantive() bool {
	return (e.MorningIntention != nil && *e.MorningIntention != "") ||
		(e.EveningReflection != nil && *e.EveningReflection != "") ||
		(e.EnergyLevel != nil && *e.EnergyLevel != 0)
}

// KeptPromise reports whether the day was marked as a kept promise.
func (e *DailyEntry) KeptPromise() bool {
	return e.PromiseKept != nil && *e.PromiseKept == PromiseKeptYes
}

type Reflection struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	PromptID         string    `json:"promptId" gorm:"not null"`
	PromptText       string    `json:"promptText" gorm:"not null"`
	Response         string    `json:"response" gorm:"not null"`
	FollowUpResponse *string   `json:"followUpResponse"`
	Date             string    `json:"date" gorm:"not null;index"`
	CreatedAt        time.Time `json:"createdAt" gorm:"not null"`
}

type WeeklyReview struct {
	ID                 string    `json:"id" gorm:"primaryKey"`
	WeekStart          string    `json:"weekStart" gorm:"not null;index"`
	WeekEnd            string    `json:"weekEnd" gorm:"not null"`
	ProudActions       *string   `json:"proudActions"`
	SelfRespectMoments *string   `json:"selfRespectMoments"`
	Patterns           *string   `json:"patterns"`
	NextWeekCultivate  *string   `json:"nextWeekCultivate"`
	NextWeekSupport    *string   `json:"nextWeekSupport"`
	GrowthLevel        int       `json:"growthLevel" gorm:"not null;default:1"`
	PromisesKept       int       `json:"promisesKept" gorm:"not null;default:0"`
	TotalPromises      int       `json:"totalPromises" gorm:"not null;default:0"`
	CreatedAt          time.Time `json:"createdAt" gorm:"not null"`
}

// Clone returns a copy that shares no slices with e.
func (e *DailyEntry) Clone() *DailyEntry {
	c := *e
	c.Photos = slices.Clone(e.Photos)
	c.VoiceNotes = slices.Clone(e.VoiceNotes)
	if c.Photos == nil {
		c.Photos = []string{}
	}
	if c.VoiceNotes == nil {
		c.VoiceNotes = []string{}
	}
	return &c
}
