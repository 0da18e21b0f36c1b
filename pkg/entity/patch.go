package entity

import "slices"

// Patch types carry the fields of a partial update. A nil pointer or an unset
// Nullable is left untouched on the stored record; a Nullable set to null
// clears it. id and createdAt are never patchable.

type TaskPatch struct {
	Title       *string
	Description Nullable[string]
	IsCompleted *bool
	IsActive    *bool
	WeekStart   *string
}

func (t *Task) Apply(p *TaskPatch) {
	if p == nil {
		return
	}
	set(&t.Title, p.Title)
	setNullable(&t.Description, p.Description)
	set(&t.IsCompleted, p.IsCompleted)
	set(&t.IsActive, p.IsActive)
	set(&t.WeekStart, p.WeekStart)
}

type DailyEntryPatch struct {
	Date              *string
	MorningIntention  Nullable[string]
	EnergyLevel       Nullable[int]
	SuggestedTaskID   Nullable[string]
	TenMinuteActivity Nullable[string]
	ActivityCompleted *bool
	EveningReflection Nullable[string]
	PromiseKept       Nullable[string]
	FollowUpResponse  Nullable[string]
	Photos            []string
	VoiceNotes        []string
}

func (e *DailyEntry) Apply(p *DailyEntryPatch) {
	if p == nil {
		return
	}
	set(&e.Date, p.Date)
	setNullable(&e.MorningIntention, p.MorningIntention)
	setNullable(&e.EnergyLevel, p.EnergyLevel)
	setNullable(&e.SuggestedTaskID, p.SuggestedTaskID)
	setNullable(&e.TenMinuteActivity, p.TenMinuteActivity)
	set(&e.ActivityCompleted, p.ActivityCompleted)
	setNullable(&e.EveningReflection, p.EveningReflection)
	setNullable(&e.PromiseKept, p.PromiseKept)
	setNullable(&e.FollowUpResponse, p.FollowUpResponse)
	if p.Photos != nil {
		e.Photos = slices.Clone(p.Photos)
	}
	if p.VoiceNotes != nil {
		e.VoiceNotes = slices.Clone(p.VoiceNotes)
	}
}

type ReflectionPatch struct {
	PromptID         *string
	PromptText       *string
	Response         *string
	FollowUpResponse Nullable[string]
	Date             *string
}

func (r *Reflection) Apply(p *ReflectionPatch) {
	if p == nil {
		return
	}
	set(&r.PromptID, p.PromptID)
	set(&r.PromptText, p.PromptText)
	set(&r.Response, p.Response)
	setNullable(&r.FollowUpResponse, p.FollowUpResponse)
	set(&r.Date, p.Date)
}

type WeeklyReviewPatch struct {
	WeekStart          *string
	WeekEnd            *string
	ProudActions       Nullable[string]
	SelfRespectMoments Nullable[string]
	Patterns           Nullable[string]
	NextWeekCultivate  Nullable[string]
	NextWeekSupport    Nullable[string]
	GrowthLevel        *int
	PromisesKept       *int
	TotalPromises      *int
}

func (w *WeeklyReview) Apply(p *WeeklyReviewPatch) {
	if p == nil {
		return
	}
	set(&w.WeekStart, p.WeekStart)
	set(&w.WeekEnd, p.WeekEnd)
	setNullable(&w.ProudActions, p.ProudActions)
	setNullable(&w.SelfRespectMoments, p.SelfRespectMoments)
	setNullable(&w.Patterns, p.Patterns)
	setNullable(&w.NextWeekCultivate, p.NextWeekCultivate)
	setNullable(&w.NextWeekSupport, p.NextWeekSupport)
	set(&w.GrowthLevel, p.GrowthLevel)
	set(&w.PromisesKept, p.PromisesKept)
	set(&w.TotalPromises, p.TotalPromises)
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setNullable[T any](dst **T, src Nullable[T]) {
	if !src.Set {
		return
	}
	if src.Value == nil {
		*dst = nil
		return
	}
	v := *src.Value
	*dst = &v
}
