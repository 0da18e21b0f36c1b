package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/tenminute/internal/error_values"
	"github.com/limbo/tenminute/internal/repository"
	"github.com/limbo/tenminute/pkg/entity"
)

type DailyEntriesService struct {
	repo repository.DailyEntriesRepositoryI
}

func NewDailyEntriesService(dailyRepo repository.DailyEntriesRepositoryI) *DailyEntriesService {
	if dailyRepo == nil {
		log.Fatal("provided nil dailyRepo")
	}
	return &DailyEntriesService{
		repo: dailyRepo,
	}
}

func (ds *DailyEntriesService) ListAll(ctx context.Context) ([]*entity.DailyEntry, error) {
	entries, err := ds.repo.ListAll(ctx)
	if err != nil {
		return nil, errors.New("daily entries repository error: " + err.Error())
	}
	return entries, nil
}

func (ds *DailyEntriesService) GetByDate(ctx context.Context, date string) (*entity.DailyEntry, error) {
	if err := validateDate("date", date); err != nil {
		return nil, err
	}
	entry, err := ds.repo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDailyEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("daily entries repository error: " + err.Error())
	}
	return entry, nil
}

func (ds *DailyEntriesService) Create(ctx context.Context, req *CreateDailyEntryRequest) (*entity.DailyEntry, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	entry := entity.DailyEntry{
		Date:              req.Date,
		MorningIntention:  req.MorningIntention,
		EnergyLevel:       req.EnergyLevel,
		SuggestedTaskID:   req.SuggestedTaskID,
		TenMinuteActivity: req.TenMinuteActivity,
		ActivityCompleted: valueOr(req.ActivityCompleted, false),
		EveningReflection: req.EveningReflection,
		PromiseKept:       req.PromiseKept,
		FollowUpResponse:  req.FollowUpResponse,
		Photos:            req.Photos,
		VoiceNotes:        req.VoiceNotes,
	}
	created, err := ds.repo.Create(ctx, &entry)
	if err != nil {
		return nil, errors.New("daily entries repository error: " + err.Error())
	}
	return created, nil
}

func (ds *DailyEntriesService) Update(ctx context.Context, id string, req *UpdateDailyEntryRequest) (*entity.DailyEntry, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	entry, err := ds.repo.Update(ctx, id, &entity.DailyEntryPatch{
		Date:              req.Date,
		MorningIntention:  req.MorningIntention,
		EnergyLevel:       req.EnergyLevel,
		SuggestedTaskID:   req.SuggestedTaskID,
		TenMinuteActivity: req.TenMinuteActivity,
		ActivityCompleted: req.ActivityCompleted,
		EveningReflection: req.EveningReflection,
		PromiseKept:       req.PromiseKept,
		FollowUpResponse:  req.FollowUpResponse,
		Photos:            req.Photos,
		VoiceNotes:        req.VoiceNotes,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrDailyEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("daily entries repository error: " + err.Error())
	}
	return entry, nil
}

func (ds *DailyEntriesService) Delete(ctx context.Context, id string) error {
	ok, err := ds.repo.Delete(ctx, id)
	if err != nil {
		return errors.New("daily entries repository error: " + err.Error())
	}
	if !ok {
		return errorvalues.ErrDailyEntryNotFound
	}
	return nil
}

func (ds *DailyEntriesService) ListForWeek(ctx context.Context, weekStart, weekEnd string) ([]*entity.DailyEntry, error) {
	if err := errors.Join(validateDate("weekStart", weekStart), validateDate("weekEnd", weekEnd)); err != nil {
		return nil, err
	}
	entries, err := ds.repo.ListForDateRange(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, errors.New("daily entries repository error: " + err.Error())
	}
	return entries, nil
}
