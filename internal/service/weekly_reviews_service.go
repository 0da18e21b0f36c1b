package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/tenminute/internal/error_values"
	"github.com/limbo/tenminute/internal/repository"
	"github.com/limbo/tenminute/pkg/entity"
)

type WeeklyReviewsService struct {
	repo repository.WeeklyReviewsRepositoryI
}

func NewWeeklyReviewsService(reviewsRepo repository.WeeklyReviewsRepositoryI) *WeeklyReviewsService {
	if reviewsRepo == nil {
		log.Fatal("provided nil reviewsRepo")
	}
	return &WeeklyReviewsService{
		repo: reviewsRepo,
	}
}

func (ws *WeeklyReviewsService) ListAll(ctx context.Context) ([]*entity.WeeklyReview, error) {
	reviews, err := ws.repo.ListAll(ctx)
	if err != nil {
		return nil, errors.New("weekly reviews repository error: " + err.Error())
	}
	return reviews, nil
}

func (ws *WeeklyReviewsService) GetByWeekStart(ctx context.Context, weekStart string) (*entity.WeeklyReview, error) {
	if err := validateDate("weekStart", weekStart); err != nil {
		return nil, err
	}
	review, err := ws.repo.GetByWeekStart(ctx, weekStart)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWeeklyReviewNotFound) {
			return nil, err
		}
		return nil, errors.New("weekly reviews repository error: " + err.Error())
	}
	return review, nil
}

func (ws *WeeklyReviewsService) Create(ctx context.Context, req *CreateWeeklyReviewRequest) (*entity.WeeklyReview, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	created, err := ws.repo.Create(ctx, &entity.WeeklyReview{
		WeekStart:          req.WeekStart,
		WeekEnd:            req.WeekEnd,
		ProudActions:       req.ProudActions,
		SelfRespectMoments: req.SelfRespectMoments,
		Patterns:           req.Patterns,
		NextWeekCultivate:  req.NextWeekCultivate,
		NextWeekSupport:    req.NextWeekSupport,
		GrowthLevel:        valueOr(req.GrowthLevel, 1),
		PromisesKept:       valueOr(req.PromisesKept, 0),
		TotalPromises:      valueOr(req.TotalPromises, 0),
	})
	if err != nil {
		return nil, errors.New("weekly reviews repository error: " + err.Error())
	}
	return created, nil
}

func (ws *WeeklyReviewsService) Update(ctx context.Context, id string, req *UpdateWeeklyReviewRequest) (*entity.WeeklyReview, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	review, err := ws.repo.Update(ctx, id, &entity.WeeklyReviewPatch{
		WeekStart:          req.WeekStart,
		WeekEnd:            req.WeekEnd,
		ProudActions:       req.ProudActions,
		SelfRespectMoments: req.SelfRespectMoments,
		Patterns:           req.Patterns,
		NextWeekCultivate:  req.NextWeekCultivate,
		NextWeekSupport:    req.NextWeekSupport,
		GrowthLevel:        req.GrowthLevel,
		PromisesKept:       req.PromisesKept,
		TotalPromises:      req.TotalPromises,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrWeeklyReviewNotFound) {
			return nil, err
		}
		return nil, errors.New("weekly reviews repository error: " + err.Error())
	}
	return review, nil
}

func (ws *WeeklyReviewsService) Delete(ctx context.Context, id string) error {
	ok, err := ws.repo.Delete(ctx, id)
	if err != nil {
		return errors.New("weekly reviews repository error: " + err.Error())
	}
	if !ok {
		return errorvalues.ErrWeeklyReviewNotFound
	}
	return nil
}
