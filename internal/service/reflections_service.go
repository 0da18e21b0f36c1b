package service

import (
	"context"
	"errors"
	"log"
	"slices"

	errorvalues "github.com/limbo/tenminute/internal/error_values"
	"github.com/limbo/tenminute/internal/repository"
	"github.com/limbo/tenminute/pkg/entity"
)

// Prompt is one of the guided reflection questions. Yes/No hold the follow-up
// for a yes/no answer, FollowUp the follow-up for free-form prompts.
type Prompt struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Yes      string `json:"yes,omitempty"`
	No       string `json:"no,omitempty"`
	FollowUp string `json:"followUp,omitempty"`
}

var prompts = []Prompt{
	{
		ID:       "self-promise",
		Question: "Did you keep a promise to yourself today?",
		Yes:      "That's a powerful act of respect for yourself. How does it feel to notice that?",
		No:       "That happens. What got in the way, and how could you support yourself better tomorrow?",
	},
	{
		ID:       "resistance",
		Question: "What resistance did you notice in yourself today?",
		FollowUp: "Resistance often points to growth edges. What might this resistance be protecting or teaching you?",
	},
	{
		ID:       "authenticity",
		Question: "How did you honor your authentic self today?",
		FollowUp: "Authenticity is a practice. Each genuine moment builds your inner compass.",
	},
	{
		ID:       "release",
		Question: "What are you ready to release or forgive?",
		FollowUp: "Release creates space for new growth. What wants to emerge in this cleared space?",
	},
}

type ReflectionsService struct {
	repo repository.ReflectionsRepositoryI
}

func NewReflectionsService(reflectionsRepo repository.ReflectionsRepositoryI) *ReflectionsService {
	if reflectionsRepo == nil {
		log.Fatal("provided nil reflectionsRepo")
	}
	return &ReflectionsService{
		repo: reflectionsRepo,
	}
}

func (rs *ReflectionsService) Prompts() []Prompt {
	return slices.Clone(prompts)
}

func (rs *ReflectionsService) List(ctx context.Context, date string) ([]*entity.Reflection, error) {
	if date != "" {
		if err := validateDate("date", date); err != nil {
			return nil, err
		}
	}
	reflections, err := rs.repo.List(ctx, date)
	if err != nil {
		return nil, errors.New("reflections repository error: " + err.Error())
	}
	return reflections, nil
}

func (rs *ReflectionsService) ListAll(ctx context.Context) ([]*entity.Reflection, error) {
	reflections, err := rs.repo.ListAll(ctx)
	if err != nil {
		return nil, errors.New("reflections repository error: " + err.Error())
	}
	return reflections, nil
}

func (rs *ReflectionsService) Create(ctx context.Context, req *CreateReflectionRequest) (*entity.Reflection, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	created, err := rs.repo.Create(ctx, &entity.Reflection{
		PromptID:         req.PromptID,
		PromptText:       req.PromptText,
		Response:         req.Response,
		FollowUpResponse: req.FollowUpResponse,
		Date:             req.Date,
	})
	if err != nil {
		return nil, errors.New("reflections repository error: " + err.Error())
	}
	return created, nil
}

func (rs *ReflectionsService) Update(ctx context.Context, id string, req *UpdateReflectionRequest) (*entity.Reflection, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	reflection, err := rs.repo.Update(ctx, id, &entity.ReflectionPatch{
		PromptID:         req.PromptID,
		PromptText:       req.PromptText,
		Response:         req.Response,
		FollowUpResponse: req.FollowUpResponse,
		Date:             req.Date,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrReflectionNotFound) {
			return nil, err
		}
		return nil, errors.New("reflections repository error: " + err.Error())
	}
	return reflection, nil
}

func (rs *ReflectionsService) Delete(ctx context.Context, id string) error {
	ok, err := rs.repo.Delete(ctx, id)
	if err != nil {
		return errors.New("reflections repository error: " + err.Error())
	}
	if !ok {
		return errorvalues.ErrReflectionNotFound
	}
	return nil
}
