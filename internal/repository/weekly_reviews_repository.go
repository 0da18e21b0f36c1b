package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/tenminute/internal/error_values"
	"github.com/limbo/tenminute/pkg/entity"
)

const weeklyReviewColumns = `id, week_start, week_end, proud_actions, self_respect_moments, patterns,
	next_week_cultivate, next_week_support, growth_level, promises_kept, total_promises, created_at`

type WeeklyReviewsRepository struct {
	conn PgConnection
}

func NewWeeklyReviewsRepoWithConn(conn PgConnection) *WeeklyReviewsRepository {
	return &WeeklyReviewsRepository{
		conn: conn,
	}
}

func scanWeeklyReview(row pgx.Row) (*entity.WeeklyReview, error) {
	var w entity.WeeklyReview
	err := row.Scan(
		&w.ID, &w.WeekStart, &w.WeekEnd, &w.ProudActions, &w.SelfRespectMoments, &w.Patterns,
		&w.NextWeekCultivate, &w.NextWeekSupport, &w.GrowthLevel, &w.PromisesKept, &w.TotalPromises, &w.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (wr *WeeklyReviewsRepository) ListAll(ctx context.Context) ([]*entity.WeeklyReview, error) {
	rows, err := wr.conn.Query(ctx, `SELECT `+weeklyReviewColumns+` FROM weekly_reviews ORDER BY created_at DESC;`)
	if err != nil {
		return nil, errors.New("listing weekly reviews error: " + err.Error())
	}
	return collectRows(rows, scanWeeklyReview)
}

func (wr *WeeklyReviewsRepository) GetByWeekStart(ctx context.Context, weekStart string) (*entity.WeeklyReview, error) {
	row := wr.conn.QueryRow(ctx, `SELECT `+weeklyReviewColumns+` FROM weekly_reviews
		WHERE week_start = $1 ORDER BY created_at DESC LIMIT 1;`, weekStart)
	review, err := scanWeeklyReview(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrWeeklyReviewNotFound
		}
		return nil, errors.New("getting weekly review by week error: " + err.Error())
	}
	return review, nil
}

func (wr *WeeklyReviewsRepository) GetByID(ctx context.Context, id string) (*entity.WeeklyReview, error) {
	row := wr.conn.QueryRow(ctx, `SELECT `+weeklyReviewColumns+` FROM weekly_reviews WHERE id = $1;`, id)
	review, err := scanWeeklyReview(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrWeeklyReviewNotFound
		}
		return nil, errors.New("getting weekly review by id error: " + err.Error())
	}
	return review, nil
}

func (wr *WeeklyReviewsRepository) Create(ctx context.Context, review *entity.WeeklyReview) (*entity.WeeklyReview, error) {
	created := *review
	created.ID = uuid.NewString()
	row := wr.conn.QueryRow(ctx, `INSERT INTO weekly_reviews (id, week_start, week_end, proud_actions, self_respect_moments,
		patterns, next_week_cultivate, next_week_support, growth_level, promises_kept, total_promises)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING created_at;`,
		created.ID,
		created.WeekStart,
		created.WeekEnd,
		created.ProudActions,
		created.SelfRespectMoments,
		created.Patterns,
		created.NextWeekCultivate,
		created.NextWeekSupport,
		created.GrowthLevel,
		created.PromisesKept,
		created.TotalPromises,
	)
	if err := row.Scan(&created.CreatedAt); err != nil {
		return nil, errors.New("creating weekly review db error: " + err.Error())
	}
	return &created, nil
}

func (wr *WeeklyReviewsRepository) Update(ctx context.Context, id string, patch *entity.WeeklyReviewPatch) (*entity.WeeklyReview, error) {
	row := wr.conn.QueryRow(ctx, `UPDATE weekly_reviews SET
		week_start = COALESCE($2, week_start),
		week_end = COALESCE($3, week_end),
		proud_actions = CASE WHEN $4::boolean THEN $5::text ELSE proud_actions END,
		self_respect_moments = CASE WHEN $6::boolean THEN $7::text ELSE self_respect_moments END,
		patterns = CASE WHEN $8::boolean THEN $9::text ELSE patterns END,
		next_week_cultivate = CASE WHEN $10::boolean THEN $11::text ELSE next_week_cultivate END,
		next_week_support = CASE WHEN $12::boolean THEN $13::text ELSE next_week_support END,
		growth_level = COALESCE($14, growth_level),
		promises_kept = COALESCE($15, promises_kept),
		total_promises = COALESCE($16, total_promises)
		WHERE id = $1 RETURNING `+weeklyReviewColumns+`;`,
		id,
		patch.WeekStart,
		patch.WeekEnd,
		patch.ProudActions.Set, patch.ProudActions.Value,
		patch.SelfRespectMoments.Set, patch.SelfRespectMoments.Value,
		patch.Patterns.Set, patch.Patterns.Value,
		patch.NextWeekCultivate.Set, patch.NextWeekCultivate.Value,
		patch.NextWeekSupport.Set, patch.NextWeekSupport.Value,
		patch.GrowthLevel,
		patch.PromisesKept,
		patch.TotalPromises,
	)
	review, err := scanWeeklyReview(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrWeeklyReviewNotFound
		}
		return nil, errors.New("error updating weekly review: " + err.Error())
	}
	return review, nil
}

func (wr *WeeklyReviewsRepository) Delete(ctx context.Context, id string) (bool, error) {
	ct, err := wr.conn.Exec(ctx, `DELETE FROM weekly_reviews WHERE id = $1;`, id)
	if err != nil {
		return false, errors.New("error deleting weekly review: " + err.Error())
	}
	return ct.RowsAffected() > 0, nil
}
