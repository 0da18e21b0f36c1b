package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/tenminute/internal/error_values"
	"github.com/limbo/tenminute/pkg/entity"
)

const reflectionColumns = `id, prompt_id, prompt_text, response, follow_up_response, date, created_at`

type ReflectionsRepository struct {
	conn PgConnection
}

func NewReflectionsRepoWithConn(conn PgConnection) *ReflectionsRepository {
	return &ReflectionsRepository{
		conn: conn,
	}
}

func scanReflection(row pgx.Row) (*entity.Reflection, error) {
	var r entity.Reflection
	err := row.Scan(&r.ID, &r.PromptID, &r.PromptText, &r.Response, &r.FollowUpResponse, &r.Date, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (rr *ReflectionsRepository) List(ctx context.Context, date string) ([]*entity.Reflection, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if date == "" {
		rows, err = rr.conn.Query(ctx, `SELECT `+reflectionColumns+` FROM reflections ORDER BY created_at DESC;`)
	} else {
		rows, err = rr.conn.Query(ctx, `SELECT `+reflectionColumns+` FROM reflections WHERE date = $1 ORDER BY created_at DESC;`, date)
	}
	if err != nil {
		return nil, errors.New("listing reflections error: " + err.Error())
	}
	return collectRows(rows, scanReflection)
}

func (rr *ReflectionsRepository) ListAll(ctx context.Context) ([]*entity.Reflection, error) {
	return rr.List(ctx, "")
}

func (rr *ReflectionsRepository) GetByID(ctx context.Context, id string) (*entity.Reflection, error) {
	row := rr.conn.QueryRow(ctx, `SELECT `+reflectionColumns+` FROM reflections WHERE id = $1;`, id)
	reflection, err := scanReflection(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrReflectionNotFound
		}
		return nil, errors.New("getting reflection by id error: " + err.Error())
	}
	return reflection, nil
}

func (rr *ReflectionsRepository) Create(ctx context.Context, reflection *entity.Reflection) (*entity.Reflection, error) {
	created := *reflection
	created.ID = uuid.NewString()
	row := rr.conn.QueryRow(ctx, `INSERT INTO reflections (id, prompt_id, prompt_text, response, follow_up_response, date)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at;`,
		created.ID,
		created.PromptID,
		created.PromptText,
		created.Response,
		created.FollowUpResponse,
		created.Date,
	)
	if err := row.Scan(&created.CreatedAt); err != nil {
		return nil, errors.New("creating reflection db error: " + err.Error())
	}
	return &created, nil
}

func (rr *ReflectionsRepository) Update(ctx context.Context, id string, patch *entity.ReflectionPatch) (*entity.Reflection, error) {
	row := rr.conn.QueryRow(ctx, `UPDATE reflections SET
		prompt_id = COALESCE($2, prompt_id),
		prompt_text = COALESCE($3, prompt_text),
		response = COALESCE($4, response),
		follow_up_response = CASE WHEN $5::boolean THEN $6::text ELSE follow_up_response END,
		date = COALESCE($7, date)
		WHERE id = $1 RETURNING `+reflectionColumns+`;`,
		id,
		patch.PromptID,
		patch.PromptText,
		patch.Response,
		patch.FollowUpResponse.Set, patch.FollowUpResponse.Value,
		patch.Date,
	)
	reflection, err := scanReflection(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrReflectionNotFound
		}
		return nil, errors.New("error updating reflection: " + err.Error())
	}
	return reflection, nil
}

func (rr *ReflectionsRepository) Delete(ctx context.Context, id string) (bool, error) {
	ct, err := rr.conn.Exec(ctx, `DELETE FROM reflections WHERE id = $1;`, id)
	if err != nil {
		return false, errors.New("error deleting reflection: " + err.Error())
	}
	return ct.RowsAffected() > 0, nil
}
