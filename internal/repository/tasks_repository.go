package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/tenminute/internal/error_values"
	"github.com/limbo/tenminute/pkg/entity"
)

const taskColumns = `id, title, description, is_completed, is_active, week_start, created_at`

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepoWithConn(conn PgConnection) *TasksRepository {
	return &TasksRepository{
		conn: conn,
	}
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.IsCompleted, &t.IsActive, &t.WeekStart, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (tr *TasksRepository) List(ctx context.Context, filter TaskFilter) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	conds := make([]string, 0, 2)
	args := make([]any, 0, 1)
	if filter.WeekStart != "" {
		args = append(args, filter.WeekStart)
		conds = append(conds, fmt.Sprintf("week_start = $%d", len(args)))
	}
	if !filter.IncludeInactive {
		conds = append(conds, "is_active = TRUE")
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at DESC;`
	rows, err := tr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing tasks error: " + err.Error())
	}
	return collectRows(rows, scanTask)
}

func (tr *TasksRepository) ListAll(ctx context.Context) ([]*entity.Task, error) {
	return tr.List(ctx, TaskFilter{})
}

func (tr *TasksRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	row := tr.conn.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND is_active = TRUE;`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("getting task by id error: " + err.Error())
	}
	return task, nil
}

func (tr *TasksRepository) Create(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	created := *task
	created.ID = uuid.NewString()
	row := tr.conn.QueryRow(ctx, `INSERT INTO tasks (id, title, description, is_completed, is_active, week_start)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at;`,
		created.ID,
		created.Title,
		created.Description,
		created.IsCompleted,
		created.IsActive,
		created.WeekStart,
	)
	if err := row.Scan(&created.CreatedAt); err != nil {
		return nil, errors.New("creating task db error: " + err.Error())
	}
	return &created, nil
}

func (tr *TasksRepository) Update(ctx context.Context, id string, patch *entity.TaskPatch) (*entity.Task, error) {
	row := tr.conn.QueryRow(ctx, `UPDATE tasks SET
		title = COALESCE($2, title),
		description = CASE WHEN $3::boolean THEN $4::text ELSE description END,
		is_completed = COALESCE($5, is_completed),
		is_active = COALESCE($6, is_active),
		week_start = COALESCE($7, week_start)
		WHERE id = $1 RETURNING `+taskColumns+`;`,
		id,
		patch.Title,
		patch.Description.Set, patch.Description.Value,
		patch.IsCompleted,
		patch.IsActive,
		patch.WeekStart,
	)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("error updating task: " + err.Error())
	}
	return task, nil
}

func (tr *TasksRepository) Delete(ctx context.Context, id string) (bool, error) {
	ct, err := tr.conn.Exec(ctx, `UPDATE tasks SET is_active = FALSE WHERE id = $1 AND is_active = TRUE;`, id)
	if err != nil {
		return false, errors.New("error deleting task: " + err.Error())
	}
	return ct.RowsAffected() > 0, nil
}
