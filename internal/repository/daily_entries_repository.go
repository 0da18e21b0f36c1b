package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/tenminute/internal/error_values"
	"github.com/limbo/tenminute/pkg/entity"
)

const dailyEntryColumns = `id, date, morning_intention, energy_level, suggested_task_id, ten_minute_activity,
	activity_completed, evening_reflection, promise_kept, follow_up_response, photos, voice_notes, created_at`

type DailyEntriesRepository struct {
	conn PgConnection
}

func NewDailyEntriesRepoWithConn(conn PgConnection) *DailyEntriesRepository {
	return &DailyEntriesRepository{
		conn: conn,
	}
}

func scanDailyEntry(row pgx.Row) (*entity.DailyEntry, error) {
	var e entity.DailyEntry
	err := row.Scan(
		&e.ID, &e.Date, &e.MorningIntention, &e.EnergyLevel, &e.SuggestedTaskID, &e.TenMinuteActivity,
		&e.ActivityCompleted, &e.EveningReflection, &e.PromiseKept, &e.FollowUpResponse, &e.Photos, &e.VoiceNotes,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Photos = nonNil(e.Photos)
	e.VoiceNotes = nonNil(e.VoiceNotes)
	return &e, nil
}

func (dr *DailyEntriesRepository) ListAll(ctx context.Context) ([]*entity.DailyEntry, error) {
	rows, err := dr.conn.Query(ctx, `SELECT `+dailyEntryColumns+` FROM daily_entries ORDER BY date DESC, created_at DESC;`)
	if err != nil {
		return nil, errors.New("listing daily entries error: " + err.Error())
	}
	return collectRows(rows, scanDailyEntry)
}

func (dr *DailyEntriesRepository) GetByDate(ctx context.Context, date string) (*entity.DailyEntry, error) {
	row := dr.conn.QueryRow(ctx, `SELECT `+dailyEntryColumns+` FROM daily_entries
		WHERE date = $1 ORDER BY created_at DESC LIMIT 1;`, date)
	entry, err := scanDailyEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrDailyEntryNotFound
		}
		return nil, errors.New("getting daily entry by date error: " + err.Error())
	}
	return entry, nil
}

func (dr *DailyEntriesRepository) GetByID(ctx context.Context, id string) (*entity.DailyEntry, error) {
	row := dr.conn.QueryRow(ctx, `SELECT `+dailyEntryColumns+` FROM daily_entries WHERE id = $1;`, id)
	entry, err := scanDailyEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrDailyEntryNotFound
		}
		return nil, errors.New("getting daily entry by id error: " + err.Error())
	}
	return entry, nil
}

func (dr *DailyEntriesRepository) Create(ctx context.Context, entry *entity.DailyEntry) (*entity.DailyEntry, error) {
	created := entry.Clone()
	created.ID = uuid.NewString()
	row := dr.conn.QueryRow(ctx, `INSERT INTO daily_entries (id, date, morning_intention, energy_level, suggested_task_id,
		ten_minute_activity, activity_completed, evening_reflection, promise_kept, follow_up_response, photos, voice_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING created_at;`,
		created.ID,
		created.Date,
		created.MorningIntention,
		created.EnergyLevel,
		created.SuggestedTaskID,
		created.TenMinuteActivity,
		created.ActivityCompleted,
		created.EveningReflection,
		created.PromiseKept,
		created.FollowUpResponse,
		created.Photos,
		created.VoiceNotes,
	)
	if err := row.Scan(&created.CreatedAt); err != nil {
		return nil, errors.New("creating daily entry db error: " + err.Error())
	}
	return created, nil
}

func (dr *DailyEntriesRepository) Update(ctx context.Context, id string, patch *entity.DailyEntryPatch) (*entity.DailyEntry, error) {
	row := dr.conn.QueryRow(ctx, `UPDATE daily_entries SET
		date = COALESCE($2, date),
		morning_intention = CASE WHEN $3::boolean THEN $4::text ELSE morning_intention END,
		energy_level = CASE WHEN $5::boolean THEN $6::integer ELSE energy_level END,
		suggested_task_id = CASE WHEN $7::boolean THEN $8::text ELSE suggested_task_id END,
		ten_minute_activity = CASE WHEN $9::boolean THEN $10::text ELSE ten_minute_activity END,
		activity_completed = COALESCE($11, activity_completed),
		evening_reflection = CASE WHEN $12::boolean THEN $13::text ELSE evening_reflection END,
		promise_kept = CASE WHEN $14::boolean THEN $15::text ELSE promise_kept END,
		follow_up_response = CASE WHEN $16::boolean THEN $17::text ELSE follow_up_response END,
		photos = COALESCE($18, photos),
		voice_notes = COALESCE($19, voice_notes)
		WHERE id = $1 RETURNING `+dailyEntryColumns+`;`,
		id,
		patch.Date,
		patch.MorningIntention.Set, patch.MorningIntention.Value,
		patch.EnergyLevel.Set, patch.EnergyLevel.Value,
		patch.SuggestedTaskID.Set, patch.SuggestedTaskID.Value,
		patch.TenMinuteActivity.Set, patch.TenMinuteActivity.Value,
		patch.ActivityCompleted,
		patch.EveningReflection.Set, patch.EveningReflection.Value,
		patch.PromiseKept.Set, patch.PromiseKept.Value,
		patch.FollowUpResponse.Set, patch.FollowUpResponse.Value,
		patch.Photos,
		patch.VoiceNotes,
	)
	entry, err := scanDailyEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrDailyEntryNotFound
		}
		return nil, errors.New("error updating daily entry: " + err.Error())
	}
	return entry, nil
}

func (dr *DailyEntriesRepository) Delete(ctx context.Context, id string) (bool, error) {
	ct, err := dr.conn.Exec(ctx, `DELETE FROM daily_entries WHERE id = $1;`, id)
	if err != nil {
		return false, errors.New("error deleting daily entry: " + err.Error())
	}
	return ct.RowsAffected() > 0, nil
}

func (dr *DailyEntriesRepository) ListForDateRange(ctx context.Context, start, end string) ([]*entity.DailyEntry, error) {
	rows, err := dr.conn.Query(ctx, `SELECT `+dailyEntryColumns+` FROM daily_entries
		WHERE date >= $1 AND date <= $2 ORDER BY date;`, start, end)
	if err != nil {
		return nil, errors.New("listing daily entries for range error: " + err.Error())
	}
	return collectRows(rows, scanDailyEntry)
}
