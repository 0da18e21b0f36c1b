package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

type scanFunc[T any] func(row pgx.Row) (*T, error)

func collectRows[T any](rows pgx.Rows, scan scanFunc[T]) ([]*T, error) {
	defer rows.Close()
	result := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, errors.New("unmarshalling row error: " + err.Error())
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return result, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
