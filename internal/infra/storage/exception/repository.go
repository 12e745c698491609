package exception

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// DBExecutor интерфейс выполнения запросов, переиспользуем из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с календарём исключений
// (выходные и частичные блокировки мастеров и салона)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория исключений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый блок-исключение
func (r *Repository) Create(ctx context.Context, block *domain.ExceptionBlock) (*domain.ExceptionBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("exception_schedules").
		Columns(
			"salon_id",
			"staff_id",
			"exception_date",
			"start_time",
			"end_time",
			"is_all_day",
			"reason",
		).
		Values(
			block.SalonID,
			block.StaffID,
			block.Date,
			nullableTime(block.StartTime.String(), block.IsAllDay),
			nullableTime(block.EndTime.String(), block.IsAllDay),
			block.IsAllDay,
			block.Reason,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&block.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time

	return block, nil
}

// ListByDateRange получает блоки-исключения салона за период
// Возвращает и салонные (staff_id IS NULL), и персональные блоки:
// резолвер сам решает, какие из них применимы к конкретному мастеру
func (r *Repository) ListByDateRange(ctx context.Context, salonID int64, from, to time.Time) ([]*domain.ExceptionBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"staff_id",
		"exception_date",
		"start_time",
		"end_time",
		"is_all_day",
		"reason",
		"created_at",
	).
		From("exception_schedules").
		Where(squirrel.Eq{"salon_id": salonID}).
		Where(squirrel.GtOrEq{"exception_date": from}).
		Where(squirrel.LtOrEq{"exception_date": to}).
		OrderBy("exception_date ASC, start_time ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.ExceptionBlock, 0)

	for rows.Next() {
		var block domain.ExceptionBlock
		var createdAt sql.NullTime

		err := rows.Scan(
			&block.ID,
			&block.SalonID,
			&block.StaffID,
			&block.Date,
			&block.StartTime,
			&block.EndTime,
			&block.IsAllDay,
			&block.Reason,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListByDateRange - scan row: %v", ErrScanRow, err)
		}

		block.CreatedAt = createdAt.Time

		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// GetByID получает блок-исключение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ExceptionBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"staff_id",
		"exception_date",
		"start_time",
		"end_time",
		"is_all_day",
		"reason",
		"created_at",
	).
		From("exception_schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var block domain.ExceptionBlock
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&block.ID,
		&block.SalonID,
		&block.StaffID,
		&block.Date,
		&block.StartTime,
		&block.EndTime,
		&block.IsAllDay,
		&block.Reason,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrExceptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time

	return &block, nil
}

// ListByDate получает блоки-исключения салона на конкретную дату
func (r *Repository) ListByDate(ctx context.Context, salonID int64, date time.Time) ([]*domain.ExceptionBlock, error) {
	return r.ListByDateRange(ctx, salonID, date, date)
}

// Delete удаляет блок-исключение
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("exception_schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrExceptionNotFound
	}

	return nil
}

// nullableTime возвращает NULL для all-day блоков, у которых время не задано
func nullableTime(value string, isAllDay bool) interface{} {
	if isAllDay || value == "" {
		return nil
	}
	return value
}
