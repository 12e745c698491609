package config

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// DBExecutor интерфейс выполнения запросов, переиспользуем из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с конфигурацией бронирования салона
// Одна строка на салон (salon_id уникален)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBySalon получает конфигурацию бронирования салона
// Возвращает ErrConfigNotFound, если салон не настраивал политику бронирования
func (r *Repository) GetBySalon(ctx context.Context, salonID int64) (*domain.SalonBookingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"granularity_minutes",
		"max_concurrent_reservations",
		"reservation_limit_days",
		"min_notice_minutes",
		"created_at",
		"updated_at",
	).
		From("salon_booking_config").
		Where(squirrel.Eq{"salon_id": salonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalon - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.SalonBookingConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.SalonID,
		&config.GranularityMinutes,
		&config.MaxConcurrentReservations,
		&config.ReservationLimitDays,
		&config.MinNoticeMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalon - scan config: %v", ErrScanRow, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// Upsert создает или обновляет конфигурацию бронирования салона
func (r *Repository) Upsert(ctx context.Context, config *domain.SalonBookingConfig) (*domain.SalonBookingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("salon_booking_config").
		Columns(
			"salon_id",
			"granularity_minutes",
			"max_concurrent_reservations",
			"reservation_limit_days",
			"min_notice_minutes",
		).
		Values(
			config.SalonID,
			config.GranularityMinutes,
			config.MaxConcurrentReservations,
			config.ReservationLimitDays,
			config.MinNoticeMinutes,
		).
		Suffix(`ON CONFLICT (salon_id) DO UPDATE SET
			granularity_minutes = EXCLUDED.granularity_minutes,
			max_concurrent_reservations = EXCLUDED.max_concurrent_reservations,
			reservation_limit_days = EXCLUDED.reservation_limit_days,
			min_notice_minutes = EXCLUDED.min_notice_minutes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// Delete удаляет конфигурацию салона (возврат к значениям по умолчанию)
func (r *Repository) Delete(ctx context.Context, salonID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("salon_booking_config").
		Where(squirrel.Eq{"salon_id": salonID}).
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
		return ErrConfigNotFound
	}

	return nil
}
