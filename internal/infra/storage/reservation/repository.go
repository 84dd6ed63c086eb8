package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
	"github.com/m04kA/SMC-DetailingStudio/pkg/dbmetrics"
	"github.com/m04kA/SMC-DetailingStudio/pkg/psqlbuilder"
)

const (
	table = "reservations"

	// activeSlotIndex частичный уникальный индекс (scheduled_date, scheduled_slot) WHERE status IN ('PENDING','CONFIRMED')
	activeSlotIndex = "reservations_active_slot_uidx"

	uniqueViolation = "23505"
)

var columns = []string{
	"id",
	"customer_name",
	"customer_email",
	"vehicle_description",
	"notes",
	"services",
	"status",
	"scheduled_date",
	"scheduled_slot",
	"subtotal",
	"discount",
	"surcharge",
	"total",
	"deposit",
	"balance",
	"is_member_booking",
	"created_at",
	"updated_at",
	"cancelled_at",
}

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование.
// Если слот уже занят активным бронированием, база отклоняет вставку по уникальному индексу
// и метод возвращает ErrSlotNotAvailable. Это окончательная проверка от двойного бронирования
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"customer_name",
			"customer_email",
			"vehicle_description",
			"notes",
			"services",
			"status",
			"scheduled_date",
			"scheduled_slot",
			"subtotal",
			"discount",
			"surcharge",
			"total",
			"deposit",
			"balance",
			"is_member_booking",
		).
		Values(
			res.ID,
			res.CustomerName,
			res.CustomerEmail,
			res.VehicleDescription,
			res.Notes,
			pq.Array(res.Services),
			res.Status,
			res.ScheduledDate.Format(domain.DateFormat),
			res.ScheduledSlot,
			res.PriceSummary.Subtotal,
			res.PriceSummary.Discount,
			res.PriceSummary.Surcharge,
			res.PriceSummary.Total,
			res.PriceSummary.Deposit,
			res.PriceSummary.Balance,
			res.IsMemberBooking,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if isActiveSlotViolation(err) {
			return nil, ErrSlotNotAvailable
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByDate получает все бронирования на дату.
// Внутри транзакции строки блокируются (FOR UPDATE) до её завершения
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"scheduled_date": date.Format(domain.DateFormat)}).
		OrderBy("scheduled_slot ASC", "created_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// List получает бронирования с фильтрацией по периоду, статусу и email клиента
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func buildListQuery(filter domain.ReservationFilter) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(columns...).From(table)

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"scheduled_date": filter.StartDate.Format(domain.DateFormat)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"scheduled_date": filter.EndDate.Format(domain.DateFormat)})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Email != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr("LOWER(customer_email) = LOWER(?)", *filter.Email))
	}

	return selectBuilder.OrderBy("scheduled_date ASC", "scheduled_slot ASC")
}

// UpdateStatus обновляет статус; при отмене проставляет cancelled_at.
// Перевод отменённого бронирования обратно в активный статус может упереться в уникальный индекс слота
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if status == domain.StatusCancelled {
		updateBuilder = updateBuilder.Set("cancelled_at", squirrel.Expr("NOW()"))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isActiveSlotViolation(err) {
			return ErrSlotNotAvailable
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return requireAffected(result, "UpdateStatus")
}

// Delete физически удаляет бронирование (явное действие администратора)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return requireAffected(result, "Delete")
}

func requireAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// isActiveSlotViolation проверяет, что ошибка является нарушением уникального индекса активного слота
func isActiveSlotViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == uniqueViolation && pqErr.Constraint == activeSlotIndex
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res         domain.Reservation
		services    pq.StringArray
		cancelledAt sql.NullTime
	)

	err := row.Scan(
		&res.ID,
		&res.CustomerName,
		&res.CustomerEmail,
		&res.VehicleDescription,
		&res.Notes,
		&services,
		&res.Status,
		&res.ScheduledDate,
		&res.ScheduledSlot,
		&res.PriceSummary.Subtotal,
		&res.PriceSummary.Discount,
		&res.PriceSummary.Surcharge,
		&res.PriceSummary.Total,
		&res.PriceSummary.Deposit,
		&res.PriceSummary.Balance,
		&res.IsMemberBooking,
		&res.CreatedAt,
		&res.UpdatedAt,
		&cancelledAt,
	)
	if err != nil {
		return nil, err
	}

	res.Services = []string(services)
	if cancelledAt.Valid {
		t := cancelledAt.Time
		res.CancelledAt = &t
	}

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
