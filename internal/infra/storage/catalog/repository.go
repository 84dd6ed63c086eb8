package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
	"github.com/m04kA/SMC-DetailingStudio/pkg/dbmetrics"
	"github.com/m04kA/SMC-DetailingStudio/pkg/psqlbuilder"
)

const (
	table           = "services"
	uniqueViolation = "23505"
)

var columns = []string{
	"name",
	"price_text",
	"category",
	"description",
	"details",
	"is_visible",
	"position",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает услуги в порядке каталога (position, затем name).
// visibleOnly отсекает скрытые услуги
func (r *Repository) List(ctx context.Context, visibleOnly bool) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).From(table)
	if visibleOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_visible": true})
	}

	query, args, err := selectBuilder.OrderBy("position ASC", "name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetByName получает услугу по названию
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - scan service: %v", ErrScanRow, err)
	}

	return s, nil
}

// Create добавляет услугу в каталог
func (r *Repository) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("name", "price_text", "category", "description", "details", "is_visible", "position").
		Values(s.Name, s.PriceText, s.Category, s.Description, pq.Array(s.Details), s.IsVisible, s.Position).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrServiceExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// Update обновляет услугу с названием name; s.Name может содержать новое название
func (r *Repository) Update(ctx context.Context, name string, s *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", s.Name).
		Set("price_text", s.PriceText).
		Set("category", s.Category).
		Set("description", s.Description).
		Set("details", pq.Array(s.Details)).
		Set("is_visible", s.IsVisible).
		Set("position", s.Position).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"name": name}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrServiceExists
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return s, nil
}

// SetVisibility показывает или скрывает услугу
func (r *Repository) SetVisibility(ctx context.Context, name string, visible bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("is_visible", visible).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetVisibility - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetVisibility - execute update: %v", ErrExecQuery, err)
	}

	return requireAffected(result, "SetVisibility")
}

// Delete удаляет услугу. Существующие бронирования хранят названия услуг и не затрагиваются
func (r *Repository) Delete(ctx context.Context, name string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"name": name}).
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
		return ErrServiceNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var (
		s           domain.Service
		details     pq.StringArray
		description sql.NullString
	)

	err := row.Scan(
		&s.Name,
		&s.PriceText,
		&s.Category,
		&description,
		&details,
		&s.IsVisible,
		&s.Position,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Description = description.String
	s.Details = []string(details)

	return &s, nil
}
