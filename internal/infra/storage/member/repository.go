package member

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

const table = "members"

// Repository репозиторий участников клуба
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует участника. Email уникален без учёта регистра
func (r *Repository) Create(ctx context.Context, m *domain.Member) (*domain.Member, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "name", "email", "phone", "tier").
		Values(m.ID, m.Name, m.Email, m.Phone, m.Tier).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&m.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrMemberExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return m, nil
}

// GetByEmail ищет участника по email без учёта регистра
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "phone", "tier", "created_at").
		From(table).
		Where(squirrel.Expr("LOWER(email) = LOWER(?)", email)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var (
		m     domain.Member
		phone sql.NullString
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(&m.ID, &m.Name, &m.Email, &phone, &m.Tier, &m.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan member: %v", ErrScanRow, err)
	}
	m.Phone = phone.String

	return &m, nil
}

// List возвращает всех участников, новые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.Member, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "phone", "tier", "created_at").
		From(table).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	members := make([]*domain.Member, 0)
	for rows.Next() {
		var (
			m     domain.Member
			phone sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &phone, &m.Tier, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		m.Phone = phone.String
		members = append(members, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return members, nil
}

// Delete удаляет участника
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

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}
