package schema

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DetailingStudio/pkg/dbmetrics"
)

// ErrApplySchema ошибка создания таблиц
var ErrApplySchema = errors.New("schema: failed to apply schema")

//go:embed schema.sql
var ddl string

// DDL возвращает SQL создания таблиц и индексов
func DDL() string {
	return ddl
}

// Apply создает таблицы и индексы, если их ещё нет. Повторный вызов ничего не меняет
func Apply(ctx context.Context, db dbmetrics.DBExecutor) error {
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("%w: %v", ErrApplySchema, err)
	}
	return nil
}
