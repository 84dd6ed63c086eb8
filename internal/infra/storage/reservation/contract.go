package reservation

import "github.com/m04kA/SMC-DetailingStudio/pkg/dbmetrics"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
