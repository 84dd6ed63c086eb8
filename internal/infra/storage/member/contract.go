package member

import "github.com/m04kA/SMC-DetailingStudio/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
