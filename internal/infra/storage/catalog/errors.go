package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrServiceExists возвращается, когда услуга с таким названием уже есть в каталоге
	ErrServiceExists = errors.New("catalog.repository: service already exists")

	ErrBuildQuery = errors.New("catalog.repository: failed to build query")
	ErrExecQuery  = errors.New("catalog.repository: failed to execute query")
	ErrScanRow    = errors.New("catalog.repository: failed to scan row")
)
