package member

import "errors"

var (
	ErrMemberNotFound = errors.New("member.repository: member not found")
	ErrMemberExists   = errors.New("member.repository: member with this email already exists")
	ErrBuildQuery     = errors.New("member.repository: failed to build query")
	ErrExecQuery      = errors.New("member.repository: failed to execute query")
	ErrScanRow        = errors.New("member.repository: failed to scan row")
)
