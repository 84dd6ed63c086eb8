package members

import "errors"

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrMemberExists   = errors.New("member with this email already exists")
	ErrInvalidInput   = errors.New("invalid input data")
	ErrInternal       = errors.New("service: internal error")
)
