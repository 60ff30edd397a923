package service

import "errors"

var (
	ErrValidation      = errors.New("invalid log data")
	ErrCannotCreateLog = errors.New("cannot create log")
	ErrInvalidPeriod   = errors.New("invalid activity period")
)
