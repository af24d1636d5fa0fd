package models

import (
	"errors"
	"fmt"
)

var (
	ErrNoRows                 = errors.New("no rows")
	ErrUNIQUEConstraintFailed = errors.New("unique constraint failed")
	ErrNoFile                 = errors.New("no file uploaded")
	ErrUploadFailed           = errors.New("upload failed")
	ErrInternal               = errors.New("internal server error")
	ErrMethodNotAllowed       = errors.New("method not allowed")
	ErrInvalidParams          = errors.New("invalid params")
	ErrUserNotFound           = errors.New("user not found")
	ErrUserExists             = errors.New("user already exists")
	ErrPdfNotFound            = errors.New("pdf not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
)

type UniqueConstraintError struct {
	Constraint string
	Err        error
}

func (e *UniqueConstraintError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Constraint)
}

func (e *UniqueConstraintError) Unwrap() error {
	return e.Err
}
