package service

import "errors"

var (
	ErrInvalidRequest        = errors.New("invalid request")
	ErrActivityNotFound      = errors.New("activity not found")
	ErrActivityNotActive     = errors.New("activity is not active")
	ErrInvalidSequence       = errors.New("invalid sequence number")
	ErrActivityAlreadyExists = errors.New("activity already exists")
)
