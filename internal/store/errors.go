package store

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrEmptySlot      = errors.New("credential slot name is empty")
)
