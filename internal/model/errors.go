package model

import "errors"

var (
	ErrEmptyName       = errors.New("folder name is empty")
	ErrFolderExists    = errors.New("folder already exists")
	ErrFolderNotFound  = errors.New("folder not found")
	ErrEmptyURL        = errors.New("bookmark url is empty")
	ErrEmptyTitle      = errors.New("bookmark title is empty")
	ErrIndexOutOfRange = errors.New("bookmark index out of range")
	ErrInvalidOrder    = errors.New("order is not a permutation of the folder")
)
