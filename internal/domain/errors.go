package domain

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrNoAccountList   = errors.New("response carries no account list")
	ErrBoardNotFound   = errors.New("board not found")
	ErrUserNotFound    = errors.New("user not found")
)
