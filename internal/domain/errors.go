package domain

import "errors"

var (
	ErrNotFound  = errors.New("resource not found")
	ErrEmptyCart = errors.New("cart is empty")
)
