package gallery

import "errors"

var (
	ErrImageNotFound   = errors.New("gallery image not found")
	ErrInvalidCategory = errors.New("invalid gallery category")
	ErrInvalidImage    = errors.New("invalid image file")
)
