package dto

import (
	"errors"
)

var (
	ErrNotFound = errors.New("errRecordNotFound")
)
