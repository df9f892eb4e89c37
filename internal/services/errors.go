package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrNoNews           = fmt.Errorf("no news found: %w", ErrNotFound)
	ErrNewsItemNotFound = fmt.Errorf("news item not found: %w", ErrNotFound)
	ErrNoBanner         = fmt.Errorf("no banner found: %w", ErrNotFound)
)
