package get_venue_calendar

import (
	"fmt"
	"strings"
)

const (
	minYear = 1970
	maxYear = 9999
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.OwnerID) == "" {
		return fmt.Errorf("%w: ownerID is required", ErrInvalidInput)
	}

	if req.Selector == "" {
		return fmt.Errorf("%w: venue selector is required", ErrInvalidInput)
	}

	if !req.Month.Valid() {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	if req.Month.Year < minYear || req.Month.Year > maxYear {
		return fmt.Errorf("%w: year must be between %d and %d", ErrInvalidInput, minYear, maxYear)
	}

	return nil
}
