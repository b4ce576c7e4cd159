package dtos

import "time"

// DateLayout is the wire format for date-valued fields (due dates, request
// dates, upload dates).
const DateLayout = "2006-01-02"

// parseDateOrNow is total: a blank optional date falls back to the current
// day rather than failing the mapping. Required dates are format-checked by
// the validator before they reach this point.
func parseDateOrNow(s string) time.Time {
	if s == "" {
		return time.Now()
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Now()
	}
	return t
}

type MessageResponse struct {
	Message string `json:"message"`
}
