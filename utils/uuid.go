package utils

import (
	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation id of an API request
const RequestIDHeader = "X-Request-ID"

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// RequestID keeps a well-formed incoming id, otherwise issues a new one
func RequestID(incoming string) string {
	if _, err := uuid.Parse(incoming); err == nil {
		return incoming
	}
	return GenerateID()
}
