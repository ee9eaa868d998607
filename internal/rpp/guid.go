package rpp

import (
	"strings"

	"github.com/google/uuid"
)

// NewGUID mints a brace-wrapped uppercase GUID in the form REAPER uses for
// track, FX, and envelope identities.
func NewGUID() string {
	return "{" + strings.ToUpper(uuid.NewString()) + "}"
}
