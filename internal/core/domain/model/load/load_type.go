package load

import (
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
)

// Type distinguishes less-than-truckload from full-truckload freight.
type Type int

const (
	UnknownType Type = iota
	LTL
	FTL
)

func (t Type) String() string {
	switch t {
	case LTL:
		return "LTL"
	case FTL:
		return "FTL"
	case UnknownType:
	}
	return "Unknown"
}

func (t Type) Validate() error {
	if t != LTL && t != FTL {
		return errs.NewValueIsInvalidErrorWithCause("load type is invalid", fmt.Errorf("%d is not LTL or FTL", t))
	}
	return nil
}

// ParseType accepts "LTL" or "FTL", case-insensitively.
func ParseType(s string) (Type, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LTL":
		return LTL, nil
	case "FTL":
		return FTL, nil
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("load type is invalid", fmt.Errorf("%q is not LTL or FTL", s))
}
