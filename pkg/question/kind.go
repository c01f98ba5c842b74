package question

import (
	"errors"

	"github.com/aretw0/inquire/pkg/convert"
	"github.com/aretw0/inquire/pkg/modifier"
	"github.com/aretw0/inquire/pkg/validation"
)

// Kind classifies an evaluation or configuration failure.
type Kind int

const (
	KindNone Kind = iota
	KindMissingValue
	KindOutOfRange
	KindValidation
	KindUnknownModifier
	KindUnknownConverter
	KindDuplicateConverter
	KindInvalidRange
	KindConversion
	KindUnknown
)

var kindNames = map[Kind]string{
	KindNone:               "none",
	KindMissingValue:       "missing_value",
	KindOutOfRange:         "out_of_range",
	KindValidation:         "validation",
	KindUnknownModifier:    "unknown_modifier",
	KindUnknownConverter:   "unknown_converter",
	KindDuplicateConverter: "duplicate_converter",
	KindInvalidRange:       "invalid_range",
	KindConversion:         "conversion",
	KindUnknown:            "unknown",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// KindOf returns the failure kind carried by err. A nil error is KindNone.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}

	var (
		missing    *MissingValueError
		outOfRange *OutOfRangeError
		invalid    *validation.Error
		unknownMod *modifier.UnknownModifierError
		unknownCnv *convert.UnknownConverterError
		duplicate  *convert.DuplicateConverterError
		badRange   *convert.InvalidRangeError
	)

	switch {
	case errors.As(err, &missing):
		return KindMissingValue
	case errors.As(err, &outOfRange):
		return KindOutOfRange
	case errors.As(err, &invalid):
		return KindValidation
	case errors.As(err, &unknownMod):
		return KindUnknownModifier
	case errors.As(err, &unknownCnv):
		return KindUnknownConverter
	case errors.As(err, &duplicate):
		return KindDuplicateConverter
	case errors.As(err, &badRange):
		return KindInvalidRange
	case errors.Is(err, convert.ErrConversion):
		return KindConversion
	default:
		return KindUnknown
	}
}
