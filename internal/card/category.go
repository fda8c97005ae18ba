package card

import dErrors "faregate/pkg/domainerrors"

// Category is the fare class of a card holder, independent of card variant.
// Invariant: the value must be one of the supported categories.
//
// Usage: construct via ParseCategory at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type Category string

const (
	CategoryStudent Category = "student"
	CategoryPupil   Category = "pupil"
	CategoryRegular Category = "regular"
)

// Categories is the closed enumeration in its canonical reporting order.
var Categories = []Category{CategoryStudent, CategoryPupil, CategoryRegular}

var validCategories = map[Category]bool{
	CategoryStudent: true,
	CategoryPupil:   true,
	CategoryRegular: true,
}

// ParseCategory constructs a Category from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "category cannot be empty")
	}
	c := Category(s)
	if !c.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid category")
	}
	return c, nil
}

// IsValid checks if the category is one of the supported enum values.
func (c Category) IsValid() bool {
	return validCategories[c]
}

func (c Category) String() string {
	return string(c)
}

// PeriodKind selects how long a period card stays valid after issuance.
type PeriodKind string

const (
	PeriodMonth   PeriodKind = "month"
	PeriodTenDays PeriodKind = "ten_days"
)

var validPeriodKinds = map[PeriodKind]bool{
	PeriodMonth:   true,
	PeriodTenDays: true,
}

// ParsePeriodKind constructs a PeriodKind from external input.
func ParsePeriodKind(s string) (PeriodKind, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "period kind cannot be empty")
	}
	k := PeriodKind(s)
	if !k.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid period kind")
	}
	return k, nil
}

// IsValid checks if the period kind is one of the supported enum values.
func (k PeriodKind) IsValid() bool {
	return validPeriodKinds[k]
}

func (k PeriodKind) String() string {
	return string(k)
}
