package order

import (
	"fmt"

	"workorders/internal/pkg/errs"
)

// WorkType classifies the kind of work an order asks for. The classification
// selects which per-page rate applies: technical categories pay the tier's
// technical rate, all others pay the standard rate.
type WorkType int

const (
	// WorkTypeUnknown represents an invalid or undefined work type.
	WorkTypeUnknown WorkType = iota

	Essay
	Article
	Coursework
	Report
	Presentation
	Thesis
	Dissertation
	Programming
	Mathematics
	Engineering
	Statistics
	Physics
	Chemistry
)

func getWorkTypeStrings() map[WorkType]string {
	return map[WorkType]string{
		WorkTypeUnknown: "unknown",
		Essay:           "essay",
		Article:         "article",
		Coursework:      "coursework",
		Report:          "report",
		Presentation:    "presentation",
		Thesis:          "thesis",
		Dissertation:    "dissertation",
		Programming:     "programming",
		Mathematics:     "mathematics",
		Engineering:     "engineering",
		Statistics:      "statistics",
		Physics:         "physics",
		Chemistry:       "chemistry",
	}
}

// WorkTypeFromString parses a work-type name received from an external boundary.
// Unknown names are rejected rather than defaulted.
func WorkTypeFromString(s string) (WorkType, error) {
	for wt, name := range getWorkTypeStrings() {
		if name == s && wt != WorkTypeUnknown {
			return wt, nil
		}
	}
	return WorkTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"work type is invalid",
		fmt.Errorf("%q is not a valid work type", s),
	)
}

// Validate checks if the WorkType is a member of the closed work-type set.
func (w WorkType) Validate() error {
	if w <= WorkTypeUnknown || w > Chemistry {
		return errs.NewValueIsInvalidErrorWithCause(
			"work type is invalid",
			fmt.Errorf("%d is not a valid work type", w),
		)
	}
	return nil
}

// String returns the wire name of the work type, e.g. "programming".
func (w WorkType) String() string {
	if str, ok := getWorkTypeStrings()[w]; ok {
		return str
	}
	return "unknown"
}

// IsTechnical reports whether the work type belongs to the fixed technical
// category set that pays the tier's technical per-page rate.
func (w WorkType) IsTechnical() bool {
	switch w {
	case Programming, Mathematics, Engineering, Statistics, Physics, Chemistry:
		return true
	default:
		return false
	}
}
