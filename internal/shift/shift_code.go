package shift

import "strings"

// Code is the closed set of day types a booking can carry. Upstream
// systems deliver free-text codes; ParseCode folds the known spellings
// into one of these and anything else maps to CodeUnknown, which makes
// every calculator fall through to its default contribution.
type Code string

const (
	CodeUnknown       Code = ""
	CodeOrdinary      Code = "ordinary"
	CodeSingleDay     Code = "single_day"
	CodeMultiDayStart Code = "multi_day_start"
	CodeMultiDayMid   Code = "multi_day_mid"
	CodeMultiDayEnd   Code = "multi_day_end"
	CodeConsignment   Code = "consignment"
	CodeVacation      Code = "vacation"
	CodeSick          Code = "sick"
	CodeTimeForTime   Code = "time_for_time"
	CodeCourse        Code = "course"
	CodeZero          Code = "zero"
)

// Option is the closed set of per-booking modifiers.
type Option string

const (
	OptionNone         Option = ""
	OptionStandOver    Option = "stand_over"
	OptionNoCommute    Option = "no_commute"
	OptionForceHoliday Option = "force_holiday"
	OptionNoHoliday    Option = "no_holiday"
)

var codeAliases = map[string]Code{
	"ordinary":        CodeOrdinary,
	"dagrit":          CodeOrdinary,
	"single day":      CodeSingleDay,
	"eendaagse rit":   CodeSingleDay,
	"multi day start": CodeMultiDayStart,
	"vertrekdag":      CodeMultiDayStart,
	"multi day mid":   CodeMultiDayMid,
	"tussendag":       CodeMultiDayMid,
	"multi day end":   CodeMultiDayEnd,
	"aankomstdag":     CodeMultiDayEnd,
	"consignment":     CodeConsignment,
	"consignatie":     CodeConsignment,
	"vacation":        CodeVacation,
	"vakantie":        CodeVacation,
	"sick":            CodeSick,
	"ziek":            CodeSick,
	"time for time":   CodeTimeForTime,
	"tijd voor tijd":  CodeTimeForTime,
	"course":          CodeCourse,
	"cursusdag":       CodeCourse,
	"zero":            CodeZero,
	"0":               CodeZero,
}

var optionAliases = map[string]Option{
	"standover":     OptionStandOver,
	"stand over":    OptionStandOver,
	"overstaan":     OptionStandOver,
	"no commute":    OptionNoCommute,
	"geen woonwerk": OptionNoCommute,
	"holiday":       OptionForceHoliday,
	"feestdag":      OptionForceHoliday,
	"no holiday":    OptionNoHoliday,
	"geen feestdag": OptionNoHoliday,
}

func normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return s
}

// ParseCode maps a raw upstream code onto the closed set.
func ParseCode(raw string) Code {
	if c, ok := codeAliases[normalize(raw)]; ok {
		return c
	}
	return CodeUnknown
}

// ParseOption maps a raw upstream option onto the closed set.
func ParseOption(raw string) Option {
	if o, ok := optionAliases[normalize(raw)]; ok {
		return o
	}
	return OptionNone
}

// IsMultiDay reports whether the code belongs to a multi-day trip.
func (c Code) IsMultiDay() bool {
	switch c {
	case CodeMultiDayStart, CodeMultiDayMid, CodeMultiDayEnd:
		return true
	default:
		return false
	}
}
