package timesheet

import (
	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
)

// orderedPunch pairs a wire field name with its punch value for the ordering
// check. The sequence is the required chronological order within a day.
type orderedPunch struct {
	field string
	value *timesheet.TimeOfDay
}

// ValidateRecord checks a punch record against the business rules without
// mutating it. Hard errors block the save; warnings are surfaced to the
// caller. Repairing the record (clearing fields, pre-filling defaults) is the
// caller's job via ApplyStatusChange.
func ValidateRecord(rec timesheet.PunchRecord) timesheet.ValidationResult {
	var result timesheet.ValidationResult

	if rec.DayStatus.IsAbsence() {
		for _, p := range presentPunches(rec) {
			result.Errors = append(result.Errors, timesheet.FieldError{
				Code:    timesheet.CodeTimeFieldsMustBeEmpty,
				Field:   p.field,
				Message: p.field + " must be empty when the day is not a working day",
			})
		}
		if rec.DayStatus.RequiresJustification() && (rec.Justification == nil || *rec.Justification == "") {
			result.Warnings = append(result.Warnings, timesheet.FieldError{
				Code:    timesheet.CodeMissingJustification,
				Field:   "justification",
				Message: "a justification is expected for this day status",
			})
		}
		return result
	}

	// Normal working day: entry and exit are mandatory.
	if rec.MorningEntry == nil {
		result.Errors = append(result.Errors, timesheet.FieldError{
			Code:    timesheet.CodeMissingRequiredTime,
			Field:   "morning_entry",
			Message: "morning_entry is required on a normal working day",
		})
	}
	if rec.AfternoonExit == nil {
		result.Errors = append(result.Errors, timesheet.FieldError{
			Code:    timesheet.CodeMissingRequiredTime,
			Field:   "afternoon_exit",
			Message: "afternoon_exit is required on a normal working day",
		})
	}

	// Strict ordering across every present core punch. Equal adjacent times
	// violate the invariant too.
	core := []orderedPunch{
		{"morning_entry", rec.MorningEntry},
		{"lunch_exit", rec.LunchExit},
		{"lunch_return", rec.LunchReturn},
		{"afternoon_exit", rec.AfternoonExit},
	}
	var last *orderedPunch
	for i := range core {
		p := core[i]
		if p.value == nil {
			continue
		}
		if last != nil && *p.value <= *last.value {
			result.Errors = append(result.Errors, timesheet.FieldError{
				Code:    timesheet.CodeTimeOrderViolation,
				Field:   p.field,
				Message: p.field + " must be after " + last.field,
			})
		}
		last = &core[i]
	}

	// The extra block is appended to the day: its exit must come after the
	// regular exit. An extra exit at or before the extra entry means checkout
	// after midnight and is exempt from the check.
	crossesMidnight := rec.ExtraEntry != nil && rec.ExtraExit != nil && *rec.ExtraExit <= *rec.ExtraEntry
	if !crossesMidnight && rec.AfternoonExit != nil && rec.ExtraExit != nil && *rec.ExtraExit <= *rec.AfternoonExit {
		result.Errors = append(result.Errors, timesheet.FieldError{
			Code:    timesheet.CodeTimeOrderViolation,
			Field:   "extra_exit",
			Message: "extra_exit must be after afternoon_exit",
		})
	}

	return result
}

func presentPunches(rec timesheet.PunchRecord) []orderedPunch {
	all := []orderedPunch{
		{"morning_entry", rec.MorningEntry},
		{"lunch_exit", rec.LunchExit},
		{"lunch_return", rec.LunchReturn},
		{"afternoon_exit", rec.AfternoonExit},
		{"extra_entry", rec.ExtraEntry},
		{"extra_exit", rec.ExtraExit},
	}
	var present []orderedPunch
	for _, p := range all {
		if p.value != nil {
			present = append(present, p)
		}
	}
	return present
}
