package timesheet

import (
	"github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
)

// CalculatorConfig carries the calculation policy knobs. Nil night bounds
// fall back to the statutory 22:00-05:00 window, so a configured 00:00
// bound is distinguishable from an unset one.
type CalculatorConfig struct {
	NightStart           *timesheet.TimeOfDay
	NightEnd             *timesheet.TimeOfDay
	MealMinWorkedMinutes int // minimum worked minutes to earn a meal allowance
}

// HoursCalculator reduces a day's punches to minute totals.
type HoursCalculator struct {
	nightStart           timesheet.TimeOfDay
	nightEnd             timesheet.TimeOfDay
	mealMinWorkedMinutes int
}

func NewHoursCalculator(cfg CalculatorConfig) *HoursCalculator {
	c := &HoursCalculator{
		nightStart:           timesheet.NewTimeOfDay(22, 0),
		nightEnd:             timesheet.NewTimeOfDay(5, 0),
		mealMinWorkedMinutes: cfg.MealMinWorkedMinutes,
	}
	if cfg.NightStart != nil {
		c.nightStart = *cfg.NightStart
	}
	if cfg.NightEnd != nil {
		c.nightEnd = *cfg.NightEnd
	}
	return c
}

// block is a worked interval in minutes relative to the record's midnight.
// The extra block may extend past MinutesPerDay when checkout crosses
// midnight.
type block struct {
	start int
	end   int
}

// ComputeDailyTotals converts one day's punches into totals. Absence days
// contribute nothing. On a weekday, normal-hour credit is the morning and
// afternoon blocks capped at the contracted shift length; overtime comes
// from the extra block plus checkout past the scheduled exit, never from
// the total alone. Weekend and holiday work is overtime in full.
func (c *HoursCalculator) ComputeDailyTotals(rec timesheet.PunchRecord, workday timesheet.WorkdayType, sched *timesheet.WorkSchedule) timesheet.DailyTotals {
	if rec.DayStatus.IsAbsence() {
		return timesheet.DailyTotals{}
	}

	core := coreBlocks(rec)
	coreWorked := 0
	for _, b := range core {
		coreWorked += b.end - b.start
	}

	blocks := core
	extraSpan := 0
	if extra, ok := extraBlock(rec); ok {
		extraSpan = extra.end - extra.start
		blocks = append(blocks, extra)
	}

	worked := coreWorked + extraSpan
	if worked == 0 {
		return timesheet.DailyTotals{}
	}

	var totals timesheet.DailyTotals
	switch workday {
	case timesheet.WorkdaySaturday:
		totals.OvertimeMinutes = worked
		totals.OvertimeBucket = timesheet.Bucket80
	case timesheet.WorkdaySundayOrHoliday:
		totals.OvertimeMinutes = worked
		totals.OvertimeBucket = timesheet.Bucket110
	default:
		normal := coreWorked
		over := extraSpan
		if sched != nil {
			if shift := sched.ShiftMinutes(rec.Date); normal > shift {
				normal = shift
			}
			if rec.AfternoonExit != nil {
				// Checkout past the scheduled exit, capped at the worked
				// minutes the shift cap cut off. Time worked beyond the
				// shift that ends at the scheduled exit earns nothing.
				late := rec.AfternoonExit.Minutes() - sched.ExitFor(rec.Date).Minutes()
				over += min(max(late, 0), coreWorked-normal)
			}
		}
		totals.NormalMinutes = normal
		if over > 0 {
			totals.OvertimeMinutes = over
			totals.OvertimeBucket = timesheet.Bucket50
		}
	}

	for _, b := range blocks {
		totals.NightMinutes += c.nightOverlap(b)
	}

	if rec.LunchExit != nil && rec.LunchReturn != nil && worked >= c.mealMinWorkedMinutes {
		totals.MealAllowances = 1
	}

	return totals
}

// coreBlocks derives the morning and afternoon intervals. When either lunch
// punch is missing the day collapses to a single entry..exit block;
// rejecting the inconsistency is the validator's job upstream, this
// fallback only keeps the arithmetic total.
func coreBlocks(rec timesheet.PunchRecord) []block {
	var blocks []block

	if rec.MorningEntry != nil && rec.AfternoonExit != nil {
		if rec.LunchExit != nil && rec.LunchReturn != nil {
			blocks = appendBlock(blocks, rec.MorningEntry.Minutes(), rec.LunchExit.Minutes())
			blocks = appendBlock(blocks, rec.LunchReturn.Minutes(), rec.AfternoonExit.Minutes())
		} else {
			blocks = appendBlock(blocks, rec.MorningEntry.Minutes(), rec.AfternoonExit.Minutes())
		}
	}

	return blocks
}

func extraBlock(rec timesheet.PunchRecord) (block, bool) {
	if rec.ExtraEntry == nil || rec.ExtraExit == nil {
		return block{}, false
	}
	start := rec.ExtraEntry.Minutes()
	end := rec.ExtraExit.Minutes()
	// Exit before entry means checkout after midnight.
	if end <= start {
		end += timesheet.MinutesPerDay
	}
	return block{start: start, end: end}, true
}

func appendBlock(blocks []block, start, end int) []block {
	if end <= start {
		return blocks
	}
	return append(blocks, block{start: start, end: end})
}

// nightOverlap intersects a worked block with the repeating night window
// (22:00 through 05:00 of the next day). Blocks crossing midnight are split
// at 00:00 before intersecting, so a block spanning two calendar days is
// matched against both days' windows.
func (c *HoursCalculator) nightOverlap(b block) int {
	total := 0
	for _, part := range splitAtMidnight(b) {
		for day := -1; day <= 1; day++ {
			windowStart := day*timesheet.MinutesPerDay + c.nightStart.Minutes()
			windowEnd := (day+1)*timesheet.MinutesPerDay + c.nightEnd.Minutes()
			total += overlap(part.start, part.end, windowStart, windowEnd)
		}
	}
	return total
}

func splitAtMidnight(b block) []block {
	if b.start < timesheet.MinutesPerDay && b.end > timesheet.MinutesPerDay {
		return []block{
			{start: b.start, end: timesheet.MinutesPerDay},
			{start: timesheet.MinutesPerDay, end: b.end},
		}
	}
	return []block{b}
}

func overlap(aStart, aEnd, bStart, bEnd int) int {
	start := max(aStart, bStart)
	end := min(aEnd, bEnd)
	if end <= start {
		return 0
	}
	return end - start
}
