package repotypes

import (
	"time"
)

// LogFilter describes the optional filter criteria a read may carry. Zero
// values impose no constraint. A non-empty Search replaces the user/level/tag
// criteria with a disjunctive substring match (the date bounds still apply).
type LogFilter struct {
	UserID      string
	Levels      []string
	Tags        []string
	PackageName string
	From        time.Time
	To          time.Time
	Search      string
}

// TagCount is one group of the error-tag aggregation.
type TagCount struct {
	Tag   string
	Count int64
}

// PeakBucket is the (year, month, day, hour) group with the highest count.
type PeakBucket struct {
	BucketStart time.Time
	Count       int64
}

// HourBucket is an hour-of-day group, 0-23.
type HourBucket struct {
	Hour  int
	Count int64
}

// MonthBucket is a month-of-year group, 1-12.
type MonthBucket struct {
	Month int
	Count int64
}
