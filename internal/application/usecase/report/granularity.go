// Package report implements the profit-and-loss reporting engine: bucketing,
// revenue and spend aggregation, series merging, metric derivation, and
// report assembly.
package report

import (
	"fmt"
	"time"

	domainerror "github.com/profitpulse/backend/internal/domain/error"
)

// Granularity represents the time granularity of a report series.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// IsValid reports whether g is a recognized granularity token.
func (g Granularity) IsValid() bool {
	switch g {
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
		return true
	}
	return false
}

// BucketKey maps a timestamp to its bucket identifier under g.
//
// Keys are built so that plain lexicographic ordering coincides with
// chronological ordering within one granularity:
//   - daily:   "2006-01-02"
//   - weekly:  "2006-W02" (ISO-8601 week; the ISO year is used, so orders
//     placed in the last days of December may bucket into week 1 of the
//     following year)
//   - monthly: "2006-01"
func BucketKey(ts time.Time, g Granularity) (string, error) {
	switch g {
	case GranularityDaily:
		return ts.Format("2006-01-02"), nil
	case GranularityWeekly:
		year, week := ts.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week), nil
	case GranularityMonthly:
		return ts.Format("2006-01"), nil
	default:
		return "", domainerror.NewReportError(
			domainerror.ErrCodeInvalidGranularity,
			fmt.Sprintf("unrecognized granularity %q", g),
			domainerror.ErrInvalidGranularity,
		)
	}
}

// DefaultLookback returns the default reporting window length for g, applied
// by the request layer when no explicit date range is given.
func DefaultLookback(g Granularity) time.Duration {
	switch g {
	case GranularityWeekly:
		return 90 * 24 * time.Hour
	case GranularityMonthly:
		return 365 * 24 * time.Hour
	default:
		return 30 * 24 * time.Hour
	}
}
