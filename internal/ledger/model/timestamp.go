package model

import "time"

// TimestampLayout is the display format of operation timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders unix seconds in UTC using TimestampLayout.
func FormatTimestamp(epochSeconds int64) string {
	return time.Unix(epochSeconds, 0).UTC().Format(TimestampLayout)
}
