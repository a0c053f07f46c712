package utils

import (
	"strconv"
	"strings"
	"time"
)

// PartitionKeyLayout formats the call time as YYYYMMDDhhmmss.
const PartitionKeyLayout = "20060102150405"

// PartitionKey derives a stream partition key from the time of the call.
// The key does not depend on message content.
func PartitionKey(t time.Time) string {
	return t.Format(PartitionKeyLayout)
}

// Iso8601 formats t with its zone offset, e.g. 2024-05-01T10:00:00.123+02:00.
func Iso8601(t time.Time) string {
	return t.Format("2006-01-02T15:04:05.000Z07:00")
}

// Iso8601FromUnixSeconds converts Unix timestamp to ISO8601 format
func Iso8601FromUnixSeconds(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}

// IsoDuration renders d as an ISO 8601 duration such as PT30S or PT1H30M.
// Sub-second precision is dropped; zero and negative values render as PT0S.
func IsoDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs <= 0 {
		return "PT0S"
	}
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60

	var b strings.Builder
	b.WriteString("PT")
	if h > 0 {
		b.WriteString(strconv.FormatInt(h, 10))
		b.WriteByte('H')
	}
	if m > 0 {
		b.WriteString(strconv.FormatInt(m, 10))
		b.WriteByte('M')
	}
	if s > 0 {
		b.WriteString(strconv.FormatInt(s, 10))
		b.WriteByte('S')
	}
	return b.String()
}
