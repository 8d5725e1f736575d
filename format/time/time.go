package time

import (
	"strings"
	"time"
)

var dateFormatReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"yyyy", "2006",
	"YY", "06",
	"yy", "06",
	"MM", "01",
	"M", "1",
	"DD", "02",
	"dd", "02",
	"D", "2",
	"d", "2",
	"+hh:mm", "Z07:00",
	"+hhmm", "Z0700",
	"+hh", "Z07",
	"-hh:mm", "Z07:00",
	"-hhmm", "Z0700",
	"HH", "15",
	"hh", "15",
	"mm", "04",
	"m", "4",
	"ss", "05",
	".SSS", ".000",
	".SS", ".00",
	".S", ".0",
	"-hh", "Z07",
	"Z", "Z07:00",
)

// DateFormatToTimeLayout converts ISO style date format (i.e. yyyy-MM-dd) to Go time layout
func DateFormatToTimeLayout(dateFormat string) string {
	return dateFormatReplacer.Replace(dateFormat)
}

// Format formats ts with layout, RFC3339Nano when layout is empty
func Format(ts time.Time, layout string) string {
	if layout == "" {
		layout = time.RFC3339Nano
	}
	return ts.Format(layout)
}
