package domain

import "time"

// LogTimeLayout is the clock prefix of execution log lines.
const LogTimeLayout = "15:04:05"

// FormatLogLine stamps msg as "[HH:MM:SS] msg".
func FormatLogLine(at time.Time, msg string) string {
	return "[" + at.Format(LogTimeLayout) + "] " + msg
}
