// Package export renders log books as CSV and JSON and parses JSON imports.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/ykohira/worktime/internal/calendar"
	"github.com/ykohira/worktime/internal/domain"
)

// utf8BOM keeps spreadsheet tools from misreading the Japanese column text.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var weekdayKanji = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// CSV renders one row per calendar day of month's month, BOM-prefixed. The
// header carries the account name; days without an entry produce empty
// time columns so the sheet still shows the full month.
func CSV(book domain.LogBook, month time.Time, accountName string, holiday calendar.HolidayFunc) []byte {
	if holiday == nil {
		holiday = calendar.NoHolidays
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)

	w.Write([]string{fmt.Sprintf("案件名: %s", accountName)})
	w.Write([]string{"日付", "曜日", "開始時間", "終了時間", "休憩(分)", "実働時間(h)", "出社", "祝日"})

	last := calendar.EndOfMonth(month)
	for d := calendar.StartOfMonth(month); !d.After(last); d = d.AddDate(0, 0, 1) {
		var start, end, breakMin, hours, office string
		if entry, ok := book[domain.DateKey(d)]; ok {
			start = entry.Start
			end = entry.End
			breakMin = strconv.Itoa(entry.BreakMinutes)
			hours = strconv.FormatFloat(entry.Duration, 'f', -1, 64)
			if entry.IsOffice {
				office = "〇"
			}
		}
		label, _ := holiday(d)
		w.Write([]string{
			d.Format("2006/01/02"),
			weekdayKanji[d.Weekday()],
			start, end, breakMin, hours, office, label,
		})
	}

	w.Flush()
	return buf.Bytes()
}

// CSVFilename names a user-initiated CSV download for the given month.
func CSVFilename(accountName string, month time.Time) string {
	return fmt.Sprintf("work_log_%s_%s.csv", accountName, month.Format("200601"))
}
