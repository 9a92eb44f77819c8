package calendar

import "time"

// JapaneseHolidays reports the Japanese public holiday falling on t, if any.
// It covers the fixed-date holidays, the Happy Monday holidays, the
// equinoxes, substitute holidays for holidays landing on a Sunday, and the
// citizens' holiday sandwiched between two holidays.
func JapaneseHolidays(t time.Time) (string, bool) {
	if name, ok := baseHoliday(t); ok {
		return name, true
	}

	// A holiday on a Sunday pushes a substitute holiday onto the next
	// day that is not itself a holiday.
	if t.Weekday() != time.Sunday {
		for d := t.AddDate(0, 0, -1); ; d = d.AddDate(0, 0, -1) {
			if _, ok := baseHoliday(d); !ok {
				break
			}
			if d.Weekday() == time.Sunday {
				return "振替休日", true
			}
		}
	}

	// A single weekday between two holidays becomes a holiday itself.
	if _, ok := baseHoliday(t.AddDate(0, 0, -1)); ok {
		if _, ok := baseHoliday(t.AddDate(0, 0, 1)); ok {
			return "国民の休日", true
		}
	}

	return "", false
}

func baseHoliday(t time.Time) (string, bool) {
	y, m, d := t.Date()
	switch m {
	case time.January:
		if d == 1 {
			return "元日", true
		}
		if d == nthMonday(y, m, 2) {
			return "成人の日", true
		}
	case time.February:
		if d == 11 {
			return "建国記念の日", true
		}
		if d == 23 && y >= 2020 {
			return "天皇誕生日", true
		}
	case time.March:
		if d == vernalEquinoxDay(y) {
			return "春分の日", true
		}
	case time.April:
		if d == 29 {
			return "昭和の日", true
		}
	case time.May:
		switch d {
		case 3:
			return "憲法記念日", true
		case 4:
			return "みどりの日", true
		case 5:
			return "こどもの日", true
		}
	case time.July:
		if d == nthMonday(y, m, 3) {
			return "海の日", true
		}
	case time.August:
		if d == 11 && y >= 2016 {
			return "山の日", true
		}
	case time.September:
		if d == nthMonday(y, m, 3) {
			return "敬老の日", true
		}
		if d == autumnalEquinoxDay(y) {
			return "秋分の日", true
		}
	case time.October:
		if d == nthMonday(y, m, 2) {
			return "スポーツの日", true
		}
	case time.November:
		if d == 3 {
			return "文化の日", true
		}
		if d == 23 {
			return "勤労感謝の日", true
		}
	}
	return "", false
}

// nthMonday returns the day of month of the n-th Monday.
func nthMonday(year int, month time.Month, n int) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(time.Monday) - int(first.Weekday()) + 7) % 7
	return 1 + offset + (n-1)*7
}

// vernalEquinoxDay approximates the March equinox day, valid 1980-2099.
func vernalEquinoxDay(year int) int {
	return int(20.8431+0.242194*float64(year-1980)) - (year-1980)/4
}

// autumnalEquinoxDay approximates the September equinox day, valid 1980-2099.
func autumnalEquinoxDay(year int) int {
	return int(23.2488+0.242194*float64(year-1980)) - (year-1980)/4
}
