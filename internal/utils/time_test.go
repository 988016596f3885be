package util_test

import (
	"testing"
	"time"

	util "github.com/vmfarias/readrush/internal/utils"
)

func TestDaysBetween(t *testing.T) {
	t.Run("SameDay", func(t *testing.T) {
		from := time.Date(2025, time.March, 10, 0, 5, 0, 0, time.UTC)
		to := time.Date(2025, time.March, 10, 23, 55, 0, 0, time.UTC)

		if got := util.DaysBetween(from, to); got != 0 {
			t.Errorf("want 0, got %d", got)
		}
	})

	t.Run("AcrossMidnight", func(t *testing.T) {
		from := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC)
		to := time.Date(2025, time.March, 11, 0, 1, 0, 0, time.UTC)

		if got := util.DaysBetween(from, to); got != 1 {
			t.Errorf("two minutes across midnight is one day, got %d", got)
		}
	})

	t.Run("MultipleDays", func(t *testing.T) {
		from := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
		to := time.Date(2025, time.March, 14, 6, 0, 0, 0, time.UTC)

		if got := util.DaysBetween(from, to); got != 4 {
			t.Errorf("want 4, got %d", got)
		}
	})

	t.Run("DSTSpringForward", func(t *testing.T) {
		loc, err := time.LoadLocation("America/Sao_Paulo")
		if err != nil {
			t.Skipf("tzdata unavailable: %v", err)
		}

		// The clock jumped forward in Brazil on 2018-11-04, making it
		// a 23-hour day.
		from := time.Date(2018, time.November, 3, 12, 0, 0, 0, loc)
		to := time.Date(2018, time.November, 4, 12, 0, 0, 0, loc)

		if got := util.DaysBetween(from, to); got != 1 {
			t.Errorf("want 1 across the DST jump, got %d", got)
		}
	})
}
