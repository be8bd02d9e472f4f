package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ammerola/canteen-be/internal/pkg/clock"
)

func TestFixed_ReturnsSameInstant(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	c := clock.Fixed(at)

	assert.Equal(t, at, c.Now())
	assert.Equal(t, c.Now(), c.Now())
}

func TestInLocation(t *testing.T) {
	at := time.Date(2024, 1, 15, 22, 30, 0, 0, time.UTC)
	kolkata := time.FixedZone("IST", 5*3600+1800)

	c := clock.InLocation(clock.Fixed(at), kolkata)

	assert.True(t, at.Equal(c.Now()))
	assert.Equal(t, 16, c.Now().Day())
	assert.Equal(t, clock.Fixed(at), clock.InLocation(clock.Fixed(at), nil))
}

func TestCivilDay(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "strips_time_of_day",
			in:   time.Date(2024, 3, 9, 23, 59, 59, 0, time.UTC),
			want: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "keeps_local_calendar_date",
			in:   time.Date(2024, 3, 10, 1, 0, 0, 0, time.FixedZone("UTC+5", 5*3600)),
			want: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clock.CivilDay(tt.in))
		})
	}
}

func TestSameDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	a := time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	assert.True(t, clock.SameDay(a, b, time.UTC))
	assert.False(t, clock.SameDay(a, b, ist), "20:00 UTC is already the next day in IST")
	assert.True(t, clock.SameDay(a, b, nil))
}

func TestStartOfDay(t *testing.T) {
	at := time.Date(2024, 1, 15, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), clock.StartOfDay(at))
}
