package format

import (
	"testing"
	"time"

	"github.com/goodsign/monday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct {
	phrase string
	calls  int
	minRes time.Duration
	trans  time.Duration
}

func (f *fixedSource) RelativeDateTime(now, t time.Time, minResolution, transition time.Duration) string {
	f.calls++
	f.minRes = minResolution
	f.trans = transition
	return f.phrase
}

func utcTimestamps() *Timestamps {
	return NewTimestamps(LocaleDates{Locale: monday.LocaleEnUS, Location: time.UTC})
}

var refNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func TestDropTimeOfDay(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		want   string
	}{
		{"time second", "3 days ago, 14:02", "3 days ago"},
		{"time first", "14:02, yesterday", "yesterday"},
		{"single phrase", "3 days ago", "3 days ago"},
		{"both have time", "10:00, 14:02", "10:00, 14:02"},
		{"neither has time", "Oct 3, 2026", "Oct 3, 2026"},
		{"three parts", "Oct 3, 2026, 14:02", "Oct 3, 2026, 14:02"},
		{"trailing empty part dropped", "3 days ago, 14:02,", "3 days ago"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DropTimeOfDay(tt.phrase))
		})
	}
}

func TestFormatRelative_Future(t *testing.T) {
	ts := utcTimestamps()
	src := &fixedSource{phrase: "unused"}
	ts.Source = src

	now := refNow.UnixMilli()
	got := ts.FormatRelative(now, now+100_000)

	assert.Equal(t, ts.FormatAbsolute(now+100_000), got)
	assert.Equal(t, 0, src.calls)
}

func TestFormatRelative_SecondsAgo(t *testing.T) {
	ts := utcTimestamps()
	ts.SecondsAgo = "gerade eben"
	src := &fixedSource{phrase: "unused"}
	ts.Source = src

	now := refNow.UnixMilli()

	assert.Equal(t, "gerade eben", ts.FormatRelative(now, now-10_000))
	assert.Equal(t, "gerade eben", ts.FormatRelative(now, now))
	assert.Equal(t, "gerade eben", ts.FormatRelative(now, now-59_999))
	assert.Equal(t, 0, src.calls)
}

func TestFormatRelative_DelegatesToSource(t *testing.T) {
	ts := utcTimestamps()
	src := &fixedSource{phrase: "2 hours ago, 10:00"}
	ts.Source = src

	now := refNow.UnixMilli()
	got := ts.FormatRelative(now, now-60_000)

	assert.Equal(t, "2 hours ago", got)
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, time.Second, src.minRes)
	assert.Equal(t, 7*24*time.Hour, src.trans)
}

func TestFormatRelative_CustomReducer(t *testing.T) {
	ts := utcTimestamps()
	ts.Source = &fixedSource{phrase: "2 hours ago, 10:00"}
	ts.Reduce = func(phrase string) string { return "[" + phrase + "]" }

	now := refNow.UnixMilli()
	assert.Equal(t, "[2 hours ago, 10:00]", ts.FormatRelative(now, now-2*time.Hour.Milliseconds()))

	ts.Reduce = nil
	assert.Equal(t, "2 hours ago, 10:00", ts.FormatRelative(now, now-2*time.Hour.Milliseconds()))
}

func TestFormatRelative_HumanRelative(t *testing.T) {
	ts := utcTimestamps()
	now := refNow.UnixMilli()

	tests := []struct {
		name string
		then time.Time
		want string
	}{
		{"minutes", refNow.Add(-5 * time.Minute), "5 minutes ago"},
		{"hours", refNow.Add(-3*time.Hour - 10*time.Minute), "3 hours ago"},
		{"days", time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC), "3 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ts.FormatRelative(now, tt.then.UnixMilli()))
		})
	}
}

func TestFormatRelative_PastTransitionDropsTime(t *testing.T) {
	now := refNow.UnixMilli()

	tests := []struct {
		name   string
		locale monday.Locale
		then   time.Time
		want   string
	}{
		{"en-US at transition", monday.LocaleEnUS, refNow.Add(-Transition), "10/12/26"},
		{"en-US eight days", monday.LocaleEnUS, refNow.Add(-8 * 24 * time.Hour), "10/11/26"},
		{"en-US thirty days", monday.LocaleEnUS, refNow.Add(-30 * 24 * time.Hour), "9/19/26"},
		{"de-DE thirty days", monday.LocaleDeDE, refNow.Add(-30 * 24 * time.Hour), "19.09.26"},
		{"ja-JP thirty days", monday.LocaleJaJP, refNow.Add(-30 * 24 * time.Hour), "2026/9/19"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTimestamps(LocaleDates{Locale: tt.locale, Location: time.UTC})

			got := ts.FormatRelative(now, tt.then.UnixMilli())
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, ":")
		})
	}
}

func TestHumanRelative_Transition(t *testing.T) {
	dates := LocaleDates{Locale: monday.LocaleEnUS, Location: time.UTC}
	h := HumanRelative{Dates: dates}

	then := time.Date(2026, time.September, 1, 14, 2, 0, 0, time.UTC)
	got := h.RelativeDateTime(refNow, then, MinResolution, Transition)

	assert.Equal(t, "9/1/26, 14:02", got)

	recent := refNow.Add(-26 * time.Hour)
	assert.Equal(t, "1 day ago, 10:00", h.RelativeDateTime(refNow, recent, MinResolution, Transition))
}

func TestTimestamps_Relative_UsesClock(t *testing.T) {
	ts := utcTimestamps()
	ts.Now = func() time.Time { return refNow }

	assert.Equal(t, DefaultSecondsAgo, ts.Relative(refNow.Add(-30*time.Second).UnixMilli()))
	assert.Equal(t, "5 minutes ago", ts.Relative(refNow.Add(-5*time.Minute).UnixMilli()))
}

func TestLocaleDates_Format(t *testing.T) {
	dates := LocaleDates{Locale: monday.LocaleEnUS, Location: time.UTC}
	ts := time.Date(2026, time.March, 7, 8, 9, 10, 0, time.UTC)

	got := dates.Format(ts)
	assert.Contains(t, got, "2026")
	assert.Contains(t, got, "08:09:10")
	assert.Equal(t, "08:09", dates.Clock(ts))

	dates.Location = time.FixedZone("CET", 60*60)
	assert.Equal(t, "09:09", dates.Clock(ts))
}

func TestParseLocale(t *testing.T) {
	loc, err := ParseLocale("en-US")
	require.NoError(t, err)
	assert.Equal(t, monday.LocaleEnUS, loc)

	loc, err = ParseLocale("de_DE")
	require.NoError(t, err)
	assert.Equal(t, monday.LocaleDeDE, loc)

	_, err = ParseLocale("not a locale!")
	assert.ErrorIs(t, err, ErrUnsupportedLocale)
}
