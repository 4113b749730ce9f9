package format

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// ErrUnsupportedLocale is returned by ParseLocale for tags without date layouts.
var ErrUnsupportedLocale = errors.New("unsupported locale")

const (
	fallbackDateLayout  = "Jan 2, 2006"
	fallbackShortLayout = "2006-01-02"
	clockLayout         = "15:04"
	secondsLayout       = "15:04:05"
)

// ParseLocale maps a BCP 47 tag such as "de-AT" or "pt_BR" to a date locale.
// Unknown regions fall back to another region of the same language.
func ParseLocale(tag string) (monday.Locale, error) {
	t, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	if err != nil {
		return monday.LocaleEnUS, fmt.Errorf("%w %q: %v", ErrUnsupportedLocale, tag, err)
	}
	base, _ := t.Base()
	region, _ := t.Region()

	exact := monday.Locale(base.String() + "_" + region.String())
	if _, ok := monday.MediumFormatsByLocale[exact]; ok {
		return exact, nil
	}
	var candidates []string
	for loc := range monday.MediumFormatsByLocale {
		if strings.HasPrefix(string(loc), base.String()+"_") {
			candidates = append(candidates, string(loc))
		}
	}
	if len(candidates) == 0 {
		return monday.LocaleEnUS, fmt.Errorf("%w %q", ErrUnsupportedLocale, tag)
	}
	// Map order is random; pick the smallest for stable output.
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c < best {
			best = c
		}
	}
	return monday.Locale(best), nil
}

// LocaleDates formats dates with the medium layout of a locale.
type LocaleDates struct {
	Locale   monday.Locale
	Location *time.Location // nil means local time
}

func (d LocaleDates) in(t time.Time) time.Time {
	if d.Location == nil {
		return t.Local()
	}
	return t.In(d.Location)
}

func (d LocaleDates) dateLayout() string {
	if layout, ok := monday.MediumFormatsByLocale[d.Locale]; ok {
		return layout
	}
	return fallbackDateLayout
}

// Format renders the medium date followed by the time of day with seconds.
func (d LocaleDates) Format(t time.Time) string {
	return monday.Format(d.in(t), d.dateLayout()+" "+secondsLayout, d.Locale)
}

// ShortDate renders the numeric short date, e.g. "9/19/26" or "19.09.26".
// Short layouts never contain a comma.
func (d LocaleDates) ShortDate(t time.Time) string {
	layout, ok := monday.ShortFormatsByLocale[d.Locale]
	if !ok {
		layout = fallbackShortLayout
	}
	return monday.Format(d.in(t), layout, d.Locale)
}

// Clock renders hours and minutes.
func (d LocaleDates) Clock(t time.Time) string {
	return d.in(t).Format(clockLayout)
}

// HumanRelative builds "<span> ago, HH:MM" phrases below the transition
// and "<short date>, HH:MM" from there on.
type HumanRelative struct {
	Dates LocaleDates
}

// RelativeDateTime implements RelativeSource.
func (h HumanRelative) RelativeDateTime(now, t time.Time, minResolution, transition time.Duration) string {
	elapsed := now.Sub(t)
	if elapsed >= transition || elapsed <= -transition {
		return h.Dates.ShortDate(t) + ", " + h.Dates.Clock(t)
	}
	if minResolution > 0 {
		elapsed = elapsed.Truncate(minResolution)
	}
	span := humanize.RelTime(now.Add(-elapsed), now, "ago", "from now")
	return span + ", " + h.Dates.Clock(t)
}
