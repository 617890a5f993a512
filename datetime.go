package faker

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"
)

// MinOffsetToPastAndFuture is added to (or subtracted from) the present
// instant when generating future (or past) date-times, so that generated
// values never coincide with the moment of the call.
const MinOffsetToPastAndFuture = 1000 * time.Millisecond

// ErrInvalidRange is returned when the upper bound of a date-time range is
// before its lower bound.
var ErrInvalidRange = errors.New("invalid date range, the upper bound date is before the lower bound")

const (
	millisPerSecond = int64(time.Second / time.Millisecond)
	nanosPerMilli   = int64(time.Millisecond)
)

// DateTime generates random date-times within bounds.
type DateTime struct {
	clock  Clock
	random Random

	generated     metrics.Counter
	invalidRanges metrics.Counter
}

// NewDateTime creates a date-time generator that reads the present instant
// from clock and draws offsets from random.
func NewDateTime(clock Clock, random Random) *DateTime {
	return &DateTime{
		clock:         clock,
		random:        random,
		generated:     metrics.GetOrRegisterCounter("faker.datetime.Generated", metrics.DefaultRegistry),
		invalidRanges: metrics.GetOrRegisterCounter("faker.datetime.InvalidRange", metrics.DefaultRegistry),
	}
}

// Future returns a random date-time after the present instant and not later
// than endOfTime.
//
// MinOffsetToPastAndFuture is added to the present instant before drawing,
// so the earliest possible value is now+MinOffsetToPastAndFuture. An error
// with ErrInvalidRange cause is returned when endOfTime is before that.
func (d *DateTime) Future(endOfTime time.Time) (time.Time, error) {
	nearFuture := d.clock.Now().Add(MinOffsetToPastAndFuture)
	return d.Between(nearFuture, endOfTime)
}

// Past returns a random date-time before the present instant and not earlier
// than beginningOfTime.
//
// MinOffsetToPastAndFuture is subtracted from the present instant before
// drawing, so the latest possible value is now-MinOffsetToPastAndFuture. An
// error with ErrInvalidRange cause is returned when beginningOfTime is after
// that.
func (d *DateTime) Past(beginningOfTime time.Time) (time.Time, error) {
	nearPast := d.clock.Now().Add(-MinOffsetToPastAndFuture)
	return d.Between(beginningOfTime, nearPast)
}

// Between returns a random date-time in [from,to], expressed in the location
// of from. Offsets are drawn with millisecond resolution, so the result equals
// from for the lowest draw and to for the highest one whenever the bounds are
// a whole number of milliseconds apart.
func (d *DateTime) Between(from, to time.Time) (time.Time, error) {
	if to.Before(from) {
		d.invalidRanges.Inc(1)
		log.WithFields(log.Fields{"from": from, "to": to}).Debug("Rejecting inverted date range")
		return time.Time{}, errors.Wrapf(ErrInvalidRange, "%s is before %s", to, from)
	}

	span, ok := millisBetween(from, to)
	if !ok {
		d.invalidRanges.Inc(1)
		return time.Time{}, errors.Wrapf(ErrInvalidRange, "span between %s and %s overflows milliseconds", from, to)
	}

	offset := d.random.Int64Range(0, span)
	d.generated.Inc(1)
	return addMillis(from, offset), nil
}

// millisBetween returns the number of whole milliseconds from from to to. It
// expects to not to be before from and reports false when the result does
// not fit in an int64.
func millisBetween(from, to time.Time) (int64, bool) {
	fromSeconds, toSeconds := from.Unix(), to.Unix()
	if fromSeconds < 0 && toSeconds > math.MaxInt64+fromSeconds {
		return 0, false
	}
	seconds := toSeconds - fromSeconds
	nanos := int64(to.Nanosecond()) - int64(from.Nanosecond())
	if nanos < 0 {
		seconds--
		nanos += int64(time.Second)
	}
	if seconds > (math.MaxInt64-millisPerSecond)/millisPerSecond {
		return 0, false
	}
	return seconds*millisPerSecond + nanos/nanosPerMilli, true
}

// addMillis adds a non-negative number of milliseconds to t without going
// through time.Duration, which cannot hold more than ~292 years.
func addMillis(t time.Time, millis int64) time.Time {
	seconds := t.Unix() + millis/millisPerSecond
	nanos := int64(t.Nanosecond()) + (millis%millisPerSecond)*nanosPerMilli
	return time.Unix(seconds, nanos).In(t.Location())
}
