// Package timeutil is the single home for conversions between internal UTC
// time and marketplace-visible time. The marketplace renders and stores all
// user-visible timestamps with a fixed +3h offset, without DST.
package timeutil

import "time"

// MarketplaceZone is the fixed-offset zone the marketplace operates in.
var MarketplaceZone = time.FixedZone("MSK", 3*60*60)

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// NowMarketplace returns the current wall-clock time in the marketplace zone.
// Rental starts are persisted in this zone so that stored values match what
// buyers see in the marketplace UI.
func NowMarketplace() time.Time {
	return time.Now().In(MarketplaceZone)
}

// ToMarketplace converts t to the marketplace zone.
func ToMarketplace(t time.Time) time.Time {
	return t.In(MarketplaceZone)
}

// RentalDeadline returns the UTC instant at which a rental started at start
// with the given duration expires.
func RentalDeadline(start time.Time, durationMinutes int) time.Time {
	return start.Add(time.Duration(durationMinutes) * time.Minute).UTC()
}

// Remaining returns the time left on a rental at instant now. Zero or
// negative means expired.
func Remaining(start time.Time, durationMinutes int, now time.Time) time.Duration {
	return RentalDeadline(start, durationMinutes).Sub(now.UTC())
}
