package timezone

import (
	"log"
	"time"
)

// Name is the reference timezone every stored timestamp is interpreted in.
const Name = "Asia/Tehran"

// Location is the reference timezone. All timestamps in the database are civil
// times in this zone; the DSN pins the session timezone to it so values round-trip
// without an offset. Iran abolished DST in 2022, so civil times here are unambiguous;
// swapping in a zone with DST would reintroduce ambiguous wall-clock times.
var Location = mustLoad()

func mustLoad() *time.Location {
	loc, err := time.LoadLocation(Name)
	if err != nil {
		// Hosts without tzdata (scratch containers) fall back to the fixed offset.
		log.Printf("Warning: could not load %s location (%v), using fixed +03:30 offset", Name, err)
		return time.FixedZone("+0330", 3*3600+30*60)
	}
	return loc
}

// Now returns the current moment expressed in the reference timezone.
func Now() time.Time {
	return time.Now().In(Location)
}

// Normalize converts a timestamp to the reference timezone. Values parsed without
// an offset must already be constructed in Location (see dto.ParseDeadline), so
// Normalize is idempotent: normalizing a normalized value returns the same value.
func Normalize(t time.Time) time.Time {
	return t.In(Location)
}

// NormalizePtr is Normalize for optional timestamps; nil passes through.
func NormalizePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	normalized := t.In(Location)
	return &normalized
}
