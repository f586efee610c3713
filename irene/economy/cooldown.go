package economy

import "time"

// CooldownStatus is the outcome of a cooldown check.
type CooldownStatus struct {
	Ready     bool
	Remaining time.Duration
}

// CheckCooldown gates an action on its last-use timestamp. A zero last value
// means the action was never used and is always ready. The check is advisory:
// callers reject the action when not ready and update the timestamp inside
// the same transaction as the reward when it is.
func CheckCooldown(last time.Time, interval time.Duration, now time.Time) CooldownStatus {
	if last.IsZero() {
		return CooldownStatus{Ready: true}
	}
	elapsed := now.Sub(last)
	if elapsed >= interval {
		return CooldownStatus{Ready: true}
	}
	return CooldownStatus{Remaining: interval - elapsed}
}
