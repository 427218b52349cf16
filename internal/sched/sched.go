// Join/send/status cadence for the node main loop.
//
// The loop owns the clock and asks the Timeline what is due on each
// iteration; the Timeline itself never sleeps or reads time.
package sched

import "time"

// Timeline tracks the three periodic activities of a node: join retries
// while unjoined, uplink sends once joined, and status prints always.
type Timeline struct {
	joinInterval   time.Duration
	sendInterval   time.Duration
	statusInterval time.Duration

	joined      bool
	joining     bool
	lastAttempt time.Time
	nextSend    time.Time
	lastStatus  time.Time
	statusSeen  bool
}

func New(joinInterval, sendInterval, statusInterval time.Duration) *Timeline {
	return &Timeline{
		joinInterval:   joinInterval,
		sendInterval:   sendInterval,
		statusInterval: statusInterval,
	}
}

// Joined reports whether a join has succeeded.
func (t *Timeline) Joined() bool { return t.joined }

// Joining reports whether a join attempt is in flight.
func (t *Timeline) Joining() bool { return t.joining }

// JoinDue reports whether a join attempt should start now. The first
// attempt is due immediately; later attempts are gated by the join
// interval measured from the start of the previous attempt.
func (t *Timeline) JoinDue(now time.Time) bool {
	if t.joined || t.joining {
		return false
	}
	if t.lastAttempt.IsZero() {
		return true
	}
	return now.Sub(t.lastAttempt) >= t.joinInterval
}

// JoinStarted marks a join attempt as in flight.
func (t *Timeline) JoinStarted(now time.Time) {
	t.joining = true
	t.lastAttempt = now
}

// JoinSucceeded clears the in-flight flag and arms an immediate send.
func (t *Timeline) JoinSucceeded(now time.Time) {
	t.joining = false
	t.joined = true
	t.nextSend = now
}

// JoinFailed clears the in-flight flag; the next attempt waits out the
// join interval from the failed attempt's start.
func (t *Timeline) JoinFailed() {
	t.joining = false
}

// SendDue reports whether an uplink should be sent now.
func (t *Timeline) SendDue(now time.Time) bool {
	return t.joined && !now.Before(t.nextSend)
}

// Sent schedules the next uplink one send interval from now. It is also
// called after a failed send so the cadence holds regardless of outcome.
func (t *Timeline) Sent(now time.Time) {
	t.nextSend = now.Add(t.sendInterval)
}

// StatusDue reports whether a status line should be printed now.
func (t *Timeline) StatusDue(now time.Time) bool {
	if !t.statusSeen {
		return true
	}
	return now.Sub(t.lastStatus) >= t.statusInterval
}

// StatusPrinted records a status print.
func (t *Timeline) StatusPrinted(now time.Time) {
	t.statusSeen = true
	t.lastStatus = now
}
