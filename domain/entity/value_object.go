package entity

type ScheduleType int64

const (
	ScheduleTypeOneTime ScheduleType = iota + 1
	ScheduleTypeRecurring
)

// ParseScheduleType maps the wire representation ("one_time" / "recurring")
// to the internal type. The set is closed; anything else is rejected.
func ParseScheduleType(s string) (ScheduleType, bool) {
	switch s {
	case "one_time":
		return ScheduleTypeOneTime, true
	case "recurring":
		return ScheduleTypeRecurring, true
	default:
		return 0, false
	}
}

func (t ScheduleType) String() string {
	switch t {
	case ScheduleTypeOneTime:
		return "one_time"
	case ScheduleTypeRecurring:
		return "recurring"
	default:
		return "unknown"
	}
}

// Pipeline run statuses are written by the external automation workers.
// Only "running" is meaningful to this service; anything else (or no run
// at all) counts as idle.
const (
	RunStatusRunning = "running"
	RunStatusIdle    = "idle"
)

// Lead connection statuses written during the outreach flow.
const (
	ConnectionStatusWaitingForReview = "waiting_for_review"
	ConnectionStatusSending          = "sending"
)
