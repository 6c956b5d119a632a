package entity

const (
	FieldId        = "id"
	FieldUserEmail = "user_email"
	FieldIsActive  = "is_active"
	FieldRunAt     = "run_at"
	FieldStatus    = "status"
	FieldPassword  = "password_hash"
)

// Schedule is a persisted intent to trigger the pipeline. Its Id doubles as
// the scheduler registry key, so at most one live timer exists per schedule.
type Schedule struct {
	Id           uint64       `json:"id" gorm:"primaryKey"`
	UserEmail    string       `json:"user_email" gorm:"column:user_email"`
	ScheduleType ScheduleType `json:"schedule_type" gorm:"column:schedule_type"`
	IsActive     bool         `json:"is_active" gorm:"column:is_active"`
	RunAt        int64        `json:"run_at,omitempty" gorm:"column:run_at"` // time milli, one-time only
	CronExpr     string       `json:"cron_expr,omitempty" gorm:"column:cron_expr"`
	CreatedAt    int64        `json:"created_at" gorm:"column:created_at;autoCreateTime:milli"`
	UpdatedAt    int64        `json:"updated_at" gorm:"column:updated_at;autoUpdateTime:milli"`
}

func (s *Schedule) TableName() string {
	return "schedule"
}
