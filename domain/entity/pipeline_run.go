package entity

// PipelineRun is created and mutated by the external automation workers.
// This service only reads the most recent row (highest id) to gate new
// triggers.
type PipelineRun struct {
	Id        uint64 `json:"id" gorm:"primaryKey"`
	JobType   string `json:"job_type" gorm:"column:job_type"`
	Status    string `json:"status" gorm:"column:status"`
	CreatedAt int64  `json:"created_at" gorm:"column:created_at;autoCreateTime:milli"`
	UpdatedAt int64  `json:"updated_at" gorm:"column:updated_at;autoUpdateTime:milli"`
}

func (p *PipelineRun) TableName() string {
	return "pipeline_run"
}

func (p *PipelineRun) IsRunning() bool {
	return p != nil && p.Status == RunStatusRunning
}
