package entity

// Profile is a raw scraped profile, written by the acquisition run.
type Profile struct {
	Id         uint64 `json:"id" gorm:"primaryKey"`
	FullName   string `json:"full_name" gorm:"column:full_name"`
	Headline   string `json:"headline" gorm:"column:headline"`
	Company    string `json:"company" gorm:"column:company"`
	Location   string `json:"location" gorm:"column:location"`
	ProfileUrl string `json:"profile_url" gorm:"column:profile_url"`
	CreatedAt  int64  `json:"created_at" gorm:"column:created_at;autoCreateTime:milli"`
}

func (p *Profile) TableName() string {
	return "profile"
}

// Lead is an approved profile moving through the outreach flow.
// ConnectionStatus "sending" anywhere in the table acts as the global invite
// send lock; "waiting_for_review" with ConnectionSent unset is the only state
// an invite may be sent from.
type Lead struct {
	Id               uint64 `json:"id" gorm:"primaryKey"`
	FullName         string `json:"full_name" gorm:"column:full_name"`
	Headline         string `json:"headline" gorm:"column:headline"`
	Company          string `json:"company" gorm:"column:company"`
	ProfileUrl       string `json:"profile_url" gorm:"column:profile_url"`
	DraftMessage     string `json:"draft_message" gorm:"column:draft_message"`
	ConnectionStatus string `json:"connection_status" gorm:"column:connection_status"`
	ConnectionSent   *int64 `json:"connection_sent" gorm:"column:connection_sent"` // 1 once the invite went out
	CreatedAt        int64  `json:"created_at" gorm:"column:created_at;autoCreateTime:milli"`
	UpdatedAt        int64  `json:"updated_at" gorm:"column:updated_at;autoUpdateTime:milli"`
}

func (l *Lead) TableName() string {
	return "lead"
}

func (l *Lead) Sendable() bool {
	return l != nil && l.ConnectionStatus == ConnectionStatusWaitingForReview && l.ConnectionSent == nil
}
