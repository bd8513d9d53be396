package domain

import (
	"time"
)

// Call is one imported conversation. Rows are written by the conversation
// importer and never deleted; re-imports overwrite all columns.
type Call struct {
	CallID              string    `gorm:"column:call_id;primaryKey" json:"call_id"`
	AgentName           string    `gorm:"column:call_agent_name;not null" json:"agent_name"`
	PhoneNumber         string    `gorm:"column:call_phone_number;not null" json:"phone_number"`
	Duration            *float64  `gorm:"column:call_duration" json:"duration"`
	AgentSpeechRate     *float64  `gorm:"column:call_agent_speech_rate" json:"agent_speech_rate"`
	CustomerSpeechRate  *float64  `gorm:"column:call_customer_speech_rate" json:"customer_speech_rate"`
	SilenceRate         *float64  `gorm:"column:call_silence_rate" json:"silence_rate"`
	CrossTalkRate       *float64  `gorm:"column:call_cross_talk_rate" json:"cross_talk_rate"`
	AgentInterruptCount *int      `gorm:"column:call_agent_interrupt_count" json:"agent_interrupt_count"`
	CreatedAt           time.Time `gorm:"column:call_created_at;not null" json:"created_at"`
}

func (Call) TableName() string { return "call" }
