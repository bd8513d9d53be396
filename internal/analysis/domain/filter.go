package domain

import "time"

// Filter is the closed set of predicates the aggregate view supports. All
// fields are optional and AND-combined; the zero value matches every row.
// Unknown query keys are dropped at the HTTP boundary, never here.
type Filter struct {
	AgentName        string
	PhoneNumber      string
	FollowUpRequired *bool
	ReasonContains   string
	CreatedFrom      *time.Time
	CreatedTo        *time.Time

	DurationMin           *float64
	DurationMax           *float64
	AgentSpeechRateMin    *float64
	AgentSpeechRateMax    *float64
	CustomerSpeechRateMin *float64
	CustomerSpeechRateMax *float64
	SilenceRateMin        *float64
	SilenceRateMax        *float64
	CrossTalkRateMin      *float64
	CrossTalkRateMax      *float64
	InterruptCountMin     *int
	InterruptCountMax     *int
	ChurnRiskMin          *int
	ChurnRiskMax          *int
}
