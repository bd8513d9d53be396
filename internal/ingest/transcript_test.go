package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTranscript = `AgentName: Ayşe Yılmaz
PhoneNumber: 05318671534
CallId: 550E8400-E29B-41D4-A716-446655440000
StartDate: 24.07.2025 23:03:10
Duration: 182.5
Agent Speech Rate: %42.3
Customer Speech Rate: 31.1
Silence Rate: %20.6
Cross Talk Rate: %6.0
Agent Interrupt Count: 3

Agent: Merhaba, nasıl yardımcı olabilirim?
Customer: Cihazım açılmıyor.
`

func istanbul(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)
	return loc
}

func TestParseTranscript(t *testing.T) {
	loc := istanbul(t)

	call, err := ParseTranscript(sampleTranscript, loc)
	require.NoError(t, err)

	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", call.CallID)
	assert.Equal(t, "Ayşe Yılmaz", call.AgentName)
	assert.Equal(t, "5318671534", call.PhoneNumber, "leading zero must be dropped")
	assert.Equal(t, time.Date(2025, 7, 24, 23, 3, 10, 0, loc), call.CreatedAt)

	require.NotNil(t, call.Duration)
	assert.Equal(t, 182.5, *call.Duration)
	require.NotNil(t, call.AgentSpeechRate)
	assert.Equal(t, 42.3, *call.AgentSpeechRate)
	require.NotNil(t, call.CustomerSpeechRate)
	assert.Equal(t, 31.1, *call.CustomerSpeechRate, "rate without percent prefix still parses")
	require.NotNil(t, call.AgentInterruptCount)
	assert.Equal(t, 3, *call.AgentInterruptCount)
}

func TestParseTranscriptOptionalMetricsAbsent(t *testing.T) {
	content := "AgentName: Mehmet\nPhoneNumber: 5301234567\nCallId: 550e8400-e29b-41d4-a716-446655440000\nStartDate: 01.01.2025 08:30:00\n"

	call, err := ParseTranscript(content, istanbul(t))
	require.NoError(t, err)

	assert.Nil(t, call.Duration)
	assert.Nil(t, call.AgentSpeechRate)
	assert.Nil(t, call.CustomerSpeechRate)
	assert.Nil(t, call.SilenceRate)
	assert.Nil(t, call.CrossTalkRate)
	assert.Nil(t, call.AgentInterruptCount)
	assert.Equal(t, "5301234567", call.PhoneNumber)
}

func TestParseTranscriptMissingRequiredField(t *testing.T) {
	loc := istanbul(t)

	cases := map[string]string{
		"agent name": "PhoneNumber: 5301234567\nCallId: 550e8400-e29b-41d4-a716-446655440000\nStartDate: 01.01.2025 08:30:00\n",
		"phone":      "AgentName: Mehmet\nCallId: 550e8400-e29b-41d4-a716-446655440000\nStartDate: 01.01.2025 08:30:00\n",
		"call id":    "AgentName: Mehmet\nPhoneNumber: 5301234567\nStartDate: 01.01.2025 08:30:00\n",
		"start date": "AgentName: Mehmet\nPhoneNumber: 5301234567\nCallId: 550e8400-e29b-41d4-a716-446655440000\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTranscript(content, loc)
			assert.Error(t, err)
		})
	}
}

func TestParseTranscriptRejectsBadValues(t *testing.T) {
	loc := istanbul(t)

	_, err := ParseTranscript("AgentName: Mehmet\nPhoneNumber: 5301234567\nCallId: not-a-uuid\nStartDate: 01.01.2025 08:30:00\n", loc)
	assert.Error(t, err, "call id must be a uuid")

	_, err = ParseTranscript("AgentName: Mehmet\nPhoneNumber: 5301234567\nCallId: 550e8400-e29b-41d4-a716-446655440000\nStartDate: 2025-01-01 08:30\n", loc)
	assert.Error(t, err, "start date must match the recorder format")
}
