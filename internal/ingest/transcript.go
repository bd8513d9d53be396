package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/callcenterinsight/insights/internal/call/domain"
	"github.com/google/uuid"
)

// transcriptDateLayout is the StartDate format emitted by the call recorder,
// e.g. "24.07.2025 23:03:10". The value is wall time in the recorder's local
// timezone.
const transcriptDateLayout = "02.01.2006 15:04:05"

var (
	agentNamePattern          = regexp.MustCompile(`AgentName:\s*(.+)`)
	phoneNumberPattern        = regexp.MustCompile(`PhoneNumber:\s*(.+)`)
	transcriptCallIDPattern   = regexp.MustCompile(`CallId:\s*(.+)`)
	startDatePattern          = regexp.MustCompile(`StartDate:\s*(.+)`)
	durationPattern           = regexp.MustCompile(`Duration:\s*([\d.]+)`)
	agentSpeechRatePattern    = regexp.MustCompile(`Agent Speech Rate:\s*%?([\d.]+)`)
	customerSpeechRatePattern = regexp.MustCompile(`Customer Speech Rate:\s*%?([\d.]+)`)
	silenceRatePattern        = regexp.MustCompile(`Silence Rate:\s*%?([\d.]+)`)
	crossTalkRatePattern      = regexp.MustCompile(`Cross Talk Rate:\s*%?([\d.]+)`)
	interruptCountPattern     = regexp.MustCompile(`Agent Interrupt Count:\s*(\d+)`)
)

// ParseTranscript extracts a call row from a conversation transcript.
// AgentName, PhoneNumber, CallId and StartDate are required; the rate
// metrics are optional and may carry a leading "%". A leading "0" on the
// phone number is dropped.
func ParseTranscript(content string, loc *time.Location) (*domain.Call, error) {
	agentName, err := requiredField(agentNamePattern, content, "AgentName")
	if err != nil {
		return nil, err
	}

	phone, err := requiredField(phoneNumberPattern, content, "PhoneNumber")
	if err != nil {
		return nil, err
	}
	phone = strings.TrimPrefix(phone, "0")

	rawCallID, err := requiredField(transcriptCallIDPattern, content, "CallId")
	if err != nil {
		return nil, err
	}
	callID, err := uuid.Parse(rawCallID)
	if err != nil {
		return nil, fmt.Errorf("invalid CallId %q: %w", rawCallID, err)
	}

	rawDate, err := requiredField(startDatePattern, content, "StartDate")
	if err != nil {
		return nil, err
	}
	startDate, err := time.ParseInLocation(transcriptDateLayout, rawDate, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid StartDate %q: %w", rawDate, err)
	}

	return &domain.Call{
		CallID:              callID.String(),
		AgentName:           agentName,
		PhoneNumber:         phone,
		CreatedAt:           startDate,
		Duration:            optionalFloat(durationPattern, content),
		AgentSpeechRate:     optionalFloat(agentSpeechRatePattern, content),
		CustomerSpeechRate:  optionalFloat(customerSpeechRatePattern, content),
		SilenceRate:         optionalFloat(silenceRatePattern, content),
		CrossTalkRate:       optionalFloat(crossTalkRatePattern, content),
		AgentInterruptCount: optionalInt(interruptCountPattern, content),
	}, nil
}

func requiredField(pattern *regexp.Regexp, content, name string) (string, error) {
	match := pattern.FindStringSubmatch(content)
	if match == nil {
		return "", fmt.Errorf("missing required field %s", name)
	}
	value := strings.TrimSpace(match[1])
	if value == "" {
		return "", fmt.Errorf("missing required field %s", name)
	}
	return value, nil
}

func optionalFloat(pattern *regexp.Regexp, content string) *float64 {
	match := pattern.FindStringSubmatch(content)
	if match == nil {
		return nil
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return nil
	}
	return &value
}

func optionalInt(pattern *regexp.Regexp, content string) *int {
	match := pattern.FindStringSubmatch(content)
	if match == nil {
		return nil
	}
	value, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	return &value
}
