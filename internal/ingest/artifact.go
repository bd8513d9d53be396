package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
)

// Analysis artifact filenames carry the call id as a lowercase hex UUID,
// e.g. agent_queue_phone_date_<uuid>_analysis.json.
var callIDPattern = regexp.MustCompile(`[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}`)

// ExtractCallID pulls the call id out of an artifact filename. The second
// return is false when the name carries no UUID.
func ExtractCallID(filename string) (string, bool) {
	match := callIDPattern.FindString(filename)
	if match == "" {
		return "", false
	}
	return match, true
}

// artifactInsights is the per-call insight block produced by the analysis
// pipeline. Issue fields are only meaningful when IssueSubCategory is set.
type artifactInsights struct {
	CallReason                    string  `json:"call_reason"`
	CallReasonDetail              string  `json:"call_reason_detail"`
	IsFollowUpRequired            bool    `json:"is_follow_up_required"`
	IssueSubCategory              *string `json:"issue_sub_category"`
	SubIssueType                  string  `json:"sub_issue_type"`
	ChurnRisk                     *int    `json:"churn_risk"`
	UrgencyLevel                  string  `json:"urgency_level"`
	RelatedWithPreviousCall       bool    `json:"related_with_previous_call"`
	RelatedWithPreviousCallDetail string  `json:"related_with_previous_call_detail"`
}

type artifactEntry struct {
	Insights             *artifactInsights `json:"insights"`
	OrganizationMetadata *string           `json:"organization_metadata"`
}

// readArtifact decodes an analysis artifact file. The pipeline writes a JSON
// array with one entry per call segment; only the first entry carries the
// data we store.
func readArtifact(path string) (*artifactEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []artifactEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("artifact is an empty array")
	}
	return &entries[0], nil
}
