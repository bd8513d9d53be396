package search

import "encoding/json"

// Wire types for the external vector-search service. Request fields are
// snake_case and optional fields are omitted entirely when unset, which the
// upstream service requires.

type Filter struct {
	Must    []map[string]any `json:"must,omitempty"`
	MustNot []map[string]any `json:"must_not,omitempty"`
	Should  []map[string]any `json:"should,omitempty"`
}

// Point is one scored document.
type Point struct {
	ID      string         `json:"id"`
	Score   float64        `json:"score"`
	Vector  []float64      `json:"vector,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
}

type SearchRequest struct {
	Vector         []float64      `json:"vector"`
	Limit          *int           `json:"limit,omitempty"`
	ScoreThreshold *float64       `json:"score_threshold,omitempty"`
	WithPayload    *bool          `json:"with_payload,omitempty"`
	WithVector     *bool          `json:"with_vector,omitempty"`
	Filters        map[string]any `json:"filters,omitempty"`
}

type TextSearchRequest struct {
	Query          string         `json:"query"`
	Limit          *int           `json:"limit,omitempty"`
	ScoreThreshold *float64       `json:"score_threshold,omitempty"`
	WithPayload    *bool          `json:"with_payload,omitempty"`
	WithVector     *bool          `json:"with_vector,omitempty"`
	Filters        map[string]any `json:"filters,omitempty"`
}

type RecommendRequest struct {
	PositiveIDs    []string `json:"positive_ids"`
	NegativeIDs    []string `json:"negative_ids,omitempty"`
	Limit          *int     `json:"limit,omitempty"`
	ScoreThreshold *float64 `json:"score_threshold,omitempty"`
	WithPayload    *bool    `json:"with_payload,omitempty"`
	WithVector     *bool    `json:"with_vector,omitempty"`
}

type BatchQuery struct {
	Vector    []float64 `json:"vector,omitempty"`
	QueryText string    `json:"query_text,omitempty"`
	Limit     *int      `json:"limit,omitempty"`
}

type BatchSearchRequest struct {
	Queries []BatchQuery `json:"queries"`
}

// SearchResponse keeps the upstream's mixed casing on the two metadata
// fields; existing clients parse them as-is.
type SearchResponse struct {
	Results         []Point        `json:"results"`
	Total           int            `json:"total"`
	ExecutionTimeMs float64        `json:"executionTimeMs"`
	QueryInfo       map[string]any `json:"queryInfo"`
}

type BatchSearchResponse struct {
	Results         []SearchResponse `json:"results"`
	Total           int              `json:"total"`
	ExecutionTimeMs float64          `json:"executionTimeMs"`
}

type CollectionInfo struct {
	Name         string         `json:"name"`
	VectorSize   int            `json:"vectorSize"`
	VectorsCount int            `json:"vectorsCount"`
	Distance     string         `json:"distance"`
	Status       string         `json:"status"`
	CreatedAt    *string        `json:"createdAt,omitempty"`
	Description  *string        `json:"description,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// HealthStatus passes the upstream health document through untouched.
type HealthStatus = json.RawMessage

// collectionList tolerates the two shapes the upstream emits for the
// collection listing: a bare array or an object wrapping one.
type collectionList struct {
	Collections []collectionName `json:"collections"`
	Result      []collectionName `json:"result"`
}

type collectionName struct {
	Name string `json:"name"`
}

func (c *collectionName) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		c.Name = name
		return nil
	}
	type alias collectionName
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	c.Name = a.Name
	return nil
}
