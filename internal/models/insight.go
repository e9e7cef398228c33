package models

// InsightType represents the severity/flavor of an insight.
type InsightType string

const (
	InsightTypeInfo    InsightType = "info"
	InsightTypeWarning InsightType = "warning"
	InsightTypeSuccess InsightType = "success"
)

// Insight is an advisory message produced by the rule engine. Insights are
// never physically deleted; dismissing one hides it from the active view.
//
// The ID is derived from the rule name plus the subject entity, so repeated
// rule evaluation upserts the existing record instead of accumulating
// duplicates.
type Insight struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Confidence  int         `json:"confidence"`
	Type        InsightType `json:"type"`
	Category    string      `json:"category"`
	Actionable  bool        `json:"actionable"`
	Dismissed   bool        `json:"dismissed,omitempty"`
}
