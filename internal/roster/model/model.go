package model

// Tier expresses how strongly an automated registry match should be trusted.
type Tier string

const (
	TierExact  Tier = "exact"
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
	// TierManual is only ever set by an operator override and is excluded
	// from re-matching.
	TierManual Tier = "manual"
	TierNone   Tier = "none"
)

// Mapping is the operator-supplied column mapping for an uploaded sheet.
// Either FirstKey+LastKey or FullNameKey must be provided.
type Mapping struct {
	OrgKey      string `json:"org_key"`
	FirstKey    string `json:"first_key,omitempty"`
	LastKey     string `json:"last_key,omitempty"`
	FullNameKey string `json:"full_name_key,omitempty"`
	EmailKey    string `json:"email_key,omitempty"`
	PhoneKey    string `json:"phone_key,omitempty"`
	TitleKey    string `json:"title_key,omitempty"`
	HeaderRow   int    `json:"header_row"`
}

// ImportRow is one previewed spreadsheet row: created at preview time, edited
// by the operator, consumed once by commit, then discarded.
type ImportRow struct {
	OrgText    string `json:"org_text"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Title      string `json:"title,omitempty"`
	SchoolID   uint   `json:"school_id,omitempty"`
	SchoolName string `json:"school_name,omitempty"`
	Tier       Tier   `json:"tier"`
	Include    bool   `json:"include"`
}

// CommitResult summarizes a batch insert.
type CommitResult struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"` // already present or excluded rows
}
