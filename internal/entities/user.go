package entities

import "time"

// User represents a user entity in the database
type User struct {
	ID           string    `json:"id"` // UUID
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Never expose the password hash in JSON
	Profile      *Profile  `json:"profile,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile holds the onboarding data attached 1:1 to a user. It is stored as
// a single JSONB document and always written as a whole-record replace.
type Profile struct {
	// Company/Business information
	CompanyName         string `json:"companyName"`
	BrandName           string `json:"brandName,omitempty"`
	BusinessDescription string `json:"businessDescription"`
	Industry            string `json:"industry"`
	Website             string `json:"website,omitempty"`

	// Target audience
	TargetAudience       string `json:"targetAudience"`
	CustomerDemographics string `json:"customerDemographics,omitempty"`

	// Business strategy
	MonetizationApproach string `json:"monetizationApproach,omitempty"`
	ValueProposition     string `json:"valueProposition,omitempty"`
	Competitors          string `json:"competitors,omitempty"`

	// Brand identity
	BrandVoice   string `json:"brandVoice,omitempty"`
	BrandValues  string `json:"brandValues,omitempty"`
	BrandMission string `json:"brandMission,omitempty"`
	BrandVision  string `json:"brandVision,omitempty"`

	// Marketing
	PlatformPreferences string `json:"platformPreferences,omitempty"`
	ContentGoals        string `json:"contentGoals,omitempty"`

	// Additional
	AdditionalInfo string `json:"additionalInfo,omitempty"`
	Constraints    string `json:"constraints,omitempty"`

	OnboardingCompleted bool `json:"onboardingCompleted"`
}
