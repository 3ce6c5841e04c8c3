package models

import "brandtools-be/internal/entities"

// OnboardingRequest carries the profile fields submitted during onboarding.
// Required fields are checked manually so the response can list every
// missing field by name.
type OnboardingRequest struct {
	CompanyName         string `json:"companyName"`
	BrandName           string `json:"brandName"`
	BusinessDescription string `json:"businessDescription"`
	Industry            string `json:"industry"`
	Website             string `json:"website"`

	TargetAudience       string `json:"targetAudience"`
	CustomerDemographics string `json:"customerDemographics"`

	MonetizationApproach string `json:"monetizationApproach"`
	ValueProposition     string `json:"valueProposition"`
	Competitors          string `json:"competitors"`

	BrandVoice   string `json:"brandVoice"`
	BrandValues  string `json:"brandValues"`
	BrandMission string `json:"brandMission"`
	BrandVision  string `json:"brandVision"`

	PlatformPreferences string `json:"platformPreferences"`
	ContentGoals        string `json:"contentGoals"`

	AdditionalInfo string `json:"additionalInfo"`
	Constraints    string `json:"constraints"`
}

// MissingRequired returns the names of required onboarding fields that are
// absent from the submission, in a stable order.
func (r *OnboardingRequest) MissingRequired() []string {
	var missing []string
	if r.CompanyName == "" {
		missing = append(missing, "companyName")
	}
	if r.BusinessDescription == "" {
		missing = append(missing, "businessDescription")
	}
	if r.Industry == "" {
		missing = append(missing, "industry")
	}
	if r.TargetAudience == "" {
		missing = append(missing, "targetAudience")
	}
	return missing
}

// ToProfile converts the submission into a profile record. Any submission
// that passes the required-field check marks onboarding as completed.
func (r *OnboardingRequest) ToProfile() *entities.Profile {
	return &entities.Profile{
		CompanyName:          r.CompanyName,
		BrandName:            r.BrandName,
		BusinessDescription:  r.BusinessDescription,
		Industry:             r.Industry,
		Website:              r.Website,
		TargetAudience:       r.TargetAudience,
		CustomerDemographics: r.CustomerDemographics,
		MonetizationApproach: r.MonetizationApproach,
		ValueProposition:     r.ValueProposition,
		Competitors:          r.Competitors,
		BrandVoice:           r.BrandVoice,
		BrandValues:          r.BrandValues,
		BrandMission:         r.BrandMission,
		BrandVision:          r.BrandVision,
		PlatformPreferences:  r.PlatformPreferences,
		ContentGoals:         r.ContentGoals,
		AdditionalInfo:       r.AdditionalInfo,
		Constraints:          r.Constraints,
		OnboardingCompleted:  true,
	}
}

// OnboardingResponse is returned by both the GET and POST onboarding routes
type OnboardingResponse struct {
	Message             string            `json:"message,omitempty"`
	Profile             *entities.Profile `json:"profile"`
	OnboardingCompleted bool              `json:"onboardingCompleted"`
}
