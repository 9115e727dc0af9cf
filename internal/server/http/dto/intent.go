package dto

// IntentSnapshot carries the registrant contact details captured when the
// intent is opened, so confirmation needs nothing beyond the intent id.
type IntentSnapshot struct {
	RequesterName  string `json:"requesterName"`
	RequesterEmail string `json:"requesterEmail"`
	RequesterPhone string `json:"requesterPhone"`
	CompanyName    string `json:"companyName"`
}

// IntentCreateRequest opens a card payment for a pending registration.
type IntentCreateRequest struct {
	ScheduleID   int64          `json:"scheduleId"`
	CourseID     int64          `json:"courseId"`
	Participants int            `json:"participants"`
	Snapshot     IntentSnapshot `json:"snapshot"`
}

// IntentCreateResponse returns the provider handle the client pays against.
type IntentCreateResponse struct {
	IntentID     string `json:"intentId"`
	ClientSecret string `json:"clientSecret"`
}

// IntentConfirmResponse reports the registration an intent was consumed
// into. Replays return the same registration id.
type IntentConfirmResponse struct {
	RegistrationID int64  `json:"registrationId"`
	Warning        string `json:"warning,omitempty"`
}
