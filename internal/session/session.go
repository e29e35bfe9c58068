// Package session holds per-user conversation state. A session lives for one
// conversation: it is created when the user first talks to the bot or enters
// the complaint flow, and cleared when the flow finishes or is cancelled.
package session

import (
	"sync"
	"time"

	"github.com/ravitejak/legal-assist-bot/internal/models"
)

// Step identifies the user's position in the complaint conversation.
type Step int

const (
	StepIdle Step = iota
	StepName
	StepRelationName
	StepAge
	StepPhone
	StepEmail
	StepAddress
	StepInitialDescription
	StepTypeConfirmation
	StepDate
	StepLocation
	StepAdditionalDetails
	StepDone
)

var stepNames = map[Step]string{
	StepIdle:               "idle",
	StepName:               "name",
	StepRelationName:       "relation_name",
	StepAge:                "age",
	StepPhone:              "phone",
	StepEmail:              "email",
	StepAddress:            "address",
	StepInitialDescription: "initial_description",
	StepTypeConfirmation:   "type_confirmation",
	StepDate:               "date",
	StepLocation:           "location",
	StepAdditionalDetails:  "additional_details",
	StepDone:               "done",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// Session is the per-user slot. Updates are dispatched on separate
// goroutines, so two quick messages from one user can arrive at once;
// handlers hold the session lock while they read or mutate it. The store's
// own lock only guards the map.
type Session struct {
	mu sync.Mutex

	UserID          int64
	Step            Step
	Complaint       *models.Complaint
	SuggestionShown bool
	UpdatedAt       time.Time
}

// Lock serializes handler access to the session fields.
func (s *Session) Lock() { s.mu.Lock() }

func (s *Session) Unlock() { s.mu.Unlock() }

// InFlow reports whether the session is inside the complaint conversation.
func (s *Session) InFlow() bool {
	return s.Step != StepIdle && s.Step != StepDone
}

// Touch records activity so the session does not expire mid-conversation.
func (s *Session) Touch() {
	s.UpdatedAt = time.Now()
}
