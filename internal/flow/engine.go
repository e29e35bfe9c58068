// Package flow drives the complaint-filing conversation: an explicit step
// enum, one handler per step, and a finalizer that assembles the record,
// renders the form, and archives it.
package flow

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ravitejak/legal-assist-bot/internal/ai"
	"github.com/ravitejak/legal-assist-bot/internal/pdf"
	"github.com/ravitejak/legal-assist-bot/internal/session"
	"github.com/ravitejak/legal-assist-bot/internal/storage"
)

const introPrompt = `📝 *Complaint Filing Assistant*

I'll help you prepare a complaint. Please answer the following questions.

Let's start with your personal details:

*What is your full name?*`

const addressPrompt = `*What is your complete address?*

Please include:
• House/Street details
• Village/Town/City
• Mandal
• District

Example: 'Door No 12-34, MG Road, Vijayawada, Vijayawada Mandal, Krishna District'`

const describePrompt = `*Please describe what happened to you:*

Explain the incident in your own words. The bot will understand and suggest the complaint type.

Example: 'Someone stole my mobile phone from my bag'`

const manualTypePrompt = `*What type of complaint is this?*

Examples: Theft, Fraud, Harassment, Property Dispute
Or type 'skip' if not sure`

const locationPrompt = `*Where did the incident occur? (Location/Address)*

Include: Area/Landmark, City/Village, Mandal, District

Example: 'Near Railway Station, Vijayawada, Vijayawada Mandal, Krishna District'`

const detailsPrompt = `*Any additional details you want to add?*

Include witnesses, evidence, sequence of events, etc.
Or type 'no' to skip`

type stepFn func(ctx context.Context, sess *session.Session, input string) ([]Reply, session.Step)

// Engine owns the step table and the per-user session store.
type Engine struct {
	sessions *session.Store
	gen      ai.Generator
	renderer *pdf.Renderer
	archive  storage.Storage
	logger   *zap.Logger
	steps    map[session.Step]stepFn
}

func NewEngine(sessions *session.Store, gen ai.Generator, renderer *pdf.Renderer, archive storage.Storage, logger *zap.Logger) *Engine {
	e := &Engine{
		sessions: sessions,
		gen:      gen,
		renderer: renderer,
		archive:  archive,
		logger:   logger,
	}
	e.steps = map[session.Step]stepFn{
		session.StepName:               e.stepName,
		session.StepRelationName:       e.stepRelationName,
		session.StepAge:                e.stepAge,
		session.StepPhone:              e.stepPhone,
		session.StepEmail:              e.stepEmail,
		session.StepAddress:            e.stepAddress,
		session.StepInitialDescription: e.stepInitialDescription,
		session.StepTypeConfirmation:   e.stepTypeConfirmation,
		session.StepDate:               e.stepDate,
		session.StepLocation:           e.stepLocation,
		session.StepAdditionalDetails:  e.stepAdditionalDetails,
	}
	return e
}

// Start begins a fresh complaint conversation, discarding any in-progress
// record for the user.
func (e *Engine) Start(userID int64) []Reply {
	sess := e.sessions.Create(userID)
	sess.Lock()
	sess.Step = session.StepName
	sess.Unlock()
	return []Reply{markdown(introPrompt)}
}

// Cancel aborts the conversation and clears the session.
func (e *Engine) Cancel(userID int64) []Reply {
	e.sessions.Clear(userID)
	return []Reply{text("❌ Operation cancelled.\n\nUse /start to begin again.")}
}

// Active reports whether the user is mid-conversation.
func (e *Engine) Active(userID int64) bool {
	sess, ok := e.sessions.Get(userID)
	if !ok {
		return false
	}
	sess.Lock()
	defer sess.Unlock()
	return sess.InFlow()
}

// Handle feeds one user input to the current step. The second return is
// false when the user has no active complaint conversation. The session lock
// is held for the whole turn, so concurrent messages from the same user are
// applied one at a time.
func (e *Engine) Handle(ctx context.Context, userID int64, input string) ([]Reply, bool) {
	sess, ok := e.sessions.Get(userID)
	if !ok {
		return nil, false
	}

	sess.Lock()
	defer sess.Unlock()

	if !sess.InFlow() {
		return nil, false
	}

	step, ok := e.steps[sess.Step]
	if !ok {
		e.logger.Error("No handler for step",
			zap.Stringer("step", sess.Step),
			zap.Int64("user_id", userID))
		e.sessions.Clear(userID)
		return nil, false
	}

	if strings.TrimSpace(input) == "" {
		sess.Touch()
		return []Reply{text("Please type a response to continue, or use /cancel to stop.")}, true
	}

	replies, next := step(ctx, sess, input)
	sess.Step = next
	sess.Touch()

	if next == session.StepDone {
		e.sessions.Clear(userID)
	}
	return replies, true
}

func (e *Engine) stepName(ctx context.Context, sess *session.Session, input string) ([]Reply, session.Step) {
	sess.Complaint.Name = input
	return []Reply{markdown("*What is your Father's/Husband's name?*")}, session.StepRelationName
}

func (e *Engine) stepRelationName(ctx context.Context, sess *session.Session, input string) ([]Reply, session.Step) {
	sess.Complaint.RelationName = input
	return []Reply{markdown("*What is your age?*")}, session.StepAge
}

func (e *Engine) stepAge(ctx context.Context, sess *session.Session, input string) ([]Reply, session.Step) {
	sess.Complaint.Age = input
	return []Reply{markdown("*What is your phone number?*")}, session.StepPhone
}

func (e *Engine) stepPhone(ctx context.Context, sess *session.Session, input string) ([]Reply, session.Step) {
	sess.Complaint.Phone = input
	return []Reply{markdown("*What is your email address?* (Optional - type 'skip' to skip)")}, session.StepEmail
}

func (e *Engine) stepEmail(ctx context.Context, sess *session.Session, input string) ([]Reply, session.Step) {
	if !strings.EqualFold(strings.TrimSpace(input), "skip") {
		sess.Complaint.Email = input
	}
	return []Reply{markdown(addressPrompt)}, session.StepAddress
}

func (e *Engine) stepAddress(ctx context.Context, sess *session.Session, input string) ([]Reply, session.Step) {
	sess.Complaint.Address = input
	return []Reply{markdown(describePrompt)}, session.StepInitialDescription
}

// stepInitialDescription is the branch step: it asks the AI for a type
// suggestion. On failure the flow degrades to asking the user directly and
// still advances to the confirmation step.
func (e *Engine) stepInitialDescription(ctx context.Context, sess *session.Session, input string) ([]Reply, session.Step) {
	sess.Complaint.InitialDescription = input

	replies := []Reply{markdown("🤔 Analyzing your complaint...")}

	suggested, err := ai.SuggestType(ctx, e.gen, sess.UserID, input)
	if err != nil {
		e.logger.Error("Failed to auto-detect complaint type",
			zap.Error(err),
			zap.Int64("user_id", sess.UserID))
		replies = append(replies, markdown(manualTypePrompt))
		return replies, session.StepTypeConfirmation
	}

	sess.Complaint.SuggestedType = suggested
	replies = append(replies, markdown(
		"✅ *I understand this is about:*\n\n"+
			"📋 *"+suggested+"*\n\n"+
			"Is this correct?\n"+
			"• Type *'yes'* to confirm\n"+
			"• Type the correct complaint type (e.g., 'Theft', 'Fraud')\n"+
			"• Type *'skip'* if you're not sure"))
	return replies, session.StepTypeConfirmation
}

func (e *Engine) stepTypeConfirmation(ctx context.Context, sess *session.Session, input string) ([]Reply, session.Step) {
	finalType, decision := DecideType(input, sess.Complaint.SuggestedType)
	sess.Complaint.Type = finalType

	e.logger.Debug("Complaint type resolved",
		zap.String("type", finalType),
		zap.Int("decision", int(decision)),
		zap.Int64("user_id", sess.UserID))

	return []Reply{markdown("*When did the incident occur? (Date and time)*")}, session.StepDate
}

func (e *Engine) stepDate(ctx context.Context, sess *session.Session, input string) ([]Reply, session.Step) {
	sess.Complaint.IncidentDate = input
	return []Reply{markdown(locationPrompt)}, session.StepLocation
}

func (e *Engine) stepLocation(ctx context.Context, sess *session.Session, input string) ([]Reply, session.Step) {
	sess.Complaint.IncidentLocation = input
	return []Reply{markdown(detailsPrompt)}, session.StepAdditionalDetails
}

func (e *Engine) stepAdditionalDetails(ctx context.Context, sess *session.Session, input string) ([]Reply, session.Step) {
	if isNegative(input) {
		sess.Complaint.Description = sess.Complaint.InitialDescription
	} else {
		sess.Complaint.Description = sess.Complaint.InitialDescription + "\n\nAdditional Details: " + input
	}

	replies := []Reply{text("⏳ Processing your complaint... Please wait.\n🤖 Analyzing incident details...")}
	replies = append(replies, e.finalize(ctx, sess)...)
	return replies, session.StepDone
}
