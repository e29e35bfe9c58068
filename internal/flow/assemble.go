package flow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ravitejak/legal-assist-bot/internal/ai"
	"github.com/ravitejak/legal-assist-bot/internal/models"
	"github.com/ravitejak/legal-assist-bot/internal/pdf"
	"github.com/ravitejak/legal-assist-bot/internal/rules"
	"github.com/ravitejak/legal-assist-bot/internal/session"
)

const docCaption = "📄 Your complaint form is ready!\n\n" +
	"⚠️ Please review carefully and submit at your LOCAL police station.\n" +
	"💡 Carry original documents and evidence.\n" +
	"🚨 For emergency, dial 100 or 112"

// finalize assembles the completed record: derives the applicable laws,
// resolves the police station (AI first, deterministic fallback), renders
// the PDF, and archives the record. Nothing in here aborts the conversation;
// every collaborator failure degrades to a fallback.
func (e *Engine) finalize(ctx context.Context, sess *session.Session) []Reply {
	c := sess.Complaint
	c.ID = uuid.New().String()
	c.CreatedAt = time.Now()
	if c.Type == "" {
		c.Type = DefaultType
	}
	c.ApplicableLaws = rules.ApplicableLaws(c.Type, c.Description)

	replies := []Reply{text("🔍 Searching for nearest police stations in your area...")}

	policeInfo := e.resolveStation(ctx, c)

	summary := fmt.Sprintf(`✅ *Complaint Form Generated Successfully!*

👤 *Complainant:* %s
📋 *Type:* %s
📍 *Location:* %s

⚖️ *Applicable Laws:*
%s

%s

💡 *Next Steps:*
1️⃣ Visit the police station immediately
2️⃣ Carry this complaint form (PDF below)
3️⃣ Bring evidence (CCTV, documents, witnesses)
4️⃣ Note FIR number after filing

📄 *Your complaint PDF is ready below* ⬇️`,
		c.Name, c.Type, c.IncidentLocation, c.ApplicableLaws, policeInfo)
	replies = append(replies, markdown(summary))

	filename := fmt.Sprintf("complaint_%d_%s.pdf", c.UserID, c.CreatedAt.Format("20060102_150405"))
	path, err := e.renderer.RenderComplaint(c, filename)
	if err != nil {
		e.logger.Error("Failed to generate complaint PDF",
			zap.Error(err),
			zap.Int64("user_id", c.UserID))
		replies = append(replies, text("❌ Sorry, there was an error generating the PDF. Please try again."))
		return replies
	}
	replies = append(replies, Reply{DocumentPath: path, Caption: docCaption})

	if e.archive != nil {
		if err := e.archive.SaveComplaint(ctx, c); err != nil {
			e.logger.Error("Failed to archive complaint",
				zap.Error(err),
				zap.String("complaint_id", c.ID),
				zap.Int64("user_id", c.UserID))
		}
	}

	return replies
}

// resolveStation fills the record's police station fields and returns the
// info block for the summary message.
func (e *Engine) resolveStation(ctx context.Context, c *models.Complaint) string {
	details, err := e.gen.Generate(ctx, c.UserID, ai.PoliceSearchPrompt(c.IncidentLocation, c.Address, c.Type))
	if err != nil {
		e.logger.Error("Failed to search for police stations",
			zap.Error(err),
			zap.Int64("user_id", c.UserID))
		c.PoliceStation = "Nearest station in " + c.IncidentLocation
		return fmt.Sprintf(`📍 *Police Station Information:*

Please visit the nearest police station in your area:
📍 Location: %s

To find your nearest police station, search online or dial 100 for police assistance.

🚨 *Emergency Numbers:*
📞 Police: 100
🆘 Emergency: 112`, c.IncidentLocation)
	}

	c.PoliceStation = pdf.CleanStationName(details)
	c.PoliceDetails = details
	return fmt.Sprintf(`📍 *Police Station Information:*

%s

---
🚨 *Emergency Numbers:*
📞 Police: 100 | 🆘 Emergency: 112`, details)
}
