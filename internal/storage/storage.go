package storage

import (
	"context"

	"github.com/ravitejak/legal-assist-bot/internal/models"
)

// Storage archives finalized complaints. Archiving is best effort from the
// conversation's point of view: failures are logged, never shown to the user.
type Storage interface {
	SaveComplaint(ctx context.Context, c *models.Complaint) error
	GetUserComplaints(ctx context.Context, userID int64, limit, offset int) ([]*models.Complaint, error)
	Close() error
}
