package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/ravitejak/legal-assist-bot/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	UseInMemory bool
}

type PostgresStorage struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresStorage(config DatabaseConfig, logger *zap.Logger) (*PostgresStorage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	storage := &PostgresStorage{db: db, logger: logger}

	if err := storage.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %w", err)
	}

	return storage, nil
}

func (s *PostgresStorage) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %w", err)
	}

	if _, err := s.db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("error executing migrations: %w", err)
	}
	return nil
}

func (s *PostgresStorage) SaveComplaint(ctx context.Context, c *models.Complaint) error {
	query := `
		INSERT INTO complaints (
			id, user_id, name, relation_name, age, phone, email, address,
			complaint_type, incident_date, incident_location, description,
			applicable_laws, police_station, police_details, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := s.db.ExecContext(ctx, query,
		c.ID,
		c.UserID,
		c.Name,
		c.RelationName,
		c.Age,
		c.Phone,
		c.Email,
		c.Address,
		c.Type,
		c.IncidentDate,
		c.IncidentLocation,
		c.Description,
		c.ApplicableLaws,
		c.PoliceStation,
		c.PoliceDetails,
		c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving complaint: %w", err)
	}
	return nil
}

func (s *PostgresStorage) GetUserComplaints(ctx context.Context, userID int64, limit, offset int) ([]*models.Complaint, error) {
	query := `
		SELECT id, user_id, name, relation_name, age, phone, email, address,
		       complaint_type, incident_date, incident_location, description,
		       applicable_laws, police_station, police_details, created_at
		FROM complaints
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := s.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error querying complaints: %w", err)
	}
	defer rows.Close()

	var complaints []*models.Complaint
	for rows.Next() {
		c := &models.Complaint{}
		err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.Name,
			&c.RelationName,
			&c.Age,
			&c.Phone,
			&c.Email,
			&c.Address,
			&c.Type,
			&c.IncidentDate,
			&c.IncidentLocation,
			&c.Description,
			&c.ApplicableLaws,
			&c.PoliceStation,
			&c.PoliceDetails,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning complaint: %w", err)
		}
		complaints = append(complaints, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating complaints: %w", err)
	}

	return complaints, nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
