package models

import "time"

// Complaint is the record built up across the complaint conversation and
// finalized when the flow reaches its last step.
type Complaint struct {
	ID                 string    `json:"id"`
	UserID             int64     `json:"user_id"`
	Name               string    `json:"name"`
	RelationName       string    `json:"relation_name"` // father's/husband's name
	Age                string    `json:"age"`
	Phone              string    `json:"phone"`
	Email              string    `json:"email,omitempty"`
	Address            string    `json:"address"`
	InitialDescription string    `json:"initial_description"`
	SuggestedType      string    `json:"suggested_type,omitempty"`
	Type               string    `json:"type"`
	IncidentDate       string    `json:"incident_date"`
	IncidentLocation   string    `json:"incident_location"`
	Description        string    `json:"description"`
	ApplicableLaws     string    `json:"applicable_laws"`
	PoliceStation      string    `json:"police_station"`
	PoliceDetails      string    `json:"police_details"`
	CreatedAt          time.Time `json:"created_at"`
}

// FIR carries the extra fields the FIR draft form has on top of a complaint.
type FIR struct {
	Complaint
	Occupation     string `json:"occupation"`
	AccusedDetails string `json:"accused_details"`
}
