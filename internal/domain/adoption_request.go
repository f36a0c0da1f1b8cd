package domain

import "time"

// RequestStatus es el estado de revisión de una solicitud de adopción.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// Valid indica si el estado es uno de los conocidos.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected:
		return true
	}
	return false
}

// Applicant son los datos de contacto de quien solicita adoptar.
type Applicant struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// AdoptionRequest representa una solicitud de adopción pendiente de revisión.
type AdoptionRequest struct {
	ID        string        `json:"id"`
	CatID     string        `json:"cat_id"`
	Applicant Applicant     `json:"applicant"`
	Message   string        `json:"message,omitempty"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
