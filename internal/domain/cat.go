package domain

import "time"

// Cat representa un gato disponible para adopción.
type Cat struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Breed       string    `json:"breed"`
	AgeMonths   int       `json:"age_months"`
	Sex         string    `json:"sex"`
	Description string    `json:"description,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	Adopted     bool      `json:"adopted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CatFilter delimita el listado público de gatos.
type CatFilter struct {
	Breed   string
	Sex     string
	Adopted *bool
}

// Matches indica si el gato cumple con el filtro.
func (f CatFilter) Matches(c Cat) bool {
	if f.Breed != "" && f.Breed != c.Breed {
		return false
	}
	if f.Sex != "" && f.Sex != c.Sex {
		return false
	}
	if f.Adopted != nil && *f.Adopted != c.Adopted {
		return false
	}
	return true
}
