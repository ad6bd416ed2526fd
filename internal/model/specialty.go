package model

type Specialty struct {
	SpecialtyID int64  `db:"specialty_id" json:"specialtyId"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
}

// SpecialtySummary is the trimmed shape embedded in doctor search results.
type SpecialtySummary struct {
	SpecialtyID int64  `db:"specialty_id" json:"specialtyId"`
	Name        string `db:"name" json:"name"`
}
