package job

import (
	"time"

	"talentmatch/internal/domain/matching"

	"github.com/google/uuid"
)

type Board struct {
	ID        uuid.UUID
	Name      string
	BaseURL   string
	Enabled   bool
	CreatedAt time.Time
}

type Job struct {
	ID              uuid.UUID
	RecruiterID     *uuid.UUID
	BoardID         *uuid.UUID
	ExternalURL     string
	Title           string
	Description     string
	RequiredYears   float64
	RequiredLevel   *matching.SeniorityLevel
	EducationLevel  matching.EducationLevel
	EducationField  string
	RemoteOK        bool
	Locations       []matching.Location
	RequiredSkills  []string
	PreferredSkills []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Requirements projects the stored job into the shape the matchers consume.
func (j Job) Requirements() matching.JobRequirements {
	return matching.JobRequirements{
		RequiredSkills:  j.RequiredSkills,
		PreferredSkills: j.PreferredSkills,
		RequiredYears:   j.RequiredYears,
		RequiredLevel:   j.RequiredLevel,
		EducationLevel:  j.EducationLevel,
		EducationField:  j.EducationField,
		Locations:       j.Locations,
		RemoteOK:        j.RemoteOK,
		Title:           j.Title,
	}
}
