package candidate

import (
	"time"

	"talentmatch/internal/domain/matching"

	"github.com/google/uuid"
)

type Candidate struct {
	ID                uuid.UUID
	FullName          string
	Email             string
	Title             string
	YearsOfExperience float64
	City              string
	State             string
	Country           string
	Skills            []string
	Education         []matching.Education
	WorkHistory       []matching.WorkPeriod
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Profile projects the stored candidate into the shape the matchers consume.
func (c Candidate) Profile() matching.CandidateProfile {
	return matching.CandidateProfile{
		Skills:      c.Skills,
		YearsOfExp:  c.YearsOfExperience,
		WorkHistory: c.WorkHistory,
		Education:   c.Education,
		Location: matching.Location{
			City:    c.City,
			State:   c.State,
			Country: c.Country,
		},
		Title: c.Title,
	}
}
