package recruiter

import (
	"time"

	"github.com/google/uuid"
)

type Recruiter struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
}
