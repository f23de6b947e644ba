package models

import (
	"github.com/google/uuid"
)

// User is a row of user_details. The (ID, Index) pair is a bijection fixed at
// creation time; Index is the small handle callers see, ID is what every other
// table keys on.
type User struct {
	ID       uuid.UUID
	Index    int
	Username string
	FullName string
	Email    string
}
