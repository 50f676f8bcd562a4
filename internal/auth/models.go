package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleStudent = "student"
	RoleStaff   = "staff"
)

// Account is the unified directory entry for every login-capable
// identity. Students log in with their roll number as username, staff
// with their institutional email; the store treats both as an opaque
// unique string.
type Account struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Role         string             `bson:"role" json:"role"`
	Email        string             `bson:"email" json:"email"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash string             `bson:"password" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

type StudentLoginRequest struct {
	RollNo   string `json:"rollNo"`
	Password string `json:"password"`
}

type StaffLoginRequest struct {
	EmailKongu string `json:"emailKongu"`
	Password   string `json:"password"`
}

type CreateUserRequest struct {
	Role     string `json:"role"`
	Email    string `json:"email"`
	Username string `json:"username"`
}
