package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type StaffUser struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	Role         string    `bson:"role" json:"role"`
	Active       bool      `bson:"active" json:"active"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updated_at"`
}

func (u *StaffUser) ConvertToBsonM() bson.M {
	return bson.M{
		"name":         u.Name,
		"username":     u.Username,
		"email":        u.Email,
		"role":         u.Role,
		"active":       u.Active,
		"passwordHash": u.PasswordHash,
		"updatedAt":    u.UpdatedAt,
	}
}
