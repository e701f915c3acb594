package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoleAdmin = "admin"

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Education string             `bson:"education,omitempty" json:"education,omitempty"`
	Location  string             `bson:"location,omitempty" json:"location,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	LinkedIn  string             `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Profile holds the caller-editable subset of a user document. The upsert
// routes merge these fields without touching the role.
type Profile struct {
	Name      string `bson:"name,omitempty" json:"name,omitempty"`
	Education string `bson:"education,omitempty" json:"education,omitempty"`
	Location  string `bson:"location,omitempty" json:"location,omitempty"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
}
