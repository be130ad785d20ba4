package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role classifies a user's access level. The set is closed: anything
// outside these two values is rejected by Valid and never grants
// privileged access.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// AccountType distinguishes client accounts from professional ones.
type AccountType string

const (
	AccountClient       AccountType = "client"
	AccountProfessional AccountType = "professional"
)

func (a AccountType) Valid() bool {
	return a == AccountClient || a == AccountProfessional
}

type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Password        string             `bson:"password" json:"-"` // Hide from JSON responses
	TokenIdentifier string             `bson:"tokenIdentifier" json:"-"`
	AccountType     AccountType        `bson:"accountType" json:"accountType"`
	Role            Role               `bson:"role" json:"role"`
}
