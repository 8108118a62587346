package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Buyers sign up as guests; hosts are promoted once their payout
// profile clears the eligibility gate; admins manage commerce settings.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	displayName  string
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role, displayName string) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		displayName:  displayName,
		isActive:     true,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) DisplayName() string   { return u.displayName }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
