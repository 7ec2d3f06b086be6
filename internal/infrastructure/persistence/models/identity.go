package models

import (
	"strings"

	"github.com/shoppy/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User aggregate root.
// Roles are stored comma-joined; the set is small and only ever
// matched in memory.
type UserModel struct {
	AggregateModel
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(200);not null"`
	GivenName    string `gorm:"type:varchar(100);not null"`
	FamilyName   string `gorm:"type:varchar(100);not null"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	Roles        string `gorm:"type:varchar(200);not null"`
	Active       bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User aggregate.
func (m *UserModel) ToDomain() *identity.User {
	roles := make([]string, 0)
	if m.Roles != "" {
		roles = strings.Split(m.Roles, ",")
	}

	return &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Username:          m.Username,
		Email:             m.Email,
		GivenName:         m.GivenName,
		FamilyName:        m.FamilyName,
		PasswordHash:      m.PasswordHash,
		Roles:             roles,
		Active:            m.Active,
	}
}

// FromDomain populates the persistence model from a domain User aggregate.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Username = u.Username
	m.Email = u.Email
	m.GivenName = u.GivenName
	m.FamilyName = u.FamilyName
	m.PasswordHash = u.PasswordHash
	m.Roles = strings.Join(u.Roles, ",")
	m.Active = u.Active
}

// UserModelFromDomain creates a new persistence model from a domain User aggregate.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
