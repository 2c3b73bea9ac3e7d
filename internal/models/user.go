// Package models defines the domain types stored by the inventory keeper.
package models

// User is a reseller account. The password is kept in plain text: this is a
// single-profile personal tool and the login contract deliberately matches
// stored credentials byte for byte.
type User struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	Password       string
	DarazStoreLink string
}

// FullName returns "First Last" for display.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
