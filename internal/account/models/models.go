// Package models defines the user and client account records.
package models

import (
	"time"

	id "contractease/pkg/domain"
)

// User is an account that creates and manages contracts.
type User struct {
	ID           id.UserID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Clone returns a deep copy.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

// Client is an account that receives and signs contracts.
type Client struct {
	ID           id.ClientID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Clone returns a deep copy.
func (c *Client) Clone() *Client {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
