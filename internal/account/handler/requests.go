package handler

import (
	"net/mail"
	"strings"

	dErrors "contractease/pkg/domain-errors"
	"contractease/pkg/platform/validation"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Normalize() {
	if r == nil {
		return
	}
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *RegisterRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if err := validation.CheckRequired("name", r.Name); err != nil {
		return err
	}
	if err := validation.CheckMaxLength("name", r.Name, validation.MaxNameLength); err != nil {
		return err
	}
	if err := checkEmail(r.Email); err != nil {
		return err
	}
	if len(r.Password) < validation.MinPasswordLength {
		return dErrors.New(dErrors.CodeValidation, "password is too short")
	}
	if len(r.Password) > validation.MaxPasswordLength {
		return dErrors.New(dErrors.CodeValidation, "password is too long")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	if r == nil {
		return
	}
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *LoginRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if err := validation.CheckRequired("email", r.Email); err != nil {
		return err
	}
	return validation.CheckRequired("password", r.Password)
}

func checkEmail(email string) error {
	if err := validation.CheckRequired("email", email); err != nil {
		return err
	}
	if err := validation.CheckMaxLength("email", email, validation.MaxEmailLength); err != nil {
		return err
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return dErrors.New(dErrors.CodeValidation, "email is not a valid address")
	}
	return nil
}
