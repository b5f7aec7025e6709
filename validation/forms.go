// validation/forms.go

// Package validation holds the declarative create/edit form schemas and
// the advisory booking business rules. Schema failures block submission
// with one message per field; the temporal rules run after the schema and
// before the network. The upstream backend remains the authority and may
// still reject for reasons the console cannot predict.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/evgrid/console/model"
)

// FieldErrors maps a form field to its single validation message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for field, msg := range fe {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// Validator wraps the schema engine with console-friendly messages.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Struct validates a form value. A nil return means submission may
// proceed; otherwise the result is a FieldErrors with one message per
// invalid field.
func (val *Validator) Struct(form interface{}) error {
	err := val.v.Struct(form)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"form": err.Error()}
	}
	fe := FieldErrors{}
	for _, v := range verrs {
		field := v.Field()
		if _, seen := fe[field]; seen {
			continue
		}
		fe[field] = message(v)
	}
	return fe
}

func message(v validator.FieldError) string {
	switch v.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", v.Field())
	case "email":
		return "Valid email required"
	case "min":
		if v.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", v.Field(), v.Param())
		}
		return fmt.Sprintf("%s must be at least %s", v.Field(), v.Param())
	case "max":
		if v.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", v.Field(), v.Param())
		}
		return fmt.Sprintf("%s must be at most %s", v.Field(), v.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", v.Field(), v.Param())
	case "eqfield":
		return "Passwords do not match"
	case "gte", "gt", "lte", "lt":
		return fmt.Sprintf("%s is out of range", v.Field())
	}
	return fmt.Sprintf("%s is invalid", v.Field())
}

// OwnerCreateForm mirrors the owner create page's schema.
type OwnerCreateForm struct {
	NIC      string `json:"nic" validate:"required,min=5"`
	FullName string `json:"fullName" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=7,max=20"`
	Password string `json:"password" validate:"required,min=6"`
}

// OwnerEditForm drops the immutable NIC and the password.
type OwnerEditForm struct {
	FullName string `json:"fullName" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=7,max=20"`
}

// StationForm covers both create and edit; the two pages always shared
// one schema.
type StationForm struct {
	Name       string  `json:"name" validate:"required,min=2"`
	Type       string  `json:"type" validate:"required,oneof=AC DC"`
	TotalSlots int     `json:"totalSlots" validate:"required,min=1"`
	Location   string  `json:"location" validate:"required,min=2"`
	Lat        float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng        float64 `json:"lng" validate:"gte=-180,lte=180"`
}

// StaffRegisterForm is the create-web-user form. Operators must arrive
// with at least one assigned station.
type StaffRegisterForm struct {
	FullName   string   `json:"fullName" validate:"required,min=3"`
	Email      string   `json:"email" validate:"required,email"`
	Password   string   `json:"password" validate:"required,min=6"`
	Role       string   `json:"role" validate:"required,oneof=Backoffice Operator"`
	Phone      string   `json:"phone" validate:"omitempty,min=7,max=20"`
	StationIDs []string `json:"stationIds" validate:"required_if=Role Operator"`
}

// StaffEditForm is the partial staff edit; credentials and role are
// immutable here.
type StaffEditForm struct {
	FullName   string   `json:"fullName" validate:"omitempty,min=3"`
	Phone      string   `json:"phone" validate:"omitempty,min=7,max=20"`
	StationIDs []string `json:"stationIds" validate:"omitempty"`
}

// PasswordChangeForm requires the confirmation to match the new password.
type PasswordChangeForm struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// ProfileForm is the edit-my-profile page.
type ProfileForm struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required,min=3"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=20"`
}

// BookingForm is the create/edit booking page. OwnerNIC is optional:
// Backoffice may create on behalf of an owner, the backend otherwise
// derives it from the token.
type BookingForm struct {
	OwnerNIC  string    `json:"ownerNic" validate:"omitempty,min=5"`
	StationID string    `json:"stationId" validate:"required"`
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required"`
}

// Payload converts the validated form into the upstream body.
func (f BookingForm) Payload() model.BookingPayload {
	return model.BookingPayload{
		OwnerNIC:  f.OwnerNIC,
		StationID: f.StationID,
		StartTime: f.StartTime.UTC(),
		EndTime:   f.EndTime.UTC(),
	}
}
