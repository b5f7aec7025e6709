// service/user_service.go
package service

import (
	"context"

	console_errors "github.com/evgrid/console/errors"
	"github.com/evgrid/console/model"
	"github.com/evgrid/console/upstream"
	"github.com/evgrid/console/util"
	"github.com/evgrid/console/validation"
	"github.com/evgrid/console/viewmodel"
)

// StaffList is the normalized staff listing answer.
type StaffList struct {
	Items []viewmodel.StaffRow `json:"items"`
	Total int                  `json:"total"`
}

// IUserService covers both the Backoffice staff administration pages and
// the self-service profile pages shared by every signed-in user.
type IUserService interface {
	List(ctx context.Context, token string, f upstream.StaffFilter) (*StaffList, error)
	Register(ctx context.Context, token string, form validation.StaffRegisterForm) (*viewmodel.StaffRow, error)
	Update(ctx context.Context, token, id string, form validation.StaffEditForm) error
	SetStatus(ctx context.Context, token, id string, active bool, reason string) error

	GetMyProfile(ctx context.Context, token string) (*model.Profile, error)
	UpdateMyProfile(ctx context.Context, token string, form validation.ProfileForm) (*model.Profile, error)
	ChangeMyPassword(ctx context.Context, token string, form validation.PasswordChangeForm) error
}

type UserService struct {
	up       *upstream.Client
	validate *validation.Validator
	guard    *util.RowGuard
}

var _ IUserService = &UserService{}

func NewUserService(up *upstream.Client, validate *validation.Validator, guard *util.RowGuard) *UserService {
	return &UserService{up: up, validate: validate, guard: guard}
}

func (s *UserService) List(ctx context.Context, token string, f upstream.StaffFilter) (*StaffList, error) {
	page, err := forToken(s.up, token).Staff().List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &StaffList{Items: viewmodel.StaffRows(page.Items), Total: page.Total}, nil
}

// Register creates a staff account. The admin endpoint answers with the
// created record; older backends only expose the auth register routes,
// which answer with nothing, so the new account is resolved by a one-row
// email search afterwards.
func (s *UserService) Register(ctx context.Context, token string, form validation.StaffRegisterForm) (*viewmodel.StaffRow, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, err
	}

	up := forToken(s.up, token)
	payload := model.StaffCreate{
		FullName:   form.FullName,
		Email:      form.Email,
		Password:   form.Password,
		Role:       model.Role(form.Role),
		Phone:      form.Phone,
		StationIDs: form.StationIDs,
	}

	raw, err := up.Staff().Create(ctx, payload)
	if err == nil {
		row := viewmodel.StaffRowFrom(raw)
		return &row, nil
	}
	if !upstream.AsError(err).NotFound() {
		return nil, err
	}

	if model.Role(form.Role) == model.RoleOperator {
		err = up.Auth().RegisterOperator(ctx, form.Email, form.Password)
	} else {
		err = up.Auth().RegisterBackoffice(ctx, form.Email, form.Password)
	}
	if err != nil {
		return nil, err
	}

	raw, err = up.Staff().FindByEmail(ctx, form.Email)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, console_errors.ErrStaffNotFound
	}

	// The auth routes take only credentials, so the remaining fields
	// land with a follow-up edit.
	row := viewmodel.StaffRowFrom(raw)
	if row.ID != "" && (form.FullName != "" || form.Phone != "" || len(form.StationIDs) > 0) {
		update := model.StaffUpdate{
			FullName:   form.FullName,
			Phone:      form.Phone,
			StationIDs: form.StationIDs,
		}
		if raw, err = up.Staff().Update(ctx, row.ID, update); err != nil {
			return nil, err
		}
		if len(raw) > 0 {
			row = viewmodel.StaffRowFrom(raw)
		}
	}
	return &row, nil
}

func (s *UserService) Update(ctx context.Context, token, id string, form validation.StaffEditForm) error {
	if err := s.validate.Struct(form); err != nil {
		return err
	}

	key := "staff:" + id
	if !s.guard.Begin(key) {
		return console_errors.ErrRowBusy
	}
	defer s.guard.End(key)

	payload := model.StaffUpdate{
		FullName:   form.FullName,
		Phone:      form.Phone,
		StationIDs: form.StationIDs,
	}
	_, err := forToken(s.up, token).Staff().Update(ctx, id, payload)
	return err
}

func (s *UserService) SetStatus(ctx context.Context, token, id string, active bool, reason string) error {
	key := "staff:" + id
	if !s.guard.Begin(key) {
		return console_errors.ErrRowBusy
	}
	defer s.guard.End(key)

	up := forToken(s.up, token)
	if active {
		return up.Staff().Activate(ctx, id)
	}
	if reason == "" {
		reason = "Deactivated via console"
	}
	return up.Staff().Deactivate(ctx, id, reason)
}

func (s *UserService) GetMyProfile(ctx context.Context, token string) (*model.Profile, error) {
	data, err := forToken(s.up, token).Profile().GetMyProfile(ctx)
	if err != nil {
		return nil, err
	}
	p := viewmodel.ProfileFrom(data)
	return &p, nil
}

func (s *UserService) UpdateMyProfile(ctx context.Context, token string, form validation.ProfileForm) (*model.Profile, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, err
	}

	up := forToken(s.up, token)
	payload := model.ProfileUpdate{
		Email:    form.Email,
		FullName: form.FullName,
		Phone:    form.Phone,
	}
	if err := up.Profile().UpdateMyProfile(ctx, payload); err != nil {
		return nil, err
	}

	data, err := up.Profile().GetMyProfile(ctx)
	if err != nil {
		return nil, err
	}
	p := viewmodel.ProfileFrom(data)
	return &p, nil
}

// ChangeMyPassword reads the current profile first so full name and phone
// ride along on the combined endpoint and are not blanked by the write.
func (s *UserService) ChangeMyPassword(ctx context.Context, token string, form validation.PasswordChangeForm) error {
	if err := s.validate.Struct(form); err != nil {
		return err
	}

	up := forToken(s.up, token)
	data, err := up.Profile().GetMyProfile(ctx)
	if err != nil {
		return err
	}
	p := viewmodel.ProfileFrom(data)

	return up.Profile().ChangeMyPassword(ctx, model.PasswordChange{
		Email:           p.Email,
		CurrentPassword: form.CurrentPassword,
		NewPassword:     form.NewPassword,
		FullName:        p.FullName,
		Phone:           p.Phone,
	})
}
