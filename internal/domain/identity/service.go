package identity

import (
	"context"
	"errors"

	"fleethr/internal/domain/auth"
)

type Service struct {
	store *Store
	otp   *OTPStore
}

func NewService(store *Store, otp *OTPStore) *Service {
	return &Service{store: store, otp: otp}
}

func (s *Service) Store() *Store {
	return s.store
}

// Login authenticates by mobile and password. Accounts must be activated and
// Active to log in; admins bypass both checks.
func (s *Service) Login(ctx context.Context, mobile, password string) (Employee, error) {
	emp, err := s.store.FindByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			return Employee{}, ErrBadCredentials
		}
		return Employee{}, err
	}

	hash, err := s.store.PasswordHash(ctx, emp.ID)
	if err != nil {
		return Employee{}, err
	}
	if err := auth.CheckPassword(hash, password); err != nil {
		return Employee{}, ErrBadCredentials
	}

	if err := s.checkLoginGate(emp); err != nil {
		return Employee{}, err
	}
	return emp, nil
}

// RequestOTP issues a login code for a known mobile number. The code itself
// is handed to the SMS collaborator by the caller; this layer only stores it.
func (s *Service) RequestOTP(ctx context.Context, mobile string) (string, error) {
	emp, err := s.store.FindByMobile(ctx, mobile)
	if err != nil {
		return "", err
	}
	if err := s.checkLoginGate(emp); err != nil {
		return "", err
	}
	return s.otp.Issue(emp.Mobile)
}

func (s *Service) VerifyOTP(ctx context.Context, mobile, code string) (Employee, error) {
	emp, err := s.store.FindByMobile(ctx, mobile)
	if err != nil {
		return Employee{}, err
	}
	if !s.otp.Verify(emp.Mobile, code) {
		return Employee{}, ErrOTPInvalid
	}
	if err := s.checkLoginGate(emp); err != nil {
		return Employee{}, err
	}
	return emp, nil
}

func (s *Service) checkLoginGate(emp Employee) error {
	if emp.Role == auth.RoleAdmin {
		return nil
	}
	if !emp.IsAccountActivated || emp.Status != StatusActive {
		return ErrLoginNotAllowed
	}
	return nil
}

func (s *Service) Register(ctx context.Context, req JoiningRequest) (string, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", err
	}
	return s.store.CreateJoiningRequest(ctx, req, hash)
}
