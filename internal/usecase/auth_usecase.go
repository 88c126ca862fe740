package usecase

import (
	"context"
	"errors"
	"strings"

	"medicita/internal/converter"
	"medicita/internal/delivery/dto"
	"medicita/internal/delivery/http/middleware"
	"medicita/internal/domain/entity"
	"medicita/internal/domain/repository"
	"medicita/internal/service"

	"github.com/sirupsen/logrus"
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*entity.Session, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	ListUsers(ctx context.Context, filter *entity.ListFilter) (*dto.UserListResponse, error)
	DeleteUser(ctx context.Context, id string) error
}

type authUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	auditService service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		auditService: auditService,
	}
}

// Login matches login and password exactly. A failed attempt leaves any
// existing session untouched.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	user, err := u.userRepo.FindByCredentials(ctx, req.Usuario, req.Password)
	if err != nil {
		u.log.Warnf("Failed to find user by credentials: %+v", err)
		return nil, err
	}
	if user == nil {
		u.log.WithField("usuario", req.Usuario).Info("Rejected login")
		return nil, ErrInvalidCredentials
	}

	session := entity.NewSession(user)
	if err := u.sessionRepo.Set(ctx, session); err != nil {
		u.log.Warnf("Failed to store session: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(middleware.WithSession(ctx, session), entity.AuditActionUserLogin, service.AuditEntityUser, user.ID, nil)

	return converter.SessionToResponse(session), nil
}

// Logout clears the session slot whether or not one is set
func (u *authUsecase) Logout(ctx context.Context) error {
	if err := u.sessionRepo.Clear(ctx); err != nil {
		u.log.Warnf("Failed to clear session: %+v", err)
		return err
	}

	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		u.auditService.LogCreate(ctx, entity.AuditActionUserLogout, service.AuditEntityUser, userID, nil)
	}
	return nil
}

func (u *authUsecase) CurrentSession(ctx context.Context) (*entity.Session, error) {
	session, err := u.sessionRepo.Get(ctx)
	if err != nil {
		u.log.Warnf("Failed to read session: %+v", err)
		return nil, err
	}
	return session, nil
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	user := converter.RegisterRequestToUser(req)
	user.Name = strings.TrimSpace(user.Name)
	user.Login = strings.TrimSpace(user.Login)
	if !user.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	if _, err := u.userRepo.Save(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateLogin) {
			return nil, ErrDuplicateLogin
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	res := converter.UserToResponse(user)
	u.auditService.LogCreate(ctx, entity.AuditActionUserRegister, service.AuditEntityUser, user.ID, res)

	return res, nil
}

func (u *authUsecase) ListUsers(ctx context.Context, filter *entity.ListFilter) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

func (u *authUsecase) DeleteUser(ctx context.Context, id string) error {
	if current, ok := middleware.GetUserIDFromContext(ctx); ok && current == id {
		return ErrSelfDelete
	}

	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if _, err := u.userRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, entity.AuditActionUserDelete, service.AuditEntityUser, id, converter.UserToResponse(user))
	return nil
}
