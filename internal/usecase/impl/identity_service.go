package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "wellness/internal/delivery/context"
	"wellness/internal/domain/entity"
	domainerrors "wellness/internal/domain/errors"
	"wellness/internal/domain/repository"
	"wellness/internal/domain/service"
	"wellness/internal/infra/metrics"
	"wellness/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minNameLength = 2

// Auth operations as reported to metrics.
const (
	opRegister       = "register"
	opLogin          = "login"
	opFederatedLogin = "federated_login"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	verifier     service.IdentityVerifier
	sessions     usecase.SessionUsecase
	clock        service.Clock
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Verifier     service.IdentityVerifier
	Sessions     usecase.SessionUsecase
	Clock        service.Clock
	Metrics      *metrics.Metrics `optional:"true"`
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService. It receives all dependencies as interfaces.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		verifier:     params.Verifier,
		sessions:     params.Sessions,
		clock:        params.Clock,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a password account and issues its first token.
func (srv *identityService) Register(ctx context.Context, input usecase.RegisterInput) (out *usecase.AuthOutput, err error) {
	defer func() { srv.metrics.ObserveAuth(opRegister, err) }()

	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting registration", slog.String("email", email))

	_, err = srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Registration rejected, email in use", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrEmailInUse, "email already registered")
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to look up email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	newUser := &entity.User{
		Name:             strings.TrimSpace(input.Name),
		Email:            email,
		PasswordHash:     hashedPassword,
		LoginProvider:    entity.LoginProviderPassword,
		RegistrationDate: srv.clock.Now(),
	}

	if err = srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			srv.log(ctx).Warn("Registration lost email race", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrEmailInUse, "email already registered")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	out, err = srv.issue(newUser)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", newUser.ID))

	return out, nil
}

// Login verifies a password and issues a fresh token. Every failure maps to the
// same InvalidCredentials error.
func (srv *identityService) Login(ctx context.Context, input usecase.LoginInput) (out *usecase.AuthOutput, err error) {
	defer func() { srv.metrics.ObserveAuth(opLogin, err) }()

	email := entity.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !user.HasPassword() {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "federated account"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	out, err = srv.issue(user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User logged in", slog.String("user_id", user.ID))

	return out, nil
}

// FederatedLogin signs in with a Google ID token, linking or creating the account by email.
func (srv *identityService) FederatedLogin(ctx context.Context, input usecase.FederatedLoginInput) (out *usecase.AuthOutput, err error) {
	defer func() { srv.metrics.ObserveAuth(opFederatedLogin, err) }()

	identity, err := srv.verifier.Verify(ctx, input.IdentityToken, input.Email, input.Name)
	if err != nil {
		srv.log(ctx).Warn("Google token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidGoogleToken, err.Error())
	}

	if !strings.EqualFold(strings.TrimSpace(identity.Email), strings.TrimSpace(input.Email)) {
		srv.log(ctx).Warn("Google token email mismatch", slog.String("email", input.Email))

		return nil, errors.WithStack(domainerrors.ErrGoogleEmailMismatch)
	}

	email := entity.NormalizeEmail(input.Email)
	name := firstNonEmpty(strings.TrimSpace(input.Name), strings.TrimSpace(identity.Name), email)

	user, err := srv.reconcileFederatedUser(ctx, email, name, identity.SubjectID)
	if err != nil {
		return nil, err
	}

	return srv.issue(user)
}

func (srv *identityService) reconcileFederatedUser(ctx context.Context, email, name, subjectID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return srv.linkFederated(ctx, user, subjectID)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	newUser := &entity.User{
		Name:             name,
		Email:            email,
		LoginProvider:    entity.LoginProviderFederated,
		FederatedID:      subjectID,
		RegistrationDate: srv.clock.Now(),
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if !errors.Is(err, repository.ErrEmailTaken) {
			return nil, errors.Wrap(err, "failed to create federated user")
		}

		// A concurrent request created the account first.
		existing, findErr := srv.userRepo.FindByEmail(ctx, email)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to reload user after email race")
		}

		return srv.linkFederated(ctx, existing, subjectID)
	}

	srv.log(ctx).Info("Federated user created", slog.String("user_id", newUser.ID))

	return newUser, nil
}

func (srv *identityService) linkFederated(ctx context.Context, user *entity.User, subjectID string) (*entity.User, error) {
	if user.LoginProvider == entity.LoginProviderFederated {
		if user.FederatedID != subjectID {
			srv.log(ctx).Warn("Federated subject differs from stored subject", slog.String("user_id", user.ID))
		}

		return user, nil
	}

	user.LinkFederated(subjectID, srv.clock.Now())
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to link federated login")
	}

	srv.log(ctx).Info("Password account linked to federated login", slog.String("user_id", user.ID))

	return user, nil
}

// GetByID returns the user without touching storage state.
func (srv *identityService) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "get user")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// UpdateProfile changes the display name.
func (srv *identityService) UpdateProfile(ctx context.Context, id string, input usecase.UpdateProfileInput) (*entity.User, error) {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return nil, errors.WithStack(domainerrors.ErrNoUpdateData)
	}

	name := strings.TrimSpace(*input.Name)
	if utf8.RuneCountInString(name) < minNameLength {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("Nome deve ter pelo menos 2 caracteres"))
	}

	user, err := srv.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := srv.clock.Now()
	user.Name = name
	user.UpdatedAt = &now

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "update user")
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Debug("Profile updated", slog.String("user_id", id))

	return user, nil
}

// Logout is best effort: the client discards the token regardless.
func (srv *identityService) Logout(ctx context.Context, session *usecase.Session) {
	if session == nil {
		return
	}

	if err := srv.sessions.Blacklist(ctx, session.Token, session.Identity.UserID, session.ExpiresAt); err != nil {
		srv.log(ctx).Error("Logout could not blacklist token", slog.String("user_id", session.Identity.UserID), slog.Any("error", err))
	}
}

// LogoutAll blacklists the current token and revokes every token issued before now.
func (srv *identityService) LogoutAll(ctx context.Context, session *usecase.Session) {
	if session == nil {
		return
	}

	srv.Logout(ctx, session)

	if err := srv.sessions.RevokeAllForUser(ctx, session.Identity.UserID, srv.clock.Now()); err != nil {
		srv.log(ctx).Error("Logout-all could not revoke sessions", slog.String("user_id", session.Identity.UserID), slog.Any("error", err))
	}
}

func (srv *identityService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.Issue(service.TokenIdentity{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return &usecase.AuthOutput{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
