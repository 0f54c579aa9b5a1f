package services

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"

	"travelcms/errors"
	"travelcms/models"
	"travelcms/services/logger"
)

// TokenTTLMinutes is the lifetime of an admin access token
const TokenTTLMinutes = 60 * 24 * 3

// GoogleVerifier checks a Google ID token and returns its claims
type GoogleVerifier func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

type AuthService struct {
	db             *gorm.DB
	logger         logger.Logger
	secret         string
	googleClientID string
	verify         GoogleVerifier
	now            func() time.Time
}

type AuthServiceOptions struct {
	DB             *gorm.DB
	Logger         logger.Logger
	Secret         string
	GoogleClientID string
	// Verify defaults to idtoken.Validate
	Verify GoogleVerifier
}

// LoginResult is returned by both sign-in flows
type LoginResult struct {
	Admin       models.AdminUser `json:"adminInfo"`
	AccessToken string           `json:"accessToken"`
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Verify == nil {
		opts.Verify = idtoken.Validate
	}
	return &AuthService{
		db:             opts.DB,
		logger:         opts.Logger,
		secret:         opts.Secret,
		googleClientID: opts.GoogleClientID,
		verify:         opts.Verify,
		now:            time.Now,
	}
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *AuthService) adminByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&admin).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeUserNotFound, "Invalid email or password", err)
	}
	if err != nil {
		return nil, dbError(err, "admin")
	}
	return &admin, nil
}

func (s *AuthService) issue(ctx context.Context, admin *models.AdminUser) (*LoginResult, error) {
	token, err := GenerateToken(AdminInfo{AdminID: admin.ID, Email: admin.Email}, s.secret, TokenTTLMinutes)
	if err != nil {
		return nil, err
	}
	now := s.now()
	admin.LastLoginAt = &now
	if err := s.db.WithContext(ctx).Model(admin).UpdateColumn("last_login_at", now).Error; err != nil {
		s.logger.Error("failed to record login for %s: %v", admin.Email, err)
	}
	return &LoginResult{Admin: *admin, AccessToken: token}, nil
}

// Login checks an email and password pair against an active admin
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	admin, err := s.adminByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !admin.IsActive {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Account is disabled", nil)
	}
	if admin.PasswordHash == "" || !CheckPassword(admin.PasswordHash, password) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidPassword, "Invalid email or password", nil)
	}
	s.logger.Info("admin %s signed in", admin.Email)
	return s.issue(ctx, admin)
}

// GoogleLogin signs in an existing active admin with a Google ID token.
// Unknown emails are rejected rather than provisioned.
func (s *AuthService) GoogleLogin(ctx context.Context, idToken string) (*LoginResult, error) {
	if s.googleClientID == "" {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Google sign-in is not configured", nil)
	}
	payload, err := s.verify(ctx, idToken, s.googleClientID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid Google token", err)
	}
	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified {
		return nil, errors.NewAppError(errors.ErrCodeInvalidEmail, "Email has not been verified", nil)
	}
	admin, err := s.adminByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "No admin account for this Google user", err)
	}
	if !admin.IsActive {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Account is disabled", nil)
	}
	if picture, _ := payload.Claims["picture"].(string); picture != "" && admin.Avatar == "" {
		admin.Avatar = picture
		s.db.WithContext(ctx).Model(admin).UpdateColumn("avatar", picture)
	}
	return s.issue(ctx, admin)
}

// CreateAdmin registers an active admin, or resets the password of an existing one
func (s *AuthService) CreateAdmin(ctx context.Context, email, name, password string) (*models.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Email and password are required", nil)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	var admin models.AdminUser
	err = s.db.WithContext(ctx).Where("email = ?", email).
		Assign(models.AdminUser{Name: name, PasswordHash: hash, IsActive: true}).
		FirstOrCreate(&admin, models.AdminUser{Email: email}).Error
	if err != nil {
		return nil, dbError(err, "admin")
	}
	return &admin, nil
}

// Authenticate resolves a bearer token to its active admin
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.AdminUser, error) {
	info, err := ParseToken(token, s.secret)
	if err != nil {
		return nil, err
	}
	var admin models.AdminUser
	if err := s.db.WithContext(ctx).First(&admin, info.AdminID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Admin not found", err)
	}
	if !admin.IsActive {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Account is disabled", nil)
	}
	return &admin, nil
}
