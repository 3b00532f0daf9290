package userapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	userEntity "blogicum/internal/core/user"
	userPort "blogicum/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "blogicum"

// UserService سرویس مدیریت کاربران
type UserService struct {
	UserRepository userPort.UserRepository
	TokenBlacklist userPort.TokenBlacklist
	Logger         *zap.Logger
	Now            func() time.Time

	jwtKey   []byte
	tokenTTL time.Duration
}

func NewUserService(repo userPort.UserRepository, blacklist userPort.TokenBlacklist, jwtKey []byte, tokenTTL time.Duration, logger *zap.Logger) *UserService {
	return &UserService{
		UserRepository: repo,
		TokenBlacklist: blacklist,
		Logger:         logger,
		Now:            time.Now,
		jwtKey:         jwtKey,
		tokenTTL:       tokenTTL,
	}
}

// tokenClaims are the JWT claims issued at login. Id carries the token id
// used for revocation.
type tokenClaims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

// RegisterUser ثبت‌نام کاربر جدید
func (s *UserService) RegisterUser(ctx context.Context, form userEntity.RegistrationForm) (*userPort.UserDTO, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	// بررسی اینکه آیا کاربر با این یوزرنیم یا ایمیل قبلاً ثبت شده است
	if err := s.checkAvailable(ctx, uuid.Nil, form.Username, form.Email); err != nil {
		return nil, err
	}

	// هش کردن پسورد
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u, err := s.UserRepository.Create(ctx, &userEntity.User{
		Username:  form.Username,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     userEntity.OptionalEmail(form.Email),
		Password:  string(hashedPassword),
	})
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.Logger.Info("User registered", zap.String("userID", u.ID.String()), zap.String("username", u.Username))
	return userPort.NewUserDTO(u), nil
}

// LoginUser ورود کاربر و صدور توکن JWT
func (s *UserService) LoginUser(ctx context.Context, form userEntity.LoginForm) (*userPort.LoginResponse, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	u, err := s.UserRepository.FindByUsername(ctx, form.Username)
	if err != nil {
		if errors.Is(err, userEntity.ErrNotFound) {
			return nil, userEntity.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("finding user: %w", err)
	}

	// مقایسه پسورد هش‌شده
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(form.Password)); err != nil {
		s.Logger.Info("Invalid password", zap.String("username", form.Username))
		return nil, userEntity.ErrInvalidCredentials
	}

	expiresAt := s.Now().Add(s.tokenTTL)
	token, err := s.generateJWT(u, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("could not generate token: %w", err)
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// generateJWT برای تولید توکن JWT
func (s *UserService) generateJWT(u *userEntity.User, expiresAt time.Time) (string, error) {
	claims := &tokenClaims{
		Username: u.Username,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.Must(uuid.NewV4()).String(),
			Subject:   u.ID.String(),
			Issuer:    tokenIssuer,
			IssuedAt:  s.Now().Unix(),
			ExpiresAt: expiresAt.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

// Authenticate validates a bearer token and returns the caller it names.
func (s *UserService) Authenticate(ctx context.Context, tokenString string) (*userPort.Identity, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtKey, nil
	})
	if err != nil || !token.Valid || claims.Issuer != tokenIssuer {
		return nil, userEntity.ErrInvalidCredentials
	}

	revoked, err := s.TokenBlacklist.IsRevoked(ctx, claims.Id)
	if err != nil {
		return nil, fmt.Errorf("checking token: %w", err)
	}
	if revoked {
		return nil, userEntity.ErrTokenRevoked
	}

	userID, err := uuid.FromString(claims.Subject)
	if err != nil {
		return nil, userEntity.ErrInvalidCredentials
	}

	// the username may have changed since the token was issued
	u, err := s.UserRepository.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userEntity.ErrNotFound) {
			return nil, userEntity.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}

	return &userPort.Identity{
		UserID:    u.ID,
		Username:  u.Username,
		TokenID:   claims.Id,
		ExpiresAt: time.Unix(claims.ExpiresAt, 0),
	}, nil
}

// LogoutUser revokes the token the caller authenticated with.
func (s *UserService) LogoutUser(ctx context.Context, identity *userPort.Identity) error {
	ttl := identity.ExpiresAt.Sub(s.Now())
	if err := s.TokenBlacklist.Revoke(ctx, identity.TokenID, ttl); err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}
	s.Logger.Info("User logged out", zap.String("userID", identity.UserID.String()))
	return nil
}

// UpdateProfile changes the caller's own username, names and email.
func (s *UserService) UpdateProfile(ctx context.Context, actorID uuid.UUID, form userEntity.ProfileForm) (*userPort.UserDTO, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	u, err := s.UserRepository.FindByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("loading user: %w", err)
	}

	if err := s.checkAvailable(ctx, u.ID, form.Username, form.Email); err != nil {
		return nil, err
	}

	u.Username = form.Username
	u.FirstName = form.FirstName
	u.LastName = form.LastName
	u.Email = userEntity.OptionalEmail(form.Email)
	if err := s.UserRepository.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	return userPort.NewUserDTO(u), nil
}

// checkAvailable returns ErrUsernameTaken when the username or the email
// belongs to a user other than self. An empty email is never taken.
func (s *UserService) checkAvailable(ctx context.Context, self uuid.UUID, username, email string) error {
	existing, err := s.UserRepository.FindByUsername(ctx, username)
	switch {
	case err == nil && existing.ID != self:
		return userEntity.ErrUsernameTaken
	case err != nil && !errors.Is(err, userEntity.ErrNotFound):
		return fmt.Errorf("checking username: %w", err)
	}

	if email == "" {
		return nil
	}
	existing, err = s.UserRepository.FindByEmail(ctx, email)
	switch {
	case err == nil && existing.ID != self:
		return userEntity.ErrUsernameTaken
	case err != nil && !errors.Is(err, userEntity.ErrNotFound):
		return fmt.Errorf("checking email: %w", err)
	}
	return nil
}
