package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"wellness/config"
	"wellness/internal/domain/service"
	"wellness/internal/errors"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// Claim names carried by access tokens.
const (
	claimID    = "id"
	claimName  = "name"
	claimEmail = "email"
	claimJTI   = "jti"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte           // Secret key for signing access tokens.
	ttl    time.Duration    // Time-to-live for access tokens.
	now    func() time.Time // Clock used for iat, exp and validation.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a token embedding the identity with the configured expiry. Every
// token carries its own jti, so two issued in the same second still differ.
func (s *jwtService) Issue(identity service.TokenIdentity) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := jwt.MapClaims{
		claimID:    identity.UserID,
		claimName:  identity.Name,
		claimEmail: identity.Email,
		"iat":      issuedAt.Unix(),
		"exp":      expiresAt.Unix(),
		claimJTI:   uuid.NewString(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign access token")
	}

	return token, time.Unix(expiresAt.Unix(), 0), nil
}

// Verify checks the signature and expiry of a raw token.
func (s *jwtService) Verify(raw string) (*service.VerifiedToken, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, classifyParseError(err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errors.Wrap(service.ErrTokenMalformed, "exp claim")
	}

	var issuedAt time.Time
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		issuedAt = iat.Time
	}

	return service.NewVerifiedToken(raw, issuedAt, exp.Time, claims), nil
}

// Identity extracts the user identity from a verified token.
func (s *jwtService) Identity(token *service.VerifiedToken) (*service.TokenIdentity, error) {
	claims := token.Claims()

	userID, _ := claims[claimID].(string)
	if userID == "" {
		return nil, errors.Wrap(service.ErrTokenMalformed, "id claim missing")
	}

	name, _ := claims[claimName].(string)
	email, _ := claims[claimEmail].(string)

	return &service.TokenIdentity{
		UserID: userID,
		Name:   name,
		Email:  email,
	}, nil
}

func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return errors.Wrap(service.ErrTokenSignatureInvalid, err.Error())
	default:
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	}
}
