package sharing

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/revenue-coach-api/internal/config"
	"github.com/vfg2006/revenue-coach-api/internal/domain"
)

var ErrInvalidShareToken = errors.New("invalid share token")

const issuer = "revenue-coach"

// Sharer assina e valida links de compartilhamento de uma comparação
type Sharer interface {
	Encode(current, target domain.ScenarioInput) (string, error)
	Decode(token string) (current, target domain.ScenarioInput, err error)
}

// ShareClaims carrega os dois cenários informados no formulário
type ShareClaims struct {
	Current domain.ScenarioInput `json:"current"`
	Target  domain.ScenarioInput `json:"target"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(cfg *config.Config) Sharer {
	return &Service{
		secret: []byte(cfg.Share.Secret),
		ttl:    cfg.Share.TTL,
		now:    time.Now,
	}
}

func (s *Service) Encode(current, target domain.ScenarioInput) (string, error) {
	now := s.now()

	claims := ShareClaims{
		Current: current,
		Target:  target,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) Decode(tokenString string) (domain.ScenarioInput, domain.ScenarioInput, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ShareClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return domain.ScenarioInput{}, domain.ScenarioInput{}, fmt.Errorf("%w: %v", ErrInvalidShareToken, err)
	}

	claims, ok := token.Claims.(*ShareClaims)
	if !ok || !token.Valid {
		return domain.ScenarioInput{}, domain.ScenarioInput{}, ErrInvalidShareToken
	}

	if !claims.Current.FranchiseType.IsValid() || !claims.Target.FranchiseType.IsValid() {
		return domain.ScenarioInput{}, domain.ScenarioInput{}, ErrInvalidShareToken
	}

	return claims.Current, claims.Target, nil
}
