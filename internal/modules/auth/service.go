package auth

import (
	"strings"

	"realty/internal/domain"
	"realty/internal/modules/registry"

	"golang.org/x/crypto/bcrypt"
)

type tokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}

// Service is the credential layer in front of the registry: it hashes
// passwords before they reach the user directory and turns a successful
// authentication into an access token. Username uniqueness is enforced
// here — the registry treats it as a caller contract.
type Service struct {
	reg *registry.Service
	jwt tokenIssuer
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

func NewService(reg *registry.Service, jwt tokenIssuer) *Service {
	return &Service{reg: reg, jwt: jwt}
}

// PasswordComparer is the credential seam the registry is constructed with
// when this service fronts it: stored credentials are bcrypt hashes.
func PasswordComparer() registry.CredentialComparer {
	return registry.CredentialComparerFunc(func(stored, supplied string) bool {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	})
}

func (s *Service) Register(req RegisterRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || strings.TrimSpace(req.Password) == "" {
		return nil, ErrValidation
	}
	if _, exists := s.reg.UserByUsername(username); exists {
		return nil, ErrUsernameTaken
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username: username,
		Email:    strings.TrimSpace(req.Email),
		Password: hash,
	}

	switch domain.UserRole(req.Role) {
	case domain.RoleSeller:
		user.Role = domain.RoleSeller
		user.Seller = &domain.SellerProfile{
			ContactInfo: req.ContactInfo,
			Rating:      req.Rating,
		}
	case domain.RoleBuyer:
		user.Role = domain.RoleBuyer
		user.Buyer = &domain.BuyerProfile{
			BudgetRange:    req.BudgetRange,
			LocationWanted: req.LocationWanted,
		}
	default:
		return nil, ErrValidation
	}

	return s.reg.RegisterUser(user)
}

func (s *Service) Login(req LoginRequest) (*LoginResult, error) {
	user, ok := s.reg.Authenticate(req.Username, req.Password)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, AccessToken: token}, nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// HashPassword is exposed for the profile handler, which replaces the
// stored credential on profile updates.
func (s *Service) HashPassword(password string) (string, error) {
	return s.hashPassword(password)
}
