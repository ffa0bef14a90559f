package service

import (
	"context"
	"fmt"

	"comanda/internal/apierror"
	"comanda/internal/dto"
	"comanda/internal/model"
	"comanda/internal/policy"
	"comanda/internal/repository"
	"comanda/internal/security"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService covers staff account lifecycle and credential exchange.
type AuthService interface {
	SignIn(ctx context.Context, req dto.SignInRequest) (*dto.AuthResponse, error)
	SignUp(ctx context.Context, actorID string, req dto.SignUpRequest) (*dto.AuthResponse, error)
	DeleteAccount(ctx context.Context, actorID, username string) (*dto.EmployeeResponse, error)
	ListEmployees(ctx context.Context) (*dto.ListEmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (*dto.EmployeeResponse, error)
}

type authService struct {
	repo     repository.EmployeeRepository
	tokenCfg security.TokenConfig
}

func NewAuthService(repo repository.EmployeeRepository, tokenCfg security.TokenConfig) AuthService {
	return &authService{repo: repo, tokenCfg: tokenCfg}
}

func mapEmployee(e *model.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		UserName:   e.Username,
		Email:      e.Email,
		Phone:      e.Phone,
		Department: e.Department,
	}
}

func (s *authService) SignIn(ctx context.Context, req dto.SignInRequest) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierror.New(apierror.Conflict, "The email isn't registered")
	}

	if !security.Verify(req.Password, security.SaltedHash{Hash: user.PasswordHash, Salt: user.Salt}) {
		return nil, apierror.New(apierror.Conflict, "The password is incorrect")
	}

	token, err := security.IssueToken(s.tokenCfg, security.Claim{Name: security.SubjectClaim, Value: user.ID.Hex()})
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token}, nil
}

func (s *authService) SignUp(ctx context.Context, actorID string, req dto.SignUpRequest) (*dto.AuthResponse, error) {
	actor, err := resolveActor(ctx, s.repo, actorID)
	if err != nil {
		return nil, err
	}
	if denied := policy.Authorize(actor, policy.CreateEmployee, nil); denied != nil {
		return nil, denied
	}

	blank := req.UserName == "" || req.Email == "" || req.Password == "" ||
		req.Phone == "" || req.Department == ""
	if blank || len(req.Password) < 8 {
		return nil, apierror.New(apierror.Conflict,
			"The fields (userName, email, password, phone, and department) can't be blank and the password must be at least 8 characters long")
	}

	// Check all three uniqueness dimensions up front. This is check-then-act:
	// the unique indexes on the collection catch the race, surfacing as an
	// unacknowledged insert below.
	if existing, err := s.repo.FindByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apierror.New(apierror.Conflict, "The email, phone or username is already in use")
	}
	if existing, err := s.repo.FindByUsername(ctx, req.UserName); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apierror.New(apierror.Conflict, "The email, phone or username is already in use")
	}
	if existing, err := s.repo.FindByPhone(ctx, req.Phone); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apierror.New(apierror.Conflict, "The email, phone or username is already in use")
	}

	salted, err := security.GenerateSaltedHash(req.Password, security.DefaultSaltLength)
	if err != nil {
		return nil, err
	}

	employee := &model.Employee{
		ID:           primitive.NewObjectID(),
		Username:     req.UserName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: salted.Hash,
		Salt:         salted.Salt,
		Department:   req.Department,
	}
	ok, err := s.repo.Insert(ctx, employee)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.New(apierror.Conflict, "The email, phone or username is already in use")
	}

	// The token is issued for the account just created, not the acting admin.
	token, err := security.IssueToken(s.tokenCfg, security.Claim{Name: security.SubjectClaim, Value: employee.ID.Hex()})
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token}, nil
}

func (s *authService) DeleteAccount(ctx context.Context, actorID, username string) (*dto.EmployeeResponse, error) {
	actor, err := resolveActor(ctx, s.repo, actorID)
	if err != nil {
		return nil, err
	}
	if denied := policy.Authorize(actor, policy.DeleteEmployee, nil); denied != nil {
		return nil, denied
	}

	employee, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apierror.New(apierror.NotFound, fmt.Sprintf("The employee %s doesn't exist", username))
	}

	ok, err := s.repo.Delete(ctx, employee.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.New(apierror.Storage, "Internal server error")
	}
	return mapEmployee(employee), nil
}

func (s *authService) ListEmployees(ctx context.Context) (*dto.ListEmployeeResponse, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.ListEmployeeResponse{Employees: make([]dto.EmployeeResponse, 0, len(employees))}
	for i := range employees {
		resp.Employees = append(resp.Employees, *mapEmployee(&employees[i]))
	}
	return resp, nil
}

func (s *authService) GetEmployee(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apierror.New(apierror.InvalidInput, "The id is not valid")
	}
	employee, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apierror.New(apierror.NotFound, "The employee doesn't exist")
	}
	return mapEmployee(employee), nil
}
