package tests

import (
	"context"
	"errors"
	"testing"

	"assettrack/internal/config"
	"assettrack/internal/dto"
	"assettrack/internal/model"
	"assettrack/internal/repository"
	"assettrack/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ── Stub ──────────────────────────────────────────────────────────────────────

// stubUserRepo is an in-memory UserRepository.
type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) seed(companyID uuid.UUID, username, email string) *model.User {
	u := &model.User{
		ID:        uuid.New(),
		CompanyID: companyID,
		Username:  username,
		FullName:  username,
		Role:      "staff",
		Active:    true,
	}
	if email != "" {
		u.Email = &email
	}
	r.users[u.ID] = u
	return u
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username && u.Active {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUserRepo) List(_ context.Context, companyID uuid.UUID) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if u.CompanyID == companyID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// ── Fixtures ──────────────────────────────────────────────────────────────────

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
}

func seedLoginUser(repo *stubUserRepo, companyID uuid.UUID, username, password string) *model.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	u := repo.seed(companyID, username, username+"@demo.local")
	u.PasswordHash = string(hash)
	return u
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	repo := newStubUserRepo()
	companyID := uuid.New()
	seedLoginUser(repo, companyID, "jane", "s3cretpass")
	svc := service.NewAuthService(repo, testConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "jane",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "jane", resp.User.Username)
	assert.Equal(t, companyID.String(), resp.User.CompanyID)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedLoginUser(repo, uuid.New(), "jane", "s3cretpass")
	svc := service.NewAuthService(repo, testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "jane",
		Password: "wrong",
	})
	assert.ErrorContains(t, err, "invalid credentials")
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := service.NewAuthService(newStubUserRepo(), testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})
	// Unknown user and wrong password are indistinguishable on purpose.
	assert.ErrorContains(t, err, "invalid credentials")
}

func TestRefresh_IssuesNewTokens(t *testing.T) {
	repo := newStubUserRepo()
	seedLoginUser(repo, uuid.New(), "jane", "s3cretpass")
	svc := service.NewAuthService(repo, testConfig())

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "jane",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "jane", refreshed.User.Username)
}

func TestRefresh_RejectsGarbageToken(t *testing.T) {
	svc := service.NewAuthService(newStubUserRepo(), testConfig())

	_, err := svc.Refresh(context.Background(), "not.a.jwt")
	assert.Error(t, err)
}

func TestRefresh_InactiveUser(t *testing.T) {
	repo := newStubUserRepo()
	u := seedLoginUser(repo, uuid.New(), "jane", "s3cretpass")
	svc := service.NewAuthService(repo, testConfig())

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "jane",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	u.Active = false
	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorContains(t, err, "inactive")
}

func TestCreateUser_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	companyID := uuid.New()
	svc := service.NewAuthService(repo, testConfig())

	email := "new@demo.local"
	resp, err := svc.CreateUser(context.Background(), companyID, dto.CreateUserRequest{
		Username: "newbie",
		FullName: "New Person",
		Email:    &email,
		Password: "longenough",
		Role:     "manager",
	})
	require.NoError(t, err)
	assert.Equal(t, "manager", resp.Role)
	assert.True(t, resp.Active)

	stored, err := repo.FindByUsername(context.Background(), "newbie")
	require.NoError(t, err)
	assert.NotEqual(t, "longenough", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("longenough")))
}
