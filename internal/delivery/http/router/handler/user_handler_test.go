package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"drivematch/internal/domain/entity"
	domainerrors "drivematch/internal/domain/errors"
	mockUsecase "drivematch/internal/mocks/usecase"
	"drivematch/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Register_Success(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	body := `{
		"name": "Dana Example",
		"email": "dana@example.com",
		"phoneNumber": "555-0100",
		"password": "correct-horse-battery",
		"ssn": "123-45-6789"
	}`

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Run(func(_ context.Context, input *usecase.RegisterInput) {
			assert.Equal(t, "dana@example.com", input.Email)
			assert.Equal(t, "123-45-6789", input.SSN)
		}).
		Return(&usecase.RegisterOutput{
			User: &entity.UserAccount{
				ID:           "68b1c0ffee0000000000aaaa",
				Name:         "Dana Example",
				Email:        "dana@example.com",
				PhoneNumber:  "555-0100",
				PasswordHash: "$2a$12$secret",
				SSNLast4:     "6789",
				CreatedAt:    time.Now().UTC(),
			},
		}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/api/users/register", body)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "dana@example.com")
	assert.Contains(t, rec.Body.String(), `"6789"`)

	// The password hash never serializes into the response.
	assert.NotContains(t, rec.Body.String(), "$2a$12$secret")
}

func TestUserHandler_Register_MissingFields(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	c, rec := newTestContext(t, http.MethodPost, "/api/users/register", `{"email": "dana@example.com"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestUserHandler_Register_DuplicateEmail(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	body := `{
		"name": "Dana Example",
		"email": "dana@example.com",
		"phoneNumber": "555-0100",
		"password": "correct-horse-battery",
		"ssn": "123-45-6789"
	}`

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered"))

	c, rec := newTestContext(t, http.MethodPost, "/api/users/register", body)
	err := h.Register(c)
	require.Error(t, err)

	handleError(t, err, c)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_ALREADY_EXISTS")
}

func TestUserHandler_Login_Success(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.LoginOutput{
			User: &entity.UserAccount{
				ID:          "68b1c0ffee0000000000aaaa",
				Name:        "Dana Example",
				Email:       "dana@example.com",
				PhoneNumber: "555-0100",
			},
		}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/api/users/login", `{"email": "dana@example.com", "phoneNumber": "555-0100"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Login successful")
	assert.Contains(t, rec.Body.String(), "dana@example.com")
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "no account matches email and phone"))

	c, rec := newTestContext(t, http.MethodPost, "/api/users/login", `{"email": "dana@example.com", "phoneNumber": "555-0199"}`)
	err := h.Login(c)
	require.Error(t, err)

	handleError(t, err, c)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestUserHandler_Login_InvalidEmailFormat(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	c, rec := newTestContext(t, http.MethodPost, "/api/users/login", `{"email": "not-an-email", "phoneNumber": "555-0100"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
