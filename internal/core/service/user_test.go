package service_test

import (
	"context"
	"testing"

	"github.com/avekrasnov/checkout/internal/core/domain"
	"github.com/avekrasnov/checkout/internal/core/port/mock"
	"github.com/avekrasnov/checkout/internal/core/service"
	"github.com/avekrasnov/checkout/internal/core/utils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func registerRequest() *domain.RegisterUserRequest {
	return &domain.RegisterUserRequest{
		Email:     "Jane.Doe@Example.com",
		Password:  "Str0ng!pass",
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "+15551234567",
	}
}

func TestService_RegisterUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tests := []struct {
		name     string
		mutate   func(req *domain.RegisterUserRequest)
		mock     prepareMocks
		expError error
	}{
		{
			name: "good registration",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "jane.doe@example.com").
					Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
						return user, nil
					})
			},
		},
		{
			name:     "bad email",
			mutate:   func(req *domain.RegisterUserRequest) { req.Email = "not-an-email" },
			expError: domain.ErrValidation,
		},
		{
			name:     "weak password",
			mutate:   func(req *domain.RegisterUserRequest) { req.Password = "password" },
			expError: domain.ErrValidation,
		},
		{
			name:     "short first name",
			mutate:   func(req *domain.RegisterUserRequest) { req.FirstName = " J " },
			expError: domain.ErrValidation,
		},
		{
			name: "email already taken",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "jane.doe@example.com").
					Return(&domain.User{ID: "user-1"}, nil)
			},
			expError: domain.ErrConflictingData,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, _ := newTestService(t, mockCtrl, test.mock)

			req := registerRequest()
			if test.mutate != nil {
				test.mutate(req)
			}

			user, err := s.RegisterUser(context.Background(), req)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, user)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "jane.doe@example.com", user.Email)
			assert.Equal(t, domain.UserStatusActive, user.Status)
			assert.NoError(t, utils.ComparePassword("Str0ng!pass", user.Password))
		})
	}
}

func TestService_LoginUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	hashed, err := utils.HashPassword("Str0ng!pass")
	assert.NoError(t, err)
	stored := &domain.User{ID: "user-1", Email: "jane.doe@example.com", Password: hashed}

	tests := []struct {
		name     string
		email    string
		password string
		mock     func(repo *mock.MockRepository, ts *mock.MockTokenService)
		expToken string
		expError error
	}{
		{
			name:     "good login",
			email:    "Jane.Doe@Example.com",
			password: "Str0ng!pass",
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "jane.doe@example.com").
					Return(stored, nil)
				ts.EXPECT().CreateToken(stored).Return("token-1", nil)
			},
			expToken: "token-1",
		},
		{
			name:     "unknown user",
			email:    "nobody@example.com",
			password: "Str0ng!pass",
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "nobody@example.com").
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "jane.doe@example.com",
			password: "Wr0ng!pass",
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "jane.doe@example.com").
					Return(stored, nil)
			},
			expError: domain.ErrInvalidCredentials,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			gateway := mock.NewMockPaymentGateway(mockCtrl)
			test.mock(repo, ts)

			s, err := service.NewService(repo, ts, gateway, logger)
			assert.NoError(t, err)

			token, err := s.LoginUser(context.Background(), test.email, test.password)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.expToken, token)
		})
	}
}

func TestService_UpdateUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
			repo.EXPECT().ReadUser(gomock.Any(), "user-1").
				Return(&domain.User{ID: "user-1", FirstName: "Jane", LastName: "Doe"}, nil)
			repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
					return user, nil
				})
		})

		user, err := s.UpdateUser(context.Background(), "user-1", "Janet", "", "")
		assert.NoError(t, err)
		assert.Equal(t, "Janet", user.FirstName)
		assert.Equal(t, "Doe", user.LastName)
	})

	t.Run("bad phone rejected", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
			repo.EXPECT().ReadUser(gomock.Any(), "user-1").
				Return(&domain.User{ID: "user-1"}, nil)
		})

		_, err := s.UpdateUser(context.Background(), "user-1", "", "", "abc")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
