package users

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chitsa/order-service/internal/apperrors"
	"github.com/chitsa/order-service/internal/aws"
	"github.com/chitsa/order-service/internal/logger"
	"github.com/chitsa/order-service/internal/metrics"
)

const (
	attributeEmail       = "email"
	attributePhoneNumber = "phone_number"
	usernamePrefix       = "user_"

	paramUsername   = "USERNAME"
	paramPassword   = "PASSWORD"
	paramSecretHash = "SECRET_HASH"
)

// Service adapts the Cognito identity provider. User accounts, passwords and
// token issuance are fully owned upstream; this layer only shapes requests
// and translates provider failures into the error taxonomy.
type Service struct {
	client       aws.CognitoAPI
	userPoolID   string
	clientID     string
	clientSecret string
	emitter      *metrics.Emitter
}

func NewService(client aws.CognitoAPI, userPoolID, clientID, clientSecret string, emitter *metrics.Emitter) *Service {
	return &Service{
		client:       client,
		userPoolID:   userPoolID,
		clientID:     clientID,
		clientSecret: clientSecret,
		emitter:      emitter,
	}
}

// Register creates a user with a system-generated username, attaches the
// email and phone attributes, then enables the account and makes the given
// password permanent so no first-login change is forced.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (string, error) {
	username := usernamePrefix + uuid.NewString()

	_, err := s.client.AdminCreateUser(ctx, &cognitoidentityprovider.AdminCreateUserInput{
		UserPoolId: &s.userPoolID,
		Username:   &username,
		UserAttributes: []types.AttributeType{
			{Name: strPtr(attributeEmail), Value: &req.Email},
			{Name: strPtr(attributePhoneNumber), Value: &req.PhoneNumber},
		},
		TemporaryPassword: &req.Password,
		MessageAction:     types.MessageActionTypeSuppress,
	})
	if err != nil {
		var invalidPassword *types.InvalidPasswordException
		if errors.As(err, &invalidPassword) {
			return "", apperrors.Wrap(apperrors.KindInvalidArgument, "password does not conform with the password policy", err)
		}
		var invalidParam *types.InvalidParameterException
		if errors.As(err, &invalidParam) {
			return "", apperrors.Wrap(apperrors.KindInvalidArgument, "invalid user attributes", err)
		}
		logger.L().Error("cognito create user failed", zap.Error(err))
		return "", apperrors.Wrap(apperrors.KindUpstream, "could not create user", err)
	}

	if err := s.enableUser(ctx, username); err != nil {
		return "", err
	}
	if err := s.setPermanentPassword(ctx, username, req.Password); err != nil {
		return "", err
	}

	s.emitter.UserRegistered(ctx)
	return username, nil
}

func (s *Service) enableUser(ctx context.Context, username string) error {
	_, err := s.client.AdminEnableUser(ctx, &cognitoidentityprovider.AdminEnableUserInput{
		UserPoolId: &s.userPoolID,
		Username:   &username,
	})
	if err != nil {
		logger.L().Error("cognito enable user failed", zap.String("username", username), zap.Error(err))
		return apperrors.Wrap(apperrors.KindUpstream, "could not enable user", err)
	}
	return nil
}

func (s *Service) setPermanentPassword(ctx context.Context, username, password string) error {
	_, err := s.client.AdminSetUserPassword(ctx, &cognitoidentityprovider.AdminSetUserPasswordInput{
		UserPoolId: &s.userPoolID,
		Username:   &username,
		Password:   &password,
		Permanent:  true,
	})
	if err != nil {
		logger.L().Error("cognito set password failed", zap.String("username", username), zap.Error(err))
		return apperrors.Wrap(apperrors.KindUpstream, "could not set user password", err)
	}
	return nil
}

// Login authenticates with the admin password flow. Every provider rejection
// collapses to one Authentication-kind error with a generic message; the
// provider reason is logged here and never forwarded.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*TokenSet, error) {
	out, err := s.client.AdminInitiateAuth(ctx, &cognitoidentityprovider.AdminInitiateAuthInput{
		UserPoolId: &s.userPoolID,
		ClientId:   &s.clientID,
		AuthFlow:   types.AuthFlowTypeAdminUserPasswordAuth,
		AuthParameters: map[string]string{
			paramUsername:   req.Username,
			paramPassword:   req.Password,
			paramSecretHash: SecretHash(s.clientID, s.clientSecret, req.Username),
		},
	})
	if err != nil {
		logger.L().Warn("cognito auth rejected", zap.String("username", req.Username), zap.Error(err))
		return nil, apperrors.Wrap(apperrors.KindAuthentication, "invalid username or password", err)
	}
	result := out.AuthenticationResult
	if result == nil {
		// auth challenge instead of tokens; this flow does not answer challenges
		return nil, apperrors.New(apperrors.KindAuthentication, "invalid username or password")
	}

	return &TokenSet{
		AccessToken:  deref(result.AccessToken),
		IDToken:      deref(result.IdToken),
		RefreshToken: deref(result.RefreshToken),
	}, nil
}

// Delete removes one user; an unknown username is NotFound.
func (s *Service) Delete(ctx context.Context, username string) error {
	_, err := s.client.AdminDeleteUser(ctx, &cognitoidentityprovider.AdminDeleteUserInput{
		UserPoolId: &s.userPoolID,
		Username:   &username,
	})
	if err != nil {
		var notFound *types.UserNotFoundException
		if errors.As(err, &notFound) {
			return apperrors.Wrap(apperrors.KindNotFound, "invalid user id", err)
		}
		logger.L().Error("cognito delete user failed", zap.String("username", username), zap.Error(err))
		return apperrors.Wrap(apperrors.KindUpstream, "could not delete user", err)
	}
	return nil
}

// DeleteAll sweeps the pool page by page, deleting each user. The sweep is
// not atomic: a mid-sweep failure leaves earlier pages deleted.
func (s *Service) DeleteAll(ctx context.Context) error {
	var paginationToken *string
	for {
		out, err := s.client.ListUsers(ctx, &cognitoidentityprovider.ListUsersInput{
			UserPoolId:      &s.userPoolID,
			PaginationToken: paginationToken,
		})
		if err != nil {
			logger.L().Error("cognito list users failed", zap.Error(err))
			return apperrors.Wrap(apperrors.KindUpstream, "could not list users", err)
		}
		for _, user := range out.Users {
			if user.Username == nil {
				continue
			}
			if err := s.Delete(ctx, *user.Username); err != nil {
				return err
			}
		}
		if out.PaginationToken == nil {
			return nil
		}
		paginationToken = out.PaginationToken
	}
}

// Exists reports whether a user id resolves upstream. Only a provider
// not-found collapses to false; other failures are returned for the caller
// to classify.
func (s *Service) Exists(ctx context.Context, userID string) (bool, error) {
	_, err := s.client.AdminGetUser(ctx, &cognitoidentityprovider.AdminGetUserInput{
		UserPoolId: &s.userPoolID,
		Username:   &userID,
	})
	if err != nil {
		var notFound *types.UserNotFoundException
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, apperrors.Wrap(apperrors.KindUpstream, "could not look up user", err)
	}
	return true, nil
}

func strPtr(s string) *string { return &s }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
