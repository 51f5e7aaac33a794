package users

import (
	"context"
	"fmt"
	"strconv"

	cognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// mockCognito is an in-memory identity provider for unit tests.
type mockCognito struct {
	users       map[string]map[string]string // username -> attributes
	enabled     map[string]bool
	permanentPw map[string]bool
	deleted     []string

	// pages drives ListUsers pagination; each entry is one page of usernames.
	pages [][]string

	lastAuthParams map[string]string

	failCreate error
	failAuth   error
}

func newMockCognito() *mockCognito {
	return &mockCognito{
		users:       map[string]map[string]string{},
		enabled:     map[string]bool{},
		permanentPw: map[string]bool{},
	}
}

func (m *mockCognito) AdminCreateUser(ctx context.Context, params *cognito.AdminCreateUserInput, optFns ...func(*cognito.Options)) (*cognito.AdminCreateUserOutput, error) {
	if m.failCreate != nil {
		return nil, m.failCreate
	}
	attrs := map[string]string{}
	for _, a := range params.UserAttributes {
		attrs[*a.Name] = *a.Value
	}
	m.users[*params.Username] = attrs
	return &cognito.AdminCreateUserOutput{
		User: &types.UserType{Username: params.Username},
	}, nil
}

func (m *mockCognito) AdminEnableUser(ctx context.Context, params *cognito.AdminEnableUserInput, optFns ...func(*cognito.Options)) (*cognito.AdminEnableUserOutput, error) {
	if _, ok := m.users[*params.Username]; !ok {
		return nil, &types.UserNotFoundException{}
	}
	m.enabled[*params.Username] = true
	return &cognito.AdminEnableUserOutput{}, nil
}

func (m *mockCognito) AdminSetUserPassword(ctx context.Context, params *cognito.AdminSetUserPasswordInput, optFns ...func(*cognito.Options)) (*cognito.AdminSetUserPasswordOutput, error) {
	if _, ok := m.users[*params.Username]; !ok {
		return nil, &types.UserNotFoundException{}
	}
	m.permanentPw[*params.Username] = params.Permanent
	return &cognito.AdminSetUserPasswordOutput{}, nil
}

func (m *mockCognito) AdminDeleteUser(ctx context.Context, params *cognito.AdminDeleteUserInput, optFns ...func(*cognito.Options)) (*cognito.AdminDeleteUserOutput, error) {
	if _, ok := m.users[*params.Username]; !ok {
		return nil, &types.UserNotFoundException{}
	}
	delete(m.users, *params.Username)
	m.deleted = append(m.deleted, *params.Username)
	return &cognito.AdminDeleteUserOutput{}, nil
}

func (m *mockCognito) AdminGetUser(ctx context.Context, params *cognito.AdminGetUserInput, optFns ...func(*cognito.Options)) (*cognito.AdminGetUserOutput, error) {
	if _, ok := m.users[*params.Username]; !ok {
		return nil, &types.UserNotFoundException{}
	}
	return &cognito.AdminGetUserOutput{Username: params.Username}, nil
}

func (m *mockCognito) AdminInitiateAuth(ctx context.Context, params *cognito.AdminInitiateAuthInput, optFns ...func(*cognito.Options)) (*cognito.AdminInitiateAuthOutput, error) {
	m.lastAuthParams = params.AuthParameters
	if m.failAuth != nil {
		return nil, m.failAuth
	}
	access, id, refresh := "access-token", "id-token", "refresh-token"
	return &cognito.AdminInitiateAuthOutput{
		AuthenticationResult: &types.AuthenticationResultType{
			AccessToken:  &access,
			IdToken:      &id,
			RefreshToken: &refresh,
		},
	}, nil
}

func (m *mockCognito) ListUsers(ctx context.Context, params *cognito.ListUsersInput, optFns ...func(*cognito.Options)) (*cognito.ListUsersOutput, error) {
	page := 0
	if params.PaginationToken != nil {
		p, err := strconv.Atoi(*params.PaginationToken)
		if err != nil {
			return nil, fmt.Errorf("bad pagination token %q", *params.PaginationToken)
		}
		page = p
	}
	if page >= len(m.pages) {
		return &cognito.ListUsersOutput{}, nil
	}

	out := &cognito.ListUsersOutput{}
	for _, name := range m.pages[page] {
		n := name
		out.Users = append(out.Users, types.UserType{Username: &n})
	}
	if page+1 < len(m.pages) {
		next := strconv.Itoa(page + 1)
		out.PaginationToken = &next
	}
	return out, nil
}
