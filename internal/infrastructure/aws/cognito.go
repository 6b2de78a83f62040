package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	apperrors "github.com/HackathonFIAPX/hackathon-fiapx-admin/pkg/errors"
)

// CognitoHandler wraps the user-pool account operations. Token verification
// lives in CognitoVerifier; this type only creates accounts and exchanges
// credentials for tokens.
type CognitoHandler struct {
	client     *cognitoidentityprovider.Client
	userPoolID string
	clientID   string
}

func NewCognitoHandler(client *cognitoidentityprovider.Client, userPoolID, clientID string) *CognitoHandler {
	return &CognitoHandler{
		client:     client,
		userPoolID: userPoolID,
		clientID:   clientID,
	}
}

// SignUp creates the account with a temporary password and immediately makes
// the password permanent, skipping the Cognito confirmation email flow.
func (h *CognitoHandler) SignUp(ctx context.Context, email, password string) error {
	_, err := h.client.AdminCreateUser(ctx, &cognitoidentityprovider.AdminCreateUserInput{
		UserPoolId:        aws.String(h.userPoolID),
		Username:          aws.String(email),
		TemporaryPassword: aws.String(password),
		MessageAction:     types.MessageActionTypeSuppress,
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(email)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create cognito user: %w", err)
	}

	_, err = h.client.AdminSetUserPassword(ctx, &cognitoidentityprovider.AdminSetUserPasswordInput{
		UserPoolId: aws.String(h.userPoolID),
		Username:   aws.String(email),
		Password:   aws.String(password),
		Permanent:  true,
	})
	if err != nil {
		return fmt.Errorf("failed to set permanent password: %w", err)
	}

	return nil
}

func (h *CognitoHandler) Login(ctx context.Context, email, password string) (string, error) {
	result, err := h.client.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(h.clientID),
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	})
	if err != nil {
		return "", &apperrors.UnauthorizedError{Reason: "invalid credentials"}
	}

	if result.AuthenticationResult == nil || result.AuthenticationResult.AccessToken == nil {
		return "", &apperrors.UnauthorizedError{Reason: "login failed: invalid credentials or user not found"}
	}

	return *result.AuthenticationResult.AccessToken, nil
}
