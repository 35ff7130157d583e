package auth

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	cogtypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/labstack/gommon/log"
)

// CognitoProvider authenticates against a Cognito user pool and holds the
// resulting session tokens for the gateway.
type CognitoProvider struct {
	client      *cognitoidentityprovider.Client
	appClientID string

	identity    *Identity
	idToken     string
	accessToken string
}

func NewCognitoProvider(ctx context.Context, region, appClientID string) (*CognitoProvider, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &CognitoProvider{
		client:      cognitoidentityprovider.NewFromConfig(cfg),
		appClientID: appClientID,
	}, nil
}

func (p *CognitoProvider) Current() *Identity {
	return p.identity
}

// Token implements gateway.TokenSource with the ID token of the signed-in
// session.
func (p *CognitoProvider) Token() (string, error) {
	if p.identity == nil {
		return "", errors.New("not signed in")
	}
	return p.idToken, nil
}

// SignUp registers a new user and returns the Cognito sub.
func (p *CognitoProvider) SignUp(ctx context.Context, email, password string) (string, error) {
	out, err := p.client.SignUp(ctx, &cognitoidentityprovider.SignUpInput{
		ClientId: aws.String(p.appClientID),
		Username: aws.String(email),
		Password: aws.String(password),
		UserAttributes: []cogtypes.AttributeType{
			{Name: aws.String("email"), Value: aws.String(email)},
		},
	})
	if err != nil {
		return "", mapCognitoError(err)
	}
	return aws.ToString(out.UserSub), nil
}

func (p *CognitoProvider) SignIn(ctx context.Context, email, password string) error {
	out, err := p.client.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: cogtypes.AuthFlowTypeUserPasswordAuth,
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
		ClientId: aws.String(p.appClientID),
	})
	if err != nil {
		return mapCognitoError(err)
	}
	if out.AuthenticationResult == nil {
		return errors.New("sign-in requires a challenge flow, which is not supported")
	}

	idToken := aws.ToString(out.AuthenticationResult.IdToken)
	data, err := ValidateToken(idToken)
	if err != nil {
		return err
	}

	p.idToken = idToken
	p.accessToken = aws.ToString(out.AuthenticationResult.AccessToken)
	p.identity = &Identity{Sub: data.Sub, Email: data.Email}
	return nil
}

// SignOut invalidates the session in every device.
func (p *CognitoProvider) SignOut(ctx context.Context) error {
	if p.identity == nil {
		return nil
	}
	_, err := p.client.GlobalSignOut(ctx, &cognitoidentityprovider.GlobalSignOutInput{
		AccessToken: aws.String(p.accessToken),
	})
	if err != nil {
		return mapCognitoError(err)
	}
	p.identity = nil
	p.idToken = ""
	p.accessToken = ""
	return nil
}

func mapCognitoError(err error) error {
	var (
		invalidPwd    *cogtypes.InvalidPasswordException
		userExists    *cogtypes.UsernameExistsException
		userNotFound  *cogtypes.UserNotFoundException
		notConfirmed  *cogtypes.UserNotConfirmedException
		notAuthorized *cogtypes.NotAuthorizedException
		codeMismatch  *cogtypes.CodeMismatchException
		expiredCode   *cogtypes.ExpiredCodeException
	)

	switch {
	case errors.As(err, &invalidPwd):
		return ErrInvalidPassword
	case errors.As(err, &userExists):
		return ErrEmailExists
	case errors.As(err, &userNotFound):
		return ErrUserNotFound
	case errors.As(err, &notConfirmed):
		return ErrUserNotConfirmed
	case errors.As(err, &notAuthorized):
		return ErrCredentialsMismatch
	case errors.As(err, &codeMismatch):
		return ErrCodeMismatch
	case errors.As(err, &expiredCode):
		return ErrCodeExpired
	default:
		// Log the original underlying error for debugging purposes
		log.Errorf("unmapped cognito error: %v", err)
		return err
	}
}
