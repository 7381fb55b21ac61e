package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/auth"
	"movie-catalog/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"go.uber.org/zap"
)

type AuthService interface {
	SignUp(ctx context.Context, req *request.SignUpRequest) (*response.SignUpResponse, error)
	ConfirmSignUp(ctx context.Context, req *request.ConfirmSignUpRequest) error
	// SignIn authenticates against the user pool and returns the ID token
	// the cookie authorizer accepts, along with its lifetime in seconds.
	SignIn(ctx context.Context, req *request.SignInRequest) (token string, resp *response.SignInResponse, err error)
}

type authService struct {
	cognito  auth.CognitoAPI
	clientID string
	log      *zap.Logger
}

func NewAuthService(cognito auth.CognitoAPI, config utils.CognitoConfig, log *zap.Logger) AuthService {
	return &authService{
		cognito:  cognito,
		clientID: config.ClientID,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) SignUp(ctx context.Context, req *request.SignUpRequest) (*response.SignUpResponse, error) {
	out, err := s.cognito.SignUp(ctx, &cognitoidentityprovider.SignUpInput{
		ClientId: aws.String(s.clientID),
		Username: aws.String(req.Username),
		Password: aws.String(req.Password),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(req.Email)},
		},
	})
	if err != nil {
		var exists *types.UsernameExistsException
		if errors.As(err, &exists) {
			return nil, fmt.Errorf("invalid sign up: username %s already exists", req.Username)
		}
		var invalidPw *types.InvalidPasswordException
		if errors.As(err, &invalidPw) {
			return nil, fmt.Errorf("invalid sign up: %s", aws.ToString(invalidPw.Message))
		}
		s.log.Error("Failed to sign up user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("sign up: %w", err)
	}

	s.log.Info("User signed up",
		zap.String("username", req.Username),
		zap.Bool("confirmed", out.UserConfirmed),
	)

	return &response.SignUpResponse{
		Username:      req.Username,
		UserConfirmed: out.UserConfirmed,
	}, nil
}

func (s *authService) ConfirmSignUp(ctx context.Context, req *request.ConfirmSignUpRequest) error {
	_, err := s.cognito.ConfirmSignUp(ctx, &cognitoidentityprovider.ConfirmSignUpInput{
		ClientId:         aws.String(s.clientID),
		Username:         aws.String(req.Username),
		ConfirmationCode: aws.String(req.Code),
	})
	if err != nil {
		var mismatch *types.CodeMismatchException
		var expired *types.ExpiredCodeException
		if errors.As(err, &mismatch) || errors.As(err, &expired) {
			return errors.New("invalid confirmation code")
		}
		s.log.Error("Failed to confirm sign up", zap.Error(err), zap.String("username", req.Username))
		return fmt.Errorf("confirm sign up: %w", err)
	}

	s.log.Info("User confirmed", zap.String("username", req.Username))

	return nil
}

func (s *authService) SignIn(ctx context.Context, req *request.SignInRequest) (string, *response.SignInResponse, error) {
	out, err := s.cognito.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		ClientId: aws.String(s.clientID),
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		AuthParameters: map[string]string{
			"USERNAME": req.Username,
			"PASSWORD": req.Password,
		},
	})
	if err != nil {
		var notAuthorized *types.NotAuthorizedException
		var notFound *types.UserNotFoundException
		if errors.As(err, &notAuthorized) || errors.As(err, &notFound) {
			return "", nil, errors.New("unauthorized: incorrect username or password")
		}
		var notConfirmed *types.UserNotConfirmedException
		if errors.As(err, &notConfirmed) {
			return "", nil, errors.New("unauthorized: user is not confirmed")
		}
		s.log.Error("Failed to sign in user", zap.Error(err), zap.String("username", req.Username))
		return "", nil, fmt.Errorf("sign in: %w", err)
	}

	if out.AuthenticationResult == nil || out.AuthenticationResult.IdToken == nil {
		return "", nil, errors.New("sign in: no token in authentication result")
	}

	s.log.Info("User signed in", zap.String("username", req.Username))

	return aws.ToString(out.AuthenticationResult.IdToken), &response.SignInResponse{
		Username:  req.Username,
		ExpiresIn: out.AuthenticationResult.ExpiresIn,
	}, nil
}
