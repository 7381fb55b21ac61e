package wire

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/auth"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/translation"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// BuildApp constructs every process-wide dependency once: AWS clients,
// repositories, services, token verifier, and the router. Both the HTTP
// server and the Lambda entry point start here.
func BuildApp(ctx context.Context, config *utils.Config, logger *zap.Logger) (*App, error) {
	db, err := database.InitDynamo(ctx, config.AWS)
	if err != nil {
		return nil, fmt.Errorf("init dynamodb client: %w", err)
	}

	cognito, err := auth.InitCognito(ctx, config.AWS.Region)
	if err != nil {
		return nil, fmt.Errorf("init cognito client: %w", err)
	}

	translateClient, err := translation.InitTranslate(ctx, config.AWS.Region)
	if err != nil {
		return nil, fmt.Errorf("init translate client: %w", err)
	}

	repos := repository.NewRepository(db, config.Tables, logger)
	translator := translation.NewTranslator(translateClient)
	service := usecase.NewService(repos, cognito, translator, config, logger)

	verifier := auth.NewCognitoVerifier(
		config.AWS.Region,
		config.Cognito.UserPoolID,
		config.Cognito.ClientID,
		config.Cognito.Endpoint,
	)

	return Wiring(service, verifier, config, logger), nil
}
