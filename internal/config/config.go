// Package config loads environment configuration: a local .env file in
// development, AWS SSM Parameter Store in production.
package config

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/notekeep/prod/"

// Config is everything the client and the dev store read from the
// environment.
type Config struct {
	// GatewayURL is the document store's base URL. Empty means the client
	// runs local-only.
	GatewayURL string

	// Identity provider settings. Empty region/client id means anonymous
	// mode.
	CognitoRegion   string
	CognitoPoolID   string
	CognitoClientID string

	// Dev store settings.
	DevStoreAddr   string
	DevStoreSecret string
	DevStoreDBPath string

	// DevToken, when set, is used as the bearer token directly instead of
	// a Cognito session. Development convenience only.
	DevToken string
	DevSub   string
}

// Load reads the environment. In production mode the variables come from
// SSM first; otherwise a .env file is merged in when present.
func Load(ctx context.Context) (*Config, error) {
	if os.Getenv("GO_ENV") == "production" {
		if err := loadProdEnv(ctx); err != nil {
			return nil, err
		}
	} else if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("could not load .env file: %v", err)
	}

	return &Config{
		GatewayURL:      os.Getenv("NOTEKEEP_GATEWAY_URL"),
		CognitoRegion:   os.Getenv("AWS_COGNITO_REGION"),
		CognitoPoolID:   os.Getenv("AWS_COGNITO_POOL_ID"),
		CognitoClientID: os.Getenv("AWS_COGNITO_CLIENT_ID"),
		DevStoreAddr:    envOr("DEVSTORE_ADDR", ":7070"),
		DevStoreSecret:  envOr("DEVSTORE_SECRET", "notekeep-dev"),
		DevStoreDBPath:  envOr("DEVSTORE_DB", "devstore.db"),
		DevToken:        os.Getenv("NOTEKEEP_DEV_TOKEN"),
		DevSub:          os.Getenv("NOTEKEEP_DEV_SUB"),
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadProdEnv(ctx context.Context) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return err
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		return err
	}

	prefixLength := len(envVarsPrefix)
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		if err := os.Setenv(key, aws.ToString(param.Value)); err != nil {
			return err
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
	return nil
}
