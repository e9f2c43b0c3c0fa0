package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey        = "API_PORT"
	ethNodeEnvKey        = "ETH_NODE_URL"
	dbConnEnvKey         = "DB_CONNECTION_URL"
	jwtSecretEnvKey      = "JWT_SECRET"
	issuerKeyEnvKey      = "ISSUER_PRIVATE_KEY"
	deploymentEnvKey     = "DEPLOYMENT_FILE"
	confirmDepthEnvKey   = "CONFIRMATION_DEPTH"
	confirmTimeoutEnvKey = "CONFIRMATION_TIMEOUT"
)

const (
	defaultDeploymentFile    = "deployment-info.json"
	defaultConfirmationDepth = 5
	defaultConfirmTimeout    = 10 * time.Minute
)

type App struct {
	Port                string
	NodeURL             string
	DBConnectionURL     string
	JWTSecret           string
	IssuerPrivateKey    string
	DeploymentFile      string
	ConfirmationDepth   uint64
	ConfirmationTimeout time.Duration
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(ethNodeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, ethNodeEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	issuerKey, ok := os.LookupEnv(issuerKeyEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, issuerKeyEnvKey)
	}

	deploymentFile, ok := os.LookupEnv(deploymentEnvKey)
	if !ok {
		deploymentFile = defaultDeploymentFile
	}

	depth := uint64(defaultConfirmationDepth)
	if raw, ok := os.LookupEnv(confirmDepthEnvKey); ok {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", confirmDepthEnvKey, err)
		}
		depth = parsed
	}

	timeout := defaultConfirmTimeout
	if raw, ok := os.LookupEnv(confirmTimeoutEnvKey); ok {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", confirmTimeoutEnvKey, err)
		}
		timeout = parsed
	}

	return App{
		Port:                port,
		NodeURL:             nodeURL,
		DBConnectionURL:     dbConn,
		JWTSecret:           jwtSecret,
		IssuerPrivateKey:    issuerKey,
		DeploymentFile:      deploymentFile,
		ConfirmationDepth:   depth,
		ConfirmationTimeout: timeout,
	}, nil
}
