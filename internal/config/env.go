package config

import (
	"errors"
	"fmt"
	"strings"
)

// Environment variables holding the Huawei Cloud credentials.
const (
	EnvAccessKey = "HUAWEI_ACCESS_KEY"
	EnvSecretKey = "HUAWEI_SECRET_KEY"
	EnvProjectID = "HUAWEI_PROJECT_ID"
	EnvRegion    = "HUAWEI_REGION"
)

// ErrConfiguration marks errors caused by missing or invalid configuration.
var ErrConfiguration = errors.New("configuration error")

// Credentials identifies the account, project and region a report runs against.
type Credentials struct {
	AccessKey string
	SecretKey string
	ProjectID string
	Region    string
}

// MissingEnvError lists the required environment variables that were unset or empty.
type MissingEnvError struct {
	Names []string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("environment variables not set: %s", strings.Join(e.Names, ", "))
}

func (e *MissingEnvError) Is(target error) bool {
	return target == ErrConfiguration
}

// FromEnv reads the four credential variables through getenv (usually os.Getenv).
func FromEnv(getenv func(string) string) (Credentials, error) {
	creds := Credentials{
		AccessKey: strings.TrimSpace(getenv(EnvAccessKey)),
		SecretKey: strings.TrimSpace(getenv(EnvSecretKey)),
		ProjectID: strings.TrimSpace(getenv(EnvProjectID)),
		Region:    strings.TrimSpace(getenv(EnvRegion)),
	}

	var missing []string
	for _, v := range []struct{ name, value string }{
		{EnvAccessKey, creds.AccessKey},
		{EnvSecretKey, creds.SecretKey},
		{EnvProjectID, creds.ProjectID},
		{EnvRegion, creds.Region},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return Credentials{}, &MissingEnvError{Names: missing}
	}
	return creds, nil
}
