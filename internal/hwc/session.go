package hwc

import (
	"fmt"
	"time"

	"github.com/huaweicloud/huaweicloud-sdk-go-v3/core/auth/basic"
	hcconfig "github.com/huaweicloud/huaweicloud-sdk-go-v3/core/config"

	"tasnim.dev/hwc-report/internal/config"
)

// Options tunes the SDK HTTP client. Zero values keep SDK defaults.
type Options struct {
	Timeout time.Duration
}

// NewCredential builds AK/SK credentials scoped to the project.
func NewCredential(creds config.Credentials) (*basic.Credentials, error) {
	auth, err := basic.NewCredentialsBuilder().
		WithAk(creds.AccessKey).
		WithSk(creds.SecretKey).
		WithProjectId(creds.ProjectID).
		SafeBuild()
	if err != nil {
		return nil, fmt.Errorf("%w: building credentials: %w", config.ErrConfiguration, err)
	}
	return auth, nil
}

func httpConfig(opts Options) *hcconfig.HttpConfig {
	cfg := hcconfig.DefaultHttpConfig()
	if opts.Timeout > 0 {
		cfg = cfg.WithTimeout(opts.Timeout)
	}
	return cfg
}
