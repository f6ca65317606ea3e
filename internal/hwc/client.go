package hwc

import (
	"fmt"

	cce "github.com/huaweicloud/huaweicloud-sdk-go-v3/services/cce/v3"
	cceregion "github.com/huaweicloud/huaweicloud-sdk-go-v3/services/cce/v3/region"
	ecs "github.com/huaweicloud/huaweicloud-sdk-go-v3/services/ecs/v2"
	ecsregion "github.com/huaweicloud/huaweicloud-sdk-go-v3/services/ecs/v2/region"

	"tasnim.dev/hwc-report/internal/config"
	hwccce "tasnim.dev/hwc-report/internal/hwc/cce"
	hwcecs "tasnim.dev/hwc-report/internal/hwc/ecs"
)

// NewCCEClient builds a CCE client for creds.Region. No request is sent.
func NewCCEClient(creds config.Credentials, opts Options) (*hwccce.Client, error) {
	auth, err := NewCredential(creds)
	if err != nil {
		return nil, err
	}

	reg, err := cceregion.SafeValueOf(creds.Region)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown CCE region %q: %w", config.ErrConfiguration, creds.Region, err)
	}

	hc, err := cce.CceClientBuilder().
		WithRegion(reg).
		WithCredential(auth).
		WithHttpConfig(httpConfig(opts)).
		SafeBuild()
	if err != nil {
		return nil, fmt.Errorf("building CCE client: %w", err)
	}
	return hwccce.NewClient(cce.NewCceClient(hc)), nil
}

// NewECSClient builds an ECS client for creds.Region. No request is sent.
func NewECSClient(creds config.Credentials, opts Options) (*hwcecs.Client, error) {
	auth, err := NewCredential(creds)
	if err != nil {
		return nil, err
	}

	reg, err := ecsregion.SafeValueOf(creds.Region)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown ECS region %q: %w", config.ErrConfiguration, creds.Region, err)
	}

	hc, err := ecs.EcsClientBuilder().
		WithRegion(reg).
		WithCredential(auth).
		WithHttpConfig(httpConfig(opts)).
		SafeBuild()
	if err != nil {
		return nil, fmt.Errorf("building ECS client: %w", err)
	}
	return hwcecs.NewClient(ecs.NewEcsClient(hc)), nil
}
