package ecs

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/huaweicloud/huaweicloud-sdk-go-v3/services/ecs/v2/model"
	"github.com/rs/zerolog"

	"tasnim.dev/hwc-report/internal/hwc/apierr"
	"tasnim.dev/hwc-report/internal/report"
)

// FlavorUnavailable replaces the flavor description when the id is not in the catalog.
const FlavorUnavailable = "Flavor details not available"

type ECSAPI interface {
	ListFlavors(request *model.ListFlavorsRequest) (*model.ListFlavorsResponse, error)
	ListServersDetails(request *model.ListServersDetailsRequest) (*model.ListServersDetailsResponse, error)
}

type Client struct {
	api ECSAPI
}

func NewClient(api ECSAPI) *Client {
	return &Client{api: api}
}

func (c *Client) ListFlavors(ctx context.Context) (FlavorCatalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := c.api.ListFlavors(&model.ListFlavorsRequest{})
	if err != nil {
		return nil, apierr.Wrap("failed to fetch flavors", err)
	}

	catalog := FlavorCatalog{}
	if out.Flavors == nil {
		return catalog, nil
	}
	for _, f := range *out.Flavors {
		catalog[f.Id] = FlavorDetail{
			ID:    f.Id,
			Name:  f.Name,
			VCPUs: f.Vcpus,
			RAM:   f.Ram,
		}
	}
	return catalog, nil
}

// ListServers issues a single ListServersDetails call.
func (c *Client) ListServers(ctx context.Context) ([]model.ServerDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := c.api.ListServersDetails(&model.ListServersDetailsRequest{})
	if err != nil {
		return nil, apierr.Wrap("failed to fetch ECS servers", err)
	}
	if out.Servers == nil {
		return nil, nil
	}
	return *out.Servers, nil
}

// Report loads the flavor catalog, then every server, and flattens each server
// against the catalog. A flavor failure stops the run before servers are listed.
func (c *Client) Report(ctx context.Context, region string) ([]InstanceRecord, error) {
	log := zerolog.Ctx(ctx)

	catalog, err := c.ListFlavors(ctx)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("flavors", len(catalog)).Msg("loaded flavor catalog")

	servers, err := c.ListServers(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]InstanceRecord, 0, len(servers))
	for _, s := range servers {
		records = append(records, flattenServer(s, catalog, region, func(addr string) {
			log.Debug().Str("server", s.Id).Str("address", addr).Msg("unparsable address classified as public")
		}))
	}
	return records, nil
}

// Describe renders the flavor as "<name> | <vcpus> vCPUs | <ram> GiB | <id>".
func (fc FlavorCatalog) Describe(id string) string {
	f, ok := fc[id]
	if !ok {
		return FlavorUnavailable
	}
	return fmt.Sprintf("%s | %s vCPUs | %s GiB | %s", f.Name, f.VCPUs, formatGiB(f.RAM), f.ID)
}

// formatGiB converts MiB to GiB, always keeping a fractional part (4096 -> "4.0").
func formatGiB(mib int32) string {
	s := strconv.FormatFloat(float64(mib)/1024, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FlattenServer maps a server to its report record. Networks are emitted in
// name order; addresses keep API order within a network.
func FlattenServer(s model.ServerDetail, catalog FlavorCatalog, region string) InstanceRecord {
	return flattenServer(s, catalog, region, nil)
}

// flattenServer calls onUnparsed, when set, for every address that is not an IP.
func flattenServer(s model.ServerDetail, catalog FlavorCatalog, region string, onUnparsed func(addr string)) InstanceRecord {
	var flavorID, imageID string
	if s.Flavor != nil {
		flavorID = s.Flavor.Id
	}
	if s.Image != nil {
		imageID = s.Image.Id
	}

	interfaces := []NetworkInterface{}
	for _, name := range slices.Sorted(maps.Keys(s.Addresses)) {
		for _, addr := range s.Addresses[name] {
			typ, ok := classifyAddress(addr.Addr)
			if !ok && onUnparsed != nil {
				onUnparsed(addr.Addr)
			}
			interfaces = append(interfaces, NetworkInterface{
				NetworkName: name,
				Address:     addr.Addr,
				Type:        typ,
				MACAddress:  nonEmpty(addr.OSEXTIPSMACmacAddr),
				Version:     nonEmpty(&addr.Version),
			})
		}
	}

	groups := make([]string, 0, len(s.SecurityGroups))
	for _, sg := range s.SecurityGroups {
		groups = append(groups, sg.Name)
	}

	tags := s.Metadata
	if tags == nil {
		tags = map[string]string{}
	}

	return InstanceRecord{
		Summary: ServerSummary{
			Name:    s.Name,
			ID:      s.Id,
			Status:  s.Status,
			Flavor:  catalog.Describe(flavorID),
			Created: s.Created,
			Updated: s.Updated,
			ImageID: imageID,
			KeyName: s.KeyName,
			Region:  region,
		},
		NetworkInterfaces: interfaces,
		SecurityGroups:    groups,
		Monitoring:        report.NotImplemented[map[string]any](),
		Tags:              report.Populated(tags),
		CloudBackup:       report.NotImplemented[map[string]any](),
		HostSecurity:      report.NotImplemented[map[string]any](),
	}
}

func nonEmpty(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	v := *p
	return &v
}
