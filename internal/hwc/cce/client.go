package cce

import (
	"context"
	"fmt"

	"github.com/huaweicloud/huaweicloud-sdk-go-v3/services/cce/v3/model"
	"github.com/rs/zerolog"

	"tasnim.dev/hwc-report/internal/hwc/apierr"
)

type CCEAPI interface {
	ListClusters(request *model.ListClustersRequest) (*model.ListClustersResponse, error)
	ShowCluster(request *model.ShowClusterRequest) (*model.ShowClusterResponse, error)
}

type Client struct {
	api CCEAPI
}

func NewClient(api CCEAPI) *Client {
	return &Client{api: api}
}

// ListClusterIDs returns the uid of every cluster in the project, in API order.
func (c *Client) ListClusterIDs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := c.api.ListClusters(&model.ListClustersRequest{})
	if err != nil {
		return nil, apierr.Wrap("ListClusters", err)
	}
	if out.Items == nil {
		return nil, nil
	}

	ids := make([]string, 0, len(*out.Items))
	for i, cl := range *out.Items {
		if cl.Metadata == nil || deref(cl.Metadata.Uid) == "" {
			return nil, apierr.Wrap("ListClusters", fmt.Errorf("cluster at index %d has no uid", i))
		}
		ids = append(ids, *cl.Metadata.Uid)
	}
	return ids, nil
}

func (c *Client) DescribeCluster(ctx context.Context, id string) (ClusterDetail, error) {
	if err := ctx.Err(); err != nil {
		return ClusterDetail{}, err
	}

	out, err := c.api.ShowCluster(&model.ShowClusterRequest{ClusterId: id})
	if err != nil {
		return ClusterDetail{}, apierr.Wrap(fmt.Sprintf("ShowCluster(%s)", id), err)
	}
	return detailFromResponse(out), nil
}

// Report describes every cluster in sequence and flattens it. Any failure
// aborts the whole run; no partial list is returned.
func (c *Client) Report(ctx context.Context, region string) ([]ClusterRecord, error) {
	log := zerolog.Ctx(ctx)

	ids, err := c.ListClusterIDs(ctx)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("clusters", len(ids)).Msg("listed clusters")

	records := make([]ClusterRecord, 0, len(ids))
	for _, id := range ids {
		log.Debug().Str("cluster_id", id).Msg("describing cluster")
		detail, err := c.DescribeCluster(ctx, id)
		if err != nil {
			return nil, err
		}
		records = append(records, Flatten(detail, region))
	}
	return records, nil
}

// Flatten maps a cluster detail to its report record.
func Flatten(d ClusterDetail, region string) ClusterRecord {
	networkMode := NotAvailable
	if d.HostNetworkMode != nil && *d.HostNetworkMode != "" {
		networkMode = *d.HostNetworkMode
	}

	endpoints := make([]Endpoint, len(d.Endpoints))
	copy(endpoints, d.Endpoints)

	return ClusterRecord{
		Name:             d.Name,
		ID:               d.UID,
		Status:           d.Phase,
		Created:          d.CreationTimestamp,
		Version:          d.Version,
		Type:             d.Type,
		Flavor:           d.Flavor,
		Region:           region,
		NetworkMode:      networkMode,
		ContainerNetwork: d.ContainerNetworkMode,
		Authentication:   d.AuthenticationMode,
		BillingMode:      d.BillingMode,
		Labels:           d.Labels,
		Annotations:      d.Annotations,
		Endpoints:        endpoints,
	}
}

func detailFromResponse(out *model.ShowClusterResponse) ClusterDetail {
	var d ClusterDetail

	if md := out.Metadata; md != nil {
		d.Name = md.Name
		d.UID = deref(md.Uid)
		d.CreationTimestamp = deref(md.CreationTimestamp)
		d.Labels = md.Labels
		d.Annotations = md.Annotations
	}

	if spec := out.Spec; spec != nil {
		d.Version = deref(spec.Version)
		d.Flavor = spec.Flavor
		d.BillingMode = spec.BillingMode
		if spec.Type != nil {
			d.Type = spec.Type.Value()
		}
		// hostNetwork carries vpc/subnet/security group only; HostNetworkMode stays nil
		if spec.ContainerNetwork != nil {
			d.ContainerNetworkMode = spec.ContainerNetwork.Mode.Value()
		}
		if spec.Authentication != nil {
			d.AuthenticationMode = deref(spec.Authentication.Mode)
		}
	}

	if st := out.Status; st != nil {
		d.Phase = deref(st.Phase)
		if st.Endpoints != nil {
			for _, ep := range *st.Endpoints {
				d.Endpoints = append(d.Endpoints, Endpoint{
					URL:  deref(ep.Url),
					Type: deref(ep.Type),
				})
			}
		}
	}

	return d
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
