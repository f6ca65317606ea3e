package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	ccemodel "github.com/huaweicloud/huaweicloud-sdk-go-v3/services/cce/v3/model"
	ecsmodel "github.com/huaweicloud/huaweicloud-sdk-go-v3/services/ecs/v2/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasnim.dev/hwc-report/internal/config"
	"tasnim.dev/hwc-report/internal/exit"
	"tasnim.dev/hwc-report/internal/hwc"
	"tasnim.dev/hwc-report/internal/hwc/cce"
	"tasnim.dev/hwc-report/internal/hwc/ecs"
	"tasnim.dev/hwc-report/internal/report"
)

type fakeCCE struct {
	clusters []ccemodel.ShowClusterResponse
	failOn   string
	calls    int
}

func (f *fakeCCE) ListClusters(*ccemodel.ListClustersRequest) (*ccemodel.ListClustersResponse, error) {
	f.calls++
	items := make([]ccemodel.Cluster, 0, len(f.clusters))
	for _, c := range f.clusters {
		items = append(items, ccemodel.Cluster{Metadata: c.Metadata})
	}
	return &ccemodel.ListClustersResponse{Items: &items}, nil
}

func (f *fakeCCE) ShowCluster(req *ccemodel.ShowClusterRequest) (*ccemodel.ShowClusterResponse, error) {
	f.calls++
	if req.ClusterId == f.failOn {
		return nil, errors.New("cluster not found")
	}
	for i := range f.clusters {
		if *f.clusters[i].Metadata.Uid == req.ClusterId {
			return &f.clusters[i], nil
		}
	}
	return nil, errors.New("unknown cluster")
}

type fakeECS struct {
	flavors []ecsmodel.Flavor
	servers []ecsmodel.ServerDetail
	calls   int
}

func (f *fakeECS) ListFlavors(*ecsmodel.ListFlavorsRequest) (*ecsmodel.ListFlavorsResponse, error) {
	f.calls++
	return &ecsmodel.ListFlavorsResponse{Flavors: &f.flavors}, nil
}

func (f *fakeECS) ListServersDetails(*ecsmodel.ListServersDetailsRequest) (*ecsmodel.ListServersDetailsResponse, error) {
	f.calls++
	return &ecsmodel.ListServersDetailsResponse{Servers: &f.servers}, nil
}

func strPtr(s string) *string { return &s }

func cluster(uid, name string) ccemodel.ShowClusterResponse {
	billing := int32(0)
	endpoints := []ccemodel.ClusterEndpoints{
		{Url: strPtr("https://192.168.0.10:5443"), Type: strPtr("Internal")},
		{Url: strPtr("https://121.36.1.20:5443"), Type: strPtr("External")},
	}
	return ccemodel.ShowClusterResponse{
		Metadata: &ccemodel.ClusterMetadata{
			Name:              name,
			Uid:               strPtr(uid),
			CreationTimestamp: strPtr("2024-05-10 08:15:42"),
			Labels:            map[string]string{"FeatureGates": "elbv3"},
			Annotations:       map[string]string{"owner": "platform"},
		},
		Spec: &ccemodel.ClusterSpec{
			Flavor:         "cce.s2.small",
			Version:        strPtr("v1.28"),
			Authentication: &ccemodel.Authentication{Mode: strPtr("rbac")},
			BillingMode:    &billing,
		},
		Status: &ccemodel.ClusterStatus{Phase: strPtr("Available"), Endpoints: &endpoints},
	}
}

func setEnv(t *testing.T, values map[string]string) {
	t.Helper()
	orig := getenv
	getenv = func(key string) string { return values[key] }
	t.Cleanup(func() { getenv = orig })
}

func fullEnv() map[string]string {
	return map[string]string{
		config.EnvAccessKey: "AKIDEXAMPLEWXYZ",
		config.EnvSecretKey: "secret",
		config.EnvProjectID: "proj-1",
		config.EnvRegion:    "cn-north-4",
	}
}

func useCCE(t *testing.T, api cce.CCEAPI) {
	t.Helper()
	orig := newClusterReporter
	newClusterReporter = func(config.Credentials, hwc.Options) (clusterReporter, error) {
		return cce.NewClient(api), nil
	}
	t.Cleanup(func() { newClusterReporter = orig })
}

func useECS(t *testing.T, api ecs.ECSAPI) {
	t.Helper()
	orig := newInstanceReporter
	newInstanceReporter = func(config.Credentials, hwc.Options) (instanceReporter, error) {
		return ecs.NewClient(api), nil
	}
	t.Cleanup(func() { newInstanceReporter = orig })
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *exit.Error
	require.True(t, errors.As(err, &exitErr), "expected *exit.Error, got %v", err)
	return exitErr.Code
}

func TestMissingEnv_NoNetworkCalls(t *testing.T) {
	for _, name := range []string{config.EnvAccessKey, config.EnvSecretKey, config.EnvProjectID, config.EnvRegion} {
		for _, sub := range []string{"clusters", "instances"} {
			t.Run(sub+"/"+name, func(t *testing.T) {
				env := fullEnv()
				delete(env, name)
				setEnv(t, env)

				cceAPI := &fakeCCE{}
				ecsAPI := &fakeECS{}
				useCCE(t, cceAPI)
				useECS(t, ecsAPI)

				_, stderr, err := run(t, sub, "-o", t.TempDir())
				require.Error(t, err)
				assert.Equal(t, exit.CodeConfig, exitCode(t, err))
				assert.True(t, errors.Is(err, config.ErrConfiguration))
				assert.Equal(t, 0, cceAPI.calls)
				assert.Equal(t, 0, ecsAPI.calls)
				assert.Contains(t, stderr, name)
				assert.Contains(t, stderr, "error_kind=configuration")
			})
		}
	}
}

func TestClusters_EndToEnd(t *testing.T) {
	setEnv(t, fullEnv())
	useCCE(t, &fakeCCE{clusters: []ccemodel.ShowClusterResponse{cluster("uid-a", "prod")}})
	dir := t.TempDir()

	stdout, _, err := run(t, "clusters", "-o", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "prod")

	raw, err := os.ReadFile(filepath.Join(dir, report.ClusterFilename))
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got, 1)
	assert.Equal(t, map[string]any{
		"Cluster Name":      "prod",
		"Cluster ID":        "uid-a",
		"Status":            "Available",
		"Created":           "2024-05-10 08:15:42",
		"Version":           "v1.28",
		"Cluster Type":      "",
		"Flavor":            "cce.s2.small",
		"Region":            "cn-north-4",
		"Network Mode":      "N/A",
		"Container Network": "",
		"Authentication":    "rbac",
		"Billing Mode":      float64(0),
		"Labels":            map[string]any{"FeatureGates": "elbv3"},
		"Annotations":       map[string]any{"owner": "platform"},
		"Endpoints": []any{
			map[string]any{"url": "https://192.168.0.10:5443", "type": "Internal"},
			map[string]any{"url": "https://121.36.1.20:5443", "type": "External"},
		},
	}, got[0])

	assert.Contains(t, string(raw), "\n    {\n        \"Cluster Name\": \"prod\",")
}

func TestClusters_DescribeFailureWritesNothing(t *testing.T) {
	setEnv(t, fullEnv())
	useCCE(t, &fakeCCE{
		clusters: []ccemodel.ShowClusterResponse{cluster("uid-a", "one"), cluster("uid-b", "two")},
		failOn:   "uid-b",
	})
	dir := t.TempDir()

	_, stderr, err := run(t, "clusters", "-o", dir)
	require.Error(t, err)
	assert.Equal(t, exit.CodeRuntime, exitCode(t, err))
	assert.Contains(t, stderr, "ShowCluster(uid-b)")
	assert.Contains(t, stderr, "error_kind=runtime")

	_, statErr := os.Stat(filepath.Join(dir, report.ClusterFilename))
	assert.True(t, os.IsNotExist(statErr))
}

func TestClusters_DescribeFailureKeepsPreviousReport(t *testing.T) {
	setEnv(t, fullEnv())
	useCCE(t, &fakeCCE{
		clusters: []ccemodel.ShowClusterResponse{cluster("uid-a", "one"), cluster("uid-b", "two")},
		failOn:   "uid-b",
	})
	dir := t.TempDir()
	path := filepath.Join(dir, report.ClusterFilename)
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0644))

	_, _, err := run(t, "clusters", "-o", dir)
	require.Error(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(raw))
}

func TestInstances_EndToEnd(t *testing.T) {
	setEnv(t, fullEnv())
	origNow := now
	now = func() time.Time { return time.Date(2026, 3, 15, 8, 45, 30, 0, time.Local) }
	t.Cleanup(func() { now = origNow })

	useECS(t, &fakeECS{
		flavors: []ecsmodel.Flavor{{Id: "f1", Name: "small", Vcpus: "2", Ram: 4096}},
		servers: []ecsmodel.ServerDetail{
			{
				Id: "srv-1", Name: "web-01", Status: "ACTIVE",
				Flavor: &ecsmodel.ServerFlavor{Id: "f1"},
				Image:  &ecsmodel.ServerImage{Id: "img-1"},
				Addresses: map[string][]ecsmodel.ServerAddress{
					"vpc-a": {{Addr: "192.168.1.10", Version: "4"}},
				},
				SecurityGroups: []ecsmodel.ServerSecurityGroup{{Name: "default"}},
			},
			{Id: "srv-2", Name: "db-01", Status: "SHUTOFF", Flavor: &ecsmodel.ServerFlavor{Id: "unknown"}},
		},
	})
	dir := t.TempDir()

	_, stderr, err := run(t, "instances", "-o", dir, "--no-summary")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "embedded")

	path := filepath.Join(dir, "ecs_summary_xxxxWXYZ_proj-1_cn-north-4_20260315_084530.json")
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 2)

	var summaries []ecs.ServerSummary
	for _, d := range decoded {
		var s ecs.ServerSummary
		require.NoError(t, json.Unmarshal(d["Server Summary"], &s))
		summaries = append(summaries, s)
	}
	assert.Equal(t, "small | 2 vCPUs | 4.0 GiB | f1", summaries[0].Flavor)
	assert.Equal(t, "Flavor details not available", summaries[1].Flavor)
	assert.JSONEq(t, `{"status":"not_implemented"}`, string(decoded[0]["Monitoring"]))
	assert.JSONEq(t, `{}`, string(decoded[1]["Tags"]))
}

func TestInstances_RawAccessKey(t *testing.T) {
	setEnv(t, fullEnv())
	origNow := now
	now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.Local) }
	t.Cleanup(func() { now = origNow })
	useECS(t, &fakeECS{})
	dir := t.TempDir()

	_, stderr, err := run(t, "instances", "-o", dir, "--raw-access-key", "--no-summary")
	require.NoError(t, err)
	assert.Contains(t, stderr, "access key is embedded")

	raw, err := os.ReadFile(filepath.Join(dir, "ecs_summary_AKIDEXAMPLEWXYZ_proj-1_cn-north-4_20260102_030405.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(raw))
}

func TestMalformedConfigFile(t *testing.T) {
	setEnv(t, fullEnv())
	cceAPI := &fakeCCE{}
	useCCE(t, cceAPI)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: [unclosed"), 0644))

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"clusters", "--config", path})
	err := root.ExecuteContext(context.Background())

	require.Error(t, err)
	assert.Equal(t, exit.CodeConfig, exitCode(t, err))
	assert.True(t, errors.Is(err, config.ErrConfiguration))
	assert.Equal(t, 0, cceAPI.calls)
	assert.Contains(t, stderr.String(), "error_kind=configuration")
	assert.Contains(t, stderr.String(), "loading config")
	assert.Contains(t, stderr.String(), "component=clusters")
}

func TestUnknownArgs(t *testing.T) {
	setEnv(t, fullEnv())
	_, _, err := run(t, "clusters", "extra")
	require.Error(t, err)
	var exitErr *exit.Error
	assert.False(t, errors.As(err, &exitErr))
}
