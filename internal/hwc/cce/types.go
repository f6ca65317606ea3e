package cce

// NotAvailable stands in for optional fields the API left out.
const NotAvailable = "N/A"

// ClusterDetail is the subset of a ShowCluster response that ends up in a report.
type ClusterDetail struct {
	Name                 string
	UID                  string
	Phase                string
	CreationTimestamp    string
	Version              string
	Type                 string
	Flavor               string
	HostNetworkMode      *string
	ContainerNetworkMode string
	AuthenticationMode   string
	BillingMode          *int32
	Labels               map[string]string
	Annotations          map[string]string
	Endpoints            []Endpoint
}

// Endpoint is a cluster API endpoint.
type Endpoint struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// ClusterRecord is one entry of cce_clusters_detailed_info.json.
type ClusterRecord struct {
	Name             string            `json:"Cluster Name"`
	ID               string            `json:"Cluster ID"`
	Status           string            `json:"Status"`
	Created          string            `json:"Created"`
	Version          string            `json:"Version"`
	Type             string            `json:"Cluster Type"`
	Flavor           string            `json:"Flavor"`
	Region           string            `json:"Region"`
	NetworkMode      string            `json:"Network Mode"`
	ContainerNetwork string            `json:"Container Network"`
	Authentication   string            `json:"Authentication"`
	BillingMode      *int32            `json:"Billing Mode"`
	Labels           map[string]string `json:"Labels"`
	Annotations      map[string]string `json:"Annotations"`
	Endpoints        []Endpoint        `json:"Endpoints"`
}
