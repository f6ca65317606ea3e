package ecs

import "tasnim.dev/hwc-report/internal/report"

// AddressType tells whether an address is reachable only inside a private network.
type AddressType string

const (
	AddressPrivate AddressType = "private"
	AddressPublic  AddressType = "public"
)

// FlavorDetail is a VM size from the flavor catalog. RAM is in MiB.
type FlavorDetail struct {
	ID    string
	Name  string
	VCPUs string
	RAM   int32
}

// FlavorCatalog maps flavor id to flavor.
type FlavorCatalog map[string]FlavorDetail

// ServerSummary is the "Server Summary" block of an instance record.
type ServerSummary struct {
	Name    string `json:"Name"`
	ID      string `json:"ID"`
	Status  string `json:"Status"`
	Flavor  string `json:"Flavor"`
	Created string `json:"Created"`
	Updated string `json:"Updated"`
	ImageID string `json:"Image ID"`
	KeyName string `json:"Key Name"`
	Region  string `json:"Region"`
}

type NetworkInterface struct {
	NetworkName string      `json:"Network Name"`
	Address     string      `json:"Address"`
	Type        AddressType `json:"Type"`
	MACAddress  *string     `json:"MAC Address"`
	Version     *string     `json:"Version"`
}

// InstanceRecord is one entry of an ecs_summary_*.json report.
type InstanceRecord struct {
	Summary           ServerSummary                     `json:"Server Summary"`
	NetworkInterfaces []NetworkInterface                `json:"Network Interfaces"`
	SecurityGroups    []string                          `json:"Security Groups"`
	Monitoring        report.Section[map[string]any]    `json:"Monitoring"`
	Tags              report.Section[map[string]string] `json:"Tags"`
	CloudBackup       report.Section[map[string]any]    `json:"Cloud Backup"`
	HostSecurity      report.Section[map[string]any]    `json:"Host Security"`
}
