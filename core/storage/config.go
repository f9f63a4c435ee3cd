package storage

// Config holds configuration for the object store that keeps uploaded
// datasets and exported reports.
type Config struct {
	// Enabled turns on publishing to object storage.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is the host of the S3 compatible service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL enables TLS.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket receives datasets and reports.
	Bucket string `mapstructure:"bucket" default:"reconciliations"`
	// Region is the bucket location (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// DatasetPrefix is the folder receiving uploaded datasets.
	DatasetPrefix string `mapstructure:"dataset_prefix" default:"datasets"`
	// ReportPrefix is the folder receiving exported CSV reports.
	ReportPrefix string `mapstructure:"report_prefix" default:"reports"`
	// TimeoutSeconds bounds connection setup and the first response byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
