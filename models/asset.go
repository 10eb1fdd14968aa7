package models

// AssetKind tells the front end how to include an asset.
type AssetKind string

const (
	AssetKindScript     AssetKind = "script"
	AssetKindStylesheet AssetKind = "stylesheet"
)

// Asset is a pinned front-end resource the pickup application needs before
// its own code runs: the backend client, the HTTP client and the mapping
// library with its stylesheet.
type Asset struct {
	// Name identifies the asset; the readiness check is named "asset:<Name>".
	Name string `json:"name" yaml:"name"`

	// Kind is script or stylesheet.
	Kind AssetKind `json:"kind" yaml:"kind"`

	// Version is the pinned release the URL points at.
	Version string `json:"version" yaml:"version"`

	// URL is the absolute location of the asset.
	URL string `json:"url" yaml:"url"`

	// Integrity is optional subresource integrity metadata
	// ("sha384-<base64>").
	Integrity string `json:"integrity,omitempty" yaml:"integrity"`
}
