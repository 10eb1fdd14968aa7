// Package assets holds the manifest of pinned front-end resources (backend
// client, HTTP client, mapping library and its stylesheet) that the pickup
// application requires before its own code runs.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-pickup-config/models"
)

//go:embed manifest.yaml
var embeddedManifest []byte

var (
	ErrEmptyManifest    = errors.New("asset manifest lists no assets")
	ErrDuplicateAsset   = errors.New("duplicate asset name")
	ErrInvalidAssetSpec = errors.New("invalid asset")
)

// Manifest is the list of pinned assets.
type Manifest struct {
	Assets []models.Asset `yaml:"assets"`
}

// Load returns the manifest at path, or the embedded one when path is
// empty. The result is validated.
func Load(path string) (Manifest, error) {
	data := embeddedManifest
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return Manifest{}, fmt.Errorf("error reading asset manifest: %w", err)
		}
	}

	return Parse(data)
}

// Parse decodes and validates a YAML manifest.
func Parse(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("error decoding asset manifest: %w", err)
	}

	if err := m.validate(); err != nil {
		return Manifest{}, err
	}

	return m, nil
}

// Names returns the asset names in manifest order.
func (m Manifest) Names() []string {
	names := make([]string, 0, len(m.Assets))
	for _, a := range m.Assets {
		names = append(names, a.Name)
	}
	return names
}

func (m Manifest) validate() error {
	if len(m.Assets) == 0 {
		return ErrEmptyManifest
	}

	seen := make(map[string]bool, len(m.Assets))
	for i, a := range m.Assets {
		err := validation.ValidateStruct(&a,
			validation.Field(&a.Name, validation.Required),
			validation.Field(&a.Kind, validation.Required,
				validation.In(models.AssetKindScript, models.AssetKindStylesheet)),
			validation.Field(&a.URL, validation.Required, is.URL, validation.By(fetchableURL)),
			validation.Field(&a.Integrity, validation.Match(integrityPattern)),
		)
		if err != nil {
			return fmt.Errorf("%w #%d (%s): %w", ErrInvalidAssetSpec, i, a.Name, err)
		}

		if seen[a.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateAsset, a.Name)
		}
		seen[a.Name] = true
	}

	return nil
}

// fetchableURL requires an absolute http or https URL; is.URL alone also
// accepts scheme-less hosts such as "unpkg.com/x.js".
func fetchableURL(value interface{}) error {
	raw, _ := value.(string)
	if raw == "" {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return validation.NewError("validation_asset_url", "must be an absolute http or https URL")
	}
	return nil
}
