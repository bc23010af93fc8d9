package cli

import (
	"context"
	"fmt"

	soupmarket "github.com/Ismael0303/SOUP-Market-sub001"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads YAML client options from an afs URL.
func LoadConfig(ctx context.Context, URL string) (*soupmarket.ClientOptions, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	options := &soupmarket.ClientOptions{}
	if err = yaml.Unmarshal(data, options); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	return options, nil
}
