package soupmarket

import (
	"os"
	"path/filepath"
	"time"

	"github.com/Ismael0303/SOUP-Market-sub001/client"
	"github.com/Ismael0303/SOUP-Market-sub001/session"
	"github.com/Ismael0303/SOUP-Market-sub001/session/storage"
	"github.com/sirupsen/logrus"
)

const (
	DefaultURL     = "http://localhost:8000"
	DefaultTimeout = 30
)

// ClientOptions
//
// defines options for configuring a SOUP Market client.
type ClientOptions struct {
	URL      string `yaml:"url,omitempty" json:"url,omitempty" short:"u" long:"url" description:"api base url"`
	Store    string `yaml:"store,omitempty" json:"store,omitempty" short:"s" long:"store" description:"token storage" choice:"memory" choice:"file" choice:"keyring"`
	Location string `yaml:"location,omitempty" json:"location,omitempty" short:"l" long:"location" description:"token file URL or keyring service"`
	Timeout  int    `yaml:"timeout,omitempty" json:"timeout,omitempty" long:"timeout" description:"request timeout in seconds"`
	Debug    bool   `yaml:"debug,omitempty" json:"debug,omitempty" short:"d" long:"debug" description:"debug logging"`

	// Storage, if set, replaces the storage built from Store and Location.
	Storage storage.Storage `yaml:"-" json:"-"`
	// Logger, if set, replaces the default logger.
	Logger logrus.FieldLogger `yaml:"-" json:"-"`
}

// Merge fills options that are not set from other.
func (c *ClientOptions) Merge(other *ClientOptions) {
	if other == nil {
		return
	}
	if c.URL == "" {
		c.URL = other.URL
	}
	if c.Store == "" {
		c.Store = other.Store
	}
	if c.Location == "" {
		c.Location = other.Location
	}
	if c.Timeout == 0 {
		c.Timeout = other.Timeout
	}
	c.Debug = c.Debug || other.Debug
}

func (c *ClientOptions) Init() {
	if c.URL == "" {
		c.URL = DefaultURL
	}
	if c.Store == "" {
		c.Store = storage.KindFile
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Location != "" {
		return
	}
	switch c.Store {
	case storage.KindFile:
		home, err := os.UserHomeDir()
		if err != nil {
			home = os.TempDir()
		}
		c.Location = filepath.Join(home, ".soup-market", "session.json")
	case storage.KindKeyring:
		c.Location = storage.DefaultKeyringService
	}
}

// NewClient creates a client with its session storage configured via ClientOptions.
func NewClient(options *ClientOptions) (*client.Client, error) {
	options.Init()
	aStorage := options.Storage
	if aStorage == nil {
		var err error
		if aStorage, err = storage.New(options.Store, options.Location); err != nil {
			return nil, err
		}
	}
	if options.Logger == nil {
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		if options.Debug {
			logger.SetLevel(logrus.DebugLevel)
		}
		options.Logger = logger
	}
	return client.New(options.URL,
		client.WithSession(session.New(session.WithStorage(aStorage))),
		client.WithTimeout(time.Duration(options.Timeout)*time.Second),
		client.WithLogger(options.Logger),
	)
}
