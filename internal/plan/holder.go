package plan

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// ceilingOverride is the on-disk shape of a single tier's overrides in
// plans.yml. Missing kinds keep their built-in defaults; -1 means
// unlimited.
type ceilingOverride struct {
	Tier     string         `mapstructure:"tier"`
	Ceilings map[string]int `mapstructure:"ceilings"`
}

// CatalogHolder serves the active catalog and hot-reloads overrides
// from plans.yml when the file changes.
type CatalogHolder struct {
	current atomic.Value // holds *Catalog
}

// NewCatalogHolder loads plans.yml (if present) on top of the default
// catalog and watches the file for changes.
func NewCatalogHolder() (*CatalogHolder, error) {
	v := viper.New()

	v.SetConfigName("plans")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/vowsuite/config")
	v.AddConfigPath("/etc/vowsuite")
	v.AddConfigPath(".")

	v.SetEnvPrefix("VOWSUITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	holder := &CatalogHolder{}
	holder.current.Store(DefaultCatalog())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// no override file, defaults only
		return holder, nil
	}

	catalog, err := catalogFromViper(v)
	if err != nil {
		return nil, err
	}
	holder.current.Store(catalog)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		updated, err := catalogFromViper(v)
		if err != nil {
			log.Printf("[plan-catalog] invalid override ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[plan-catalog] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticCatalogHolder wraps a fixed catalog with no file watching.
func NewStaticCatalogHolder(catalog *Catalog) *CatalogHolder {
	holder := &CatalogHolder{}
	holder.current.Store(catalog)
	return holder
}

// Get returns the active catalog.
func (h *CatalogHolder) Get() *Catalog {
	return h.current.Load().(*Catalog)
}

func catalogFromViper(v *viper.Viper) (*Catalog, error) {
	var overrides []ceilingOverride
	if err := v.UnmarshalKey("plans", &overrides); err != nil {
		return nil, err
	}

	catalog := DefaultCatalog()
	for _, override := range overrides {
		tier := NormalizeTier(override.Tier)
		for rawKind, value := range override.Ceilings {
			kind, err := ParseResourceKind(rawKind)
			if err != nil {
				return nil, err
			}
			if value < Unlimited {
				return nil, errors.New("plan ceiling must be >= -1")
			}
			catalog.ceilings[tier][kind] = Ceiling(value)
		}
	}
	return catalog, nil
}
