package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/rapport/pkg/template"
)

// ErrNotFound is returned when no template with the requested name exists.
var ErrNotFound = errors.New("store: template not found")

// Persistence defines the persistence contract for named templates.
// Save overwrites a same-named template; there is no versioning.
type Persistence interface {
	List(ctx context.Context) []*template.Template
	Get(ctx context.Context, name string) (*template.Template, error)
	Save(t *template.Template) error
	Delete(name string) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath, now: time.Now}, nil
}

// Template names become base64 filenames under a templates/ directory,
// so names with separators or spaces stay safe on disk.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{"templates"},
		FileName: base64.RawURLEncoding.EncodeToString([]byte(key)),
	}
}

func pathToKeyTransform(pk *diskv.PathKey) string {
	decoded, err := base64.RawURLEncoding.DecodeString(pk.FileName)
	if err != nil {
		return pk.FileName
	}
	return string(decoded)
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	now      func() time.Time
}

func (p *persistence) read(key string) (*template.Template, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	t := template.Template{}
	if err := json.Unmarshal(val, &t); err != nil {
		return nil, err
	}
	if t.Name == "" {
		t.Name = key
	}
	return &t, nil
}

func (p *persistence) List(ctx context.Context) []*template.Template {
	all := make([]*template.Template, 0)
	for key := range p.d.Keys(ctx.Done()) {
		t, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

func (p *persistence) Get(ctx context.Context, name string) (*template.Template, error) {
	if !p.d.Has(name) {
		return nil, ErrNotFound
	}
	return p.read(name)
}

func (p *persistence) Save(t *template.Template) error {
	if t == nil || t.Name == "" {
		return errors.New("store: template needs a name")
	}
	t.SavedAt = p.now()
	val, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return p.d.Write(t.Name, val)
}

func (p *persistence) Delete(name string) error {
	if !p.d.Has(name) {
		return ErrNotFound
	}
	return p.d.Erase(name)
}
