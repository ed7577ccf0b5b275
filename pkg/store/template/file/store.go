package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"gopkg.in/yaml.v3"
)

// Template seeds shipped as YAML files, one template per file. Loaded
// once at startup and written into the repository so the builder can
// instantiate them like any user-saved template.

type widgetSeed struct {
	ID         string         `yaml:"id"`
	Type       string         `yaml:"type"`
	Config     map[string]any `yaml:"config"`
	DataSource string         `yaml:"data_source"`
}

type sectionSeed struct {
	ID      string       `yaml:"id"`
	Title   string       `yaml:"title"`
	Layout  string       `yaml:"layout"`
	Widgets []widgetSeed `yaml:"widgets"`
}

type templateSeed struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Sections    []sectionSeed `yaml:"sections"`
}

// LoadDir reads every .yaml/.yml file in dir as a template seed.
func LoadDir(dir string) ([]domain.Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read template dir %s: %w", dir, err)
	}

	var out []domain.Template
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		t, err := loadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func loadFile(path string) (domain.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Template{}, fmt.Errorf("read template %s: %w", path, err)
	}

	var seed templateSeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return domain.Template{}, fmt.Errorf("parse template %s: %w", path, err)
	}
	if seed.ID == "" {
		seed.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if seed.Name == "" {
		seed.Name = seed.ID
	}

	snapshot := domain.ReportDocument{
		Name:        seed.Name,
		Description: seed.Description,
		LayoutMode:  domain.LayoutModeSingle,
	}
	for _, s := range seed.Sections {
		section := domain.Section{
			ID:     s.ID,
			Title:  s.Title,
			Layout: domain.SectionLayout(s.Layout),
		}
		if section.Layout == "" {
			section.Layout = domain.SectionLayoutSingle
		}
		for _, w := range s.Widgets {
			section.Widgets = append(section.Widgets, domain.Widget{
				ID:         w.ID,
				Type:       domain.WidgetType(w.Type),
				Config:     w.Config,
				DataSource: w.DataSource,
			})
		}
		snapshot.Sections = append(snapshot.Sections, section)
	}

	return domain.Template{
		ID:          seed.ID,
		Name:        seed.Name,
		Description: seed.Description,
		Snapshot:    snapshot,
		CreatedAt:   time.Now(),
	}, nil
}
