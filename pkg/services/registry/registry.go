package registry

import (
	"context"
	"fmt"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry reads workspace profiles from an INI file (~/.reportforgecfg
// by convention). Each section names one workspace: where its report
// database lives and where exports land.
type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.ConfigProfile, error)
	GetProfile(ctx context.Context, name string) (domain.ConfigProfile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]domain.ConfigProfile, error) {
	var profiles []domain.ConfigProfile
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profiles = append(profiles, profileFromSection(section))
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (domain.ConfigProfile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return domain.ConfigProfile{}, fmt.Errorf("profile %s not found", name)
	}
	return profileFromSection(section), nil
}

func profileFromSection(section *ini.Section) domain.ConfigProfile {
	return domain.ConfigProfile{
		Name:      section.Name(),
		StorePath: section.Key("store_path").String(),
		OutputDir: section.Key("output_dir").String(),
	}
}
