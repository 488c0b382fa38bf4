package seed

import (
	_ "embed"
	"fmt"
	"os"

	"ripple/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed fixtures/tags.yml
var defaultTagFixture []byte

type tagFixture struct {
	Tags []struct {
		Name   string `yaml:"name"`
		Group  string `yaml:"group"`
		Color  string `yaml:"color"`
		Active *bool  `yaml:"active"`
	} `yaml:"tags"`
}

// LoadTagFixture parses a YAML tag catalog. With an empty path the embedded
// default fixture is used.
func LoadTagFixture(path string) ([]models.Tag, error) {
	data := defaultTagFixture
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read tag fixture: %w", err)
		}
	}

	var fixture tagFixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("parse tag fixture: %w", err)
	}

	tags := make([]models.Tag, 0, len(fixture.Tags))
	for _, t := range fixture.Tags {
		active := true
		if t.Active != nil {
			active = *t.Active
		}
		tags = append(tags, models.Tag{
			Name:      t.Name,
			GroupName: t.Group,
			Color:     t.Color,
			Active:    active,
		})
	}
	return tags, nil
}

// upsertTags writes the catalog, skipping names that already exist so
// re-seeding stays idempotent.
func upsertTags(db *gorm.DB, tags []models.Tag) ([]models.Tag, error) {
	if len(tags) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}

	var existing []models.Tag
	if err := db.Where("name IN ?", names).Find(&existing).Error; err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(existing))
	for _, t := range existing {
		known[t.Name] = struct{}{}
	}

	var missing []models.Tag
	for _, t := range tags {
		if _, ok := known[t.Name]; !ok {
			missing = append(missing, t)
		}
	}
	if len(missing) > 0 {
		if err := db.Create(&missing).Error; err != nil {
			return nil, err
		}
	}

	var out []models.Tag
	if err := db.Where("name IN ?", names).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
