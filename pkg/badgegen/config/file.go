package config

import (
	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/models"
)

// fileConfig is the on-disk layout written by Save.
type fileConfig struct {
	Columns models.Columns `yaml:"columns"`
	Layout  layoutFile     `yaml:"layout"`
	Font    fontFile       `yaml:"font"`
}

type layoutFile struct {
	MarginX        float64 `yaml:"margin_x"`
	TopOffset      float64 `yaml:"top_offset"`
	BoxHeight      float64 `yaml:"box_height"`
	Rows           int     `yaml:"rows"`
	Cols           int     `yaml:"cols"`
	RotationTop    int     `yaml:"rotation_top"`
	RotationBottom int     `yaml:"rotation_bottom"`
	Align          int     `yaml:"align"`
}

type fontFile struct {
	Path     string  `yaml:"path"`
	Alias    string  `yaml:"alias"`
	Big      float64 `yaml:"big"`
	Small    float64 `yaml:"small"`
	MinBig   float64 `yaml:"min_big"`
	MinSmall float64 `yaml:"min_small"`
	Step     float64 `yaml:"step"`
}

func (c *Config) file() fileConfig {
	l, f := c.Layout, c.Font
	return fileConfig{
		Columns: c.Columns,
		Layout: layoutFile{
			MarginX:        l.MarginX,
			TopOffset:      l.TopOffset,
			BoxHeight:      l.BoxHeight,
			Rows:           l.Rows,
			Cols:           l.Cols,
			RotationTop:    l.RotationTop,
			RotationBottom: l.RotationBottom,
			Align:          int(l.Align),
		},
		Font: fontFile{
			Path:     f.Path,
			Alias:    f.Alias,
			Big:      f.Big,
			Small:    f.Small,
			MinBig:   f.MinBig,
			MinSmall: f.MinSmall,
			Step:     f.Step,
		},
	}
}
