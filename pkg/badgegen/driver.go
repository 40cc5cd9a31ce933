package badgegen

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/layout"
	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/models"
	"golang.org/x/sync/errgroup"
)

// Driver renders attendees onto template pages, one output file per batch.
type Driver struct {
	Template  layout.Template
	Measurer  layout.Measurer
	Layout    layout.Config
	Sizes     layout.FontSizes
	OutputDir string
	// Pad fills a short final batch by repeating its last attendee.
	Pad bool
	// Workers bounds concurrent page renders; below 1 means sequential.
	Workers int
	OnPage  func(done, total int, file string)
}

// Plan splits rows into pages and names their output files.
func Plan(rows []models.Attendee, cfg layout.Config, pad bool) []models.PagePlan {
	batches := Batches(rows, cfg.SlotsPerPage(), pad)
	plans := make([]models.PagePlan, len(batches))
	for i, batch := range batches {
		plans[i] = models.PagePlan{
			Index:     i + 1,
			File:      OutputName(batch),
			Attendees: batch,
		}
	}
	return plans
}

// Run renders every page and returns the written file paths in page order.
// The first failure stops the run.
func (d *Driver) Run(ctx context.Context, rows []models.Attendee) ([]string, error) {
	plans := Plan(rows, d.Layout, d.Pad)
	if len(plans) == 0 {
		return nil, nil
	}
	warnDuplicateNames(plans)

	if err := os.MkdirAll(d.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	workers := d.Workers
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	files := make([]string, len(plans))
	var mu sync.Mutex
	done := 0
	for i, p := range plans {
		if ctx.Err() != nil {
			break
		}
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(d.OutputDir, p.File)
			if err := d.renderPage(p, path); err != nil {
				return NewPageError(p.Index, p.File, err)
			}
			files[i] = path

			mu.Lock()
			defer mu.Unlock()
			done++
			log.Printf("[DEBUG] page %d/%d saved as %s", p.Index, len(plans), p.File)
			if d.OnPage != nil {
				d.OnPage(done, len(plans), p.File)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

func (d *Driver) renderPage(p models.PagePlan, path string) error {
	page, err := d.Template.NewPage()
	if err != nil {
		return err
	}
	defer page.Close()

	blocks := make([]layout.Block, len(p.Attendees))
	for i, a := range p.Attendees {
		blocks[i] = layout.PrepareBlock(a.FirstName, a.FullName, a.Company)
	}
	if err := layout.Compose(page, d.Measurer, d.Template.Bounds(), blocks, d.Layout, d.Sizes); err != nil {
		return err
	}
	return page.Save(path)
}

// warnDuplicateNames logs pages whose file name repeats an earlier page's;
// the later page replaces the earlier file.
func warnDuplicateNames(plans []models.PagePlan) {
	seen := make(map[string]int, len(plans))
	for _, p := range plans {
		if first, ok := seen[p.File]; ok {
			log.Printf("[WARN] page %d overwrites page %d: both are named %s", p.Index, first, p.File)
			continue
		}
		seen[p.File] = p.Index
	}
}
