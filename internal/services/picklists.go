package services

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"netops-report-service/internal/ports"
)

// Picklists loads filter dropdown values, fronted by an optional
// best-effort cache. Lookups degrade to an empty list on failure so a
// broken picklist never blocks a page.
type Picklists struct {
	Source ports.PicklistSource
	Cache  ports.PicklistCache
}

func (p *Picklists) Regions(ctx context.Context) []string {
	return p.load(ctx, "picklist:regions", func() ([]string, error) {
		return p.Source.Regions(ctx)
	})
}

func (p *Picklists) SubRegions(ctx context.Context, region string) []string {
	return p.load(ctx, "picklist:subregions:"+region, func() ([]string, error) {
		return p.Source.SubRegions(ctx, region)
	})
}

func (p *Picklists) Districts(ctx context.Context, subregion string) []string {
	return p.load(ctx, "picklist:districts:"+subregion, func() ([]string, error) {
		return p.Source.Districts(ctx, subregion)
	})
}

func (p *Picklists) Grids(ctx context.Context, district string) []string {
	return p.load(ctx, "picklist:grids:"+district, func() ([]string, error) {
		return p.Source.Grids(ctx, district)
	})
}

// FilterOptions fetches the two independent lists a filter change needs
// at once. Fixed two-way fan-out, not a dynamic pool; both lookups are
// best-effort so the group never returns an error.
func (p *Picklists) FilterOptions(ctx context.Context, region, subregion string) (subregions, districts []string) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		subregions = p.SubRegions(gctx, region)
		return nil
	})
	g.Go(func() error {
		districts = p.Districts(gctx, subregion)
		return nil
	})

	_ = g.Wait()
	return subregions, districts
}

func (p *Picklists) load(ctx context.Context, key string, fetch func() ([]string, error)) []string {
	if p.Cache != nil {
		if values, ok := p.Cache.Get(ctx, key); ok {
			return values
		}
	}

	values, err := fetch()
	if err != nil {
		// Best-effort: an empty dropdown is an acceptable degraded result.
		log.Printf("picklist load failed key=%s err=%v", key, err)
		return []string{}
	}
	if values == nil {
		values = []string{}
	}

	if p.Cache != nil {
		p.Cache.Put(ctx, key, values)
	}
	return values
}
