package dolly

import (
	"fmt"
	"sort"

	"github.com/holyweird/storefront/internal/cart"
)

// Configuration is the serializable outcome of a build session. Every
// axis is optional; an unset axis prices as zero.
type Configuration struct {
	Mode     *Option  `json:"mode,omitempty"`
	Material *Option  `json:"material,omitempty"`
	Finish   *Option  `json:"finish,omitempty"`
	Addons   []Option `json:"addons"`
}

func (c Configuration) Total() int {
	total := BasePricePence
	for _, o := range []*Option{c.Mode, c.Material, c.Finish} {
		if o != nil {
			total += o.PricePence
		}
	}
	for _, a := range c.Addons {
		total += a.PricePence
	}
	return total
}

// Selection references options by id, as submitted over the wire.
type Selection struct {
	Mode     string   `json:"mode,omitempty"`
	Material string   `json:"material,omitempty"`
	Finish   string   `json:"finish,omitempty"`
	Addons   []string `json:"addons,omitempty"`
}

// FromSelection resolves option ids against the catalog. Empty axis ids
// are valid (axis unset); unknown ids are not.
func FromSelection(sel Selection) (Configuration, error) {
	var cfg Configuration
	axes := []struct {
		id   string
		opts []Option
		dst  **Option
		name string
	}{
		{sel.Mode, Modes, &cfg.Mode, "mode"},
		{sel.Material, Materials, &cfg.Material, "material"},
		{sel.Finish, Finishes, &cfg.Finish, "finish"},
	}
	for _, a := range axes {
		if a.id == "" {
			continue
		}
		o, ok := findOption(a.opts, a.id)
		if !ok {
			return Configuration{}, fmt.Errorf("unknown %s option: %s", a.name, a.id)
		}
		opt := o
		*a.dst = &opt
	}
	for _, id := range sel.Addons {
		o, ok := findOption(Addons, id)
		if !ok {
			return Configuration{}, fmt.Errorf("unknown addon option: %s", id)
		}
		cfg.Addons = append(cfg.Addons, o)
	}
	return cfg, nil
}

// CartLine converts the configuration into a cart line priced at the
// configured total. The config payload uses option ids only, with addons
// sorted, so equal builds dedup to the same cart line.
func (c Configuration) CartLine(qty int) cart.Line {
	cfg := map[string]any{}
	if c.Mode != nil {
		cfg["mode"] = c.Mode.ID
	}
	if c.Material != nil {
		cfg["material"] = c.Material.ID
	}
	if c.Finish != nil {
		cfg["finish"] = c.Finish.ID
	}
	if len(c.Addons) > 0 {
		ids := make([]string, 0, len(c.Addons))
		for _, a := range c.Addons {
			ids = append(ids, a.ID)
		}
		sort.Strings(ids)
		cfg["addons"] = ids
	}
	return cart.Line{
		ProductID:  "dolly-custom",
		Name:       "Custom Dolly Build",
		PricePence: c.Total(),
		Config:     cfg,
		Quantity:   qty,
	}
}
