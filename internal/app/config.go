package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64
	// ViewWidth and ViewHeight bound the visible window in cells. Zero means
	// the whole grid.
	ViewWidth  int
	ViewHeight int
	// Params is passed to the simulation factory.
	Params Params
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 3, TPS: 60, Seed: 42, Params: Params{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.ViewWidth, "view-w", c.ViewWidth, "visible width in cells (0 for full grid)")
	fs.IntVar(&c.ViewHeight, "view-h", c.ViewHeight, "visible height in cells (0 for full grid)")
	if c.Params == nil {
		c.Params = Params{}
	}
	fs.Var(c.Params, "set", "simulation parameter as key=value (repeatable)")
}

// Params collects repeated key=value flags.
type Params map[string]string

func (p Params) String() string {
	parts := make([]string, 0, len(p))
	for k, v := range p {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (p Params) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	k = strings.TrimSpace(k)
	if !ok || k == "" {
		return fmt.Errorf("parameter %q is not key=value", s)
	}
	p[k] = strings.TrimSpace(v)
	return nil
}
