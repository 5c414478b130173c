package arena

import (
	"elote-go/competitor"
	"elote-go/eloteerr"
)

// EloFactory builds Elo competitors sharing one EloConfig, so a
// SetClassVar("k_factor", ...) call reaches every competitor this
// factory has already built as well as every one it builds later.
type EloFactory struct {
	InitialRating float64
	MinimumRating float64
	Config        *competitor.EloConfig
}

// NewEloFactory builds an EloFactory with the published defaults,
// owning its own EloConfig so callers can mutate it via SetClassVar.
func NewEloFactory(initialRating float64) *EloFactory {
	cfg := competitor.DefaultEloConfig()
	return &EloFactory{InitialRating: initialRating, MinimumRating: competitor.DefaultMinimumRating, Config: &cfg}
}

func (f *EloFactory) New() (competitor.Competitor, error) {
	return competitor.NewEloWithConfig(f.InitialRating, f.MinimumRating, f.Config)
}

func (f *EloFactory) Kind() competitor.Kind { return competitor.KindElo }

func (f *EloFactory) SetClassVar(name string, value float64) error {
	switch name {
	case "k_factor":
		f.Config.KFactor = value
		return nil
	default:
		return eloteerr.New(eloteerr.InvalidParameter, "EloFactory.SetClassVar", "unknown class var: "+name)
	}
}

// GlickoFactory builds Glicko competitors sharing one GlickoConfig.
type GlickoFactory struct {
	InitialRating float64
	InitialRD     float64
	MinimumRating float64
	Config        *competitor.GlickoConfig
}

// NewGlickoFactory builds a GlickoFactory with the published defaults.
func NewGlickoFactory(initialRating, initialRD float64) *GlickoFactory {
	cfg := competitor.DefaultGlickoConfig()
	return &GlickoFactory{InitialRating: initialRating, InitialRD: initialRD, MinimumRating: competitor.DefaultMinimumRating, Config: &cfg}
}

func (f *GlickoFactory) New() (competitor.Competitor, error) {
	return competitor.NewGlickoWithConfig(f.InitialRating, f.InitialRD, f.MinimumRating, f.Config)
}

func (f *GlickoFactory) Kind() competitor.Kind { return competitor.KindGlicko }

func (f *GlickoFactory) SetClassVar(name string, value float64) error {
	switch name {
	case "c":
		f.Config.C = value
		return nil
	default:
		return eloteerr.New(eloteerr.InvalidParameter, "GlickoFactory.SetClassVar", "unknown class var: "+name)
	}
}

// ECFFactory builds ECF competitors sharing one ECFConfig.
type ECFFactory struct {
	InitialRating float64
	MinimumRating float64
	Config        *competitor.ECFConfig
}

// NewECFFactory builds an ECFFactory with the published defaults.
func NewECFFactory(initialRating float64) *ECFFactory {
	cfg := competitor.DefaultECFConfig()
	return &ECFFactory{InitialRating: initialRating, MinimumRating: competitor.DefaultMinimumRating, Config: &cfg}
}

func (f *ECFFactory) New() (competitor.Competitor, error) {
	return competitor.NewECFWithConfig(f.InitialRating, f.MinimumRating, f.Config)
}

func (f *ECFFactory) Kind() competitor.Kind { return competitor.KindECF }

func (f *ECFFactory) SetClassVar(name string, value float64) error {
	switch name {
	case "n_period":
		f.Config.NPeriod = int(value)
		return nil
	case "f":
		f.Config.F = value
		return nil
	case "win_delta":
		f.Config.WinDelta = value
		return nil
	case "draw_delta":
		f.Config.DrawDelta = value
		return nil
	case "loss_delta":
		f.Config.LossDelta = value
		return nil
	default:
		return eloteerr.New(eloteerr.InvalidParameter, "ECFFactory.SetClassVar", "unknown class var: "+name)
	}
}

// DWZFactory builds DWZ competitors sharing one DWZConfig.
type DWZFactory struct {
	InitialRating float64
	MinimumRating float64
	Config        *competitor.DWZConfig
}

// NewDWZFactory builds a DWZFactory with the published defaults.
func NewDWZFactory(initialRating float64) *DWZFactory {
	cfg := competitor.DefaultDWZConfig()
	return &DWZFactory{InitialRating: initialRating, MinimumRating: competitor.DefaultMinimumRating, Config: &cfg}
}

func (f *DWZFactory) New() (competitor.Competitor, error) {
	return competitor.NewDWZWithConfig(f.InitialRating, f.MinimumRating, f.Config)
}

func (f *DWZFactory) Kind() competitor.Kind { return competitor.KindDWZ }

func (f *DWZFactory) SetClassVar(name string, value float64) error {
	switch name {
	case "j":
		f.Config.J = value
		return nil
	default:
		return eloteerr.New(eloteerr.InvalidParameter, "DWZFactory.SetClassVar", "unknown class var: "+name)
	}
}
