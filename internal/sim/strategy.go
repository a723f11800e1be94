package sim

// Strategy sizes the next stake from the previous stake and its result.
// prev is zero on the first flip of a trial.
type Strategy interface {
	Name() string
	Next(prev float64, won bool, base float64) float64
}

type Flat struct{}
type Martingale struct{}
type Paroli struct{}

func (Flat) Name() string { return "flat" }

func (Flat) Next(prev float64, won bool, base float64) float64 {
	return base
}

func (Martingale) Name() string { return "martingale" }

// Martingale doubles after every loss and resets after a win.
func (Martingale) Next(prev float64, won bool, base float64) float64 {
	if prev == 0 || won {
		return base
	}
	return prev * 2
}

func (Paroli) Name() string { return "paroli" }

// Paroli doubles after a win and resets after a loss or a three-step run.
func (Paroli) Next(prev float64, won bool, base float64) float64 {
	if prev == 0 || !won {
		return base
	}
	if prev >= base*4 {
		return base
	}
	return prev * 2
}

func GetStrategy(name string) Strategy {
	switch name {
	case "flat":
		return Flat{}
	case "martingale":
		return Martingale{}
	case "paroli":
		return Paroli{}
	default:
		return Flat{}
	}
}
