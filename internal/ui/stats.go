package ui

import (
	"fmt"
	"time"

	"neon-rain/internal/rain"
)

type statsSource interface {
	State() rain.State
	Columns() int
	Stats() rain.Stats
	TargetInterval() time.Duration
	Config() rain.Config
}

// statsLines formats target versus measured update rates.
func statsLines(s statsSource) []string {
	st := s.Stats()
	measured := "--"
	if mean := st.MeanInterval(); mean > 0 {
		measured = fmt.Sprintf("%.1f/s", float64(time.Second)/float64(mean))
	}
	target := float64(time.Second) / float64(s.TargetInterval())
	cfg := s.Config()
	return []string{
		fmt.Sprintf("state %s  columns %d", s.State(), s.Columns()),
		fmt.Sprintf("target %.1f/s  measured %s  frames %d", target, measured, st.Frames),
		fmt.Sprintf("density %g  speed %g  color %s", cfg.Density, cfg.Speed, cfg.PrimaryColor),
	}
}
