package life

import (
	"strconv"

	"lifegrid/internal/core"
)

// Parameters describes the engine configuration and live counters.
func (l *Life) Parameters() core.ParameterSnapshot {
	cfg := l.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", cfg.Width),
				intParam("h", "Height", cfg.Height),
				stringParam("edge", "Edge", string(cfg.Edge)),
				floatParam("density", "Seed density", cfg.Density),
				int64Param("seed", "Seed", cfg.Seed),
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				stringParam("interval", "Interval", l.timer.Interval().String()),
				stringParam("max_backlog", "Max backlog", cfg.MaxBacklog.String()),
				intParam("workers", "Workers", cfg.Workers),
			},
		},
		{
			Name: "Control",
			Params: []core.Parameter{
				stringParam("state", "State", l.state.String()),
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(l.generation, 10)},
				intParam("population", "Population", l.Population()),
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func int64Param(key, label string, v int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(v, 10)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', 2, 64)}
}

func stringParam(key, label, v string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: v}
}
