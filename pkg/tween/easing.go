package tween

import (
	"fmt"
	"sort"

	"github.com/fogleman/ease"
)

// Easing maps normalized progress in [0, 1] to an eased value.
// The github.com/fogleman/ease functions satisfy this directly.
type Easing func(t float64) float64

// easings is the name registry used by YAML animation definitions.
// Names are snake_case to match the configuration file style.
var easings = map[string]Easing{
	"linear":         ease.Linear,
	"in_quad":        ease.InQuad,
	"out_quad":       ease.OutQuad,
	"in_out_quad":    ease.InOutQuad,
	"in_cubic":       ease.InCubic,
	"out_cubic":      ease.OutCubic,
	"in_out_cubic":   ease.InOutCubic,
	"in_quart":       ease.InQuart,
	"out_quart":      ease.OutQuart,
	"in_out_quart":   ease.InOutQuart,
	"in_quint":       ease.InQuint,
	"out_quint":      ease.OutQuint,
	"in_out_quint":   ease.InOutQuint,
	"in_sine":        ease.InSine,
	"out_sine":       ease.OutSine,
	"in_out_sine":    ease.InOutSine,
	"in_expo":        ease.InExpo,
	"out_expo":       ease.OutExpo,
	"in_out_expo":    ease.InOutExpo,
	"in_circ":        ease.InCirc,
	"out_circ":       ease.OutCirc,
	"in_out_circ":    ease.InOutCirc,
	"in_elastic":     ease.InElastic,
	"out_elastic":    ease.OutElastic,
	"in_out_elastic": ease.InOutElastic,
	"in_back":        ease.InBack,
	"out_back":       ease.OutBack,
	"in_out_back":    ease.InOutBack,
	"in_bounce":      ease.InBounce,
	"out_bounce":     ease.OutBounce,
	"in_out_bounce":  ease.InOutBounce,
}

// EasingByName looks up an easing curve by its registry name, e.g.
// "linear", "in_out_quad" or "out_bounce".
//
// Parameters:
//   - name: the snake_case curve name; "" selects "linear"
//
// Returns:
//   - Easing: the matching curve
//   - error: if the name is not registered
func EasingByName(name string) (Easing, error) {
	if name == "" {
		name = "linear"
	}
	e, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return e, nil
}

// EasingNames returns the registered curve names in sorted order,
// mainly for error messages and tooling.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
