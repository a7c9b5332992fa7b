package loader

import (
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// Warning kinds reported after a load.
const (
	WarningPlaceholderStop = "placeholder_stop"
	WarningRedefinedStop   = "redefined_stop"
	WarningSelfDistance    = "self_distance"
)

const maxExamples = 3

type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects load warnings and logs one summary per kind.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates an empty aggregator.
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{warnings: make(map[string]*warningInfo)}
}

// Add records one occurrence of a warning kind.
func (w *WarningAggregator) Add(kind, example string) {
	info := w.warnings[kind]
	if info == nil {
		info = &warningInfo{examples: make([]string, 0, maxExamples)}
		w.warnings[kind] = info
	}
	info.count++
	if len(info.examples) < maxExamples {
		info.examples = append(info.examples, example)
	}
}

// Count returns the number of occurrences of a kind.
func (w *WarningAggregator) Count(kind string) int {
	if info := w.warnings[kind]; info != nil {
		return info.count
	}
	return 0
}

// Examples returns up to three recorded examples of a kind.
func (w *WarningAggregator) Examples(kind string) []string {
	if info := w.warnings[kind]; info != nil {
		return slices.Clone(info.examples)
	}
	return nil
}

// Len returns the number of distinct kinds recorded.
func (w *WarningAggregator) Len() int { return len(w.warnings) }

// LogAll writes one warning line per kind, in kind order.
func (w *WarningAggregator) LogAll(log zerolog.Logger) {
	kinds := make([]string, 0, len(w.warnings))
	for kind := range w.warnings {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)

	for _, kind := range kinds {
		info := w.warnings[kind]
		description, action := describeWarning(kind)
		log.Warn().
			Str("kind", kind).
			Int("count", info.count).
			Str("examples", strings.Join(info.examples, ", ")).
			Msgf("input has %s. %s", description, action)
	}
}

func describeWarning(kind string) (description, action string) {
	switch kind {
	case WarningPlaceholderStop:
		return "stops referenced but never defined", "Keeping them as placeholders without coordinates"
	case WarningRedefinedStop:
		return "stops defined more than once", "Keeping the last coordinates"
	case WarningSelfDistance:
		return "road distances from a stop to itself", "Storing them as given"
	default:
		return "unknown issue", "Continuing"
	}
}
