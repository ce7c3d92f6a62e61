package export

import (
	"strconv"
	"strings"

	"simlab/domain/simulation"
)

// CSVHeader is the fixed header row of the per-trial export.
const CSVHeader = "simulation_id,p_value,effect_size,ci_lower,ci_upper,s_value,significant"

// CSV flattens aggregated results into a row-oriented text serialization:
// one header row, then one row per trial in original trial order with a
// 1-based simulation id. Fields are always numeric or boolean, so no quoting
// or escaping is performed. The caller decides where the text goes.
func CSV(results *simulation.AggregatedResults) string {
	var b strings.Builder
	b.WriteString(CSVHeader)
	b.WriteByte('\n')

	for i, r := range results.IndividualResults {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteByte(',')
		b.WriteString(formatFloat(r.PValue))
		b.WriteByte(',')
		b.WriteString(formatFloat(r.EffectSize))
		b.WriteByte(',')
		b.WriteString(formatFloat(r.ConfidenceInterval.Lower))
		b.WriteByte(',')
		b.WriteString(formatFloat(r.ConfidenceInterval.Upper))
		b.WriteByte(',')
		b.WriteString(formatFloat(r.SValue))
		b.WriteByte(',')
		b.WriteString(strconv.FormatBool(r.Significant))
		b.WriteByte('\n')
	}

	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
