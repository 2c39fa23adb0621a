package tracker

// Diagnostic sample names emitted during tracking.
const (
	// StatMatchBits is the winning score, in bits, of each matched keypoint.
	StatMatchBits = "gyro_tracker_match_bits"
	// StatNoMatchNumChecked is the number of candidates examined for each
	// keypoint that found no match.
	StatNoMatchNumChecked = "gyro_tracker_no_match_num_checked"
)

// StatSink receives diagnostic samples from the tracker. Implementations are
// expected to be cheap; AddSample is called once per earlier-frame keypoint.
type StatSink interface {
	AddSample(name string, value float64)
}

type noopStatSink struct{}

func (noopStatSink) AddSample(string, float64) {}
