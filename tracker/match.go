package tracker

// Match assigns a keypoint of the later frame to a keypoint of the earlier
// frame. Score is 0 unless Config.UseDescriptorScore is set, in which case it
// holds the descriptor agreement in bits.
type Match struct {
	LaterIdx   int
	EarlierIdx int
	Score      float64
}

// Matches is an ordered sequence of matches, one per resolved earlier-frame
// keypoint, in earlier-frame scan order.
type Matches []Match
