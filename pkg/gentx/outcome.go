package gentx

// Reason is a single self-contained rule failure with guidance the
// contributor can act on independently.
type Reason struct {
	Title    string
	Guidance string
}

// Outcome is the accumulated result of the structural rules. A failed
// outcome always carries at least one reason. Candidate is set whenever
// exactly one gentx file matched, regardless of other rule failures.
type Outcome struct {
	Passed    bool
	Reasons   []Reason
	Candidate string
}
