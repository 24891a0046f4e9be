package dispatch

import "github.com/arcpostman/engine/cpp"

// AgentResult is one agent's share of a dispatched tour: an independently
// meaningful closed walk over that agent's assigned vertices, plus the
// vertex set it was assigned (spec.md §9: per-agent cost must be readable
// without re-deriving it from a combined result).
type AgentResult struct {
	Walk              cpp.Result
	PartitionVertices []int
}
