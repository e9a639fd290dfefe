package coordinator

// Payload is a JSON-shaped document passed into and out of agent
// activations.
type Payload map[string]any

// Merge combines base input, shared context, and mode-specific extras into
// a fresh payload. Precedence on key collision is extra over context over
// base, and a colliding key is replaced wholesale, never merged
// recursively. Nil maps are treated as empty and the inputs are never
// mutated.
func Merge(base, context, extra Payload) Payload {
	merged := make(Payload, len(base)+len(context)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range context {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
