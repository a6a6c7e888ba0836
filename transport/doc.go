// Package transport exposes reachability.CheckMove as a JSON-over-NATS
// request/reply service. Neither the core pipeline
// (parser/moveexpr/movegraph/reachability) nor board depend on this
// package — it is a delivery surface, not a core concern; everything
// outside the three-stage pipeline is treated as an external
// collaborator.
package transport
