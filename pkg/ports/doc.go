/*
Package ports defines the driven ports (interfaces) of the inkwell formatting core.

These interfaces decouple the coordinator and the mutation layer from the concrete
editing substrate, so the same toggle algorithms can run against any document model
that can answer the query contract and apply the mutation contract.

# Key Interfaces

  - Querier: Answers "which marks / block kinds are active at this selection".
  - Mutator: Applies mark deltas and unwrap/set/wrap block changes.
  - Substrate: Querier + Mutator, implemented by pkg/document.
  - Inspector: Read-only traversal used by renderers and contract tests.
  - Coordinator: The parallel-region machine as seen by its host.
*/
package ports
