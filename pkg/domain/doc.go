/*
Package domain contains the core value types of the inkwell formatting engine.

It defines the vocabulary shared by the coordinator, the mutation layer and the
document substrate: marks, block kinds, selections, commands, region states and the
declarative machine definition. This package is kept pure and free of external
dependencies like I/O or rendering.

# Key Entities

  - Mark / MarkSet: Boolean style attributes attached to a text run.
  - BlockKind: The structural tag of a block (paragraph, heading, quote, list, list-item).
  - Node: The plain value form of a document tree (used for seeding, comparison and rendering).
  - Selection: An opaque range into a document, owned by the editing substrate.
  - Command: The closed set of format commands a user can issue.
  - Definition / RegionDef: The parallel-region state machine, one region per format axis.
  - Snapshot: The current value of every region.
*/
package domain
