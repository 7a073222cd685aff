/*
Package behavior implements the behavior-graph object model and its builder.

A Builder represents one in-progress graph-construction session. Mutation
calls (AddState, ConnectStates, AddWildcard, AddClipTrigger) incrementally
grow an object graph of states, generators, transition tables, and event
registries. Every object created receives a stable tag from the builder's
own allocator in creation order; cross-references between objects are always
by tag and are guaranteed to resolve because referenced objects exist before
their referrers.

Construction is a two-phase process:

 1. Accumulation: the mutation API validates each edit against the graph so
    far. Recoverable validation failures (duplicate state name, missing
    reference) return a *Warning and leave the graph unchanged; structural
    violations (self-transition, trigger table on a legacy generator) return
    a fatal error and abort the operation without corrupting shared tables.

 2. Finalize and serialize: Finalize assembles the state machine and root
    graph objects from the accumulated state list. It is idempotent; after
    the first call the graph is immutable. Export renders every object into
    the packfile container (package hkx) and writes it atomically.

Builders are single-writer: no internal locking is provided, and calls must
not be interleaved from multiple goroutines against the same instance. Each
Builder owns all of its counters and name tables, so independent graphs
never contaminate each other.
*/
package behavior
