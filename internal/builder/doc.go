/*
Package builder bridges the static definition model (defined in the 'config'
package) and the behavior-graph construction API (the 'behavior' package).

The primary artifact produced by this package is a finalized
*behavior.Builder, ready to export.

The graph composition is a multi-pass process:

 1. State Creation: every state in the model is registered first, so that
    later passes can reference any state regardless of declaration order.

 2. Clip Triggers: each state's timed events are attached. Triggers are
    invalid on legacy sequence states, and that violation aborts the build.

 3. Transitions: event-driven edges between named states are connected.

 4. Wildcards: globally matchable edges are appended to the single shared
    wildcard table.

Recoverable definition problems (duplicate state names, dangling transition
endpoints, unknown start states) are reported by the behavior package as
warnings; composition logs and counts them but carries on, mirroring how an
artist-facing tool keeps going past a bad row. Structural violations abort
with the underlying error.
*/
package builder
