package behavior

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/behaviorgo/internal/ctxlog"
	"github.com/vk/behaviorgo/internal/hkx"
)

// Finalize assembles the state machine and root graph objects from the
// accumulated state list and closes the mutation API. It is idempotent:
// second and later calls are no-ops.
func (b *Builder) Finalize(ctx context.Context) {
	if b.finalized {
		return
	}
	m := &stateMachine{
		tag:        b.tags.next(),
		name:       b.name,
		startState: b.startState,
		states:     b.states,
		wildcards:  b.wildcards,
	}
	b.register(m)
	g := &behaviorGraph{
		tag:     b.tags.next(),
		name:    b.name,
		machine: m,
		data:    b.data,
	}
	b.register(g)
	b.machine = m
	b.graph = g
	b.finalized = true
	ctxlog.FromContext(ctx).Debug("Behavior graph finalized.",
		"states", len(b.states),
		"events", b.events.len(),
		"objects", len(b.objects)+1,
	)
}

// document assembles the complete container tree: the packfile header, the
// data section with every object in tag order, and the root container last.
func (b *Builder) document() *hkx.Element {
	pack := hkx.NewElement("hkpackfile")
	pack.SetAttr("classversion", "8")
	pack.SetAttr("contentsversion", "hk_2010.2.0-r1")
	pack.SetAttr("toplevelobject", string(rootTag))
	data := pack.Sub("hksection")
	data.SetAttr("name", "__data__")
	for _, o := range b.objects {
		data.Append(o.render())
	}
	data.Append(renderRootContainer(b.graph))
	return pack
}

// Serialize finalizes the graph if needed and renders the container to w.
func (b *Builder) Serialize(ctx context.Context, w io.Writer) error {
	b.Finalize(ctx)
	return hkx.Write(w, b.document())
}

// Export finalizes the graph if needed and writes the container to path in
// one atomic pass.
func (b *Builder) Export(ctx context.Context, path string) error {
	b.Finalize(ctx)
	if err := hkx.Save(path, b.document()); err != nil {
		return fmt.Errorf("export behavior graph: %w", err)
	}
	ctxlog.FromContext(ctx).Info("Exported behavior graph.",
		"path", path,
		"states", len(b.states),
		"events", b.events.len(),
	)
	return nil
}
