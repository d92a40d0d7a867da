package liveset

import (
	"context"
	"time"

	"github.com/dogmatiq/liveset/internal/telemetry"
)

// instrumentation records telemetry about the membership of a single [Set].
type instrumentation struct {
	recorder *telemetry.Recorder

	members  telemetry.Instrument[int64]
	added    telemetry.Instrument[int64]
	removed  telemetry.Instrument[int64]
	lifetime telemetry.Instrument[float64]
}

func newInstrumentation[T any](
	name string,
	p telemetry.Provider,
) *instrumentation {
	var zero T

	rec := p.Recorder(
		"github.com/dogmatiq/liveset",
		telemetry.Type("set.value", &zero),
		telemetry.If(name != "", telemetry.String("set.name", name)),
		telemetry.String("set.handle", telemetry.HandleID()),
	)

	return &instrumentation{
		recorder: rec,
		members:  rec.UpDownCounter("members", "{member}", "The number of members that are currently in the set."),
		added:    rec.Counter("members.added", "{member}", "The number of members that have been added to the set."),
		removed:  rec.Counter("members.removed", "{member}", "The number of members that have been removed from the set."),
		lifetime: rec.Histogram("member.lifetime", "s", "The length of time that members remain in the set."),
	}
}

func (i *instrumentation) memberAdded(id ID) {
	ctx := context.Background()

	i.added(ctx, 1)
	i.members(ctx, 1)

	i.recorder.Info(
		ctx,
		"set.add.ok",
		"added member to set",
		telemetry.Stringer("member.id", id),
	)
}

func (i *instrumentation) memberRemoved(id ID, lifetime time.Duration) {
	ctx := context.Background()

	i.removed(ctx, 1)
	i.members(ctx, -1)
	i.lifetime(ctx, lifetime.Seconds())

	i.recorder.Info(
		ctx,
		"set.remove.ok",
		"removed member from set",
		telemetry.Stringer("member.id", id),
	)
}
