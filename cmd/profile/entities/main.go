// Profiling:
// go build ./cmd/profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	ecs "github.com/iauns/cpm-entity-system"
	"github.com/pkg/profile"
)

type position struct {
	X, Y float64
}

type velocity struct {
	X, Y float64
}

func main() {
	count := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		cm := ecs.NewContainerMap()
		ids := ecs.NewEntityIDSource()

		for i := 0; i < numEntities; i++ {
			seq := ids.NextEntityID()
			ecs.AddComponent(cm, seq, position{})
			ecs.AddComponent(cm, seq, velocity{X: 1, Y: 1})
		}
		cm.Renormalize(false)

		var sys ecs.System2[position, velocity]
		for it := 0; it < iters; it++ {
			sys.Walk(cm, func(seq uint64, p *position, v *velocity) {
				p.X += v.X
				p.Y += v.Y
			})
		}

		for seq := uint64(1); seq <= uint64(numEntities); seq++ {
			cm.RemoveEntity(seq)
		}
		cm.Renormalize(false)
	}
}
