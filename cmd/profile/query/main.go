// Profiling:
// go build ./cmd/profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query mem.prof

package main

import (
	"os"
	"runtime"
	"runtime/pprof"

	ecs "github.com/iauns/cpm-entity-system"
)

type comp1 struct{ V, W int64 }
type comp2 struct{ V, W int64 }
type comp3 struct{ V, W int64 }
type comp4 struct{ V, W int64 }
type comp5 struct{ V, W int64 }
type comp6 struct{ V, W int64 }

func main() {
	f, _ := os.Create("cpu.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	count := 50
	iters := 10000
	entities := 100000
	run(count, iters, entities)

	memFile, _ := os.Create("mem.prof")
	defer memFile.Close()
	runtime.GC()
	_ = pprof.WriteHeapProfile(memFile)
}

func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		cm := ecs.NewContainerMap()
		ids := ecs.NewEntityIDSource()

		for i := 0; i < numEntities; i++ {
			seq := ids.NextEntityID()
			ecs.AddComponent(cm, seq, comp1{})
			ecs.AddComponent(cm, seq, comp2{V: 1, W: 1})
		}
		cm.Renormalize(false)

		var sys ecs.System6[comp1, comp2, comp3, comp4, comp5, comp6]
		sys.Optional = [6]bool{false, false, true, true, true, true}
		for it := 0; it < iters; it++ {
			sys.Walk(cm, func(seq uint64, c1 *comp1, c2 *comp2, c3 *comp3, c4 *comp4, c5 *comp5, c6 *comp6) {
				c1.V += c2.V
				c1.W += c2.W
			})
		}
	}
}
