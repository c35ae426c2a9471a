package render

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/hop/bfs"
	"github.com/katalvlaran/hop/graph"
)

// JSON writes v as indented JSON. Distance vectors are rewritten so that
// bfs.Unreachable marshals as null instead of leaking the giant integer
// sentinel into the output; everything else encodes as-is.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(jsonValue(v))
}

type graphJSON struct {
	Order int          `json:"order"`
	Edges []graph.Edge `json:"edges"`
}

type resultJSON struct {
	Order     []int `json:"order"`
	Distances []any `json:"distances"`
	Parents   []int `json:"parents"`
}

func jsonValue(v any) any {
	switch x := v.(type) {
	case []int:
		out := make([]any, len(x))
		for i, d := range x {
			if d == bfs.Unreachable {
				out[i] = nil
				continue
			}
			out[i] = d
		}

		return out
	case *bfs.Result:
		return resultJSON{
			Order:     x.Order,
			Distances: jsonValue(x.Dist).([]any),
			Parents:   x.Parent,
		}
	case graph.Graph:
		return graphJSON{Order: x.Order(), Edges: graph.Edges(x)}
	}

	return v
}
