package polytope_test

import (
	"fmt"

	"github.com/katalvlaran/wythoff/coxeter"
	"github.com/katalvlaran/wythoff/flag"
	"github.com/katalvlaran/wythoff/orbit"
	"github.com/katalvlaran/wythoff/polytope"
)

// ExampleExtract rings the first node of H3, which yields the dodecahedron.
//
//	(o)-5-o---o
func ExampleExtract() {
	p, _ := coxeter.Preset("H3")
	m, _ := p.Matrix.Mirrors()
	mirrors, _ := flag.Columns(m)
	start, _ := flag.FromMirrors(m)
	res, _ := orbit.Generate(start, mirrors)

	s, err := polytope.Extract(res.Flags, []bool{true, false, false})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(s.Vertices), "vertices,", len(s.Edges), "edges")

	// Output:
	// 20 vertices, 30 edges
}
