package bfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rivercross/bfs"
)

// ExampleSearch_waterJugs measures 4 litres with a 3-litre and a 5-litre jug.
// States are (small, large) fill levels; each step fills, empties or pours.
func ExampleSearch_waterJugs() {
	type jugs struct{ a, b int }
	const capA, capB = 3, 5

	next := func(s jugs) []jugs {
		pourAB := min(s.a, capB-s.b)
		pourBA := min(s.b, capA-s.a)
		return []jugs{
			{capA, s.b},                  // fill small
			{s.a, capB},                  // fill large
			{0, s.b},                     // empty small
			{s.a, 0},                     // empty large
			{s.a - pourAB, s.b + pourAB}, // small → large
			{s.a + pourBA, s.b - pourBA}, // large → small
		}
	}

	res, err := bfs.Search(jugs{0, 0}, jugs{0, 4}, next)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	steps := make([]string, len(res.Path))
	for i, s := range res.Path {
		steps[i] = fmt.Sprintf("(%d,%d)", s.a, s.b)
	}
	fmt.Println(strings.Join(steps, " "))
	// Output:
	// (0,0) (0,5) (3,2) (0,2) (2,0) (2,5) (3,4) (0,4)
}

// ExampleTraverse_depths layers a small directed graph by distance.
func ExampleTraverse_depths() {
	edges := map[string][]string{
		"a": {"b", "c"},
		"b": {"d"},
		"c": {"d", "e"},
		"e": {"a"},
	}
	res, err := bfs.Traverse("a", func(s string) []string { return edges[s] })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	layers := make([]string, len(res.Order))
	for i, s := range res.Order {
		layers[i] = fmt.Sprintf("%s@%d", s, res.Depth[s])
	}
	fmt.Println(strings.Join(layers, " "))
	fmt.Printf("%+v\n", res.Stats)
	// Output:
	// a@0 b@1 c@1 d@2 e@2
	// {Enqueued:7 Dequeued:7 Discarded:2}
}
