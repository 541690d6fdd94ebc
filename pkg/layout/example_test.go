package layout_test

import (
	"fmt"
	"os"

	"github.com/matzehuels/boxflow/pkg/layout"
)

func ExampleSolve() {
	sidebar := layout.NewLeaf().WithLabel("sidebar").WithIntrinsicSize(layout.IntrinsicSize{
		Width:  layout.Fixed(80),
		Height: layout.Flex(1),
	})
	content := layout.NewLeaf().WithLabel("content").WithIntrinsicSize(layout.Fill())
	root := layout.NewHorizontal().
		WithIntrinsicSize(layout.FixedSize(400, 200)).
		AppendChildren(sidebar, content)

	findings := layout.Solve(root, layout.Size{Width: 400, Height: 200})

	fmt.Println(len(findings))
	fmt.Println(content.Size())
	fmt.Println(content.Position())
	// Output:
	// 0
	// {320 200}
	// {80 0}
}

func ExampleDumpTree() {
	child := layout.NewLeaf().WithLabel("badge").WithIntrinsicSize(layout.FixedSize(40, 20))
	root := layout.NewBox(child).
		WithLabel("card").
		WithIntrinsicSize(layout.FixedSize(100, 40)).
		WithMainAlignment(layout.AlignCenter).
		WithCrossAlignment(layout.AlignCenter)

	layout.Solve(root, layout.Size{Width: 100, Height: 40})
	_ = layout.DumpTree(os.Stdout, root)
	// Output:
	// • card (size: 100.00x40.00, position: 0.00,0.00)
	//   • badge (size: 40.00x20.00, position: 30.00,10.00)
}
