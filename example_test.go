package boxlayout_test

import (
	"fmt"

	boxlayout "github.com/grindlemire/go-boxlayout"
)

func Example() {
	root := boxlayout.NewNode("root")
	logo := boxlayout.NewNode("logo")
	label := boxlayout.NewNode("label")
	badge := boxlayout.NewNode("badge")
	root.AddChild(logo, label, badge)

	engine := boxlayout.NewEngine(boxlayout.WithViewport(200, 100))
	engine.Manage(root).Attributes().WithSize(boxlayout.NewSize(boxlayout.Fill, boxlayout.Fill))
	engine.Manage(logo).Attributes().WithSize(boxlayout.NewSize(boxlayout.Pixels(50), boxlayout.Pixels(20)))

	labelAttrs := engine.Manage(label).Attributes().WithSize(boxlayout.NewSize(boxlayout.Pixels(50), boxlayout.Pixels(20)))
	if err := labelAttrs.AddConstraint(boxlayout.LeftToRightOf, logo.ID(), boxlayout.Pixels(10)); err != nil {
		panic(err)
	}

	engine.Manage(badge).Attributes().
		WithSize(boxlayout.NewSize(boxlayout.Pixels(20), boxlayout.Pixels(20))).
		WithGravity(boxlayout.NewGravity(boxlayout.GravityCenter, boxlayout.Zero, boxlayout.Zero))

	if err := engine.Recalculate(root); err != nil {
		panic(err)
	}
	for _, n := range root.ChildNodes() {
		fmt.Printf("%s: %+v\n", n.Name(), n.Geometry())
	}
	// Output:
	// logo: {Left:0 Top:0 Width:50 Height:20}
	// label: {Left:60 Top:0 Width:50 Height:20}
	// badge: {Left:90 Top:40 Width:20 Height:20}
}

func ExampleOrderedLayout() {
	row := boxlayout.NewNode("row")
	engine := boxlayout.NewEngine(boxlayout.WithViewport(300, 50))
	engine.Manage(row).Attributes().WithSize(boxlayout.NewSize(boxlayout.Fill, boxlayout.Fill))

	ordered, err := boxlayout.NewOrderedLayout(engine, row, boxlayout.Row, boxlayout.Pixels(5))
	if err != nil {
		panic(err)
	}
	for i, w := range []float64{30, 40, 50} {
		item := boxlayout.NewNode(fmt.Sprintf("item%d", i))
		attrs, err := ordered.AddElement(item)
		if err != nil {
			panic(err)
		}
		attrs.WithSize(boxlayout.NewSize(boxlayout.Pixels(w), boxlayout.Pixels(10)))
	}

	if err := ordered.Recalculate(); err != nil {
		panic(err)
	}
	for _, n := range row.ChildNodes() {
		fmt.Println(n.Name(), n.Geometry().Left)
	}
	// Output:
	// item0 0
	// item1 35
	// item2 80
}
