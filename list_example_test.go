package wheelist_test

import (
	"fmt"

	"github.com/djdv/go-wheelist"
)

type customer struct {
	Name string
	ID   int
}

func ExampleList() {
	list, err := wheelist.New(
		func(c customer) int { return c.ID },
		wheelist.Options{},
	)
	if err != nil {
		panic(err) // TODO(Anyone): Handle error.
	}
	list.Add(customer{ID: 1, Name: "Ada"}, wheelist.AtTail)
	list.Add(customer{ID: 3, Name: "Grace"}, wheelist.AtTail)
	if _, err := list.Insert(1, customer{ID: 2, Name: "Edsger"}); err != nil {
		panic(err) // TODO(Anyone): Handle error.
	}
	for index, c := range list.Values() {
		fmt.Printf("%d: %s\n", index, c.Name)
	}
	fmt.Println("index of 3:", list.IndexOf(list.Key(3)))
	fmt.Println("tail links to head:", list.Tail().Next() == list.Head())
	// Output:
	// 0: Ada
	// 1: Edsger
	// 2: Grace
	// index of 3: 2
	// tail links to head: true
}

func ExampleWheel() {
	wheel, err := wheelist.NewWheel(
		func(c customer) string { return c.Name },
		wheelist.Options{},
	)
	if err != nil {
		panic(err) // TODO(Anyone): Handle error.
	}
	for _, name := range []string{"north", "east", "south", "west"} {
		wheel.Add(customer{Name: name}, wheelist.AtTail)
	}
	wheel.Activate(wheel.Key("west"))
	next, _ := wheel.Next()
	fmt.Println("after west:", next.Name)
	wheel.DeleteItem(wheel.Key("west"))
	current, _ := wheel.Current()
	fmt.Println("current:", current.Name)
	// Output:
	// after west: north
	// current: north
}
