package ordmap_test

import (
	"fmt"

	"github.com/docodex/ordmap/container/ordmap"
)

func ExampleMap() {
	m := ordmap.New[string, int]()
	names := []string{"Hello", "World", "Golang", "Python", "Rust"}
	for i, name := range names {
		m.Insert(name, i)
	}

	for it := m.Begin(); it.Valid(); it.Next() {
		k, _ := it.Key()
		v, _ := it.Value()
		fmt.Printf("%s:%d\n", k, *v)
	}

	// Output:
	// Golang:2
	// Hello:0
	// Python:3
	// Rust:4
	// World:1
}

func ExampleMap_Insert() {
	m := ordmap.New[int, string]()
	_, inserted := m.Insert(2, "x")
	fmt.Println(inserted)
	_, inserted = m.Insert(2, "y")
	fmt.Println(inserted)
	v, _ := m.Get(2)
	fmt.Println(*v)

	// Output:
	// true
	// false
	// x
}

func ExampleMap_Last() {
	m := ordmap.New[int, int]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		m.Insert(k, k)
	}
	it, _ := m.Last()
	for {
		k, _ := it.Key()
		fmt.Println(k)
		if err := it.Prev(); err != nil {
			break
		}
	}

	// Output:
	// 9
	// 8
	// 7
	// 5
	// 4
	// 3
	// 1
}
