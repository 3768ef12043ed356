package jot_test

import (
	"context"
	"fmt"

	"github.com/aretw0/jot"
)

func Example() {
	ctx := context.Background()

	store, err := jot.New("", jot.WithAdapter("memory"))
	if err != nil {
		panic(err)
	}

	store.Create(ctx, "Groceries", "milk, eggs", "home")
	store.Create(ctx, "Standup", "demo the importer", "work, urgent")
	store.Create(ctx, "Retro", "what went well", "work")

	fmt.Println(store.Tags())

	for _, n := range store.Visible(jot.Filter{Tags: []string{"work", "urgent"}}) {
		fmt.Println(n.Title)
	}
	for _, n := range store.Visible(jot.Filter{Query: "MILK"}) {
		fmt.Println(n.Title)
	}

	// Output:
	// [work urgent home]
	// Standup
	// Groceries
}

func Example_rejectedCreate() {
	ctx := context.Background()
	store, _ := jot.New("", jot.WithAdapter("memory"))

	_, ok := store.Create(ctx, "   ", "no title", "")
	fmt.Println(ok, store.Len())

	// Output:
	// false 0
}

func ExampleVisible() {
	notes := []jot.Note{
		{ID: "1", Title: "Taxes", Tags: []string{"home", "urgent"}},
		{ID: "2", Title: "Deploy", Tags: []string{"work", "urgent"}},
	}

	fmt.Println(jot.DistinctTags(notes))
	for _, n := range jot.Visible(notes, "", []string{"urgent"}) {
		fmt.Println(n.ID)
	}

	// Output:
	// [home urgent work]
	// 1
	// 2
}
