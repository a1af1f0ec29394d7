package ordering_test

import (
	"fmt"

	"github.com/bsaintjo/advent2024/pkg/ordering"
)

func Example() {
	rules := ordering.NewRules()
	for _, line := range []string{"97|75", "97|47", "75|47", "47|61", "75|61", "97|61"} {
		_ = rules.AddRule(line)
	}

	seq, _ := ordering.ParseSequence("75,97,47,61")
	fmt.Println("valid:", ordering.IsValid(seq, rules))

	fixed := ordering.Reorder(seq, rules)
	mid, _ := ordering.Middle(fixed)
	fmt.Println("reordered:", fixed)
	fmt.Println("middle:", mid)
	// Output:
	// valid: false
	// reordered: 97,75,47,61
	// middle: 75
}

func ExampleMiddle() {
	for _, s := range []ordering.Sequence{{4}, {1, 2, 3, 4}, {1, 2, 3, 4, 5}} {
		mid, _ := ordering.Middle(s)
		fmt.Println(s, "->", mid)
	}

	_, err := ordering.Middle(ordering.Sequence{})
	fmt.Println(err)
	// Output:
	// 4 -> 4
	// 1,2,3,4 -> 2
	// 1,2,3,4,5 -> 3
	// empty sequence has no middle element
}

func ExampleIncomparable() {
	rules := ordering.NewRules()
	_ = rules.AddRule("1|2")

	fmt.Println(ordering.Incomparable(ordering.Sequence{1, 2, 3}, rules))
	// Output:
	// [1|3 2|3]
}
