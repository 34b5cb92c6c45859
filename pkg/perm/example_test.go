package perm_test

import (
	"fmt"

	"github.com/matzehuels/maximizer/pkg/perm"
)

func ExampleGenerate() {
	// Generate all permutations of 3 elements
	perms := perm.Generate(3, -1)
	fmt.Println("All permutations of [0,1,2]:")
	for _, p := range perms {
		fmt.Println(p)
	}
	// Output:
	// All permutations of [0,1,2]:
	// [0 1 2]
	// [1 0 2]
	// [2 0 1]
	// [0 2 1]
	// [1 2 0]
	// [2 1 0]
}

func ExampleGenerate_limited() {
	// Generate only the first 5 permutations of 10 elements
	perms := perm.Generate(10, 5)
	fmt.Println("Count:", len(perms))
	// Output:
	// Count: 5
}

func ExampleFactorial() {
	fmt.Println("4! =", perm.Factorial(4))
	fmt.Println("5! =", perm.Factorial(5))
	// Output:
	// 4! = 24
	// 5! = 120
}

func ExampleInjections() {
	// Pair two explicit coordinates with two others; -1 marks a coordinate
	// left to the other side's infinite tail.
	for f := range perm.Injections(2, 2) {
		fmt.Println(f)
	}
	// Output:
	// [-1 -1]
	// [0 1]
	// [0 -1]
	// [1 0]
	// [1 -1]
	// [-1 0]
	// [-1 1]
}
