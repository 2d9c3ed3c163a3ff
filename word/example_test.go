package word_test

import (
	"fmt"

	"github.com/katalvlaran/fundgroup/word"
)

// ExampleReduce cancels adjacent inverse pairs, cascading inwards.
func ExampleReduce() {
	w, err := word.Reduce([]int{1, 2, -2, -1, 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(w)
	// Output:
	// [3]
}

func ExampleWord_Concat() {
	u := word.MustReduce(1, 2)
	v := word.MustReduce(-2, 3)
	fmt.Println(u.Concat(v), u.Inverse())
	// Output:
	// [1 3] [-2 -1]
}
