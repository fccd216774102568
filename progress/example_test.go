package progress_test

import (
	"os"

	"github.com/ludvb/effects-logging/effects"
	"github.com/ludvb/effects-logging/progress"
	"github.com/ludvb/effects-logging/writer"
)

// Track a slice with a per-element description. On a terminal the bar
// renders in place; here stdout is a pipe, so iteration proceeds with
// no visual output at all.
func Example() {
	stack := effects.New()
	w, _ := writer.Open(stack, os.Stdout, writer.Options{})
	defer w.Close()

	files := []string{"a.txt", "b.txt", "c.txt"}
	for range progress.Slice(stack, files, progress.Config[string]{
		Description: "copying",
		DescriptionFunc: func(f string) string {
			return "copying " + f
		},
	}) {
		// process the file
	}

	// Output:
}
