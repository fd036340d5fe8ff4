package summary_test

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/ghsummary/pkg/summary"
)

func ExampleSummary() {
	_, err := summary.New().
		AddHeading("Build", summary.H2).
		AddStyledText(summary.Bold("All green")).
		AddTable([][]summary.Cell{
			summary.Cells("Job", "Result"),
			{summary.Plain("lint"), summary.Italic("ok")},
		}).
		WriteTo(os.Stdout)
	if err != nil {
		fmt.Println(err)
	}
	// Output:
	// ## Build
	// **All green**
	//
	// | Job | Result |
	// | --- | --- |
	// | lint | *ok* |
}
