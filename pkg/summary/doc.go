// Package summary builds GitHub Actions job summaries.
//
// A Summary accumulates document elements through chained Add* calls and
// renders them as GitHub-flavored markdown:
//
//	err := summary.New().
//		AddHeading("Test Results", summary.H1).
//		AddCodeBlock(`console.log("hi")`, "js").
//		AddTable([][]summary.Cell{
//			summary.Cells("File", "Status"),
//			summary.Cells("foo.js", "Pass"),
//		}).
//		AddLink("Report", "https://x/y", summary.StyleNone).
//		Write(summary.EnvSink{})
//
// Validation failures are sticky: the first invalid Add* call records an
// error, later calls are ignored, and Err, Render and Write report it.
package summary
