// Package fetch provides the batch download orchestration for grammar
// assets.
//
// # Manager
//
// The Manager fans a fixed list of files out over a bounded worker pool:
//
//	manager := fetch.NewManager(settings, func(event fetch.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	downloaded, failed := manager.Progress()
//
// # Concurrency
//
// Settings.Workers bounds how many downloads run at once. Each worker
// fetches one file, writes it to the output directory, and moves on;
// completion order across files is not defined.
//
// # Failure Semantics
//
// A failed download is reported through the progress callback and recorded
// in the Results, but it never cancels sibling downloads and never makes
// Run fail. There are no retries; rerunning the tool re-downloads
// everything, overwriting files already on disk.
package fetch
