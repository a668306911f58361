// Package worksheet generates printable spelling worksheets from word lists.
//
// # Quick Start
//
// Create a service, generate a worksheet, and close when done:
//
//	svc := worksheet.New()
//	defer svc.Close()
//
//	result, err := svc.GeneratePDF(ctx, worksheet.Request{
//	    Words:    []string{"cat", "dog"},
//	    ListName: "Week 1",
//	    Activity: "scrambleWords",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(result.Filename, result.Payload, 0644)
//
// # Pipeline
//
// Each request flows through these stages:
//
//  1. Activity dispatch: the wire id resolves to a closed Activity enum
//  2. Item generation: per-activity strategy (sentences, scrambles, masked
//     letters, or identity items)
//  3. Grid building for the word-search activity
//  4. Layout rendering from embedded per-activity HTML templates
//  5. PDF or PNG export via headless Chrome (go-rod)
//
// The fillblank activity calls an external text-generation service with a
// hard timeout; any failure there is absorbed with deterministic fallback
// sentences so generation always completes. Rendered documents are cached
// in memory for a short TTL keyed by the canonical request.
package worksheet
