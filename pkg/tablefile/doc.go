// Package tablefile wires pkg/table to the local file system: it serializes
// tables to CSV or JSON files and parses such files back into tables, with
// both blocking and future-based variants.
//
// Writing:
//
//	err := tablefile.AsCSV(t).WriteFileSync("out.csv")
//	fut := tablefile.AsJSON(t).WriteFile("out.json")
//	err = fut.Wait()
//
// Reading:
//
//	t, err := tablefile.ReadFileSync("in.csv").ParseCSV(nil)
//	fut := tablefile.ReadFile("in.json").ParseJSON()
//	t, err = fut.Await()
//
// The package performs no retries, no locking and no path coordination:
// concurrent writes to one path race, last writer wins. Callers that share
// a path must serialize their own calls.
package tablefile
