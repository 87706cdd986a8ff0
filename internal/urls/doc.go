// Package urls holds the documentation links printed by the command line.
//
//	fmt.Printf("See %s for every component prop\n", urls.ComponentProps)
package urls
