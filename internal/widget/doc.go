// Package widget defines the floating social button configuration and the
// operations the wizard applies to it.
//
// A Config is an immutable value. Each edit returns a new Config, which lets
// the controller swap snapshots atomically and hand old ones to renderers
// without copying.
//
// # Edits
//
// Update replaces one top-level field and checks the value at the boundary:
// wrong kinds and out-of-set enum values are rejected with a *ConfigError and
// the original Config is returned. Link operations take an index; an index
// outside the list is a no-op rather than an error.
//
// # Usage Example
//
//	cfg := widget.Default()
//
//	cfg, err := cfg.Update(widget.FieldSize, "lg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg = cfg.AddLink()
//	cfg, _ = cfg.UpdateLink(3, widget.LinkPlatform, "github")
//
//	fmt.Println(cfg.Summary())
package widget
