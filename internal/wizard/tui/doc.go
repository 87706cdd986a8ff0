// Package tui implements the terminal user interface of the configuration wizard.
//
// The wizard is a single full-screen Bubble Tea program. The screen is split
// into a control area with three tabbed panels and a live preview of the
// button drawn in the terminal:
//   - Style: size, position, bottom offset, animation, toggle icon, colour
//     theme, custom colours and the pick-from-screen action
//   - Social Links: the ordered link list with add, remove, reorder and an
//     inline editor for platform, URL and label
//   - Code: the generated snippet in a scrolling viewport, the
//     component/page switch and the integration guide
//
// All state lives in a wizard.Controller. Panels read the current snapshot on
// every render and send edits through the controller, so the terminal preview
// and any attached browser preview always show the same configuration.
//
// # Layout
//
// Screens use RenderApplicationContainer for the header, content and footer.
// At MinSideBySide columns or more the preview sits to the right of the
// panel; below that it is stacked underneath.
//
// # Usage
//
//	ctrl := wizard.NewController()
//	if err := tui.Run(tui.NewAppModel(ctrl)); err != nil {
//	    return err
//	}
//
// # Keys
//
// tab and shift+tab (or 1, 2, 3) switch panels, / edits the preview URL, c
// copies the snippet and ? shows every binding. While a text field has focus
// all keys go to it; enter applies and esc cancels.
package tui
