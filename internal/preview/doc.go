// Package preview serves a live browser rendering of the widget being
// configured in the wizard.
//
// The server exposes four routes:
//
//	GET /            HTML page drawing the button over an iframe of previewUrl
//	GET /api/config  current configuration as JSON
//	GET /api/code    generated snippet; ?type=component|page overrides copyType
//	GET /ws          WebSocket pushing a Message on connect and on every change
//
// Messages have the form:
//
//	{"type":"config","config":{...},"code":"<FloatingSocialButton ..."}
//
// Client messages are read only to keep ping/pong and close handling alive.
//
// # Usage
//
//	ctrl := wizard.NewController()
//	srv, err := preview.New(&preview.Config{Host: "127.0.0.1", Port: 4780}, ctrl)
//	if err != nil {
//	    return err
//	}
//	if err := srv.Start(ctx); err != nil {
//	    return err
//	}
//	ctrl.Subscribe(srv.Broadcast)
//
// Start returns once the listener is bound; canceling ctx shuts the server
// down. With Advertise set, the server is also published over mDNS so that
// other devices on the LAN can find it (see package discovery).
package preview
