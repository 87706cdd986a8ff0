// Package discovery advertises and finds wizard preview servers over mDNS.
//
// A wizard started with a preview server registers it as a "_flochat._tcp"
// service so that other machines on the LAN, such as a phone used to check
// the mobile layout, can find the preview page without typing an address.
//
// # Advertising
//
//	ad, err := discovery.Advertise("", 4780, map[string]string{"version": "1.0.0"})
//	if err != nil {
//	    return err
//	}
//	defer ad.Shutdown()
//
// # Scanning
//
//	services, err := discovery.Scan(ctx, 5*time.Second)
//	for _, svc := range services {
//	    fmt.Println(svc.Instance, svc.URL())
//	}
//
// Only records carrying the app=flochat-wizard TXT entry are reported.
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Peers must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
package discovery
