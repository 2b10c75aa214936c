// Package hid turns resolved actions into ordered USB HID boot-keyboard
// reports. It owns the usage-code tables and the dispatcher that guarantees
// every report pair is fully pressed then released before the next begins.
package hid
