// WallPanel lays out wall panels around a door opening.
//
// A cross-platform tool that tiles a wall with repeatable sheets, cuts
// them around a floor-standing door and exports cut lists, labels and
// drawings. It runs as a CLI, an HTTP API or a desktop application.
//
// Build:
//   go build -o wallpanel ./cmd/wallpanel
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o wallpanel.exe ./cmd/wallpanel
//   GOOS=darwin  GOARCH=amd64 go build -o wallpanel-darwin ./cmd/wallpanel

package main

import "github.com/piwi3910/WallPanel/cmd/wallpanel/cmd"

func main() {
	cmd.Execute()
}
