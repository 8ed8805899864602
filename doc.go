// Package icondemo generates "demo" variants of app icon images.
//
// Each source icon gets a translucent red banner near its bottom edge, clipped
// to the icon's alpha silhouette, with a white bold "DEMO" label centered in
// the band. The package works entirely in memory; the Generator type wraps it
// in a batch loop over an asset catalog directory.
package icondemo
