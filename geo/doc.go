// Package geo provides geographic coordinates and great-circle distances.
package geo
