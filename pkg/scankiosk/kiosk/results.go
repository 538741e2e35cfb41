package kiosk

import (
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/catalog"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/router"
)

// Screens of the kiosk.
const (
	ScreenHome router.Screen = iota
	ScreenProduct
)

// HomeAction is what ended a visit to the home screen.
type HomeAction int

const (
	HomeActionExit        HomeAction = iota // Window closed or context cancelled
	HomeActionShowProduct                   // A valid code was scanned or a tile was selected
)

// ProductAction is what ended a visit to a product screen.
type ProductAction int

const (
	ProductActionExit        ProductAction = iota // Window closed or context cancelled
	ProductActionBack                             // Back button, Escape, or the home code
	ProductActionShowProduct                      // Another valid code was scanned
	ProductActionInvalid                          // An unknown or placeholder code was scanned
)

// HomeInput is what the home screen is shown with.
type HomeInput struct {
	Toast  string      // Shown on entry when not empty
	Resume *HomeResume // Nil on the first visit
}

// HomeResume restores the home screen after returning from a product.
type HomeResume struct {
	Focused int // Focused tile, -1 for none
}

// HomeResult is returned by the home screen.
type HomeResult struct {
	Action HomeAction
	Code   string
	Resume *HomeResume
}

// ProductInput is what a product screen is shown with.
type ProductInput struct {
	Product catalog.Product
}

// ProductResult is returned by a product screen.
type ProductResult struct {
	Action ProductAction
	Code   string // Set for ProductActionShowProduct and ProductActionInvalid
}
