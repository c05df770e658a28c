// Package ocp illustrates the Open/Closed Principle with a mileage calculator.
package ocp

import (
	"fmt"
	"io"
)

// Vehicle is the capability the good calculator depends on.
type Vehicle interface {
	Mileage() string
}

// Bike is a Vehicle.
type Bike struct{}

// Mileage implements Vehicle.
func (Bike) Mileage() string { return "50" }

// Car is a Vehicle.
type Car struct{}

// Mileage implements Vehicle.
func (Car) Mileage() string { return "20" }

// UnsupportedVehicleError is returned by the bad calculator for any type it
// was not edited to know about.
type UnsupportedVehicleError struct {
	GotType string
}

// Error implements the error interface.
func (e UnsupportedVehicleError) Error() string {
	return "ocp: unsupported vehicle type (" + e.GotType + ")"
}

// SwitchCalculator has to be reopened for every new vehicle.
type SwitchCalculator struct{}

// Print writes v's mileage, switching on its concrete type.
func (SwitchCalculator) Print(w io.Writer, v any) error {
	var mileage string
	switch v.(type) {
	case Bike, *Bike:
		mileage = "50"
	case Car, *Car:
		mileage = "20"
	default:
		return UnsupportedVehicleError{GotType: fmt.Sprintf("%T", v)}
	}
	_, err := fmt.Fprintln(w, mileage)
	return err
}

// Calculator is closed for modification: new vehicles only implement Vehicle.
type Calculator struct{}

// Print writes v's mileage.
func (Calculator) Print(w io.Writer, v Vehicle) error {
	_, err := fmt.Fprintln(w, v.Mileage())
	return err
}

// Bad prints a Bike's mileage through the type switch.
func Bad(w io.Writer) error {
	return SwitchCalculator{}.Print(w, Bike{})
}

// Good prints a Bike's mileage through the Vehicle capability.
func Good(w io.Writer) error {
	return Calculator{}.Print(w, Bike{})
}
