// Package device implements the built-in port-mapped peripherals of the
// default hardware configuration: multiplier, divider, RNG, timer,
// console output, keyboard, and pixel display. Each device implements
// io.Device once per port it occupies; multi-port devices share
// internal state through a small owned struct held by the port
// adapters, never through a back-pointer to the bus.
package device
